package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/table-reservation/pkg/breaker"
	"github.com/Astemirdum/table-reservation/pkg/kafka"
	"github.com/Astemirdum/table-reservation/pkg/logger"
	"github.com/Astemirdum/table-reservation/pkg/postgres"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"RESERVATION_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"RESERVATION_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"10s"`
}

type Tables struct {
	Count int `envconfig:"TABLES_COUNT" default:"10"`
}

type Report struct {
	// Sink is a file path or "stdout". Empty disables reports.
	Sink string `envconfig:"REPORT_SINK"`
}

type Config struct {
	Server   HTTPServer `yaml:"server"`
	Database postgres.DB
	DBDriver string `envconfig:"DB_DRIVER" default:"postgres"`
	Tables   Tables
	Report   Report
	Kafka    kafka.Config
	Breaker  breaker.Config
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment, then applies ops on top.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		if config.DBDriver != DriverPostgres && config.DBDriver != DriverMemory {
			log.Fatalf("NewConfig unknown DB_DRIVER %q", config.DBDriver)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
