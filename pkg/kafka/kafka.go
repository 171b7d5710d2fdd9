package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const ReservationTopic = "reservation-events"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_TOPIC" default:"reservation-events"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 1
	defaultCfg.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

// ReservationEvent is published after every successful reservation mutation.
type ReservationEvent struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	ReservationID int64     `json:"reservationId"`
	TableNumber   int       `json:"tableNumber"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}
