package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL" default:"info"`
	// Sink is an output path understood by zap ("stdout", "stderr" or a file). Empty means stdout.
	Sink string `yaml:"sink" envconfig:"LOG_SINK"`
}

func NewLogger(cfg Log, name string) *zap.Logger {
	log, err := build(cfg)
	if err != nil {
		log = zap.NewExample()
		log.Error("logger build, fallback to example logger", zap.Error(err))
	}
	return log.Named(name)
}

// NewFileLogger is NewLogger for callers that need to know the sink could not be opened.
func NewFileLogger(cfg Log, name string) (*zap.Logger, error) {
	log, err := build(cfg)
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}

func build(cfg Log) (*zap.Logger, error) {
	sink := cfg.Sink
	if sink == "" {
		sink = "stdout"
	}
	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(cfg.LogLevel),
		Development:      cfg.LogLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{sink},
		ErrorOutputPaths: []string{"stderr"},
	}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zcfg.Build()
}
