// Package report writes query outcomes to a dedicated structured log sink.
package report

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/table-reservation/pkg/logger"
	"github.com/Astemirdum/table-reservation/reservation/internal/model"
)

type Writer struct {
	log *zap.Logger
}

func NewWriter(log *zap.Logger) *Writer {
	return &Writer{log: log}
}

// NewFileWriter opens sink (a path or "stdout") at info level.
func NewFileWriter(sink string) (*Writer, error) {
	log, err := logger.NewFileLogger(logger.Log{LogLevel: zapcore.InfoLevel, Sink: sink}, "report")
	if err != nil {
		return nil, err
	}
	return NewWriter(log), nil
}

func (w *Writer) Observe(_ context.Context, r model.Report) error {
	fields := []zap.Field{
		zap.String("kind", string(r.Kind)),
		zap.Time("generatedAt", r.GeneratedAt),
		zap.Any("params", r.Params),
		zap.Int("count", r.Count()),
	}
	if r.Kind == model.ReportByLatestStatus {
		fields = append(fields, zap.Any("tables", r.Tables))
	} else {
		fields = append(fields, zap.Any("reservations", r.Reservations))
	}
	w.log.Info("report", fields...)
	return nil
}

func (w *Writer) Close() error {
	return w.log.Sync()
}
