// Package events streams reservation mutations to Kafka.
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/table-reservation/pkg/breaker"
	"github.com/Astemirdum/table-reservation/pkg/kafka"
	"github.com/Astemirdum/table-reservation/reservation/internal/model"
)

type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       *breaker.Breaker
	log      *zap.Logger
	now      func() time.Time
}

func NewPublisher(producer sarama.SyncProducer, topic string, cb *breaker.Breaker, log *zap.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		cb:       cb,
		log:      log.Named("events"),
		now:      time.Now,
	}
}

// Publish sends one event keyed by table number, so events of a table keep their order.
func (p *Publisher) Publish(ctx context.Context, event model.EventType, res model.Reservation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(kafka.ReservationEvent{
		ID:            uuid.NewString(),
		Type:          string(event),
		ReservationID: res.ID,
		TableNumber:   res.TableNumber,
		Date:          res.Date,
		Time:          res.Time,
		Status:        string(res.Status),
		Timestamp:     p.now().UTC(),
	})
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.Itoa(res.TableNumber)),
		Value: sarama.ByteEncoder(data),
	}

	err = p.cb.Call(func() error {
		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			return err
		}
		p.log.Debug("event sent",
			zap.String("type", string(event)),
			zap.Int64("reservation", res.ID),
			zap.Int32("partition", partition),
			zap.Int64("offset", offset))
		return nil
	})
	if errors.Is(err, breaker.ErrOpen) {
		p.log.Warn("event dropped", zap.String("type", string(event)), zap.Int64("reservation", res.ID))
	}
	return errors.Wrap(err, "send event")
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
