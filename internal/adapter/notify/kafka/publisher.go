// Package kafka streams committed ledger notices for downstream
// reconciliation consumers.
package kafka

import (
	"context"
	"encoding/json"

	"custody-ledger/internal/core/domain"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the slice of *kafka.Writer the publisher needs, split
// out so tests can substitute a fake.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements ports.NoticePublisher on a Kafka topic. Messages are
// keyed by asset so per-asset ordering survives partitioning.
type Publisher struct {
	writer messageWriter
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
	}
}

func newPublisherWithWriter(w messageWriter) *Publisher {
	return &Publisher{writer: w}
}

func (p *Publisher) Publish(ctx context.Context, notice *domain.Notice) error {
	data, err := json.Marshal(notice)
	if err != nil {
		return err
	}

	msg := kafka.Message{Value: data}
	if notice.Asset != nil {
		msg.Key = []byte(notice.Asset.Hex())
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
