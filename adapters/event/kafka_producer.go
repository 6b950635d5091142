package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/planmoni-site/internal/config"
	"github.com/khoahotran/planmoni-site/internal/domain/activity"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

type kafkaPublisher struct {
	writer *kafka.Writer
	logger logger.Logger
}

func NewKafkaPublisher(cfg config.Config, log logger.Logger) (activity.Publisher, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  cfg.Kafka.Topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka producer successfully.")
	return &kafkaPublisher{writer: writer, logger: log}, nil
}

// Publish keys messages by entity and id so events for one record stay
// ordered within a partition.
func (p *kafkaPublisher) Publish(ctx context.Context, e activity.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal content event: %w", err)
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.Entity + ":" + e.EntityID),
		Value: payload,
	})
}

func (p *kafkaPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return err
	}
	p.logger.Info("Closed Kafka producer")
	return nil
}
