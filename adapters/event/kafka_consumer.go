package event

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/planmoni-site/internal/config"
	"github.com/khoahotran/planmoni-site/internal/domain/activity"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

const (
	minFetchBackoff = 200 * time.Millisecond
	maxFetchBackoff = 30 * time.Second
)

// messageReader is the part of *kafka.Reader the consumer drives.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ActivityConsumer reads content events and feeds them to a Recorder.
type ActivityConsumer struct {
	reader     messageReader
	topic      string
	recorder   Recorder
	logger     logger.Logger
	minBackoff time.Duration
	maxBackoff time.Duration
}

func NewActivityConsumer(cfg config.Config, r Recorder, log logger.Logger) *ActivityConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    cfg.Kafka.Topic,
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	return newActivityConsumer(reader, cfg.Kafka.Topic, r, log)
}

func newActivityConsumer(reader messageReader, topic string, r Recorder, log logger.Logger) *ActivityConsumer {
	return &ActivityConsumer{
		reader:     reader,
		topic:      topic,
		recorder:   r,
		logger:     log,
		minBackoff: minFetchBackoff,
		maxBackoff: maxFetchBackoff,
	}
}

// Run blocks until ctx is cancelled or the reader is closed. Malformed
// messages are committed and skipped; messages that fail to record are left
// uncommitted. Fetch errors are retried with exponential backoff.
func (c *ActivityConsumer) Run(ctx context.Context) error {
	c.logger.Info("Worker listening", zap.String("topic", c.topic))
	backoff := c.minBackoff
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			if errors.Is(err, io.EOF) {
				c.logger.Info("Kafka reader closed, stopping consumer")
				return nil
			}
			c.logger.Error("Failed to read message from Kafka", err, zap.Duration("retry_in", backoff))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > c.maxBackoff {
				backoff = c.maxBackoff
			}
			continue
		}
		backoff = c.minBackoff

		c.logger.Debug("Received message", zap.String("topic", msg.Topic), zap.String("key", string(msg.Key)))

		var e activity.Event
		if err := json.Unmarshal(msg.Value, &e); err != nil {
			c.logger.Error("Failed to unmarshal event, skipping", err, zap.String("key", string(msg.Key)))
			c.commit(ctx, msg)
			continue
		}

		if err := c.recorder.Record(ctx, e); err != nil {
			c.logger.Error("Failed to record event", err, zap.String("entity", e.Entity), zap.String("entity_id", e.EntityID))
			continue
		}
		c.commit(ctx, msg)
	}
}

func (c *ActivityConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Failed to commit message", err)
	}
}

func (c *ActivityConsumer) Close() error {
	return c.reader.Close()
}
