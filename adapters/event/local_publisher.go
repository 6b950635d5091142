package event

import (
	"context"

	"github.com/khoahotran/planmoni-site/internal/domain/activity"
)

// Recorder persists an event into the activity log.
type Recorder interface {
	Record(ctx context.Context, e activity.Event) error
}

// localPublisher hands events straight to a recorder in the same process.
// It is used when no Kafka brokers are configured.
type localPublisher struct {
	recorder Recorder
}

func NewLocalPublisher(r Recorder) activity.Publisher {
	return &localPublisher{recorder: r}
}

func (p *localPublisher) Publish(ctx context.Context, e activity.Event) error {
	return p.recorder.Record(ctx, e)
}

func (p *localPublisher) Close() error { return nil }

type inlinePublisher struct {
	activity.Publisher
}

// NewInlinePublisher makes publishes through service.PublishAsync
// synchronous for pub.
func NewInlinePublisher(pub activity.Publisher) activity.Publisher {
	return inlinePublisher{Publisher: pub}
}

func (inlinePublisher) Inline() bool { return true }
