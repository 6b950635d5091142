package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/planmoni-site/internal/domain/activity"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

const publishTimeout = 10 * time.Second

// Inline is implemented by publishers whose events must be delivered before
// PublishAsync returns, e.g. in a short-lived CLI process.
type Inline interface {
	Inline() bool
}

// PublishAsync sends e in the background. The content change has already
// been saved, so a failed publish is only logged.
func PublishAsync(pub activity.Publisher, log logger.Logger, e activity.Event) {
	if pub == nil {
		return
	}
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	send := func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := pub.Publish(ctx, e); err != nil {
			log.Error("Failed to publish content event", err,
				zap.String("entity", e.Entity),
				zap.String("action", string(e.Action)),
				zap.String("entity_id", e.EntityID))
		}
	}
	if in, ok := pub.(Inline); ok && in.Inline() {
		send()
		return
	}
	go send()
}
