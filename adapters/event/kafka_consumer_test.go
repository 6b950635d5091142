package event

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/planmoni-site/internal/domain/activity"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

type fetchResult struct {
	msg kafka.Message
	err error
}

// scriptedReader replays results in order, then returns fallback forever.
type scriptedReader struct {
	mu        sync.Mutex
	results   []fetchResult
	fallback  error
	fetches   int
	committed []kafka.Message
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetches++
	if err := ctx.Err(); err != nil {
		return kafka.Message{}, err
	}
	if len(r.results) > 0 {
		next := r.results[0]
		r.results = r.results[1:]
		return next.msg, next.err
	}
	return kafka.Message{}, r.fallback
}

func (r *scriptedReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *scriptedReader) Close() error { return nil }

func (r *scriptedReader) fetchCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fetches
}

func eventMessage(t *testing.T, e activity.Event) kafka.Message {
	t.Helper()
	body, err := json.Marshal(e)
	require.NoError(t, err)
	return kafka.Message{Topic: "content-events", Key: []byte(e.EntityID), Value: body}
}

func runConsumer(ctx context.Context, c *ActivityConsumer) <-chan error {
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	return done
}

func TestActivityConsumer_StopsWhenReaderClosed(t *testing.T) {
	rec := &memRecorder{}
	reader := &scriptedReader{
		results: []fetchResult{
			{msg: eventMessage(t, activity.Event{Entity: activity.EntityFAQ, EntityID: "1"})},
			{msg: kafka.Message{Value: []byte("not json")}},
		},
		fallback: io.EOF,
	}
	c := newActivityConsumer(reader, "content-events", rec, logger.NewNopLogger())

	select {
	case err := <-runConsumer(context.Background(), c):
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer kept running after the reader returned io.EOF")
	}

	assert.Equal(t, 1, rec.count())
	assert.Len(t, reader.committed, 2)
	assert.Equal(t, 3, reader.fetchCount())
}

func TestActivityConsumer_BacksOffOnFetchErrors(t *testing.T) {
	reader := &scriptedReader{fallback: errors.New("broker unavailable")}
	c := newActivityConsumer(reader, "content-events", &memRecorder{}, logger.NewNopLogger())
	c.minBackoff = 20 * time.Millisecond
	c.maxBackoff = 40 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := runConsumer(ctx, c)

	time.Sleep(150 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer ignored cancellation while backing off")
	}

	// Without backoff a failing reader is polled thousands of times here.
	assert.GreaterOrEqual(t, reader.fetchCount(), 2)
	assert.LessOrEqual(t, reader.fetchCount(), 10)
}

func TestActivityConsumer_RecoversAfterTransientError(t *testing.T) {
	rec := &memRecorder{}
	reader := &scriptedReader{
		results: []fetchResult{
			{err: errors.New("leader not available")},
			{msg: eventMessage(t, activity.Event{Entity: activity.EntityFAQ, EntityID: "7"})},
		},
		fallback: io.EOF,
	}
	c := newActivityConsumer(reader, "content-events", rec, logger.NewNopLogger())
	c.minBackoff = time.Millisecond

	select {
	case err := <-runConsumer(context.Background(), c):
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not finish")
	}
	assert.Equal(t, 1, rec.count())
}
