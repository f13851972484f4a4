package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lifelink/lifelink-api/internal/core/ports"
)

type recordingClient struct {
	mu    sync.Mutex
	seen  []string
	delay time.Duration
	err   error
}

func (c *recordingClient) Initialize(context.Context) error { return nil }

func (c *recordingClient) SendMessage(ctx context.Context, text string) (string, error) {
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	c.mu.Lock()
	c.seen = append(c.seen, text)
	c.mu.Unlock()
	if c.err != nil {
		return "", c.err
	}
	return "re: " + text, nil
}

func TestDispatcher_RepliesInOrderPerSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := &recordingClient{}
	d := NewDispatcher(3, client, time.Second, zerolog.Nop())
	d.Start(ctx)

	msgs := []string{"one", "two", "three", "four"}
	replies := make([]chan ports.ChatReply, len(msgs))
	for i, m := range msgs {
		replies[i] = make(chan ports.ChatReply, 1)
		if err := d.Enqueue(ctx, ports.ChatJob{SessionID: "same-session", Text: m, Reply: replies[i]}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	for i, ch := range replies {
		select {
		case r := <-ch:
			if r.Err != nil || r.Text != "re: "+msgs[i] {
				t.Fatalf("reply %d = %+v", i, r)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for reply %d", i)
		}
	}

	client.mu.Lock()
	defer client.mu.Unlock()
	for i, m := range msgs {
		if client.seen[i] != m {
			t.Fatalf("worker processed %v, want %v", client.seen, msgs)
		}
	}
}

func TestDispatcher_PropagatesErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	boom := errors.New("upstream unavailable")
	d := NewDispatcher(1, &recordingClient{err: boom}, time.Second, zerolog.Nop())
	d.Start(ctx)

	reply := make(chan ports.ChatReply, 1)
	if err := d.Enqueue(ctx, ports.ChatJob{SessionID: "s", Text: "hi", Reply: reply}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	select {
	case r := <-reply:
		if !errors.Is(r.Err, boom) {
			t.Fatalf("expected upstream error, got %v", r.Err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out")
	}
}

func TestDispatcher_TimesOutSlowCalls(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := NewDispatcher(1, &recordingClient{delay: time.Second}, 20*time.Millisecond, zerolog.Nop())
	d.Start(ctx)

	reply := make(chan ports.ChatReply, 1)
	if err := d.Enqueue(ctx, ports.ChatJob{SessionID: "s", Text: "hi", Reply: reply}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	select {
	case r := <-reply:
		if !errors.Is(r.Err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline exceeded, got %v", r.Err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out")
	}
}

func TestDispatcher_EnqueueGivesUpWhenQueueFull(t *testing.T) {
	// Never started, so nothing drains the single worker's buffer.
	d := NewDispatcher(1, &recordingClient{}, time.Second, zerolog.Nop())
	for i := 0; i < channelBuffer; i++ {
		if err := d.Enqueue(context.Background(), ports.ChatJob{SessionID: "s", Reply: make(chan ports.ChatReply, 1)}); err != nil {
			t.Fatalf("Enqueue %d: %v", i, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- d.Enqueue(ctx, ports.ChatJob{SessionID: "s", Reply: make(chan ports.ChatReply, 1)}) }()

	select {
	case err := <-done:
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline exceeded, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue ignored its context")
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(0, &recordingClient{}, 0, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
	first := d.shardIndex("abc")
	for i := 0; i < 10; i++ {
		if d.shardIndex("abc") != first {
			t.Fatalf("shard index changed between calls")
		}
	}
}
