package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lifelink/lifelink-api/internal/core/domain"
	"github.com/lifelink/lifelink-api/internal/core/ports"
)

var testLog = zerolog.Nop()

type stubSlot struct {
	mu     sync.Mutex
	data   map[string][]byte
	getErr error
	setErr error
	writes int
}

func newStubSlot() *stubSlot {
	return &stubSlot{data: make(map[string][]byte)}
}

func (s *stubSlot) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	v, ok := s.data[key]
	if !ok {
		return nil, domain.ErrSlotEmpty
	}
	return append([]byte(nil), v...), nil
}

func (s *stubSlot) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.writes++
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *stubSlot) raw(key string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.data[key]...)
}

type stubChatClient struct {
	mu    sync.Mutex
	inits int
	err   error
}

func (c *stubChatClient) Initialize(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inits++
	return c.err
}

func (c *stubChatClient) SendMessage(context.Context, string) (string, error) {
	return "", errors.New("not used")
}

// stubAsker answers with reply, optionally waiting on release first.
type stubAsker struct {
	reply   string
	started chan struct{}
	release chan struct{}
}

func (a *stubAsker) Ask(ctx context.Context, _, _ string) string {
	if a.started != nil {
		close(a.started)
	}
	if a.release != nil {
		select {
		case <-a.release:
		case <-ctx.Done():
		}
	}
	return a.reply
}

// stubDispatcher runs each job through fn on its own goroutine. A nil fn
// never accepts a job, like a dispatcher whose queue is full.
type stubDispatcher struct {
	fn func(job ports.ChatJob) ports.ChatReply
}

func (d *stubDispatcher) Enqueue(ctx context.Context, job ports.ChatJob) error {
	if d.fn == nil {
		<-ctx.Done()
		return ctx.Err()
	}
	go func() { job.Reply <- d.fn(job) }()
	return nil
}

func newSeededStore(t *testing.T) (*UserStore, *stubSlot) {
	t.Helper()
	slot := newStubSlot()
	return OpenUserStore(context.Background(), slot, DefaultUsersKey, testLog), slot
}
