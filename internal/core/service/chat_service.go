package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lifelink/lifelink-api/internal/api/metrics"
	"github.com/lifelink/lifelink-api/internal/core/domain"
	"github.com/lifelink/lifelink-api/internal/core/ports"
)

const defaultChatTimeout = 30 * time.Second

// ChatDispatcher queues jobs for the collaborator workers.
type ChatDispatcher interface {
	Enqueue(ctx context.Context, job ports.ChatJob) error
}

// ChatService forwards messages to the assistant and turns every failure
// into the fallback reply, so callers always get text.
type ChatService struct {
	dispatcher ChatDispatcher
	timeout    time.Duration
	log        zerolog.Logger
}

func NewChatService(dispatcher ChatDispatcher, timeout time.Duration, log zerolog.Logger) *ChatService {
	if timeout <= 0 {
		timeout = defaultChatTimeout
	}
	return &ChatService{dispatcher: dispatcher, timeout: timeout, log: log}
}

// Ask queues text for sessionID's worker and waits for the answer.
func (s *ChatService) Ask(ctx context.Context, sessionID, text string) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply := make(chan ports.ChatReply, 1)
	if err := s.dispatcher.Enqueue(ctx, ports.ChatJob{SessionID: sessionID, Text: text, Reply: reply}); err != nil {
		metrics.ChatRequestsTotal.WithLabelValues("fallback").Inc()
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("chat queue unavailable")
		return domain.ChatFallbackReply
	}

	select {
	case r := <-reply:
		if r.Err != nil {
			metrics.ChatRequestsTotal.WithLabelValues("fallback").Inc()
			s.log.Warn().Err(r.Err).Str("session_id", sessionID).Msg("chat collaborator failed")
			return domain.ChatFallbackReply
		}
		metrics.ChatRequestsTotal.WithLabelValues("ok").Inc()
		return r.Text
	case <-ctx.Done():
		metrics.ChatRequestsTotal.WithLabelValues("fallback").Inc()
		s.log.Warn().Err(ctx.Err()).Str("session_id", sessionID).Msg("chat reply timed out")
		return domain.ChatFallbackReply
	}
}
