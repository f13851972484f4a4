package ports

import (
	"context"

	"github.com/lifelink/lifelink-api/internal/core/domain"
)

// Session is one client's live application context.
type Session interface {
	ID() string
	State() domain.SessionState
	Navigate(view domain.View) (domain.SessionState, error)
	Transcript() []domain.ChatMessage
	SendChat(ctx context.Context, text string) ([]domain.ChatMessage, error)
}

// SessionLookup finds live sessions by id.
type SessionLookup interface {
	Session(id string) (Session, bool)
}
