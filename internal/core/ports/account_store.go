package ports

import (
	"context"

	"github.com/lifelink/lifelink-api/internal/core/domain"
)

// AccountStore owns the roster. Register persists immediately; persistence
// failures are absorbed by the store.
type AccountStore interface {
	Accounts() []domain.Account
	FindByEmail(email string) (domain.Account, bool)
	FirstWithRole(role domain.Role) (domain.Account, bool)
	Register(ctx context.Context, account domain.Account) []domain.Account
	// RegisterUnique appends account unless its email is already taken, in
	// which case it returns domain.ErrEmailAlreadyRegistered.
	RegisterUnique(ctx context.Context, account domain.Account) ([]domain.Account, error)
}
