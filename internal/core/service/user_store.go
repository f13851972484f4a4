package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lifelink/lifelink-api/internal/api/metrics"
	"github.com/lifelink/lifelink-api/internal/core/domain"
	"github.com/lifelink/lifelink-api/internal/core/ports"
)

// DefaultUsersKey is the slot the roster lives in.
const DefaultUsersKey = "lifelink_users"

// UserStore owns the account roster and is the only writer of its slot.
// Every mutation is saved before the lock is released, so persisted writes
// follow request order.
type UserStore struct {
	slot ports.Slot
	key  string
	log  zerolog.Logger

	mu       sync.RWMutex
	accounts []domain.Account
}

// NewUserStore creates an empty store; call Load (or use OpenUserStore)
// before serving requests.
func NewUserStore(slot ports.Slot, key string, log zerolog.Logger) *UserStore {
	if key == "" {
		key = DefaultUsersKey
	}
	return &UserStore{slot: slot, key: key, log: log}
}

// OpenUserStore loads the roster and writes it straight back, so a fresh
// slot holds the seed from the first start onwards.
func OpenUserStore(ctx context.Context, slot ports.Slot, key string, log zerolog.Logger) *UserStore {
	s := NewUserStore(slot, key, log)
	accounts := s.Load(ctx)
	s.Save(ctx, accounts)
	return s
}

// Load reads the roster from the slot. Missing or malformed data falls back
// to the seed roster; Load never fails.
func (s *UserStore) Load(ctx context.Context) []domain.Account {
	accounts := s.read(ctx)

	s.mu.Lock()
	s.accounts = accounts
	s.mu.Unlock()

	return cloneAccounts(accounts)
}

func (s *UserStore) read(ctx context.Context) []domain.Account {
	raw, err := s.slot.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, domain.ErrSlotEmpty) {
			s.log.Error().Err(err).Str("slot", s.key).Msg("failed to load users, using seed roster")
		}
		return domain.SeedAccounts()
	}

	var accounts []domain.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		s.log.Error().Err(err).Str("slot", s.key).Msg("stored users are malformed, using seed roster")
		return domain.SeedAccounts()
	}
	if accounts == nil {
		return domain.SeedAccounts()
	}
	return accounts
}

// Save overwrites the slot with the full roster. Failures are logged and
// swallowed: the in-memory roster stays authoritative.
func (s *UserStore) Save(ctx context.Context, accounts []domain.Account) {
	if err := s.write(ctx, accounts); err != nil {
		metrics.PersistenceFailuresTotal.WithLabelValues(s.key).Inc()
		s.log.Error().Err(err).Str("slot", s.key).Int("accounts", len(accounts)).Msg("failed to save users")
	}
}

func (s *UserStore) write(ctx context.Context, accounts []domain.Account) error {
	if accounts == nil {
		accounts = []domain.Account{}
	}
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", domain.ErrPersistenceWrite, err)
	}
	if err := s.slot.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceWrite, err)
	}
	return nil
}

// Register appends account and persists the new roster immediately.
// Uniqueness is the caller's concern.
func (s *UserStore) Register(ctx context.Context, account domain.Account) []domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = AppendAccount(s.accounts, account)
	s.Save(ctx, s.accounts)
	return cloneAccounts(s.accounts)
}

// RegisterUnique is Register guarded by the duplicate-email check. Both run
// under one lock, so concurrent registrations of one email admit exactly one.
func (s *UserStore) RegisterUnique(ctx context.Context, account domain.Account) ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.findLocked(account.Email); exists {
		return nil, domain.ErrEmailAlreadyRegistered
	}
	s.accounts = AppendAccount(s.accounts, account)
	s.Save(ctx, s.accounts)
	return cloneAccounts(s.accounts), nil
}

// Accounts returns a copy of the roster in insertion order.
func (s *UserStore) Accounts() []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAccounts(s.accounts)
}

// FindByEmail matches on the normalized email.
func (s *UserStore) FindByEmail(email string) (domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLocked(email)
}

func (s *UserStore) findLocked(email string) (domain.Account, bool) {
	want := domain.NormalizeEmail(email)
	for _, a := range s.accounts {
		if domain.NormalizeEmail(a.Email) == want {
			return a, true
		}
	}
	return domain.Account{}, false
}

// FirstWithRole returns the earliest account holding role.
func (s *UserStore) FirstWithRole(role domain.Role) (domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.Role == role {
			return a, true
		}
	}
	return domain.Account{}, false
}

// AppendAccount returns accounts with account added at the end. The input
// slice is never modified.
func AppendAccount(accounts []domain.Account, account domain.Account) []domain.Account {
	out := make([]domain.Account, 0, len(accounts)+1)
	out = append(out, accounts...)
	return append(out, account)
}

func cloneAccounts(accounts []domain.Account) []domain.Account {
	if accounts == nil {
		return nil
	}
	out := make([]domain.Account, len(accounts))
	copy(out, accounts)
	return out
}
