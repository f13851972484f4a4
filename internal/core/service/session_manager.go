package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lifelink/lifelink-api/internal/api/metrics"
	"github.com/lifelink/lifelink-api/internal/core/domain"
	"github.com/lifelink/lifelink-api/internal/core/ports"
)

// SessionOptions tunes sign-in behaviour shared by every session.
type SessionOptions struct {
	// LoginDelay paces Login and Register.
	LoginDelay time.Duration
	// DemoDelay paces DemoLogin.
	DemoDelay time.Duration
	// MasterPassword unlocks any account when non-empty. Demo only.
	MasterPassword string
}

// SessionManager is the state machine of one client session: LoggedOut
// until a sign-in succeeds, LoggedIn(account) until Logout. Every
// transition bumps the generation so results computed for an older
// generation can be recognised and dropped.
type SessionManager struct {
	id     string
	store  ports.AccountStore
	router *ViewRouter
	chat   ports.ChatClient
	asker  ports.ChatAsker
	opts   SessionOptions
	log    zerolog.Logger
	now    func() time.Time

	mu         sync.Mutex
	account    *domain.Account
	view       domain.View
	generation uint64
	transcript []domain.ChatMessage
}

// NewSessionManager returns a LoggedOut session.
func NewSessionManager(
	id string,
	store ports.AccountStore,
	router *ViewRouter,
	chat ports.ChatClient,
	asker ports.ChatAsker,
	opts SessionOptions,
	log zerolog.Logger,
) *SessionManager {
	if router == nil {
		router = NewViewRouter()
	}
	return &SessionManager{
		id:     id,
		store:  store,
		router: router,
		chat:   chat,
		asker:  asker,
		opts:   opts,
		log:    log.With().Str("session_id", id).Logger(),
		now:    time.Now,
	}
}

func (m *SessionManager) ID() string { return m.id }

// Login authenticates by email and password. The stored password or the
// master password both succeed. Failure leaves the session untouched.
func (m *SessionManager) Login(ctx context.Context, email, password string) (domain.SessionState, error) {
	if err := pause(ctx, m.opts.LoginDelay); err != nil {
		return domain.SessionState{}, err
	}

	account, ok := m.store.FindByEmail(domain.NormalizeEmail(email))
	if !ok {
		return domain.SessionState{}, domain.ErrAccountNotFound
	}

	pass := domain.NormalizePassword(password)
	if pass != account.Password && !m.isMasterPassword(pass) {
		return domain.SessionState{}, domain.ErrInvalidCredentials
	}

	return m.signIn(ctx, account), nil
}

func (m *SessionManager) isMasterPassword(pass string) bool {
	return m.opts.MasterPassword != "" && pass == m.opts.MasterPassword
}

// Register creates a donor account and signs it in.
func (m *SessionManager) Register(ctx context.Context, in ports.RegisterInput) (domain.SessionState, error) {
	if err := pause(ctx, m.opts.LoginDelay); err != nil {
		return domain.SessionState{}, err
	}

	email := domain.NormalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || name == "" {
		return domain.SessionState{}, fmt.Errorf("%w: name and email are required", domain.ErrInvalidInput)
	}
	account := domain.Account{
		ID:               uuid.NewString(),
		Name:             name,
		Email:            email,
		Password:         orDefault(domain.NormalizePassword(in.Password), domain.DefaultPassword),
		BloodType:        orDefault(strings.TrimSpace(in.BloodType), domain.Unknown),
		Role:             domain.RoleDonor,
		LastDonationDate: domain.NeverDonated,
		Location:         orDefault(strings.TrimSpace(in.Location), domain.Unknown),
		Status:           domain.StatusActive,
	}
	if _, err := m.store.RegisterUnique(ctx, account); err != nil {
		return domain.SessionState{}, err
	}
	m.log.Info().Str("account_id", account.ID).Msg("account registered")

	return m.signIn(ctx, account), nil
}

// DemoLogin signs in as the first account holding role.
func (m *SessionManager) DemoLogin(ctx context.Context, role domain.Role) (domain.SessionState, error) {
	account, ok := m.store.FirstWithRole(role)
	if !ok {
		return domain.SessionState{}, &domain.RoleLookupError{Role: role}
	}
	if err := pause(ctx, m.opts.DemoDelay); err != nil {
		return domain.SessionState{}, err
	}
	return m.signIn(ctx, account), nil
}

// Logout always succeeds and clears session-scoped state.
func (m *SessionManager) Logout() domain.SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.account != nil {
		m.log.Info().Str("account_id", m.account.ID).Msg("signed out")
	}
	m.account = nil
	m.view = ""
	m.transcript = nil
	m.generation++
	return m.stateLocked()
}

func (m *SessionManager) signIn(ctx context.Context, account domain.Account) domain.SessionState {
	if m.chat != nil {
		if err := m.chat.Initialize(ctx); err != nil {
			m.log.Warn().Err(err).Msg("chat initialisation failed")
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.account = &account
	m.view = m.router.DefaultView(account.Role)
	m.generation++
	m.transcript = []domain.ChatMessage{{
		ID:        uuid.NewString(),
		Role:      domain.ChatRoleModel,
		Text:      fmt.Sprintf("Hi %s! I'm LifeLink AI. Ask me about donation eligibility or health tips!", account.FirstName()),
		Timestamp: m.now().UTC(),
	}}

	m.log.Info().Str("account_id", account.ID).Str("role", string(account.Role)).Msg("signed in")
	return m.stateLocked()
}

// Navigate moves to view, clamped to what the role may see.
func (m *SessionManager) Navigate(view domain.View) (domain.SessionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.account == nil {
		return domain.SessionState{}, domain.ErrNotAuthenticated
	}
	m.view = m.router.Navigate(m.account.Role, view)
	return m.stateLocked(), nil
}

// State returns a snapshot of the session.
func (m *SessionManager) State() domain.SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stateLocked()
}

func (m *SessionManager) stateLocked() domain.SessionState {
	st := domain.SessionState{
		SessionID:  m.id,
		Generation: m.generation,
	}
	if m.account == nil {
		return st
	}
	acc := *m.account
	st.Account = &acc
	st.View = m.view
	st.Menu = m.router.AllowedViews(acc.Role)
	st.ShowBack = m.router.ShowBack(acc.Role, m.view)
	return st
}

// Generation is the transition counter; it only grows.
func (m *SessionManager) Generation() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generation
}

// Transcript returns a copy of the chat history.
func (m *SessionManager) Transcript() []domain.ChatMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.ChatMessage, len(m.transcript))
	copy(out, m.transcript)
	return out
}

// SendChat appends text to the transcript, asks the assistant, and appends
// the reply. If the session signed out or switched accounts while waiting,
// the reply is dropped and ErrStaleSession returned.
func (m *SessionManager) SendChat(ctx context.Context, text string) ([]domain.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: message is empty", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	if m.account == nil {
		m.mu.Unlock()
		return nil, domain.ErrNotAuthenticated
	}
	gen := m.generation
	m.transcript = append(m.transcript, domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      domain.ChatRoleUser,
		Text:      text,
		Timestamp: m.now().UTC(),
	})
	m.mu.Unlock()

	reply := m.asker.Ask(ctx, m.id, text)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generation != gen {
		metrics.ChatRequestsTotal.WithLabelValues("stale").Inc()
		m.log.Debug().Uint64("sent_generation", gen).Uint64("generation", m.generation).Msg("discarding stale chat reply")
		return nil, domain.ErrStaleSession
	}
	m.transcript = append(m.transcript, domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      domain.ChatRoleModel,
		Text:      reply,
		Timestamp: m.now().UTC(),
	})
	out := make([]domain.ChatMessage, len(m.transcript))
	copy(out, m.transcript)
	return out, nil
}

// pause waits d without holding any lock. A cancelled ctx abandons the
// operation so its result is never applied.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
