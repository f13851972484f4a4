package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lifelink/lifelink-api/internal/api/metrics"
	"github.com/lifelink/lifelink-api/internal/core/ports"
)

// SessionRegistry holds the live client sessions in memory. Nothing here
// survives a restart.
type SessionRegistry struct {
	store  ports.AccountStore
	router *ViewRouter
	chat   ports.ChatClient
	asker  ports.ChatAsker
	opts   SessionOptions
	log    zerolog.Logger
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[string]*registryEntry
}

type registryEntry struct {
	m        *SessionManager
	lastSeen atomic.Int64
}

func NewSessionRegistry(
	store ports.AccountStore,
	router *ViewRouter,
	chat ports.ChatClient,
	asker ports.ChatAsker,
	opts SessionOptions,
	log zerolog.Logger,
) *SessionRegistry {
	return &SessionRegistry{
		store:    store,
		router:   router,
		chat:     chat,
		asker:    asker,
		opts:     opts,
		log:      log,
		now:      time.Now,
		sessions: make(map[string]*registryEntry),
	}
}

// Open creates and registers a LoggedOut session with a fresh id.
func (r *SessionRegistry) Open() *SessionManager {
	m := NewSessionManager(uuid.NewString(), r.store, r.router, r.chat, r.asker, r.opts, r.log)
	e := &registryEntry{m: m}
	e.lastSeen.Store(r.now().UnixNano())

	r.mu.Lock()
	r.sessions[m.ID()] = e
	n := len(r.sessions)
	r.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	return m
}

// Get returns the session manager for id and marks it as recently used.
func (r *SessionRegistry) Get(id string) (*SessionManager, bool) {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	e.lastSeen.Store(r.now().UnixNano())
	return e.m, true
}

// Session satisfies ports.SessionLookup.
func (r *SessionRegistry) Session(id string) (ports.Session, bool) {
	m, ok := r.Get(id)
	if !ok {
		return nil, false
	}
	return m, true
}

// Resolve reports whether id names a signed-in session still at generation.
// Tokens minted before a later transition stop resolving.
func (r *SessionRegistry) Resolve(id string, generation uint64) bool {
	m, ok := r.Get(id)
	if !ok {
		return false
	}
	st := m.State()
	return st.LoggedIn() && st.Generation == generation
}

// Discard forgets id. Unknown ids are ignored.
func (r *SessionRegistry) Discard(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	n := len(r.sessions)
	r.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
}

// Sweep discards every session unused for longer than maxIdle and returns
// how many were removed.
func (r *SessionRegistry) Sweep(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle).UnixNano()

	r.mu.Lock()
	removed := 0
	for id, e := range r.sessions {
		if e.lastSeen.Load() < cutoff {
			delete(r.sessions, id)
			removed++
		}
	}
	n := len(r.sessions)
	r.mu.Unlock()

	if removed > 0 {
		metrics.ActiveSessions.Set(float64(n))
		r.log.Info().Int("removed", removed).Int("remaining", n).Msg("swept idle sessions")
	}
	return removed
}

// StartJanitor sweeps idle sessions every interval until ctx is done.
func (r *SessionRegistry) StartJanitor(ctx context.Context, interval, maxIdle time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Sweep(maxIdle)
			}
		}
	}()
}

// Len is the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
