package studio

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/domain"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/pricing"
)

type session struct {
	store    *Store
	lastSeen time.Time
}

// Manager tracks the live studio sessions of the service. Each session owns
// one Store; the manager only hands out the store, it never mutates
// configurations itself.
type Manager struct {
	mu       sync.Mutex
	engine   *pricing.Engine
	sessions map[string]*session
	now      func() time.Time
}

// NewManager creates an empty session manager evaluating prices with the
// given engine.
func NewManager(engine *pricing.Engine) *Manager {
	return &Manager{
		engine:   engine,
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// Create opens a new session and returns its id along with the fresh store.
func (m *Manager) Create() (string, *Store) {
	id := uuid.NewString()
	store := NewStore(m.engine)
	m.mu.Lock()
	m.sessions[id] = &session{store: store, lastSeen: m.now()}
	m.mu.Unlock()
	return id, store
}

// Get returns the store for a session id, refreshing its idle timer.
func (m *Manager) Get(id string) (*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	sess.lastSeen = m.now()
	return sess.store, nil
}

// Delete discards a session. Deleting an unknown id is a no-op.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Prune drops sessions idle for longer than maxIdle and returns how many
// were removed. Abandoned configurations carry no persistence requirement
// beyond the session.
func (m *Manager) Prune(maxIdle time.Duration) int {
	cutoff := m.now().Add(-maxIdle)
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, sess := range m.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
