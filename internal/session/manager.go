package session

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// DefaultTTL is how long an idle session survives before its state is
// discarded. Every access slides the expiry.
const DefaultTTL = 8 * time.Hour

// Manager is the arena of live sessions, keyed by the opaque session ID
// carried in the analyst's cookie. Interaction handlers fetch their State
// from here on every request instead of keeping anything in locals.
type Manager struct {
	sessions *cache.Cache
	ttl      time.Duration
}

// NewManager creates a session arena with the given idle TTL (DefaultTTL
// when zero).
func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		sessions: cache.New(ttl, 10*time.Minute),
		ttl:      ttl,
	}
}

// Get returns the session for id, creating an empty one on first access,
// and slides its expiry.
func (m *Manager) Get(id string) *State {
	if v, found := m.sessions.Get(id); found {
		m.sessions.Set(id, v, m.ttl)
		return v.(*State)
	}
	s := newState(id)
	m.sessions.Set(id, s, m.ttl)
	return s
}

// Delete discards a session's state immediately.
func (m *Manager) Delete(id string) {
	m.sessions.Delete(id)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	return m.sessions.ItemCount()
}
