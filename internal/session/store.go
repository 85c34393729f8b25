package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/apperrors"
)

// Store keeps sessions in memory, keyed by UUID.
// Nothing is persisted; a restart discards every session.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	opts Options
	now  func() time.Time
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// NewStore creates an empty store whose sessions use opts.
func NewStore(opts Options) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		opts:     opts,
		now:      time.Now,
	}
}

// WithClock replaces the clock used for idle tracking.
func (st *Store) WithClock(now func() time.Time) *Store {
	st.now = now
	return st
}

// Create starts a new session in its initial state.
func (st *Store) Create() *Session {
	s := New(uuid.New().String(), st.opts)

	st.mu.Lock()
	st.sessions[s.ID()] = &entry{session: s, lastSeen: st.now()}
	st.mu.Unlock()

	return s
}

// Get returns the session and marks it as recently used.
// Returns apperrors.ErrSessionNotFound for unknown or evicted IDs.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	e, ok := st.sessions[id]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	e.lastSeen = st.now()
	return e.session, nil
}

// Delete discards a session.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return apperrors.ErrSessionNotFound
	}
	delete(st.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// EvictIdle removes sessions not used within idle and returns how many were removed.
func (st *Store) EvictIdle(idle time.Duration) int {
	cutoff := st.now().Add(-idle)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, e := range st.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}
