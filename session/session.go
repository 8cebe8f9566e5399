package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/scalefinder/engine"
	"github.com/jsphweid/scalefinder/scale"
)

type Session struct {
	ID uuid.UUID

	mu       sync.Mutex
	engine   *engine.Engine
	lastUsed time.Time
}

// Do runs f with exclusive access to the session's engine.
func (s *Session) Do(f func(e *engine.Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.engine)
}

type Store struct {
	catalog scale.Catalog
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewStore(catalog scale.Catalog, ttl time.Duration) *Store {
	return &Store{
		catalog:  catalog,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
	}
}

func (st *Store) Create() *Session {
	s := &Session{
		ID:       uuid.New(),
		engine:   engine.New(st.catalog),
		lastUsed: st.now(),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if ok {
		s.lastUsed = st.now()
	}
	return s, ok
}

func (st *Store) Delete(id uuid.UUID) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	_, ok := st.sessions[id]
	delete(st.sessions, id)
	return ok
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep drops sessions idle for longer than the ttl and returns how many went.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	cutoff := st.now().Add(-st.ttl)
	var removed int
	for id, s := range st.sessions {
		if s.lastUsed.Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// SweepEvery sweeps on an interval until stop is closed.
func (st *Store) SweepEvery(interval time.Duration, stop <-chan struct{}, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := st.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		case <-stop:
			return
		}
	}
}
