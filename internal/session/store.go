package session

import (
	"sync"

	"pm_client/internal/auth/domain"
)

// Store is the single source of truth for who is currently logged in.
// It holds no storage or network concerns: mutations are synchronous
// in-memory assignments, and subscribers are notified before the
// mutating call returns.
type Store struct {
	mu      sync.RWMutex
	current domain.Session
	subs    map[int]func(domain.Session)
	nextSub int
}

func NewStore() *Store {
	return &Store{subs: make(map[int]func(domain.Session))}
}

// Login replaces the current session atomically. The token must be
// non-empty; persistence is the caller's responsibility.
func (s *Store) Login(identity domain.Identity, token string) error {
	if token == "" {
		return domain.ErrEmptyToken
	}
	s.mu.Lock()
	s.current = domain.Session{Identity: &identity, Token: token}
	snapshot, listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(snapshot, listeners)
	return nil
}

// Logout clears the session back to its empty state.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = domain.Session{}
	snapshot, listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(snapshot, listeners)
}

// Current returns a snapshot of the session. It never fails and the
// returned value shares no memory with the store.
func (s *Store) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySession(s.current)
}

// Subscribe registers fn to run after every session change. The returned
// cancel function removes the subscription.
func (s *Store) Subscribe(fn func(domain.Session)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) snapshotLocked() (domain.Session, []func(domain.Session)) {
	listeners := make([]func(domain.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	return copySession(s.current), listeners
}

// notify runs outside the store lock so a subscriber may call back into
// the store without deadlocking.
func notify(snapshot domain.Session, listeners []func(domain.Session)) {
	for _, fn := range listeners {
		fn(copySession(snapshot))
	}
}

func copySession(s domain.Session) domain.Session {
	if s.Identity == nil {
		return domain.Session{Token: s.Token}
	}
	identity := *s.Identity
	return domain.Session{Identity: &identity, Token: s.Token}
}
