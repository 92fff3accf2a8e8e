package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the server-side state behind one logged-in browser.
type Session struct {
	Token         string
	Username      string
	Authenticated bool
	CreatedAt     time.Time
}

// Store keeps live sessions in memory, keyed by opaque token. The browser
// only ever holds the token; everything else stays server-side. Sessions do
// not survive a restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewStore creates a session store whose sessions expire after ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create establishes a new authenticated session and returns it.
func (s *Store) Create(username string) *Session {
	sess := &Session{
		Token:         uuid.NewString(),
		Username:      username,
		Authenticated: true,
		CreatedAt:     time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the live session for a token. Expired sessions are evicted on
// access and reported as absent.
func (s *Store) Get(token string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Since(sess.CreatedAt) > s.ttl {
		s.Delete(token)
		return nil, false
	}
	if !sess.Authenticated {
		return nil, false
	}
	return sess, true
}

// Delete destroys a session immediately. Unknown tokens are a no-op.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Len reports how many sessions are held, including not-yet-evicted expired ones.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
