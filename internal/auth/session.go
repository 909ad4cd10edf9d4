package auth

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// DefaultSessionTTL is how long a session stays valid without re-login.
const DefaultSessionTTL = 72 * time.Hour

// cleanupInterval is how often expired sessions are swept.
const cleanupInterval = time.Hour

// Session is one logged-in student.
type Session struct {
	Token     string    `json:"token"`
	StudentID string    `json:"student_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStore holds live sessions in memory, keyed by token. Sessions do
// not survive a restart; students just log in again.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	done     chan struct{}
}

// NewSessionStore creates a session store and starts its cleanup sweeper.
// A non-positive ttl falls back to DefaultSessionTTL.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	s := &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Close stops the cleanup sweeper.
func (s *SessionStore) Close() {
	close(s.done)
}

// Create issues a new session for a student.
func (s *SessionStore) Create(studentID, name string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	session := &Session{
		Token:     newToken(),
		StudentID: studentID,
		Name:      name,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.sessions[session.Token] = session
	return session
}

// Get returns the session for a token. Expired sessions are dropped and
// reported as absent.
func (s *SessionStore) Get(token string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	if time.Now().After(session.ExpiresAt) {
		delete(s.sessions, token)
		return nil, false
	}
	return session, true
}

// Delete removes one session. Missing tokens are a no-op.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// DeleteStudentSessions logs a student out everywhere.
func (s *SessionStore) DeleteStudentSessions(studentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, session := range s.sessions {
		if session.StudentID == studentID {
			delete(s.sessions, token)
		}
	}
}

func (s *SessionStore) sweep() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			now := time.Now()
			for token, session := range s.sessions {
				if now.After(session.ExpiresAt) {
					delete(s.sessions, token)
				}
			}
			s.mu.Unlock()
		}
	}
}

// newToken returns 32 bytes of crypto randomness, hex encoded.
func newToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
