package console

import (
	"sync"

	"github.com/google/uuid"
)

// Session is the server-side state behind a console login: the access
// token issued at login time and the role the user held then. The role
// is re-checked against the live user record on every request.
type Session struct {
	Token string
	Role  string
}

// SessionStore keeps console sessions in memory, keyed by an opaque id
// held in the console's cookie.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]Session),
	}
}

// Put stores a session and returns its opaque id.
func (s *SessionStore) Put(session Session) string {
	id := uuid.New().String()

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	return id
}

// Get looks up a session by id.
func (s *SessionStore) Get(id string) (Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	return session, ok
}

// Delete destroys a session.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
