package session

import (
	"sync"

	"github.com/PumbaSquek/chiedimi-tutto-subito/auth"
	"github.com/PumbaSquek/chiedimi-tutto-subito/catalog"
)

// Session is the explicit per-user context: the authenticated identity and
// the catalog/draft workspace it owns. Created at sign-in or sign-up,
// replaced by a later sign-in, destroyed at sign-out.
type Session struct {
	Identity  auth.Identity
	Workspace *catalog.Workspace

	mu     sync.Mutex
	saving bool
}

// BeginSave marks a save in flight and reports whether it may proceed; a
// second save while one is outstanding is refused. Draft mutations are NOT
// blocked while saving, so a save can persist a snapshot taken before a
// concurrent edit.
func (s *Session) BeginSave() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving {
		return false
	}
	s.saving = true
	return true
}

// EndSave clears the save-in-flight flag.
func (s *Session) EndSave() {
	s.mu.Lock()
	s.saving = false
	s.mu.Unlock()
}

// Manager owns every live session, keyed by user id.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create starts a fresh session for the identity, replacing any session the
// user already had.
func (m *Manager) Create(identity auth.Identity) *Session {
	s := &Session{
		Identity:  identity,
		Workspace: catalog.NewWorkspace(),
	}
	m.mu.Lock()
	m.sessions[identity.UserID] = s
	m.mu.Unlock()
	return s
}

// Get returns the live session for the user, if any.
func (m *Manager) Get(userID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	return s, ok
}

// Destroy drops the session; the user is anonymous afterwards.
func (m *Manager) Destroy(userID string) {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()
}
