package sdk

import "sync"

// Session is the authenticated client state: the current user and the bearer
// token issued at login. Both are nil/empty when logged out.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// IsAuthenticated is true iff both user and token are present.
func (s Session) IsAuthenticated() bool {
	return s.User != nil && s.Token != ""
}

// SessionStore persists a Session. The SDK keeps an in-memory store and
// optionally mirrors it to a durable store so the session survives process
// restarts. Implementations must tolerate Load before any Save (returning a
// zero Session).
type SessionStore interface {
	Load() (Session, error)
	Save(Session) error
	Clear() error
}

// MemStore is the process-wide in-memory session store.
type MemStore struct {
	mu sync.Mutex
	s  Session
}

var _ SessionStore = (*MemStore)(nil)

func NewMemStore() *MemStore { return &MemStore{} }

func (m *MemStore) Load() (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s, nil
}

func (m *MemStore) Save(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = s
	return nil
}

func (m *MemStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = Session{}
	return nil
}
