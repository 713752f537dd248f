package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aster-ui/aster/pkg/vdom"
)

// Manager errors.
var (
	ErrNotFound        = errors.New("session: not found")
	ErrTooManySessions = errors.New("session: session limit reached")
)

// Manager tracks the live sessions of one server process.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	log      *slog.Logger
	max      int
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithMaxSessions caps concurrent sessions. Zero means unlimited.
func WithMaxSessions(n int) ManagerOption {
	return func(m *Manager) { m.max = n }
}

// WithManagerLogger sets the logger inherited by created sessions.
func WithManagerLogger(log *slog.Logger) ManagerOption {
	return func(m *Manager) { m.log = log }
}

// NewManager creates an empty manager.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create builds, registers and mounts a session for root.
func (m *Manager) Create(root vdom.Component) (*Session, error) {
	id, err := newSessionID()
	if err != nil {
		return nil, fmt.Errorf("session: generating id: %w", err)
	}

	s := New(id, root, WithLogger(m.log))

	m.mu.Lock()
	if m.max > 0 && len(m.sessions) >= m.max {
		m.mu.Unlock()
		return nil, ErrTooManySessions
	}
	m.sessions[id] = s
	count := len(m.sessions)
	m.mu.Unlock()

	s.Mount()
	m.log.Info("session created", "session", id, "active", count)
	return s, nil
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Remove unregisters and closes a session. Unknown ids are a no-op.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		s.Close()
		m.log.Info("session removed", "session", id)
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Shutdown closes every session.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for id, s := range sessions {
		s.Close()
		m.log.Debug("session closed on shutdown", "session", id)
	}
}

func newSessionID() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}
