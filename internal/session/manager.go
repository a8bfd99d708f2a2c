// Package session holds per-user conversational and game state. Sessions
// are ephemeral: they live in memory and disappear when ended.
package session

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoActiveGame    = errors.New("no active game")
)

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create issues a new session with a fresh token and its own seeded
// random source.
func (m *Manager) Create() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	token := uuid.NewString()
	s := newSession(token, rand.New(rand.NewSource(time.Now().UnixNano())))
	m.sessions[token] = s
	return s
}

// CreateSeeded is Create with a caller-chosen seed, for reproducible
// behavior in tests.
func (m *Manager) CreateSeeded(seed int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	token := uuid.NewString()
	s := newSession(token, rand.New(rand.NewSource(seed)))
	m.sessions[token] = s
	return s
}

func (m *Manager) Get(token string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.sessions[token]
	if s == nil {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// End drops the session; its transcript and game state go with it.
func (m *Manager) End(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}
