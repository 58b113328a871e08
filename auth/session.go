package auth

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

// Session is the server-side state behind one admin cookie.
type Session struct {
	Token     string
	Admin     Profile
	ExpiresAt time.Time
}

// Manager keeps sessions in memory. Expiry slides: every successful lookup
// pushes the deadline out by the full TTL again.
type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*Session
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{ttl: ttl, sessions: map[string]*Session{}}
}

// Create opens a new session with a fresh random token.
func (m *Manager) Create(admin Profile) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	s := &Session{
		Token:     token,
		Admin:     admin,
		ExpiresAt: time.Now().Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[token] = s
	m.mu.Unlock()
	return s, nil
}

// Get returns the live session for the token, sliding its expiry, or nil
// when the token is unknown or the session has expired.
func (m *Manager) Get(token string) *Session {
	if token == "" {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return nil
	}
	if time.Now().After(s.ExpiresAt) {
		delete(m.sessions, token)
		return nil
	}
	s.ExpiresAt = time.Now().Add(m.ttl)
	return s
}

// Destroy forgets the session for the token.
func (m *Manager) Destroy(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// TTL is the configured session lifetime, used for the cookie MaxAge.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func generateToken() (string, error) {
	const tokenLength = 32
	tokenBytes := make([]byte, tokenLength)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(tokenBytes), nil
}
