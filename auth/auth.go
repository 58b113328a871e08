// Package auth handles the single admin account and its cookie sessions.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"z3z/store"
)

const accountFile = "admin.json"

// ErrInvalidCredentials is returned for a wrong username and a wrong
// password alike; callers never learn which check failed.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Account is the singleton admin record kept in data/admin.json. Password
// holds a bcrypt hash, never plaintext; use cmd/hashpw to provision it.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Profile is the part of the account that sessions and templates may see.
type Profile struct {
	Username string
	Name     string
	Email    string
}

// Service authenticates against the stored account and hands out sessions.
type Service struct {
	store    *store.Store
	Sessions *Manager
}

func NewService(st *store.Store, sessions *Manager) *Service {
	return &Service{store: st, Sessions: sessions}
}

// HasAccount reports whether an admin account has been provisioned yet.
func (s *Service) HasAccount() bool {
	return s.store.Exists(accountFile)
}

// Login loads the account fresh from disk, requires an exact username
// match and a bcrypt-verified password, and on success opens a session.
func (s *Service) Login(username, password string) (*Session, error) {
	var acct Account
	if err := s.store.ReadJSON(accountFile, &acct); err != nil {
		return nil, fmt.Errorf("auth: load account: %w", err)
	}

	if username != acct.Username {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.Sessions.Create(Profile{
		Username: acct.Username,
		Name:     acct.Name,
		Email:    acct.Email,
	})
}

// Logout destroys the session behind the token, if any.
func (s *Service) Logout(token string) {
	s.Sessions.Destroy(token)
}
