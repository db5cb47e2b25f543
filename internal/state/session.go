package state

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/linkup-social/linkup-header/internal/directory"
)

// User is the signed-in user's snapshot shown by the header.
type User struct {
	ID             string
	Username       string
	Email          string
	ProfilePicture string
}

// Initials returns the avatar placeholder for the user.
func (u User) Initials() string {
	return directory.Initials(u.Username)
}

type SessionStore interface {
	User() (User, bool)
	SetUser(User)
	ClearUser()
}

type sessionStore struct {
	mu     sync.RWMutex
	user   User
	signed bool
}

func NewSessionStore() SessionStore {
	return &sessionStore{}
}

func (s *sessionStore) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.signed
}

func (s *sessionStore) SetUser(u User) {
	s.mu.Lock()
	s.user = u
	s.signed = true
	s.mu.Unlock()
}

func (s *sessionStore) ClearUser() {
	s.mu.Lock()
	s.user = User{}
	s.signed = false
	s.mu.Unlock()
}

var errNoSubject = errors.New("token carries no user id")

// UserFromToken reads the user snapshot out of a session token's claims.
// The signature is not checked here; the API verifies the token on every call.
func UserFromToken(token string) (User, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(token), claims); err != nil {
		return User{}, fmt.Errorf("parse session token: %w", err)
	}
	u := User{
		ID:             claimString(claims, "_id"),
		Username:       claimString(claims, "username"),
		Email:          claimString(claims, "email"),
		ProfilePicture: claimString(claims, "profilePicture"),
	}
	if u.ID == "" {
		if sub, err := claims.GetSubject(); err == nil {
			u.ID = sub
		}
	}
	if u.ID == "" {
		return User{}, errNoSubject
	}
	return u, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
