package state

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreSetAndClear(t *testing.T) {
	s := NewSessionStore()
	_, ok := s.User()
	assert.False(t, ok)

	s.SetUser(User{ID: "42", Username: "Ada Lovelace"})
	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "AL", u.Initials())

	s.ClearUser()
	u, ok = s.User()
	assert.False(t, ok)
	assert.Equal(t, User{}, u)
}

func TestSidebarStoreToggle(t *testing.T) {
	s := NewSidebarStore()
	assert.False(t, s.Open())
	s.Toggle()
	assert.True(t, s.Open())
	s.SetOpen(false)
	assert.False(t, s.Open())
}

func TestUserFromToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"_id":      "u-1",
		"username": "Grace Hopper",
		"email":    "grace@example.com",
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	u, err := UserFromToken(signed)
	require.NoError(t, err)
	assert.Equal(t, User{ID: "u-1", Username: "Grace Hopper", Email: "grace@example.com"}, u)
}

func TestUserFromTokenFallsBackToSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "sub-9"})
	signed, err := token.SignedString([]byte("k"))
	require.NoError(t, err)

	u, err := UserFromToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "sub-9", u.ID)
}

func TestUserFromTokenRejectsGarbage(t *testing.T) {
	_, err := UserFromToken("not-a-token")
	require.Error(t, err)

	empty := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": "x"})
	signed, err := empty.SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = UserFromToken(signed)
	require.Error(t, err)
}
