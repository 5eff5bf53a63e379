package service

import (
	"context"
	"movie_tracker/model"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIssuesToken(t *testing.T) {
	s := newTestServices(t)

	user, token, err := s.auth.Register(&model.RegisterRequest{
		Username: "maria",
		Password: "secreto123",
		Age:      28,
		Email:    "maria@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotZero(t, user.UserId)
	assert.Equal(t, "maria", user.Username)
	assert.True(t, user.Active)
	// the hash must never equal the raw password
	assert.NotEqual(t, "secreto123", user.PasswordHash)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	s := newTestServices(t)
	registerTestUser(t, s, "maria")

	_, _, err := s.auth.Register(&model.RegisterRequest{
		Username: "maria",
		Password: "otraclave",
		Age:      40,
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterValidation(t *testing.T) {
	s := newTestServices(t)

	cases := []struct {
		name string
		req  model.RegisterRequest
	}{
		{"short username", model.RegisterRequest{Username: "ab", Password: "secreto123", Age: 20}},
		{"short password", model.RegisterRequest{Username: "pedro", Password: "abc", Age: 20}},
		{"negative age", model.RegisterRequest{Username: "pedro", Password: "secreto123", Age: -1}},
		{"bad email", model.RegisterRequest{Username: "pedro", Password: "secreto123", Age: 20, Email: "not-an-email"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := s.auth.Register(&tc.req)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestLogin(t *testing.T) {
	s := newTestServices(t)
	registered := registerTestUser(t, s, "carlos")

	user, token, err := s.auth.Login(&model.LoginRequest{
		Username: "carlos",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, registered.UserId, user.UserId)
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestServices(t)
	registerTestUser(t, s, "carlos")

	_, _, err := s.auth.Login(&model.LoginRequest{
		Username: "carlos",
		Password: "incorrecta",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLoginUnknownUser(t *testing.T) {
	s := newTestServices(t)

	_, _, err := s.auth.Login(&model.LoginRequest{
		Username: "nadie",
		Password: "secreto123",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserById(t *testing.T) {
	s := newTestServices(t)
	registered := registerTestUser(t, s, "lucia")

	user, err := s.auth.GetUserById(registered.UserId)
	require.NoError(t, err)
	assert.Equal(t, "lucia", user.Username)
	assert.False(t, user.RegisteredAt.IsZero())

	_, err = s.auth.GetUserById(registered.UserId + 1000)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogoutTolerantExpiry(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	// tokens carrying no exp claim fall back to the configured lifetime
	assert.NoError(t, s.auth.Logout(ctx, "token-sin-exp", nil))

	// already-expired tokens need no blacklisting at all
	expired := jwt.NewNumericDate(time.Now().Add(-time.Hour))
	assert.NoError(t, s.auth.Logout(ctx, "token-vencido", expired))
}
