package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unipath/admission-portal/internal/config"
	"github.com/unipath/admission-portal/internal/model"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(expiry time.Duration) *AuthService {
	cfg := &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  expiry,
		BcryptCost: bcrypt.MinCost,
	}
	return NewAuthService(cfg, nil)
}

func TestHashAndCheckPassword(t *testing.T) {
	s := newTestAuthService(time.Hour)

	hash, err := s.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, s.CheckPassword(hash, "correct horse battery staple"))
	assert.Error(t, s.CheckPassword(hash, "wrong password"))
}

func TestGenerateAndValidateToken(t *testing.T) {
	s := newTestAuthService(time.Hour)

	token, err := s.GenerateToken(42, model.RoleStudent)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, model.RoleStudent, claims.Role)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Expired(t *testing.T) {
	s := newTestAuthService(-time.Minute)

	token, err := s.GenerateToken(7, model.RoleAdmin)
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := newTestAuthService(time.Hour)
	token, err := issuer.GenerateToken(7, model.RoleStudent)
	require.NoError(t, err)

	verifier := NewAuthService(&config.Config{
		JWTSecret: "a-different-secret",
		JWTExpiry: time.Hour,
	}, nil)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_Malformed(t *testing.T) {
	s := newTestAuthService(time.Hour)

	for _, tokenStr := range []string{"", "garbage", "a.b.c"} {
		_, err := s.ValidateToken(tokenStr)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	}
}
