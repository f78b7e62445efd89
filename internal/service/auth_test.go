package service_test

import (
	"fmt"
	"testing"

	"github.com/creditdesk/credit-service/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIssuesParsableToken(t *testing.T) {
	svc, _ := newTestService(t)

	token, user, err := svc.Register("alice", "alice@example.com", "s3cretpass")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "s3cretpass", user.PasswordHash)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, fmt.Sprintf("%d", user.ID), claims.Subject)
}

func TestRegisterRejectsTakenIdentifiers(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Register("alice", "alice@example.com", "s3cretpass")
	require.NoError(t, err)

	_, _, err = svc.Register("alice", "other@example.com", "s3cretpass")
	assert.ErrorIs(t, err, models.ErrUsernameTaken)

	_, _, err = svc.Register("bob", "alice@example.com", "s3cretpass")
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Register("alice", "alice@example.com", "s3cretpass")
	require.NoError(t, err)

	token, err := svc.Login("alice@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login("alice@example.com", "wrongpass")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "s3cretpass")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}
