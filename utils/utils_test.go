package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("secret")
	token, err := GenerateToken(secret, "user-1", time.Hour)
	require.NoError(t, err)

	id, err := ExtractIDFromToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestExpiredTokenRejected(t *testing.T) {
	secret := []byte("secret")
	token, err := GenerateToken(secret, "user-1", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(secret, token)
	assert.Error(t, err)
}

func TestTokenWithoutSubjectRejected(t *testing.T) {
	secret := []byte("secret")
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(secret)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(secret, token)
	assert.Error(t, err)
}

type pingerFunc func(context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestCheckHealth(t *testing.T) {
	up := pingerFunc(func(context.Context) error { return nil })
	down := pingerFunc(func(context.Context) error { return errors.New("unreachable") })

	status := CheckHealth(context.Background(), up, down)
	assert.True(t, status.Local)
	assert.False(t, status.Remote)
	assert.False(t, status.CheckedAt.IsZero())
	assert.Equal(t, status, GetHealthStatus())

	status = CheckHealth(context.Background(), up, nil)
	assert.True(t, status.Remote, "an unconfigured store counts as healthy")
}
