package auth_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hazemf/atmledger/pkg/config"
	"github.com/hazemf/atmledger/pkg/domain"
	"github.com/hazemf/atmledger/pkg/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string) *auth.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return auth.New(&config.Jwt{Secret: secret, Expiry: time.Hour}, logger)
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()
	svc := newService("test-secret")

	signed, err := svc.GenerateToken(domain.Handle{Username: "alice"})
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	handle, err := svc.HandleFromToken(parsed)
	require.NoError(t, err)
	assert.Equal(t, "alice", handle.Username)
}

func TestHandleFromTokenMissingUsername(t *testing.T) {
	t.Parallel()
	svc := newService("test-secret")

	token := jwt.New(jwt.SigningMethodHS256)
	_, err := svc.HandleFromToken(token)
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
