// Package auth issues and parses the JWT session tokens that carry an
// account handle between requests.
package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hazemf/atmledger/pkg/config"
	"github.com/hazemf/atmledger/pkg/domain"
)

// Service signs session tokens for authenticated accounts and recovers the
// account handle from a verified token.
type Service struct {
	cfg    *config.Jwt
	logger *slog.Logger
}

// New creates an auth service.
func New(cfg *config.Jwt, logger *slog.Logger) *Service {
	return &Service{cfg: cfg, logger: logger}
}

// GenerateToken signs a token embedding the handle's username.
func (s *Service) GenerateToken(handle domain.Handle) (string, error) {
	log := s.logger.With("context", "GenerateToken", "username", handle.Username)
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = handle.Username
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		log.Error("token signing failed", "error", err)
		return "", err
	}
	return signed, nil
}

// HandleFromToken recovers the account handle from a verified token.
func (s *Service) HandleFromToken(token *jwt.Token) (domain.Handle, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Handle{}, domain.ErrInvalidCredentials
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return domain.Handle{}, domain.ErrInvalidCredentials
	}
	return domain.Handle{Username: username}, nil
}
