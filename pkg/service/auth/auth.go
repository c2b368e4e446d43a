// Package auth resolves the owner identity carried by a verified JWT.
// Tokens are issued by an external identity provider; signature and expiry
// checks happen in the HTTP middleware before a token reaches this package.
package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/finsible/pkg/config"
	"github.com/amirasaad/finsible/pkg/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserIDClaim is the claim holding the owner id.
const UserIDClaim = "user_id"

var ErrMissingUserClaim = fmt.Errorf("%w: token carries no %s claim", domain.ErrUnauthorized, UserIDClaim)

type Service struct {
	cfg    *config.Jwt
	logger *slog.Logger
}

func NewService(cfg *config.Jwt, logger *slog.Logger) *Service {
	return &Service{cfg: cfg, logger: logger}
}

// GetCurrentUserID extracts the owner id from a verified token.
func (s *Service) GetCurrentUserID(token *jwt.Token) (userID uuid.UUID, err error) {
	log := s.logger.With("context", "GetCurrentUserID")
	if token == nil {
		log.Error("GetCurrentUserID failed", "error", domain.ErrUnauthorized)
		return uuid.Nil, domain.ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		log.Error("GetCurrentUserID failed", "error", "unexpected claims type")
		return uuid.Nil, domain.ErrUnauthorized
	}
	raw, ok := claims[UserIDClaim].(string)
	if !ok || raw == "" {
		log.Error("GetCurrentUserID failed", "error", ErrMissingUserClaim)
		return uuid.Nil, ErrMissingUserClaim
	}
	userID, err = uuid.Parse(raw)
	if err != nil {
		log.Error("GetCurrentUserID failed", "error", err)
		return uuid.Nil, errors.Join(domain.ErrUnauthorized, err)
	}
	log.Debug("GetCurrentUserID successful", "userID", userID)
	return userID, nil
}

// GenerateToken signs an HS256 token for userID. The service never issues
// tokens to clients; this exists for tooling and tests.
func (s *Service) GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		UserIDClaim: userID.String(),
		"iat":       now.Unix(),
		"exp":       now.Add(s.cfg.Expiry).Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("GenerateToken failed", "userID", userID, "error", err)
		return "", err
	}
	return signed, nil
}

// ParseToken verifies signed with the configured secret.
func (s *Service) ParseToken(signed string) (*jwt.Token, error) {
	token, err := jwt.Parse(signed, func(t *jwt.Token) (any, error) {
		return []byte(s.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Join(domain.ErrUnauthorized, err)
	}
	return token, nil
}
