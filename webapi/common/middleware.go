package common

import (
	"errors"

	"github.com/amirasaad/finsible/pkg/config"
	"github.com/amirasaad/finsible/pkg/domain"
	authsvc "github.com/amirasaad/finsible/pkg/service/auth"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserContextKey is where the verified token is stored on the request.
const UserContextKey = "user"

// JwtProtected verifies the bearer token with the configured secret.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.Secret)},
		ContextKey:   UserContextKey,
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
		return ProblemDetailsJSON(c, "Missing or malformed JWT", err, fiber.StatusUnauthorized)
	}
	return ProblemDetailsJSON(c, "Invalid or expired JWT", err, fiber.StatusUnauthorized)
}

// CurrentUserID resolves the owner of the request. On failure the problem
// response is already written and ok is false.
func CurrentUserID(c *fiber.Ctx, authSvc *authsvc.Service) (id uuid.UUID, ok bool, err error) {
	token, isToken := c.Locals(UserContextKey).(*jwt.Token)
	if !isToken {
		return uuid.Nil, false, ProblemDetailsJSON(c, "Unauthorized", domain.ErrUnauthorized, "missing user context")
	}
	id, err = authSvc.GetCurrentUserID(token)
	if err != nil {
		log.Errorf("Failed to parse user ID from token: %v", err)
		return uuid.Nil, false, ProblemDetailsJSON(c, "Invalid user ID", err)
	}
	return id, true, nil
}
