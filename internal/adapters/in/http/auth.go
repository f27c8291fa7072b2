package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"workify/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

var (
	// ErrUnauthorized is returned when a request carries no usable bearer token.
	ErrUnauthorized = errors.New("missing or invalid bearer token")

	errNoActor = fmt.Errorf("%w: no actor in request context", ErrUnauthorized)
)

type actorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SignToken issues an HS256 token identifying actor that expires after ttl. A
// zero ttl produces a token without expiry.
func SignToken(secret []byte, actor kernel.Actor, ttl time.Duration) (string, error) {
	if err := actor.Validate(); err != nil {
		return "", err
	}

	claims := actorClaims{
		Role: string(actor.Role()),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  actor.ID().String(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken verifies an HS256 token and returns the actor it names.
func ParseToken(secret []byte, raw string) (kernel.Actor, error) {
	var claims actorClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: subject: %w", ErrUnauthorized, err)
	}
	role, err := kernel.ParseRole(claims.Role)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	actor, err := kernel.NewActor(id, role)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	return actor, nil
}

// AuthMiddleware resolves the bearer token into a kernel.Actor stored on the
// echo context. Requests outside /api/ pass through untouched.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	skipper := func(c echo.Context) bool {
		return !strings.HasPrefix(c.Request().URL.Path, "/api/")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return ErrUnauthorized
			}

			actor, err := ParseToken(secret, raw)
			if err != nil {
				return err
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// ActorFrom returns the actor placed on the context by AuthMiddleware.
func ActorFrom(c echo.Context) (kernel.Actor, error) {
	actor, ok := c.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, errNoActor
	}
	return actor, nil
}

