package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skillswap/skillswap-api/internal/core/domain"
	"github.com/skillswap/skillswap-api/internal/core/ports"
)

// ActorKey is the echo context key holding the request's domain.Actor.
const ActorKey = "actor"

// Authenticate resolves the bearer token, if any, into a domain.Actor.
// A request without an Authorization header proceeds as domain.Anonymous;
// a malformed header or an invalid token is rejected with 401.
func Authenticate(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				c.Set(ActorKey, domain.Anonymous)
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			actor, err := verifier.VerifyAccess(parts[1])
			if err != nil {
				return domain.ErrInvalidToken
			}

			c.Set(ActorKey, actor)
			return next(c)
		}
	}
}

// RequireAuthenticated rejects anonymous actors. It must run after Authenticate.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !ActorFrom(c).Authenticated() {
				return domain.ErrUnauthenticated
			}
			return next(c)
		}
	}
}

// RequirePolicy rejects the request before the body or query is read when
// the actor may not perform op under policy. It must run after Authenticate.
func RequirePolicy(policy domain.ResourcePolicy, op domain.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := policy.Authorize(op, ActorFrom(c)); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// ActorFrom returns the actor stored by Authenticate, or domain.Anonymous.
func ActorFrom(c echo.Context) domain.Actor {
	actor, _ := c.Get(ActorKey).(domain.Actor)
	return actor
}
