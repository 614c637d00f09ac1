package middleware // reusable HTTP middleware for the API

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/motigoal/backend/internal/model"
	"github.com/motigoal/backend/internal/repository"
	"github.com/motigoal/backend/internal/utils"
)

// CurrentUserKey is the echo context key under which Auth stores the
// resolved model.User.
const CurrentUserKey = "user"

// Auth returns middleware that gates protected routes. It extracts the
// bearer token from the Authorization header, verifies it, and resolves the
// token's subject to an existing user, which is placed in the request
// context. Every failure mode collapses into the same 401 response so
// callers cannot probe which step rejected them. One store lookup per
// request; nothing is cached.
func Auth(tokens *utils.TokenIssuer, users repository.UserStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, "Bearer ") {
				return Unauthorized(c)
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			subject, err := tokens.Verify(raw)
			if err != nil {
				return Unauthorized(c)
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()
			u, err := users.GetByEmail(ctx, subject)
			if err != nil {
				// Covers both a vanished user and an unreachable store;
				// neither is distinguished for the caller.
				return Unauthorized(c)
			}

			c.Set(CurrentUserKey, u)
			return next(c)
		}
	}
}

// CurrentUser retrieves the user stored by Auth.
func CurrentUser(c echo.Context) (model.User, bool) {
	u, ok := c.Get(CurrentUserKey).(model.User)
	return u, ok
}

// Unauthorized writes the uniform credential-failure response: a generic
// body plus the WWW-Authenticate challenge required for bearer auth.
func Unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "invalid credentials"})
}
