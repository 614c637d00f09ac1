package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/motigoal/backend/internal/middleware"
	"github.com/motigoal/backend/internal/model"
	"github.com/motigoal/backend/internal/repository"
	"github.com/motigoal/backend/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Users      repository.UserStore
	Tokens     *utils.TokenIssuer
	BcryptCost int
}

func NewAuthHandler(users repository.UserStore, tokens *utils.TokenIssuer, bcryptCost int) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens, BcryptCost: bcryptCost}
}

// ----- DTOs -----

type registerReq struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// loginReq follows the OAuth2 password-grant form shape: the username field
// carries the email.
type loginReq struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// Register creates a user and returns its public profile.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"detail": "invalid request body"})
	}
	// Normalize before validating so "  Alice@X.COM " passes the email check
	// in the same form it will be stored.
	req.Email = repository.NormalizeEmail(req.Email)
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"detail": err.Error()})
	}

	hash, err := utils.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "could not process password"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.Create(ctx, req.Email, req.Username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "could not create user"})
	}

	return c.JSON(http.StatusCreated, u.Public())
}

// Login verifies credentials and issues an access token. A missing user and
// a wrong password produce byte-identical 401 responses so the endpoint
// cannot be used to enumerate registered emails.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"detail": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"detail": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Username)
	if err != nil {
		return middleware.Unauthorized(c)
	}
	if !utils.VerifyPassword(u.HashedPassword, req.Password) {
		return middleware.Unauthorized(c)
	}

	// Best effort: a failed timestamp update must not fail the login. It gets
	// a fresh budget; the lookup and bcrypt check may have consumed most of
	// the previous one.
	touchCtx, cancelTouch := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancelTouch()
	if err := h.Users.TouchLogin(touchCtx, u.ID); err != nil {
		log.Printf("touch last_login for user %s: %v", u.ID.Hex(), err)
	}

	token, _, err := h.Tokens.Issue(u.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "could not issue token"})
	}

	return c.JSON(http.StatusOK, model.Token{AccessToken: token, TokenType: "bearer"})
}

// Me returns the caller's public profile as resolved by the auth middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.Unauthorized(c)
	}
	return c.JSON(http.StatusOK, u.Public())
}
