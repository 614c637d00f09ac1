package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motigoal/backend/internal/repository"
	"github.com/motigoal/backend/internal/utils"
)

func setupAuth(t *testing.T) (*echo.Echo, *repository.MemoryUserRepo, *utils.TokenIssuer) {
	t.Helper()
	users := repository.NewMemoryUserRepo()
	tokens, err := utils.NewTokenIssuer("test-secret", "HS256", time.Minute)
	require.NoError(t, err)

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		u, ok := CurrentUser(c)
		require.True(t, ok, "handler must see the resolved user")
		return c.JSON(http.StatusOK, echo.Map{"email": u.Email})
	}, Auth(tokens, users))

	return e, users, tokens
}

func request(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthValidToken(t *testing.T) {
	e, users, tokens := setupAuth(t)
	_, err := users.Create(context.Background(), "a@x.com", "alice", "hash")
	require.NoError(t, err)

	token, _, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	rec := request(e, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"a@x.com"}`, rec.Body.String())
}

func TestAuthRejections(t *testing.T) {
	e, users, tokens := setupAuth(t)
	_, err := users.Create(context.Background(), "a@x.com", "alice", "hash")
	require.NoError(t, err)

	valid, _, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	ghost, _, err := tokens.Issue("ghost@x.com") // valid token, no such user
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
		{"truncated token", "Bearer " + valid[:len(valid)-1]},
		{"unknown subject", "Bearer " + ghost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := request(e, tt.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
			assert.JSONEq(t, `{"detail":"invalid credentials"}`, rec.Body.String())
		})
	}
}

func TestAuthExpiredToken(t *testing.T) {
	e, users, _ := setupAuth(t)
	_, err := users.Create(context.Background(), "a@x.com", "alice", "hash")
	require.NoError(t, err)

	expired, err := utils.NewTokenIssuer("test-secret", "HS256", -time.Minute)
	require.NoError(t, err)
	token, _, err := expired.Issue("a@x.com")
	require.NoError(t, err)

	rec := request(e, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
