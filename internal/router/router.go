// Package router wires handlers, middleware and CORS onto an Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	emw "github.com/labstack/echo/v4/middleware"

	"github.com/motigoal/backend/internal/config"
	"github.com/motigoal/backend/internal/handler"
	"github.com/motigoal/backend/internal/middleware"
	"github.com/motigoal/backend/internal/repository"
	"github.com/motigoal/backend/internal/utils"
	"github.com/motigoal/backend/internal/validation"
)

// Register sets up all routes under cfg.BasePath. The health check and the
// register/login endpoints are open; /auth/me sits behind the bearer-token
// middleware.
func Register(e *echo.Echo, cfg config.Config, a *handler.AuthHandler, tokens *utils.TokenIssuer, users repository.UserStore) {
	e.Validator = validation.New()
	e.Use(emw.CORSWithConfig(emw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	api := e.Group(cfg.BasePath)
	api.GET("/health", handler.Health)

	auth := api.Group("/auth")
	auth.POST("/register", a.Register)
	auth.POST("/login", a.Login)
	auth.GET("/me", a.Me, middleware.Auth(tokens, users))
}
