package main // entry point for the MotiGoal API server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/motigoal/backend/internal/config"
	"github.com/motigoal/backend/internal/handler"
	"github.com/motigoal/backend/internal/repository"
	"github.com/motigoal/backend/internal/router"
	"github.com/motigoal/backend/internal/store"
	"github.com/motigoal/backend/internal/utils"
)

func main() {
	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("connect to mongodb: %v", err)
	}
	log.Printf("connected to mongodb database %q", cfg.MongoDB)

	tokens, err := utils.NewTokenIssuer(cfg.SecretKey, cfg.Algorithm, cfg.AccessTTL())
	if err != nil {
		log.Fatalf("token issuer: %v", err)
	}

	users := repository.NewUserRepo(st.Users())
	auth := handler.NewAuthHandler(users, tokens, cfg.BcryptCost)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, auth, tokens, users)

	addr := ":" + cfg.Port
	go func() {
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown http server: %v", err)
	}
	if err := st.Close(shutdownCtx); err != nil {
		log.Printf("close mongodb: %v", err)
	}
	log.Print("mongodb connection closed")
}
