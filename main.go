package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"concierge/config"
	"concierge/db"
	"concierge/handlers"
	"concierge/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
)

func initLogger(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().Str("service", "concierge-api").Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().
			Timestamp().
			Str("service", "concierge-api").
			Logger()
	}
}

func newRouter(h *handlers.Handler) *gin.Engine {
	r := gin.Default()

	// Permissive on purpose: the API serves browser clients from any origin.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h.Register(r)

	return r
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not configured yet; fail loud on stderr.
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("configuration error")
	}

	initLogger(cfg.Env)
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	store, err := db.Open(ctx, cfg.MongoURL, cfg.DBName)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to document store")
	}

	notifier := services.NewNotifier(cfg.SendGridAPIKey, cfg.NotifyEmail)
	if notifier.Enabled() {
		log.Info().Str("recipient", cfg.NotifyEmail).Msg("submission notifications enabled")
	}

	r := newRouter(handlers.New(store, notifier))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("document store disconnect failed")
	}
}
