package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clinidoc/clinidoc/internal/config"
	"github.com/clinidoc/clinidoc/internal/domain/chat"
	"github.com/clinidoc/clinidoc/internal/domain/consult"
	"github.com/clinidoc/clinidoc/internal/domain/records"
	"github.com/clinidoc/clinidoc/internal/domain/suggestions"
	"github.com/clinidoc/clinidoc/internal/platform/middleware"
	"github.com/clinidoc/clinidoc/internal/platform/report"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinidoc-server",
		Short: "Clinidoc consultation documentation API server",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Clinidoc API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit("1M", fmt.Sprintf("%dM", cfg.MaxUploadMB)))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// API group
	apiV1 := e.Group("/api/v1")

	// Rate limiting middleware
	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Request deadline, kept above the simulated pipeline delay.
	timeout := 30 * time.Second
	if d := cfg.PipelineDelay(); d > 0 && timeout < 2*d {
		timeout = 2 * d
	}
	apiV1.Use(middleware.RequestTimeout(timeout))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})

	// -- Register Domain Handlers --

	// Patient records and session state
	store := records.New()
	recordsHandler := records.NewHandler(store)
	recordsHandler.RegisterRoutes(apiV1)

	// Consultation transcription pipeline
	consultSvc := consult.NewService(store, cfg.PipelineDelay())
	consultHandler := consult.NewHandler(consultSvc)
	consultHandler.RegisterRoutes(apiV1)

	// Health suggestions
	suggestionsSvc := suggestions.NewService(store)
	suggestionsHandler := suggestions.NewHandler(suggestionsSvc)
	suggestionsHandler.RegisterRoutes(apiV1)

	// Assistant chat
	chatSvc := chat.NewService(cfg.PipelineDelay())
	chatHandler := chat.NewHandler(chatSvc)
	chatHandler.RegisterRoutes(apiV1)

	// PDF report export
	reportHandler := report.NewHandler(store, cfg.OrgName)
	reportHandler.RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
