// Package server hosts the HTTP surface: the REST API, the health check,
// and the metrics endpoint.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/shail31-tech/Clinical-Notes-Summary/ai"
	"github.com/shail31-tech/Clinical-Notes-Summary/ai/clinical"
	"github.com/shail31-tech/Clinical-Notes-Summary/ai/core/llm"
	"github.com/shail31-tech/Clinical-Notes-Summary/ai/metrics"
	"github.com/shail31-tech/Clinical-Notes-Summary/internal/profile"
	apiv1 "github.com/shail31-tech/Clinical-Notes-Summary/server/router/api/v1"
	"github.com/shail31-tech/Clinical-Notes-Summary/store"
)

type Server struct {
	Profile *profile.Profile
	Store   *store.Store

	echoServer *echo.Echo
	collector  *metrics.Collector

	// serveErr receives at most one listener failure from the serve
	// goroutine, so the caller can fail fast on a taken port instead of
	// idling until a signal arrives.
	serveErr chan error
}

func NewServer(ctx context.Context, profile *profile.Profile, store *store.Store) (*Server, error) {
	e := echo.New()
	e.Debug = profile.IsDev()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	collector := metrics.NewCollector()

	s := &Server{
		Profile:    profile,
		Store:      store,
		echoServer: e,
		collector:  collector,
		serveErr:   make(chan error, 1),
	}

	summarizer := newSummarizer(ctx, profile, collector)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "Service ready.")
	})
	e.GET("/metrics", echo.WrapHandler(collector.Handler()))

	apiV1Service := apiv1.NewAPIV1Service(profile, store, summarizer)
	apiV1Service.RegisterRoutes(e)

	return s, nil
}

// newSummarizer builds the note summarizer from the profile. Missing or
// invalid LLM configuration is never fatal: the summarizer degrades to the
// deterministic fallback path and the server starts anyway.
func newSummarizer(ctx context.Context, profile *profile.Profile, collector *metrics.Collector) clinical.Summarizer {
	aiConfig := ai.NewConfigFromProfile(profile)
	if !aiConfig.Enabled {
		slog.Info("AI features disabled, every note will use the fallback summary")
		return clinical.NewSummarizer(nil, collector)
	}
	if err := aiConfig.Validate(); err != nil {
		slog.Warn("AI config validation failed, falling back to deterministic summaries", "error", err)
		return clinical.NewSummarizer(nil, collector)
	}

	llmService, err := llm.NewService(&aiConfig.LLM)
	if err != nil {
		slog.Warn("failed to initialize LLM service, falling back to deterministic summaries",
			"provider", aiConfig.LLM.Provider,
			"error", err,
		)
		return clinical.NewSummarizer(nil, collector)
	}

	slog.Info("LLM service initialized",
		"provider", aiConfig.LLM.Provider,
		"model", aiConfig.LLM.Model,
	)

	// Warmup asynchronously to reduce first-request latency. Best-effort:
	// warmup failures do not affect startup.
	go func() {
		warmupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		llmService.Warmup(warmupCtx)
	}()

	return clinical.NewSummarizer(llmService, collector)
}

func (s *Server) Start(_ context.Context) error {
	address := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	go func() {
		if err := s.echoServer.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start echo server", "error", err)
			s.serveErr <- err
		}
	}()
	return nil
}

// Err reports a listener failure from Start. The channel never closes;
// a graceful shutdown delivers nothing on it.
func (s *Server) Err() <-chan error {
	return s.serveErr
}

func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
	}

	if err := s.Store.Close(); err != nil {
		slog.Error("failed to close database", "error", err)
	}

	slog.Info("server shutdown gracefully")
}
