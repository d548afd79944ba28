// Package server exposes the simulation pipeline and profile store
// over HTTP for collaborating services.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-sim/internal/metrics"
	"github.com/yourusername/prop-sim/internal/models"
	"github.com/yourusername/prop-sim/internal/profile"
	"github.com/yourusername/prop-sim/internal/simulation"
)

// Runner executes one simulation pass. Satisfied by *simulation.Engine.
type Runner interface {
	Run(ctx context.Context, in models.PlayerInputs) (*simulation.Result, error)
}

// Server is the HTTP surface for evaluations and profile management.
type Server struct {
	serviceName string
	port        int
	engine      Runner
	store       profile.Store
	defaults    models.PlayerInputs
	logger      *logrus.Logger
	metricsPath string
	server      *http.Server
}

// Config holds the configuration for the HTTP server.
type Config struct {
	ServiceName string
	Port        int
	Engine      Runner
	Store       profile.Store
	Defaults    models.PlayerInputs
	Logger      *logrus.Logger
	MetricsPath string
}

// NewServer creates the HTTP server. Store may be nil, in which case
// the profile endpoints return 503.
func NewServer(cfg Config) *Server {
	port := cfg.Port
	if port == 0 {
		port = 8080
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}

	return &Server{
		serviceName: cfg.ServiceName,
		port:        port,
		engine:      cfg.Engine,
		store:       cfg.Store,
		defaults:    cfg.Defaults,
		logger:      logger,
		metricsPath: cfg.MetricsPath,
	}
}

// Routes builds the request mux. Exposed for handler tests.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/v1/evaluate", s.handleEvaluate)
	mux.HandleFunc("GET /api/v1/profiles", s.handleListProfiles)
	mux.HandleFunc("PUT /api/v1/profiles", s.handleSaveProfile)
	mux.HandleFunc("GET /api/v1/profiles/{name}", s.handleGetProfile)
	mux.HandleFunc("DELETE /api/v1/profiles/{name}", s.handleDeleteProfile)
	if s.metricsPath != "" {
		mux.Handle("GET "+s.metricsPath, metrics.Handler())
	}
	return mux
}

// Start runs the server in the background and shuts it down when ctx
// is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		s.logger.WithFields(logrus.Fields{
			"port":    s.port,
			"service": s.serviceName,
		}).Info("HTTP server starting")

		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.WithError(err).Error("HTTP server error")
		}
	}()

	go func() {
		<-ctx.Done()
		s.Shutdown()
	}()

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	if s.server == nil {
		return nil
	}

	s.logger.Info("HTTP server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}
