package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/studentrecords/internal/bootstrap"
	"github.com/yigit/studentrecords/internal/config"
	"github.com/yigit/studentrecords/internal/pkg/helpers"
)

// Server holds the state for the HTTP server.
type Server struct {
	config  *config.Config
	router  *gin.Engine
	storage *bootstrap.Storage
	logger  zerolog.Logger
	http    *http.Server
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	storage, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, storage, lgr)
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	return &Server{
		config:  cfg,
		router:  bootstrap.SetupRouter(cfg, deps, lgr),
		storage: storage,
		logger:  lgr,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.logger.Info().Str("port", s.config.Server.Port).Str("driver", s.config.Database.Driver).Msg("Starting server...")

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  helpers.ParseDuration(s.config.Server.ReadTimeout, 10*time.Second),
		WriteTimeout: helpers.ParseDuration(s.config.Server.WriteTimeout, 10*time.Second),
		IdleTimeout:  helpers.ParseDuration(s.config.Server.IdleTimeout, 120*time.Second),
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive either a server error or an OS signal
	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			s.storage.Close()
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, helpers.ParseDuration(s.config.Server.ShutdownTimeout, 10*time.Second))
	defer cancel()

	shutdownError := false

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownError = true
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	if s.storage != nil && s.storage.Postgres != nil {
		s.logger.Info().Msg("Closing database connection pool...")
		s.storage.Close()
		s.logger.Info().Msg("Database connection pool closed.")
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	if shutdownError {
		return errors.New("server shutdown completed with errors")
	}
	return nil
}
