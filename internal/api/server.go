package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/relicvault/staking-ledger-service/internal/api/handlers"
	"github.com/relicvault/staking-ledger-service/internal/api/middlewares"
	"github.com/relicvault/staking-ledger-service/internal/config"
	"github.com/relicvault/staking-ledger-service/internal/services"
)

type Server struct {
	httpServer *http.Server
	handlers   *handlers.Handler
}

func New(
	ctx context.Context, cfg *config.Config, services *services.Services,
) (*Server, error) {
	// An unset log level keeps zerolog's default.
	if cfg.Server.LogLevel != "" {
		logLevel, err := zerolog.ParseLevel(cfg.Server.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		zerolog.SetGlobalLevel(logLevel)
	}

	r := chi.NewRouter()
	r.Use(middlewares.CorsMiddleware(cfg))
	r.Use(middlewares.SecurityHeadersMiddleware())
	r.Use(middlewares.TracingMiddleware)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.ContentLengthMiddleware(cfg))

	h, err := handlers.New(ctx, cfg, services)
	if err != nil {
		return nil, fmt.Errorf("failed to set up handlers: %w", err)
	}

	server := &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			WriteTimeout: cfg.Server.WriteTimeout,
			ReadTimeout:  cfg.Server.ReadTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
			Handler:      r,
		},
		handlers: h,
	}
	server.SetupRoutes(r)
	return server, nil
}

func (a *Server) Start() error {
	log.Info().Msgf("starting server on %s", a.httpServer.Addr)
	return a.httpServer.ListenAndServe()
}

func (a *Server) Shutdown(ctx context.Context) error {
	return a.httpServer.Shutdown(ctx)
}
