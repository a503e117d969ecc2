package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"roadassist/internal/api/handlers/http/admin"
	"roadassist/internal/api/handlers/http/public"
	"roadassist/internal/api/handlers/http/system"
	"roadassist/internal/config"
	"roadassist/internal/middleware"
	"roadassist/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, db system.Pinger) *Server {
	adminHandler := admin.NewHandler(logger, svc.MechanicRegistryService, svc.RequestService, svc.StatsService)
	publicHandler := public.NewHandler(logger, svc.RequestService, svc.NotificationService)
	systemHandler := system.NewHandler(logger, db)

	r := InitRouter(cfg, adminHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, adminHandler *admin.Handler, publicHandler *public.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.AdminStats)

			ar.Route("/mechanics", func(mr chi.Router) {
				mr.Post("/", adminHandler.AdminMechanicCreate)
				mr.Get("/", adminHandler.AdminMechanicList)

				mr.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.AdminMechanicGet)
					rr.Put("/", adminHandler.AdminMechanicUpdate)
					rr.Delete("/", adminHandler.AdminMechanicDelete)
				})
			})

			ar.Post("/requests/{id}/assign", adminHandler.AdminRequestAssign)
		})

		// PUBLIC
		api.Route("/requests", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			pr.Post("/", publicHandler.PublicRequestCreate)
			pr.Get("/{id}", publicHandler.PublicRequestGet)
		})

		api.Route("/notifications", func(nr chi.Router) {
			nr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			nr.Get("/{accountID}", publicHandler.PublicNotificationList)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
