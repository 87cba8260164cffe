package main

import (
	"context"
	"time"

	"ringside/internal/config"
	"ringside/internal/infrastructure"
)

type Server struct {
	infra         *infrastructure.Infrastructure
	modules       *Modules
	http          *httpServer
	sweepInterval time.Duration
}

func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(context.Background(), infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
	)

	return &Server{
		infra:         infra,
		modules:       modules,
		http:          newHTTPServer(&cfg.Server, router, infra.Logger),
		sweepInterval: cfg.Eligibility.SweepIntervalDuration(),
	}, nil
}

func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
		s.runSweeper()
	}()

	return nil
}

// runSweeper periodically recomputes every fighter so time-driven
// transitions (document expiry, suspension lapse) surface without a
// triggering mutation.
func (s *Server) runSweeper() {
	ctx := s.infra.Lifecycle.Context()
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.modules.Domain.Eligibility.Sweep(ctx); err != nil {
				s.infra.Logger.Error("eligibility sweep failed", "error", err)
			}
		}
	}
}

func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
