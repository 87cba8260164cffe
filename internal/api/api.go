// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"context"
	"fmt"
	"net/http"

	"ringside/internal/config"
	"ringside/internal/infrastructure"
	"ringside/pkg/auth"
	"ringside/pkg/middleware"
	"ringside/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
// The returned Domain exposes the constructed systems for background
// workers that run outside the HTTP surface.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	infra *infrastructure.Infrastructure,
) (*module.Module, *Domain, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime, cfg)

	authSystem, err := auth.New(ctx, &cfg.Auth, runtime.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("auth init failed: %w", err)
	}

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(authSystem.Middleware())
	m.Use(middleware.Logger(runtime.Logger))

	return m, domain, nil
}
