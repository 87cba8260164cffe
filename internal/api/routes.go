package api

import (
	"net/http"

	"ringside/internal/config"
	"ringside/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Eligibility.Handler().Routes(),
		domain.Fighters.Handler().Routes(),
		domain.Documents.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Organizations.Handler().Routes(),
		domain.Events.Handler().Routes(),
	)
}
