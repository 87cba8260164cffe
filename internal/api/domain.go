package api

import (
	"ringside/internal/config"
	"ringside/internal/documents"
	"ringside/internal/eligibility"
	"ringside/internal/events"
	"ringside/internal/fighters"
	"ringside/internal/organizations"
)

// Domain holds all domain systems that comprise the API. The eligibility
// system is constructed first: fighters, documents, and events all hold a
// reference to it so evidence mutations trigger recomputation.
type Domain struct {
	Eligibility   eligibility.System
	Fighters      fighters.System
	Documents     documents.System
	Organizations organizations.System
	Events        events.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime, cfg *config.Config) *Domain {
	policies := cfg.Eligibility.Policies()

	eligibilitySystem := eligibility.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
		policies,
		cfg.Eligibility.DefaultChecklist(),
	)

	fightersSystem := fighters.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
		eligibilitySystem,
	)

	documentsSystem := documents.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
		eligibilitySystem,
		policies.Expiration,
	)

	organizationsSystem := organizations.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	eventsSystem := events.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
		eligibilitySystem,
	)

	return &Domain{
		Eligibility:   eligibilitySystem,
		Fighters:      fightersSystem,
		Documents:     documentsSystem,
		Organizations: organizationsSystem,
		Events:        eventsSystem,
	}
}
