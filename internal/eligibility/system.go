package eligibility

import (
	"context"

	"github.com/google/uuid"

	"ringside/pkg/pagination"
)

// System defines the public contract for eligibility domain operations:
// ruleset management, on-demand checks, recomputation on evidence
// mutation, and audit history.
type System interface {
	Handler() *Handler

	ListRulesets(
		ctx context.Context,
		page pagination.PageRequest,
		filters RulesetFilters,
	) (*pagination.PageResult[Ruleset], error)

	FindRuleset(ctx context.Context, id uuid.UUID) (*Ruleset, error)
	CreateRuleset(ctx context.Context, cmd CreateRulesetCommand) (*Ruleset, error)
	UpdateRequirements(ctx context.Context, id uuid.UUID, cmd UpdateRequirementsCommand) (*Ruleset, error)
	DeleteRuleset(ctx context.Context, id uuid.UUID) error

	// Check evaluates a fighter against a specific ruleset, persists the
	// verdict to history, and writes the derived status onto the fighter.
	Check(ctx context.Context, fighterID, rulesetID uuid.UUID, asOf Date) (*Check, error)

	// Recompute evaluates a fighter against the configured default
	// checklist. Domain systems call it whenever a document or bout
	// result mutation changes the fighter's evidence.
	Recompute(ctx context.Context, fighterID uuid.UUID, asOf Date) (*Check, error)

	History(ctx context.Context, fighterID uuid.UUID) ([]Check, error)

	// Suspensions lists a fighter's commission-issued suspension records,
	// lifted and lapsed ones included.
	Suspensions(ctx context.Context, fighterID uuid.UUID) ([]MedicalSuspension, error)

	// IssueSuspension places a manual suspension on a fighter and
	// recomputes the derived status.
	IssueSuspension(ctx context.Context, cmd IssueSuspensionCommand) (*MedicalSuspension, error)

	// LiftSuspension clears a manual suspension with a recorded reason
	// and recomputes the derived status.
	LiftSuspension(ctx context.Context, id uuid.UUID, cmd LiftSuspensionCommand) (*MedicalSuspension, error)

	// Sweep recomputes every fighter, returning the number evaluated.
	// Run periodically so time-driven transitions (document expiry,
	// suspension lapse) surface without a triggering mutation.
	Sweep(ctx context.Context) (int, error)
}
