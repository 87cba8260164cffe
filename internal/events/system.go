package events

import (
	"context"

	"github.com/google/uuid"

	"ringside/pkg/pagination"
)

// System defines the public contract for event and bout operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Event], error)

	Find(ctx context.Context, id uuid.UUID) (*Event, error)
	Create(ctx context.Context, cmd CreateEventCommand) (*Event, error)
	Cancel(ctx context.Context, id uuid.UUID) (*Event, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Bouts(ctx context.Context, eventID uuid.UUID) ([]Bout, error)
	FindBout(ctx context.Context, boutID uuid.UUID) (*Bout, error)
	AddBout(ctx context.Context, eventID uuid.UUID, cmd CreateBoutCommand) (*Bout, error)
	CancelBout(ctx context.Context, boutID uuid.UUID) (*Bout, error)

	// RecordResult completes a bout: it stores the outcome, folds the
	// result into both fighters' records, and triggers eligibility
	// recomputation for both so any mandated suspension takes effect.
	RecordResult(ctx context.Context, boutID uuid.UUID, cmd RecordResultCommand) (*Bout, error)
}
