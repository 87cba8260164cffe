package fighters

import (
	"context"

	"github.com/google/uuid"

	"ringside/pkg/pagination"
)

// System defines the public contract for fighter domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Fighter], error)

	Find(ctx context.Context, id uuid.UUID) (*Fighter, error)
	FindByCombatID(ctx context.Context, combatID string) (*Fighter, error)
	Create(ctx context.Context, cmd CreateCommand) (*Fighter, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Fighter, error)
	Verify(ctx context.Context, id uuid.UUID, cmd VerifyCommand) (*Fighter, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
