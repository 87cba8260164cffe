package organizations

import (
	"context"

	"github.com/google/uuid"

	"ringside/pkg/pagination"
)

// System defines the public contract for organization domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Organization], error)

	Find(ctx context.Context, id uuid.UUID) (*Organization, error)
	Create(ctx context.Context, cmd CreateCommand) (*Organization, error)
	Update(ctx context.Context, id uuid.UUID, cmd CreateCommand) (*Organization, error)
	Verify(ctx context.Context, id uuid.UUID, cmd VerifyCommand) (*Organization, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
