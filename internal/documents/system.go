package documents

import (
	"context"
	"io"

	"github.com/google/uuid"

	"ringside/pkg/pagination"
)

// System defines the public contract for document domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Document], error)

	Find(ctx context.Context, id uuid.UUID) (*Document, error)
	Create(ctx context.Context, cmd CreateCommand) (*Document, error)

	// Review advances the verification workflow. Verification and
	// rejection both change the owning fighter's evidence, so either
	// triggers an eligibility recomputation.
	Review(ctx context.Context, id uuid.UUID, cmd ReviewCommand) (*Document, error)

	// Download streams the stored blob for a document.
	Download(ctx context.Context, id uuid.UUID) (io.ReadCloser, *Document, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
