package documents

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"ringside/internal/eligibility"
	"ringside/pkg/pagination"
	"ringside/pkg/query"
	"ringside/pkg/repository"
	"ringside/pkg/storage"
)

const documentColumns = `id, fighter_id, type, status, filename, content_type,
	size_bytes, page_count, storage_key, issue_date, expiration_date,
	ai_confidence, provider, notes, version, uploaded_at, updated_at`

type repo struct {
	db          *sql.DB
	storage     storage.System
	logger      *slog.Logger
	pagination  pagination.Config
	eligibility eligibility.System
	expiration  eligibility.ExpirationPolicy
}

// New creates a document repository implementing the System interface.
// The eligibility system is invoked whenever a review outcome or deletion
// changes the owning fighter's evidence; the expiration policy supplies
// derived expiration dates for verified documents that arrive without one.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
	elig eligibility.System,
	expiration eligibility.ExpirationPolicy,
) System {
	return &repo{
		db:          db,
		storage:     store,
		logger:      logger.With("system", "documents"),
		pagination:  pagination,
		eligibility: elig,
		expiration:  expiration,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Document], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Filename", "Provider")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	docs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	result := pagination.NewPageResult(docs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Document, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &d, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Document, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	key := buildStorageKey(cmd.FighterID, id, sanitizeFilename(cmd.Filename))

	if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
		return nil, fmt.Errorf("upload document blob: %w", err)
	}

	// Version is assigned inside the transaction so concurrent uploads of
	// the same document type serialize on the computed maximum.
	q := fmt.Sprintf(`
		INSERT INTO documents(id, fighter_id, type, filename, content_type,
			size_bytes, page_count, storage_key, issue_date, expiration_date,
			provider, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			(SELECT COALESCE(MAX(version), 0) + 1 FROM documents
			 WHERE fighter_id = $2 AND type = $3))
		RETURNING %s`, documentColumns)

	insertArgs := []any{
		id,
		cmd.FighterID,
		cmd.Type,
		cmd.Filename,
		cmd.ContentType,
		int64(len(cmd.Data)),
		cmd.PageCount,
		key,
		cmd.IssueDate,
		cmd.ExpirationDate,
		cmd.Provider,
	}

	d, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Document, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanDocument)
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document created",
		"id", d.ID,
		"fighter_id", d.FighterID,
		"type", d.Type,
		"version", d.Version,
	)
	return &d, nil
}

func (r *repo) Review(ctx context.Context, id uuid.UUID, cmd ReviewCommand) (*Document, error) {
	doc, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !allowedTransition(doc.Status, cmd.Status) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, doc.Status, cmd.Status)
	}

	issue := doc.IssueDate
	if cmd.IssueDate != nil {
		issue = cmd.IssueDate
	}

	expiration := doc.ExpirationDate
	if cmd.ExpirationDate != nil {
		expiration = cmd.ExpirationDate
	}

	if cmd.Status == eligibility.DocumentVerified && expiration == nil && issue != nil {
		days, err := r.expiration.ValidityDays(doc.Type)
		if err != nil {
			return nil, err
		}
		derived := issue.AddDays(days)
		expiration = &derived
	}

	confidence := doc.AIConfidence
	if cmd.AIConfidence != nil {
		confidence = cmd.AIConfidence
	}

	q := fmt.Sprintf(`
		UPDATE documents
		SET status = $2,
			issue_date = $3,
			expiration_date = $4,
			ai_confidence = $5,
			notes = $6,
			updated_at = now()
		WHERE id = $1
		RETURNING %s`, documentColumns)

	args := []any{id, cmd.Status, issue, expiration, confidence, cmd.Notes}

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document reviewed", "id", d.ID, "status", d.Status)

	// Terminal review outcomes alter the fighter's evidence set.
	if cmd.Status == eligibility.DocumentVerified || cmd.Status == eligibility.DocumentRejected {
		if _, err := r.eligibility.Recompute(ctx, d.FighterID, eligibility.DateOf(time.Now())); err != nil {
			return nil, fmt.Errorf("recompute eligibility: %w", err)
		}
	}

	return &d, nil
}

func (r *repo) Download(ctx context.Context, id uuid.UUID) (io.ReadCloser, *Document, error) {
	doc, err := r.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	reader, err := r.storage.Download(ctx, doc.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("download document blob: %w", err)
	}

	return reader, doc, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM documents WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if delErr := r.storage.Delete(ctx, doc.StorageKey); delErr != nil {
		r.logger.Warn(
			"blob delete failed after DB delete",
			"key", doc.StorageKey,
			"error", delErr,
		)
	}

	r.logger.Info("document deleted", "id", id)

	// Removing a verified document may revoke a satisfied requirement.
	if doc.Status == eligibility.DocumentVerified {
		if _, err := r.eligibility.Recompute(ctx, doc.FighterID, eligibility.DateOf(time.Now())); err != nil {
			return fmt.Errorf("recompute eligibility: %w", err)
		}
	}

	return nil
}

func buildStorageKey(fighterID, id uuid.UUID, filename string) string {
	return fmt.Sprintf("fighters/%s/documents/%s/%s", fighterID, id, filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "" {
		name = "document"
	}
	return url.PathEscape(name)
}
