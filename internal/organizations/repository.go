package organizations

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"ringside/internal/eligibility"
	"ringside/pkg/pagination"
	"ringside/pkg/query"
	"ringside/pkg/repository"
)

const organizationColumns = `id, name, type, jurisdiction, contact_email,
	website, verification_status, created_at, updated_at`

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an organization repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "organizations"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Organization], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Jurisdiction")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count organizations: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	orgs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanOrganization)
	if err != nil {
		return nil, fmt.Errorf("query organizations: %w", err)
	}

	result := pagination.NewPageResult(orgs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Organization, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	o, err := repository.QueryOne(ctx, r.db, q, args, scanOrganization)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &o, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Organization, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		INSERT INTO organizations(id, name, type, jurisdiction, contact_email, website)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, organizationColumns)

	args := []any{
		uuid.New(),
		cmd.Name,
		cmd.Type,
		cmd.Jurisdiction,
		cmd.ContactEmail,
		cmd.Website,
	}

	o, err := repository.QueryOne(ctx, r.db, q, args, scanOrganization)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("organization registered", "id", o.ID, "name", o.Name, "type", o.Type)
	return &o, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd CreateCommand) (*Organization, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		UPDATE organizations
		SET name = $2,
			type = $3,
			jurisdiction = $4,
			contact_email = $5,
			website = $6,
			updated_at = now()
		WHERE id = $1
		RETURNING %s`, organizationColumns)

	args := []any{
		id,
		cmd.Name,
		cmd.Type,
		cmd.Jurisdiction,
		cmd.ContactEmail,
		cmd.Website,
	}

	o, err := repository.QueryOne(ctx, r.db, q, args, scanOrganization)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("organization updated", "id", o.ID)
	return &o, nil
}

func (r *repo) Verify(ctx context.Context, id uuid.UUID, cmd VerifyCommand) (*Organization, error) {
	switch cmd.VerificationStatus {
	case eligibility.VerificationVerified, eligibility.VerificationRejected, eligibility.VerificationPending:
	default:
		return nil, ErrInvalidOrganization
	}

	q := fmt.Sprintf(`
		UPDATE organizations
		SET verification_status = $2, updated_at = now()
		WHERE id = $1
		RETURNING %s`, organizationColumns)

	o, err := repository.QueryOne(ctx, r.db, q, []any{id, cmd.VerificationStatus}, scanOrganization)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("organization verification set", "id", o.ID, "status", o.VerificationStatus)
	return &o, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM organizations WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("organization deleted", "id", id)
	return nil
}
