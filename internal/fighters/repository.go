package fighters

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ringside/internal/eligibility"
	"ringside/pkg/pagination"
	"ringside/pkg/query"
	"ringside/pkg/repository"
)

// combatIDAttempts bounds retries when a generated CombatID collides
// with an existing one.
const combatIDAttempts = 3

const fighterColumns = `id, combat_id, name, date_of_birth, country_of_birth,
	current_residence, weight_class, disciplines, record, gym,
	verification_status, eligibility_status, created_at, updated_at`

type repo struct {
	db          *sql.DB
	logger      *slog.Logger
	pagination  pagination.Config
	eligibility eligibility.System
	suffix      SuffixSource
}

// New creates a fighter repository implementing the System interface.
// The eligibility system is invoked whenever a verification change
// alters the fighter's evidence.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
	elig eligibility.System,
) System {
	return &repo{
		db:          db,
		logger:      logger.With("system", "fighters"),
		pagination:  pagination,
		eligibility: elig,
		suffix:      NanoidSuffix,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Fighter], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "CombatID", "Gym")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count fighters: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	fighters, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanFighter)
	if err != nil {
		return nil, fmt.Errorf("query fighters: %w", err)
	}

	result := pagination.NewPageResult(fighters, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Fighter, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	f, err := repository.QueryOne(ctx, r.db, q, args, scanFighter)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &f, nil
}

func (r *repo) FindByCombatID(ctx context.Context, combatID string) (*Fighter, error) {
	q, args := query.NewBuilder(projection).BuildSingle("CombatID", combatID)

	f, err := repository.QueryOne(ctx, r.db, q, args, scanFighter)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &f, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Fighter, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	disciplines, err := json.Marshal(cmd.Disciplines)
	if err != nil {
		return nil, fmt.Errorf("encode disciplines: %w", err)
	}

	q := fmt.Sprintf(`
		INSERT INTO fighters(id, combat_id, name, date_of_birth, country_of_birth,
			current_residence, weight_class, disciplines, gym)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`, fighterColumns)

	for attempt := 0; attempt < combatIDAttempts; attempt++ {
		combatID := GenerateCombatID(cmd.Name, r.suffix)

		insertArgs := []any{
			uuid.New(),
			combatID,
			cmd.Name,
			cmd.DateOfBirth,
			cmd.CountryOfBirth,
			cmd.CurrentResidence,
			cmd.WeightClass,
			disciplines,
			cmd.Gym,
		}

		f, err := repository.QueryOne(ctx, r.db, q, insertArgs, scanFighter)
		if err != nil {
			mapped := repository.MapError(err, ErrNotFound, ErrDuplicate)
			if errors.Is(mapped, ErrDuplicate) {
				r.logger.Warn("combat id collision, retrying", "combat_id", combatID)
				continue
			}
			return nil, mapped
		}

		r.logger.Info("fighter registered", "id", f.ID, "combat_id", f.CombatID)
		return &f, nil
	}

	return nil, ErrCombatIDExhausted
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Fighter, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	disciplines, err := json.Marshal(cmd.Disciplines)
	if err != nil {
		return nil, fmt.Errorf("encode disciplines: %w", err)
	}

	q := fmt.Sprintf(`
		UPDATE fighters
		SET name = $2,
			country_of_birth = $3,
			current_residence = $4,
			weight_class = $5,
			disciplines = $6,
			gym = $7,
			updated_at = now()
		WHERE id = $1
		RETURNING %s`, fighterColumns)

	args := []any{
		id,
		cmd.Name,
		cmd.CountryOfBirth,
		cmd.CurrentResidence,
		cmd.WeightClass,
		disciplines,
		cmd.Gym,
	}

	f, err := repository.QueryOne(ctx, r.db, q, args, scanFighter)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("fighter updated", "id", f.ID)
	return &f, nil
}

func (r *repo) Verify(ctx context.Context, id uuid.UUID, cmd VerifyCommand) (*Fighter, error) {
	switch cmd.VerificationStatus {
	case eligibility.VerificationVerified, eligibility.VerificationRejected, eligibility.VerificationPending:
	default:
		return nil, ErrInvalidFighter
	}

	q := fmt.Sprintf(`
		UPDATE fighters
		SET verification_status = $2, updated_at = now()
		WHERE id = $1
		RETURNING %s`, fighterColumns)

	_, err := repository.QueryOne(ctx, r.db, q, []any{id, cmd.VerificationStatus}, scanFighter)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	// Verification is evidence: a change may flip the derived status.
	if _, err := r.eligibility.Recompute(ctx, id, eligibility.DateOf(time.Now())); err != nil {
		return nil, fmt.Errorf("recompute eligibility: %w", err)
	}

	return r.Find(ctx, id)
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM fighters WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("fighter deleted", "id", id)
	return nil
}
