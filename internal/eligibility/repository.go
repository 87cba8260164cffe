package eligibility

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"ringside/pkg/pagination"
	"ringside/pkg/query"
	"ringside/pkg/repository"
)

// sweepConcurrency bounds parallel re-evaluations during a full sweep.
const sweepConcurrency = 8

const suspensionColumns = `id, fighter_id, issued_by, reason, start_date, end_date,
	clearance_required, lift_reason, lifted_at, created_at, updated_at`

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
	policies   Policies
	checklist  []DocumentType
}

// New creates an eligibility repository implementing the System interface.
// The policy bundle and default checklist are jurisdiction configuration,
// injected rather than read from globals.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
	policies Policies,
	checklist []DocumentType,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "eligibility"),
		pagination: pagination,
		policies:   policies,
		checklist:  checklist,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) ListRulesets(
	ctx context.Context,
	page pagination.PageRequest,
	filters RulesetFilters,
) (*pagination.PageResult[Ruleset], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(rulesetProjection, rulesetDefaultSort).
		WhereSearch(page.Search, "Name", "Discipline")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count rulesets: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	rulesets, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanRuleset)
	if err != nil {
		return nil, fmt.Errorf("query rulesets: %w", err)
	}

	result := pagination.NewPageResult(rulesets, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) FindRuleset(ctx context.Context, id uuid.UUID) (*Ruleset, error) {
	q, args := query.NewBuilder(rulesetProjection).BuildSingle("ID", id)

	rs, err := repository.QueryOne(ctx, r.db, q, args, scanRuleset)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &rs, nil
}

func (r *repo) CreateRuleset(ctx context.Context, cmd CreateRulesetCommand) (*Ruleset, error) {
	if err := validateRequirements(cmd.Requirements); err != nil {
		return nil, err
	}

	requirements, err := json.Marshal(cmd.Requirements)
	if err != nil {
		return nil, fmt.Errorf("encode requirements: %w", err)
	}

	q := `
		INSERT INTO rulesets(id, commission_id, discipline, name, description, requirements)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, commission_id, discipline, name, description, requirements, version, created_at, updated_at`

	args := []any{uuid.New(), cmd.CommissionID, cmd.Discipline, cmd.Name, cmd.Description, requirements}

	rs, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Ruleset, error) {
		return repository.QueryOne(ctx, tx, q, args, scanRuleset)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("ruleset created", "id", rs.ID, "commission", rs.CommissionID, "discipline", rs.Discipline)
	return &rs, nil
}

func (r *repo) UpdateRequirements(ctx context.Context, id uuid.UUID, cmd UpdateRequirementsCommand) (*Ruleset, error) {
	if err := validateRequirements(cmd.Requirements); err != nil {
		return nil, err
	}

	requirements, err := json.Marshal(cmd.Requirements)
	if err != nil {
		return nil, fmt.Errorf("encode requirements: %w", err)
	}

	q := `
		UPDATE rulesets
		SET requirements = $1, version = version + 1, updated_at = now()
		WHERE id = $2
		RETURNING id, commission_id, discipline, name, description, requirements, version, created_at, updated_at`

	rs, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Ruleset, error) {
		return repository.QueryOne(ctx, tx, q, []any{requirements, id}, scanRuleset)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("ruleset requirements updated", "id", rs.ID, "version", rs.Version)
	return &rs, nil
}

func (r *repo) DeleteRuleset(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM rulesets WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("ruleset deleted", "id", id)
	return nil
}

func (r *repo) Suspensions(ctx context.Context, fighterID uuid.UUID) ([]MedicalSuspension, error) {
	qb := query.NewBuilder(suspensionProjection, suspensionDefaultSort)
	qb.WhereEquals("FighterID", fighterID)

	q, args := qb.Build()
	suspensions, err := repository.QueryMany(ctx, r.db, q, args, scanSuspension)
	if err != nil {
		return nil, fmt.Errorf("query suspensions: %w", err)
	}
	return suspensions, nil
}

func (r *repo) IssueSuspension(ctx context.Context, cmd IssueSuspensionCommand) (*MedicalSuspension, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	start := cmd.StartDate
	if start.IsZero() {
		start = DateOf(time.Now())
	}
	end := start.AddDays(cmd.MinimumDays)

	q := fmt.Sprintf(`
		INSERT INTO suspensions(id, fighter_id, issued_by, reason, start_date, end_date, clearance_required)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`, suspensionColumns)

	args := []any{uuid.New(), cmd.FighterID, cmd.IssuedBy, cmd.Reason, start, end, cmd.ClearanceRequired}

	s, err := repository.QueryOne(ctx, r.db, q, args, scanSuspension)
	if err != nil {
		return nil, repository.MapError(err, ErrFighterNotFound, ErrDuplicate)
	}

	r.logger.Info("suspension issued",
		"id", s.ID,
		"fighter", s.FighterID,
		"until", s.EndDate,
		"clearance_required", s.ClearanceRequired,
	)

	if _, err := r.Recompute(ctx, s.FighterID, DateOf(time.Now())); err != nil {
		return nil, fmt.Errorf("recompute eligibility: %w", err)
	}
	return &s, nil
}

func (r *repo) LiftSuspension(ctx context.Context, id uuid.UUID, cmd LiftSuspensionCommand) (*MedicalSuspension, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		UPDATE suspensions
		SET lift_reason = $2, lifted_at = now(), updated_at = now()
		WHERE id = $1 AND lifted_at IS NULL
		RETURNING %s`, suspensionColumns)

	s, err := repository.QueryOne(ctx, r.db, q, []any{id, cmd.Reason}, scanSuspension)
	if err != nil {
		mapped := repository.MapError(err, ErrSuspensionNotFound, ErrDuplicate)
		if errors.Is(mapped, ErrSuspensionNotFound) {
			if existing, findErr := r.findSuspension(ctx, id); findErr == nil && existing.LiftedAt != nil {
				return nil, ErrSuspensionLifted
			}
		}
		return nil, mapped
	}

	r.logger.Info("suspension lifted", "id", s.ID, "fighter", s.FighterID)

	if _, err := r.Recompute(ctx, s.FighterID, DateOf(time.Now())); err != nil {
		return nil, fmt.Errorf("recompute eligibility: %w", err)
	}
	return &s, nil
}

func (r *repo) findSuspension(ctx context.Context, id uuid.UUID) (*MedicalSuspension, error) {
	q, args := query.NewBuilder(suspensionProjection).BuildSingle("ID", id)

	s, err := repository.QueryOne(ctx, r.db, q, args, scanSuspension)
	if err != nil {
		return nil, repository.MapError(err, ErrSuspensionNotFound, ErrDuplicate)
	}
	return &s, nil
}

func (r *repo) Check(ctx context.Context, fighterID, rulesetID uuid.UUID, asOf Date) (*Check, error) {
	rs, err := r.FindRuleset(ctx, rulesetID)
	if err != nil {
		return nil, err
	}
	return r.evaluateAndRecord(ctx, fighterID, &rs.ID, rs.Checklist(), asOf)
}

func (r *repo) Recompute(ctx context.Context, fighterID uuid.UUID, asOf Date) (*Check, error) {
	return r.evaluateAndRecord(ctx, fighterID, nil, r.checklist, asOf)
}

func (r *repo) History(ctx context.Context, fighterID uuid.UUID) ([]Check, error) {
	qb := query.NewBuilder(checkProjection, checkDefaultSort)
	qb.WhereEquals("FighterID", fighterID)

	q, args := qb.Build()
	checks, err := repository.QueryMany(ctx, r.db, q, args, scanCheck)
	if err != nil {
		return nil, fmt.Errorf("query eligibility history: %w", err)
	}
	return checks, nil
}

func (r *repo) Sweep(ctx context.Context) (int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id FROM fighters")
	if err != nil {
		return 0, fmt.Errorf("list fighters for sweep: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("scan fighter id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	asOf := DateOf(time.Now())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sweepConcurrency)

	for _, id := range ids {
		g.Go(func() error {
			if _, err := r.Recompute(gctx, id, asOf); err != nil {
				return fmt.Errorf("recompute fighter %s: %w", id, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	r.logger.Info("eligibility sweep complete", "fighters", len(ids))
	return len(ids), nil
}

func (r *repo) evaluateAndRecord(
	ctx context.Context,
	fighterID uuid.UUID,
	rulesetID *uuid.UUID,
	checklist []DocumentType,
	asOf Date,
) (*Check, error) {
	fighter, docs, lastBout, issued, err := r.loadEvidence(ctx, fighterID)
	if err != nil {
		return nil, err
	}

	boutSuspension, warning := ActiveSuspension(lastBout, asOf, r.policies.Suspension)
	if warning != nil {
		r.logger.Warn(
			"data quality event",
			"fighter", fighterID,
			"method", warning.Method,
			"detail", warning.Error(),
		)
	}

	suspension := DominantSuspension(boutSuspension, IssuedSuspension(issued, asOf))

	result, err := Evaluate(Input{
		Fighter:          fighter,
		Documents:        docs,
		Required:         checklist,
		Suspension:       suspension,
		AsOf:             asOf,
		ExpiringSoonDays: r.policies.ExpiringSoonDays,
	})
	if err != nil {
		return nil, err
	}

	reasons, err := json.Marshal(result.Reasons)
	if err != nil {
		return nil, fmt.Errorf("encode reasons: %w", err)
	}

	q := `
		INSERT INTO eligibility_checks(id, fighter_id, ruleset_id, status, reasons, as_of)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, fighter_id, ruleset_id, status, reasons, as_of, checked_at`

	args := []any{uuid.New(), fighterID, rulesetID, string(result.Status), reasons, asOf}

	check, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Check, error) {
		c, err := repository.QueryOne(ctx, tx, q, args, scanCheck)
		if err != nil {
			return Check{}, err
		}

		if err := repository.ExecExpectOne(
			ctx, tx,
			"UPDATE fighters SET eligibility_status = $1, updated_at = now() WHERE id = $2",
			string(result.Status), fighterID,
		); err != nil {
			return Check{}, err
		}

		return c, nil
	})

	if err != nil {
		return nil, repository.MapError(err, ErrFighterNotFound, ErrDuplicate)
	}

	r.logger.Info(
		"eligibility evaluated",
		"fighter", fighterID,
		"status", check.Status,
		"reasons", len(check.Reasons),
	)
	return &check, nil
}

func (r *repo) loadEvidence(ctx context.Context, fighterID uuid.UUID) (FighterEvidence, []DocumentEvidence, *BoutOutcome, []MedicalSuspension, error) {
	var fighter FighterEvidence

	err := r.db.QueryRowContext(
		ctx,
		"SELECT verification_status FROM fighters WHERE id = $1",
		fighterID,
	).Scan(&fighter.VerificationStatus)
	if err != nil {
		if err == sql.ErrNoRows {
			return FighterEvidence{}, nil, nil, nil, ErrFighterNotFound
		}
		return FighterEvidence{}, nil, nil, nil, fmt.Errorf("load fighter evidence: %w", err)
	}

	docs, err := repository.QueryMany(
		ctx, r.db,
		"SELECT type, status, expiration_date FROM documents WHERE fighter_id = $1",
		[]any{fighterID},
		scanDocumentEvidence,
	)
	if err != nil {
		return FighterEvidence{}, nil, nil, nil, fmt.Errorf("load document evidence: %w", err)
	}

	lastBout, err := r.loadLatestBout(ctx, fighterID)
	if err != nil {
		return FighterEvidence{}, nil, nil, nil, err
	}

	issued, err := repository.QueryMany(
		ctx, r.db,
		fmt.Sprintf("SELECT %s FROM suspensions WHERE fighter_id = $1 AND lifted_at IS NULL", suspensionColumns),
		[]any{fighterID},
		scanSuspension,
	)
	if err != nil {
		return FighterEvidence{}, nil, nil, nil, fmt.Errorf("load suspension evidence: %w", err)
	}

	return fighter, docs, lastBout, issued, nil
}

// loadLatestBout returns the fighter's most recently completed bout with a
// recorded result, or nil when none exists. Event date orders recency;
// card position breaks same-day ties.
func (r *repo) loadLatestBout(ctx context.Context, fighterID uuid.UUID) (*BoutOutcome, error) {
	q := `
		SELECT e.date, b.position, b.result_method, b.winner_id
		FROM bouts b
		JOIN events e ON e.id = b.event_id
		WHERE b.status = 'completed'
		  AND b.result_method IS NOT NULL
		  AND (b.fighter_a_id = $1 OR b.fighter_b_id = $1)
		ORDER BY e.date DESC, b.position DESC
		LIMIT 1`

	var (
		bout     BoutOutcome
		method   string
		winnerID *uuid.UUID
	)

	err := r.db.QueryRowContext(ctx, q, fighterID).Scan(&bout.Date, &bout.Position, &method, &winnerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load latest bout: %w", err)
	}

	bout.Method = relativeMethod(method, winnerID, fighterID)
	return &bout, nil
}

// relativeMethod converts a stored bout-ending method ("knockout",
// "decision", "draw", ...) into the fighter-relative form the suspension
// table keys on. Bouts without a winner keep the method as stored.
func relativeMethod(method string, winnerID *uuid.UUID, fighterID uuid.UUID) string {
	if winnerID == nil {
		return method
	}
	if *winnerID == fighterID {
		return method + "_win"
	}
	return method + "_loss"
}

func validateRequirements(requirements []Requirement) error {
	for _, req := range requirements {
		if !KnownDocumentType(req.DocumentType) {
			return &ConfigurationError{
				Detail: fmt.Sprintf("requirement %q references unknown document type %q", req.Name, req.DocumentType),
			}
		}
	}
	return nil
}
