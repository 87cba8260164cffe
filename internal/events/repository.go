package events

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"ringside/internal/eligibility"
	"ringside/internal/fighters"
	"ringside/pkg/pagination"
	"ringside/pkg/query"
	"ringside/pkg/repository"
)

const eventColumns = `id, organization_id, name, date, venue, city, country,
	status, created_at, updated_at`

const boutColumns = `id, event_id, fighter_a_id, fighter_b_id, weight_class,
	discipline, position, scheduled_rounds, status, result_method, winner_id,
	result_round, result_time, created_at, updated_at`

type repo struct {
	db          *sql.DB
	logger      *slog.Logger
	pagination  pagination.Config
	eligibility eligibility.System
}

// New creates an event repository implementing the System interface.
// The eligibility system is invoked after result recording so mandated
// suspensions surface on both participants immediately.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
	elig eligibility.System,
) System {
	return &repo{
		db:          db,
		logger:      logger.With("system", "events"),
		pagination:  pagination,
		eligibility: elig,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Event], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Venue", "City")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	events, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	result := pagination.NewPageResult(events, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Event, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	e, err := repository.QueryOne(ctx, r.db, q, args, scanEvent)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &e, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateEventCommand) (*Event, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		INSERT INTO events(id, organization_id, name, date, venue, city, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`, eventColumns)

	args := []any{
		uuid.New(),
		cmd.OrganizationID,
		cmd.Name,
		cmd.Date,
		cmd.Venue,
		cmd.City,
		cmd.Country,
	}

	e, err := repository.QueryOne(ctx, r.db, q, args, scanEvent)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("event scheduled", "id", e.ID, "name", e.Name, "date", e.Date)
	return &e, nil
}

func (r *repo) Cancel(ctx context.Context, id uuid.UUID) (*Event, error) {
	q := fmt.Sprintf(`
		UPDATE events
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status = $3
		RETURNING %s`, eventColumns)

	e, err := repository.QueryOne(ctx, r.db, q, []any{id, EventCancelled, EventScheduled}, scanEvent)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("event cancelled", "id", e.ID)
	return &e, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM events WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("event deleted", "id", id)
	return nil
}

func (r *repo) Bouts(ctx context.Context, eventID uuid.UUID) ([]Bout, error) {
	q := fmt.Sprintf(`
		SELECT %s FROM bouts
		WHERE event_id = $1
		ORDER BY position ASC`, boutColumns)

	bouts, err := repository.QueryMany(ctx, r.db, q, []any{eventID}, scanBout)
	if err != nil {
		return nil, fmt.Errorf("query bouts: %w", err)
	}
	return bouts, nil
}

func (r *repo) FindBout(ctx context.Context, boutID uuid.UUID) (*Bout, error) {
	q := fmt.Sprintf("SELECT %s FROM bouts WHERE id = $1", boutColumns)

	b, err := repository.QueryOne(ctx, r.db, q, []any{boutID}, scanBout)
	if err != nil {
		return nil, repository.MapError(err, ErrBoutNotFound, ErrDuplicate)
	}
	return &b, nil
}

func (r *repo) AddBout(ctx context.Context, eventID uuid.UUID, cmd CreateBoutCommand) (*Bout, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if !slices.Contains(fighters.WeightClasses, cmd.WeightClass) ||
		!slices.Contains(fighters.Disciplines, cmd.Discipline) {
		return nil, ErrInvalidBout
	}

	event, err := r.Find(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != EventScheduled {
		return nil, ErrInvalidEvent
	}

	q := fmt.Sprintf(`
		INSERT INTO bouts(id, event_id, fighter_a_id, fighter_b_id, weight_class,
			discipline, position, scheduled_rounds)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s`, boutColumns)

	args := []any{
		uuid.New(),
		eventID,
		cmd.FighterAID,
		cmd.FighterBID,
		cmd.WeightClass,
		cmd.Discipline,
		cmd.Position,
		cmd.ScheduledRounds,
	}

	b, err := repository.QueryOne(ctx, r.db, q, args, scanBout)
	if err != nil {
		return nil, repository.MapError(err, ErrBoutNotFound, ErrDuplicate)
	}

	r.logger.Info("bout booked",
		"id", b.ID,
		"event_id", eventID,
		"fighter_a", b.FighterAID,
		"fighter_b", b.FighterBID,
		"position", b.Position,
	)
	return &b, nil
}

func (r *repo) CancelBout(ctx context.Context, boutID uuid.UUID) (*Bout, error) {
	q := fmt.Sprintf(`
		UPDATE bouts
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status = $3
		RETURNING %s`, boutColumns)

	b, err := repository.QueryOne(ctx, r.db, q, []any{boutID, BoutCancelled, BoutScheduled}, scanBout)
	if err != nil {
		return nil, repository.MapError(err, ErrBoutNotFound, ErrDuplicate)
	}

	r.logger.Info("bout cancelled", "id", b.ID)
	return &b, nil
}

func (r *repo) RecordResult(ctx context.Context, boutID uuid.UUID, cmd RecordResultCommand) (*Bout, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	b, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Bout, error) {
		lockQ := fmt.Sprintf("SELECT %s FROM bouts WHERE id = $1 FOR UPDATE", boutColumns)

		bout, err := repository.QueryOne(ctx, tx, lockQ, []any{boutID}, scanBout)
		if err != nil {
			return Bout{}, err
		}

		if bout.Status != BoutScheduled {
			return Bout{}, ErrBoutCompleted
		}

		if cmd.WinnerID != nil &&
			*cmd.WinnerID != bout.FighterAID &&
			*cmd.WinnerID != bout.FighterBID {
			return Bout{}, ErrWinnerNotBooked
		}

		updateQ := fmt.Sprintf(`
			UPDATE bouts
			SET status = $2,
				result_method = $3,
				winner_id = $4,
				result_round = $5,
				result_time = $6,
				updated_at = now()
			WHERE id = $1
			RETURNING %s`, boutColumns)

		updated, err := repository.QueryOne(ctx, tx, updateQ, []any{
			boutID,
			BoutCompleted,
			cmd.Method,
			cmd.WinnerID,
			cmd.Round,
			cmd.Time,
		}, scanBout)
		if err != nil {
			return Bout{}, err
		}

		for _, fighterID := range []uuid.UUID{bout.FighterAID, bout.FighterBID} {
			if err := applyRecord(ctx, tx, fighterID, cmd.Method, cmd.WinnerID); err != nil {
				return Bout{}, err
			}
		}

		return updated, nil
	})

	if err != nil {
		return nil, repository.MapError(err, ErrBoutNotFound, ErrDuplicate)
	}

	r.logger.Info("bout result recorded",
		"id", b.ID,
		"method", cmd.Method,
		"winner_id", cmd.WinnerID,
	)

	asOf := eligibility.DateOf(time.Now())
	for _, fighterID := range []uuid.UUID{b.FighterAID, b.FighterBID} {
		if _, err := r.eligibility.Recompute(ctx, fighterID, asOf); err != nil {
			return nil, fmt.Errorf("recompute eligibility: %w", err)
		}
	}

	return &b, nil
}

// applyRecord folds a bout outcome into a fighter's stored record string.
// No contests leave the record untouched.
func applyRecord(ctx context.Context, tx *sql.Tx, fighterID uuid.UUID, method string, winnerID *uuid.UUID) error {
	if method == "no_contest" {
		return nil
	}

	var stored string
	if err := tx.QueryRowContext(
		ctx,
		"SELECT record FROM fighters WHERE id = $1 FOR UPDATE",
		fighterID,
	).Scan(&stored); err != nil {
		return fmt.Errorf("load fighter record: %w", err)
	}

	rec := fighters.ParseRecord(stored)
	switch {
	case method == "draw":
		rec.Draws++
	case winnerID != nil && *winnerID == fighterID:
		rec.Wins++
	default:
		rec.Losses++
	}

	if _, err := tx.ExecContext(
		ctx,
		"UPDATE fighters SET record = $2, updated_at = now() WHERE id = $1",
		fighterID,
		rec.String(),
	); err != nil {
		return fmt.Errorf("update fighter record: %w", err)
	}

	return nil
}
