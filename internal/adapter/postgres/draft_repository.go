package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"community-ads/internal/core/domain"
	"community-ads/internal/core/port"
)

// DraftRepository implements port.DraftRepository. The whole draft is kept
// as JSONB; step and timestamps are duplicated into columns for queries.
type DraftRepository struct {
	pool *pgxpool.Pool
}

// NewDraftRepository returns a new repository instance.
func NewDraftRepository(pool *pgxpool.Pool) *DraftRepository {
	return &DraftRepository{pool: pool}
}

// CreateDraft inserts a new draft.
func (r *DraftRepository) CreateDraft(ctx context.Context, d domain.Draft) error {
	state, err := json.Marshal(d)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaign_drafts (id, step, state, created_at, updated_at, submitted_at)
VALUES ($1,$2,$3,$4,$5,$6)`, d.ID, d.Step.String(), state, d.CreatedAt, d.UpdatedAt, d.SubmittedAt)
	return err
}

// GetDraft returns a draft by id.
func (r *DraftRepository) GetDraft(ctx context.Context, id uuid.UUID) (domain.Draft, error) {
	return getDraft(ctx, r.pool, id, "")
}

// maxUpdateAttempts bounds retries of UpdateDraft after serialization
// failures.
const maxUpdateAttempts = 5

// serializationFailure is the SQLSTATE of serialization_failure.
const serializationFailure = "40001"

// UpdateDraft locks the draft row, applies fn and writes the result in one
// serializable transaction. Transactions that lose a serialization race are
// retried with the fresh row.
func (r *DraftRepository) UpdateDraft(ctx context.Context, id uuid.UUID, fn func(domain.Draft) (domain.Draft, error)) (domain.Draft, error) {
	var (
		d   domain.Draft
		err error
	)
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		d, err = r.updateDraft(ctx, id, fn)
		if !isSerializationFailure(err) {
			return d, err
		}
	}
	return d, err
}

func (r *DraftRepository) updateDraft(ctx context.Context, id uuid.UUID, fn func(domain.Draft) (domain.Draft, error)) (domain.Draft, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return domain.Draft{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// lock draft
	current, err := getDraft(ctx, tx, id, " FOR UPDATE")
	if err != nil {
		return domain.Draft{}, err
	}
	next, err := fn(current)
	if err != nil {
		return current, err
	}
	state, err := json.Marshal(next)
	if err != nil {
		return current, err
	}
	_, err = tx.Exec(ctx, `UPDATE campaign_drafts SET step = $1, state = $2, updated_at = $3, submitted_at = $4 WHERE id = $5`,
		next.Step.String(), state, next.UpdatedAt, next.SubmittedAt, id)
	if err != nil {
		return current, err
	}
	if err = tx.Commit(ctx); err != nil {
		return current, err
	}
	return next, nil
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == serializationFailure
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getDraft(ctx context.Context, q querier, id uuid.UUID, lock string) (domain.Draft, error) {
	var state []byte
	err := q.QueryRow(ctx, `SELECT state FROM campaign_drafts WHERE id = $1`+lock, id).Scan(&state)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Draft{}, fmt.Errorf("%w: %s", port.ErrDraftNotFound, id)
	}
	if err != nil {
		return domain.Draft{}, err
	}
	var d domain.Draft
	if err = json.Unmarshal(state, &d); err != nil {
		return domain.Draft{}, fmt.Errorf("decode draft %s: %w", id, err)
	}
	return d, nil
}
