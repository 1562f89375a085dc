package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/vgrishin/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type InterestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInterestRepo(db *dbpg.DB) *InterestRepository {
	return &InterestRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// RegisterInterest inserts the record unless one already exists for the
// same (user, date) pair. A duplicate is success, not an error.
func (r *InterestRepository) RegisterInterest(ctx context.Context, rec *domain.InterestRecord) error {
	query := `INSERT INTO booking_interest (id, user_id, interest_date, created_at)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		rec.ID, rec.UserID, rec.InterestDate, rec.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// уже зарегистрирован — молча игнорируем
			return nil
		}
		return fmt.Errorf("insert interest: %w", err)
	}

	return nil
}

// FindUnnotified returns a fresh snapshot of the records for the date that
// have not been notified yet.
func (r *InterestRepository) FindUnnotified(ctx context.Context, date time.Time) ([]*domain.InterestRecord, error) {
	query := `SELECT id, user_id, interest_date, created_at, notified_at
			  FROM booking_interest
			  WHERE interest_date = $1 AND notified_at IS NULL
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date)
	if err != nil {
		return nil, fmt.Errorf("find unnotified interest: %w", err)
	}
	defer rows.Close()

	var res []*domain.InterestRecord
	for rows.Next() {
		var rec domain.InterestRecord
		if err = rows.Scan(&rec.ID, &rec.UserID, &rec.InterestDate, &rec.CreatedAt, &rec.NotifiedAt); err != nil {
			return nil, fmt.Errorf("scan interest record: %w", err)
		}
		res = append(res, &rec)
	}

	return res, rows.Err()
}

// MarkNotified sets notified_at once; the field is monotonic, so marking
// an already-notified record is a no-op success.
func (r *InterestRepository) MarkNotified(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE booking_interest
			  SET notified_at = $2
			  WHERE id = $1 AND notified_at IS NULL`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, at)
	if err != nil {
		return fmt.Errorf("mark interest notified: %w", err)
	}

	return nil
}

// DeleteStale removes records already notified or created before the
// retention cut-off. Used by the housekeeping sweep only.
func (r *InterestRepository) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM booking_interest
			  WHERE notified_at IS NOT NULL OR created_at < $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, before)
	if err != nil {
		return 0, fmt.Errorf("delete stale interest: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("stale rows affected: %w", err)
	}

	return n, nil
}
