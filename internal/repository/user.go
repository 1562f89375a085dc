package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/vgrishin/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, username, email, phone, telegram_chat_id,
				notify_cancel_email, notify_cancel_messenger, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		user.ID, user.Username, user.Email, user.Phone, user.TelegramChatID,
		user.NotifyCancelEmail, user.NotifyCancelMessenger, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, username, email, phone, telegram_chat_id,
				notify_cancel_email, notify_cancel_messenger, created_at
			  FROM users
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.TelegramChatID,
		&u.NotifyCancelEmail, &u.NotifyCancelMessenger, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) UpdateNotificationPrefs(ctx context.Context, id string, prefs domain.NotificationPrefsInput) error {
	query := `UPDATE users
			  SET notify_cancel_email = $2, notify_cancel_messenger = $3
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		id, prefs.NotifyCancelEmail, prefs.NotifyCancelMessenger,
	)
	if err != nil {
		return fmt.Errorf("update notification prefs: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("prefs rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// ResolveContacts loads notification profiles for the given user ids in one
// batch. Unknown ids and rows that fail to scan are simply absent from the
// result; only a failed batch query is an error.
func (r *UserRepository) ResolveContacts(ctx context.Context, userIDs []string) (map[string]*domain.ContactProfile, error) {
	if len(userIDs) == 0 {
		return map[string]*domain.ContactProfile{}, nil
	}

	query := `SELECT id, email, phone, telegram_chat_id,
				notify_cancel_email, notify_cancel_messenger
			  FROM users
			  WHERE id = ANY($1)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(userIDs))
	if err != nil {
		return nil, fmt.Errorf("resolve contacts: %w", err)
	}
	defer rows.Close()

	res := make(map[string]*domain.ContactProfile, len(userIDs))
	for rows.Next() {
		var p domain.ContactProfile
		if err = rows.Scan(&p.UserID, &p.Email, &p.Phone, &p.TelegramChatID,
			&p.EmailOptIn, &p.MessengerOptIn); err != nil {
			// одна битая строка не должна ронять весь batch
			continue
		}
		res[p.UserID] = &p
	}

	return res, rows.Err()
}
