package subscription

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dualinkhq/dualink-api/internal/database"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrInternalServer = errors.New("internal server error")
)

type SubscriptionRepo interface {
	Upsert(ctx context.Context, sub *Subscriber) error
	GetSubscribed(ctx context.Context) ([]Subscriber, error)
	UpdateLastSentAt(ctx context.Context, id uuid.UUID, sentAt time.Time) error
	Unsubscribe(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewSubscriptionRepo(dbService database.Service) SubscriptionRepo {
	return &repository{db: dbService.DB()}
}

// Upsert creates a subscriber or refreshes the preferences of an existing one.
// Resubscribing through the form flips is_subscribed back on.
func (r *repository) Upsert(ctx context.Context, sub *Subscriber) error {
	query := `
		INSERT INTO subscribers (id, email, phone, email_opt_in, sms_opt_in, is_subscribed)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		ON CONFLICT (email) DO UPDATE
		SET phone = EXCLUDED.phone,
		    email_opt_in = EXCLUDED.email_opt_in,
		    sms_opt_in = EXCLUDED.sms_opt_in,
		    is_subscribed = TRUE
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		sub.ID,
		sub.Email,
		sub.Phone,
		sub.EmailOptIn,
		sub.SmsOptIn,
	).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		return ErrInternalServer
	}
	sub.IsSubscribed = true
	return nil
}

func (r *repository) GetSubscribed(ctx context.Context) ([]Subscriber, error) {
	query := `
		SELECT id, email, phone, email_opt_in, sms_opt_in, is_subscribed, last_sent_at, created_at
		FROM subscribers
		WHERE is_subscribed = TRUE
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var subs []Subscriber
	for rows.Next() {
		var s Subscriber
		if err := rows.Scan(
			&s.ID,
			&s.Email,
			&s.Phone,
			&s.EmailOptIn,
			&s.SmsOptIn,
			&s.IsSubscribed,
			&s.LastSentAt,
			&s.CreatedAt,
		); err != nil {
			return nil, ErrInternalServer
		}
		subs = append(subs, s)
	}

	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}

	return subs, nil
}

func (r *repository) UpdateLastSentAt(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	query := `UPDATE subscribers SET last_sent_at = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, sentAt)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *repository) Unsubscribe(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE subscribers SET is_subscribed = FALSE WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return ErrInternalServer
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return ErrInternalServer
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
