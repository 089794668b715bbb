package dua

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/dualinkhq/dualink-api/internal/database"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrInternalServer = errors.New("internal server error")
)

type DuaRepo interface {
	Insert(ctx context.Context, d *Dua) error
	List(ctx context.Context) ([]Dua, error)
	IncrementResonance(ctx context.Context, id uuid.UUID) (*Dua, error)
}

type repository struct {
	db *sql.DB
}

func NewDuaRepo(dbService database.Service) DuaRepo {
	return &repository{db: dbService.DB()}
}

func (r *repository) Insert(ctx context.Context, d *Dua) error {
	query := `
		INSERT INTO duas (id, content, related_text, text_translation, text_reference, text_type, resonance_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		d.ID,
		d.Content,
		d.RelatedText,
		d.TextTranslation,
		d.TextReference,
		d.TextType,
		d.ResonanceCount,
	).Scan(&d.CreatedAt)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]Dua, error) {
	query := `
		SELECT id, content, related_text, text_translation, text_reference, text_type, resonance_count, created_at
		FROM duas
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var duas []Dua
	for rows.Next() {
		var d Dua
		if err := rows.Scan(
			&d.ID,
			&d.Content,
			&d.RelatedText,
			&d.TextTranslation,
			&d.TextReference,
			&d.TextType,
			&d.ResonanceCount,
			&d.CreatedAt,
		); err != nil {
			return nil, ErrInternalServer
		}
		duas = append(duas, d)
	}

	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}

	return duas, nil
}

// IncrementResonance bumps the count in a single statement so concurrent
// increments never lose updates.
func (r *repository) IncrementResonance(ctx context.Context, id uuid.UUID) (*Dua, error) {
	query := `
		UPDATE duas
		SET resonance_count = resonance_count + 1
		WHERE id = $1
		RETURNING id, content, related_text, text_translation, text_reference, text_type, resonance_count, created_at
	`

	var d Dua
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID,
		&d.Content,
		&d.RelatedText,
		&d.TextTranslation,
		&d.TextReference,
		&d.TextType,
		&d.ResonanceCount,
		&d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, ErrInternalServer
	}
	return &d, nil
}
