package inspiration

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dualinkhq/dualink-api/internal/database"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrAlreadyExists  = errors.New("record already exists")
	ErrInternalServer = errors.New("internal server error")
)

const dateLayout = "2006-01-02"

type InspirationRepo interface {
	GetByDate(ctx context.Context, date string) (*Inspiration, error)
	GetSince(ctx context.Context, date string) ([]Inspiration, error)
	Insert(ctx context.Context, insp *Inspiration) error
}

type repository struct {
	db *sql.DB
}

func NewInspirationRepo(dbService database.Service) InspirationRepo {
	return &repository{db: dbService.DB()}
}

func (r *repository) GetByDate(ctx context.Context, date string) (*Inspiration, error) {
	query := `
		SELECT id, inspiration_date, verse_arabic, verse_english, surah_name, ayah_number, hadith_text, created_at
		FROM daily_inspirations
		WHERE inspiration_date = $1
	`

	var i Inspiration
	var day time.Time
	err := r.db.QueryRowContext(ctx, query, date).Scan(
		&i.ID,
		&day,
		&i.VerseArabic,
		&i.VerseEnglish,
		&i.SurahName,
		&i.AyahNumber,
		&i.HadithText,
		&i.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, ErrInternalServer
	}
	i.Date = day.Format(dateLayout)
	return &i, nil
}

func (r *repository) GetSince(ctx context.Context, date string) ([]Inspiration, error) {
	query := `
		SELECT id, inspiration_date, verse_arabic, verse_english, surah_name, ayah_number, hadith_text, created_at
		FROM daily_inspirations
		WHERE inspiration_date >= $1
		ORDER BY inspiration_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var inspirations []Inspiration
	for rows.Next() {
		var i Inspiration
		var day time.Time
		if err := rows.Scan(
			&i.ID,
			&day,
			&i.VerseArabic,
			&i.VerseEnglish,
			&i.SurahName,
			&i.AyahNumber,
			&i.HadithText,
			&i.CreatedAt,
		); err != nil {
			return nil, ErrInternalServer
		}
		i.Date = day.Format(dateLayout)
		inspirations = append(inspirations, i)
	}

	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}

	return inspirations, nil
}

// Insert persists one row per calendar date. The unique constraint on
// inspiration_date makes concurrent first-requests-of-the-day safe: the loser
// gets ErrAlreadyExists and should re-read the winner's row.
func (r *repository) Insert(ctx context.Context, insp *Inspiration) error {
	query := `
		INSERT INTO daily_inspirations (inspiration_date, verse_arabic, verse_english, surah_name, ayah_number, hadith_text)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (inspiration_date) DO NOTHING
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		insp.Date,
		insp.VerseArabic,
		insp.VerseEnglish,
		insp.SurahName,
		insp.AyahNumber,
		insp.HadithText,
	).Scan(&insp.ID, &insp.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAlreadyExists
		}
		return ErrInternalServer
	}
	return nil
}
