package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/folio/internal/db"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/google/uuid"
)

const rateProfileColumns = `id, name, base_complexity,
	content_pages_per_day, illustration_days_per_book, design_pages_per_day,
	review_pages_per_day, correction_pages_per_day, final_review_days_per_book,
	notes, created_at, updated_at`

// SQLiteRateProfileRepo implements RateProfileRepo using a SQLite database.
type SQLiteRateProfileRepo struct {
	db db.DBTX
}

// NewSQLiteRateProfileRepo creates a new SQLiteRateProfileRepo.
func NewSQLiteRateProfileRepo(conn db.DBTX) *SQLiteRateProfileRepo {
	return &SQLiteRateProfileRepo{db: conn}
}

// Upsert inserts p or replaces the rates of the profile with the same name.
// ID and CreatedAt are assigned on first insert and kept afterwards; p is
// updated with the stored values.
func (r *SQLiteRateProfileRepo) Upsert(ctx context.Context, p *domain.RateProfile) error {
	now := time.Now().UTC().Truncate(time.Second)
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	query := `INSERT INTO rate_profiles (` + rateProfileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			base_complexity = excluded.base_complexity,
			content_pages_per_day = excluded.content_pages_per_day,
			illustration_days_per_book = excluded.illustration_days_per_book,
			design_pages_per_day = excluded.design_pages_per_day,
			review_pages_per_day = excluded.review_pages_per_day,
			correction_pages_per_day = excluded.correction_pages_per_day,
			final_review_days_per_book = excluded.final_review_days_per_book,
			notes = excluded.notes,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		string(p.BaseComplexity),
		p.Rates.ContentPagesPerDay,
		p.Rates.IllustrationDaysPerBook,
		p.Rates.DesignPagesPerDay,
		p.Rates.ReviewPagesPerDay,
		p.Rates.CorrectionPagesPerDay,
		p.Rates.FinalReviewDaysPerBook,
		p.Notes,
		formatTime(p.CreatedAt),
		formatTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting rate profile: %w", err)
	}

	stored, err := r.GetByName(ctx, p.Name)
	if err != nil {
		return err
	}
	*p = *stored
	return nil
}

func (r *SQLiteRateProfileRepo) GetByName(ctx context.Context, name string) (*domain.RateProfile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+rateProfileColumns+` FROM rate_profiles WHERE name = ?`, name)

	p, err := scanRateProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("rate profile %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning rate profile: %w", err)
	}
	return p, nil
}

func (r *SQLiteRateProfileRepo) List(ctx context.Context) ([]domain.RateProfile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+rateProfileColumns+` FROM rate_profiles ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("listing rate profiles: %w", err)
	}
	defer rows.Close()

	var out []domain.RateProfile
	for rows.Next() {
		p, err := scanRateProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning rate profile: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *SQLiteRateProfileRepo) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rate_profiles WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting rate profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting rate profile: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("rate profile %q: %w", name, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRateProfile(s scanner) (*domain.RateProfile, error) {
	var (
		p                    domain.RateProfile
		complexity           string
		createdAt, updatedAt string
	)
	err := s.Scan(
		&p.ID,
		&p.Name,
		&complexity,
		&p.Rates.ContentPagesPerDay,
		&p.Rates.IllustrationDaysPerBook,
		&p.Rates.DesignPagesPerDay,
		&p.Rates.ReviewPagesPerDay,
		&p.Rates.CorrectionPagesPerDay,
		&p.Rates.FinalReviewDaysPerBook,
		&p.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.BaseComplexity = domain.Complexity(complexity)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}
