package db

import (
	"database/sql"
	"fmt"
	"strings"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS rate_profiles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE COLLATE NOCASE,
		base_complexity TEXT NOT NULL CHECK (base_complexity IN ('simple', 'complex')),
		content_pages_per_day REAL NOT NULL CHECK (content_pages_per_day >= 0),
		illustration_days_per_book REAL NOT NULL CHECK (illustration_days_per_book >= 0),
		design_pages_per_day REAL NOT NULL CHECK (design_pages_per_day >= 0),
		review_pages_per_day REAL NOT NULL CHECK (review_pages_per_day >= 0),
		correction_pages_per_day REAL NOT NULL CHECK (correction_pages_per_day >= 0),
		final_review_days_per_book REAL NOT NULL CHECK (final_review_days_per_book >= 0),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rate_profiles_updated ON rate_profiles(updated_at)`,
	`ALTER TABLE rate_profiles ADD COLUMN notes TEXT NOT NULL DEFAULT ''`,
}

// Migrate runs all schema migrations. Statements are idempotent so the
// full list is replayed on every open.
func Migrate(conn *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := conn.Exec(stmt); err != nil {
			// ALTER TABLE has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
