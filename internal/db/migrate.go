package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillCompletedAt(db); err != nil {
		return fmt.Errorf("backfilling completed_at: %w", err)
	}
	return nil
}

// Screenings marked completed before completed_at existed take their last
// update as the completion time.
func migrateBackfillCompletedAt(db *sql.DB) error {
	_, err := db.Exec(`UPDATE screenings SET completed_at = updated_at
		WHERE status = 'completed' AND completed_at IS NULL`)
	return err
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS screenings (
		id                 TEXT PRIMARY KEY,
		respondent_name    TEXT NOT NULL,
		status             TEXT NOT NULL DEFAULT 'in_progress'
		                   CHECK(status IN ('in_progress','completed')),
		asrs_answers       TEXT NOT NULL DEFAULT '{}',
		impairment_answers TEXT NOT NULL DEFAULT '{}',
		wurs_answers       TEXT NOT NULL DEFAULT '{}',
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`ALTER TABLE screenings ADD COLUMN completed_at TEXT`,
	`ALTER TABLE screenings ADD COLUMN source TEXT NOT NULL DEFAULT 'wizard'`,

	`CREATE INDEX IF NOT EXISTS idx_screenings_status ON screenings(status)`,
	`CREATE INDEX IF NOT EXISTS idx_screenings_created ON screenings(created_at)`,
}
