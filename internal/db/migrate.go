package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are run in order on every open. Statements must be
// idempotent (CREATE IF NOT EXISTS) or tolerated by Migrate.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id           TEXT PRIMARY KEY,
		kind         TEXT NOT NULL CHECK(kind IN ('recurring','single')),
		subject      TEXT NOT NULL,
		teacher_name TEXT NOT NULL,
		teacher_id   TEXT NOT NULL DEFAULT '',
		grade        TEXT NOT NULL,
		weekday      INTEGER,
		time_of_day  TEXT,
		start_at     TEXT NOT NULL,
		end_at       TEXT,
		duration_min INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_kind ON sessions(kind)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_weekday ON sessions(weekday)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_teacher ON sessions(teacher_name)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
