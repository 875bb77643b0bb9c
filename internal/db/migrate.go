package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE "duplicate column" errors from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS assessments (
		id                  TEXT PRIMARY KEY,
		age                 INTEGER NOT NULL,
		sex                 TEXT NOT NULL CHECK(sex IN ('female','male','other')),
		symptoms            TEXT NOT NULL DEFAULT '[]',
		state               TEXT NOT NULL DEFAULT 'active'
		                    CHECK(state IN ('not_started','active','completed','abandoned')),
		pending_question_id TEXT NOT NULL DEFAULT '',
		started_at          TEXT NOT NULL,
		completed_at        TEXT,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assessments_state ON assessments(state)`,
	`CREATE INDEX IF NOT EXISTS idx_assessments_started ON assessments(started_at)`,

	`CREATE TABLE IF NOT EXISTS assessment_answers (
		assessment_id TEXT NOT NULL REFERENCES assessments(id) ON DELETE CASCADE,
		seq           INTEGER NOT NULL,
		question_id   TEXT NOT NULL,
		value         TEXT NOT NULL,
		answered_at   TEXT NOT NULL,
		PRIMARY KEY (assessment_id, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_answers_question ON assessment_answers(question_id)`,

	`CREATE TABLE IF NOT EXISTS risk_results (
		id               TEXT PRIMARY KEY,
		assessment_id    TEXT NOT NULL REFERENCES assessments(id) ON DELETE CASCADE,
		score            REAL NOT NULL,
		tier             TEXT NOT NULL CHECK(tier IN ('low','moderate','high','urgent')),
		partial          INTEGER NOT NULL DEFAULT 0,
		contributions    TEXT NOT NULL DEFAULT '[]',
		specialist       TEXT NOT NULL DEFAULT '',
		urgent           INTEGER NOT NULL DEFAULT 0,
		window_days      INTEGER NOT NULL DEFAULT 0,
		narrative        TEXT NOT NULL DEFAULT '',
		narrative_source TEXT NOT NULL DEFAULT '',
		computed_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_results_assessment ON risk_results(assessment_id)`,
}
