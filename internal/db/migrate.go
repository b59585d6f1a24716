package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Every statement is idempotent, so it runs on
// each open.
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
	if err := migrateDefaultDedications(db); err != nil {
		return fmt.Errorf("normalizing empty dedication payloads: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS departments (
		code       TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS professors (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		category   TEXT NOT NULL DEFAULT '',
		dependency TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS courses (
		code            TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		credits         INTEGER,
		level           INTEGER,
		department_code TEXT NOT NULL REFERENCES departments(code),
		weeks           INTEGER,
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_courses_department ON courses(department_code)`,

	`CREATE TABLE IF NOT EXISTS sections (
		nrc            TEXT PRIMARY KEY,
		course_code    TEXT NOT NULL REFERENCES courses(code) ON DELETE CASCADE,
		enrollment     INTEGER,
		capacity       INTEGER,
		cross_list_tag TEXT,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sections_course ON sections(course_code)`,
	`CREATE INDEX IF NOT EXISTS idx_sections_cross_list ON sections(cross_list_tag)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id          TEXT PRIMARY KEY,
		section_nrc TEXT NOT NULL REFERENCES sections(nrc) ON DELETE CASCADE,
		type        TEXT NOT NULL DEFAULT '',
		duration    REAL,
		days        TEXT NOT NULL DEFAULT '',
		per         REAL NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_section ON sessions(section_nrc)`,

	`CREATE TABLE IF NOT EXISTS session_professors (
		session_id   TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		professor_id TEXT NOT NULL REFERENCES professors(id) ON DELETE CASCADE,
		PRIMARY KEY (session_id, professor_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_session_professors_professor ON session_professors(professor_id)`,

	// Dedications were added after the first schema; older databases may
	// still carry the list-shaped payload, which the repository converts on read.
	`ALTER TABLE sections ADD COLUMN professor_dedications TEXT NOT NULL DEFAULT '{}'`,
}

// migrateDefaultDedications rewrites blank payloads left by manual edits so
// every row holds valid JSON.
func migrateDefaultDedications(db *sql.DB) error {
	_, err := db.ExecContext(context.Background(),
		`UPDATE sections SET professor_dedications = '{}' WHERE TRIM(professor_dedications) = ''`)
	return err
}
