package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/carga/internal/db"
	"github.com/alexanderramin/carga/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

const sessionColumns = `id, section_nrc, type, duration, days, per, created_at`

// Create issues several writes; callers wanting all-or-nothing run it under
// a UnitOfWork.
func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.SectionNRC,
		s.Type,
		s.Duration,
		s.Days,
		s.PER,
		timestampOrNow(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	for _, profID := range s.ProfessorIDs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO session_professors (session_id, professor_id) VALUES (?, ?)`,
			s.ID, profID)
		if err != nil {
			return fmt.Errorf("assigning professor %s to session: %w", profID, err)
		}
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`
	s, err := scanSession(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	assigned, err := r.professorIDs(ctx, "WHERE session_id = ?", id)
	if err != nil {
		return nil, err
	}
	s.ProfessorIDs = assigned[s.ID]
	return s, nil
}

func (r *SQLiteSessionRepo) ListBySection(ctx context.Context, nrc string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE section_nrc = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, nrc)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by section: %w", err)
	}
	defer rows.Close()

	var out []*domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}

	assigned, err := r.professorIDs(ctx,
		"WHERE session_id IN (SELECT id FROM sessions WHERE section_nrc = ?)", nrc)
	if err != nil {
		return nil, err
	}
	for _, s := range out {
		s.ProfessorIDs = assigned[s.ID]
	}
	return out, nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// professorIDs returns assigned professor IDs keyed by session ID.
func (r *SQLiteSessionRepo) professorIDs(ctx context.Context, where string, args ...any) (map[string][]string, error) {
	query := `SELECT session_id, professor_id FROM session_professors ` + where + ` ORDER BY session_id, professor_id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing session professors: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var sessionID, profID string
		if err := rows.Scan(&sessionID, &profID); err != nil {
			return nil, fmt.Errorf("scanning session professor: %w", err)
		}
		out[sessionID] = append(out[sessionID], profID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session professors: %w", err)
	}
	return out, nil
}

func scanSession(s rowScanner) (*domain.Session, error) {
	var sess domain.Session
	var duration, per sql.NullString
	var createdAt string
	if err := s.Scan(&sess.ID, &sess.SectionNRC, &sess.Type, &duration, &sess.Days, &per, &createdAt); err != nil {
		return nil, err
	}
	sess.Duration = floatOrZero(duration)
	sess.PER = floatOrZero(per)
	sess.CreatedAt = parseTimestamp(createdAt)
	return &sess, nil
}
