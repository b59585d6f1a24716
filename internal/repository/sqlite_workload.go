package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/carga/internal/db"
	"github.com/alexanderramin/carga/internal/domain"
)

// SQLiteWorkloadRepo implements WorkloadRepo using a SQLite database.
type SQLiteWorkloadRepo struct {
	db db.DBTX
}

// NewSQLiteWorkloadRepo creates a new SQLiteWorkloadRepo.
func NewSQLiteWorkloadRepo(db db.DBTX) *SQLiteWorkloadRepo {
	return &SQLiteWorkloadRepo{db: db}
}

func (r *SQLiteWorkloadRepo) ListRows(ctx context.Context) ([]domain.WorkloadRow, error) {
	query := `SELECT s.id, s.type, s.duration, s.days, s.per,
			sec.nrc, sec.cross_list_tag, sec.enrollment, sec.professor_dedications,
			c.code, c.credits, c.weeks, c.level, c.department_code
		FROM sessions s
		JOIN sections sec ON s.section_nrc = sec.nrc
		JOIN courses c ON sec.course_code = c.code
		ORDER BY sec.nrc, s.created_at, s.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing workload rows: %w", err)
	}
	defer rows.Close()

	var out []domain.WorkloadRow
	for rows.Next() {
		var w domain.WorkloadRow
		var duration, per, enrollment, credits, weeks, level sql.NullString
		var tag sql.NullString
		var payload string
		err := rows.Scan(
			&w.SessionID, &w.SessionType, &duration, &w.Days, &per,
			&w.SectionNRC, &tag, &enrollment, &payload,
			&w.CourseCode, &credits, &weeks, &level, &w.DepartmentCode,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning workload row: %w", err)
		}

		malformed := false
		number := func(v sql.NullString) float64 {
			n, bad := numberOrZero(v)
			malformed = malformed || bad
			return n
		}
		w.Duration = number(duration)
		w.PER = number(per)
		w.Enrollment = int(number(enrollment))
		w.Credits = int(number(credits))
		w.Weeks = int(number(weeks))
		w.Level = int(number(level))
		w.NumbersMalformed = malformed
		w.CrossListTag = stringOrEmpty(tag)
		w.Dedications, w.DedicationsMalformed = decodeDedications(payload)
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workload rows: %w", err)
	}

	assigned, err := r.assignedProfessors(ctx)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Professors = assigned[out[i].SessionID]
	}
	return out, nil
}

func (r *SQLiteWorkloadRepo) assignedProfessors(ctx context.Context) (map[string][]domain.AssignedProfessor, error) {
	query := `SELECT sp.session_id, p.id, p.category, p.dependency
		FROM session_professors sp
		JOIN professors p ON sp.professor_id = p.id
		ORDER BY sp.session_id, p.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing assigned professors: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.AssignedProfessor)
	for rows.Next() {
		var sessionID string
		var p domain.AssignedProfessor
		if err := rows.Scan(&sessionID, &p.ID, &p.Category, &p.Dependency); err != nil {
			return nil, fmt.Errorf("scanning assigned professor: %w", err)
		}
		out[sessionID] = append(out[sessionID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assigned professors: %w", err)
	}
	return out, nil
}

func (r *SQLiteWorkloadRepo) UpdatePER(ctx context.Context, sessionID string, per float64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE sessions SET per = ? WHERE id = ?`, per, sessionID)
	if err != nil {
		return fmt.Errorf("updating session per: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating session per: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	return nil
}
