package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/carga/internal/db"
	"github.com/alexanderramin/carga/internal/domain"
)

// SQLiteSectionRepo implements SectionRepo using a SQLite database.
type SQLiteSectionRepo struct {
	db db.DBTX
}

// NewSQLiteSectionRepo creates a new SQLiteSectionRepo.
func NewSQLiteSectionRepo(db db.DBTX) *SQLiteSectionRepo {
	return &SQLiteSectionRepo{db: db}
}

const sectionColumns = `nrc, course_code, enrollment, capacity, cross_list_tag, professor_dedications, created_at, updated_at`

func (r *SQLiteSectionRepo) Create(ctx context.Context, s *domain.Section) error {
	payload, err := encodeDedications(s.Dedications)
	if err != nil {
		return err
	}
	created := timestampOrNow(s.CreatedAt)
	updated := created
	if !s.UpdatedAt.IsZero() {
		updated = timestampOrNow(s.UpdatedAt)
	}

	query := `INSERT INTO sections (` + sectionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.NRC,
		s.CourseCode,
		s.Enrollment,
		s.Capacity,
		emptyToNull(s.CrossListTag),
		payload,
		created,
		updated,
	)
	if err != nil {
		return fmt.Errorf("inserting section: %w", err)
	}
	return nil
}

func (r *SQLiteSectionRepo) GetByNRC(ctx context.Context, nrc string) (*domain.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE nrc = ?`
	s, err := scanSection(r.db.QueryRowContext(ctx, query, nrc))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("section %s: %w", nrc, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning section: %w", err)
	}
	return s, nil
}

func (r *SQLiteSectionRepo) List(ctx context.Context) ([]*domain.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections ORDER BY nrc`
	return r.list(ctx, query)
}

func (r *SQLiteSectionRepo) ListByCourse(ctx context.Context, courseCode string) ([]*domain.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE UPPER(course_code) = UPPER(?) ORDER BY nrc`
	return r.list(ctx, query, courseCode)
}

func (r *SQLiteSectionRepo) UpdateDedications(ctx context.Context, nrc string, dedications map[string]float64) error {
	payload, err := encodeDedications(dedications)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE sections SET professor_dedications = ?, updated_at = ? WHERE nrc = ?`,
		payload, nowUTC(), nrc)
	if err != nil {
		return fmt.Errorf("updating section dedications: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating section dedications: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("section %s: %w", nrc, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSectionRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Section, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	defer rows.Close()

	var out []*domain.Section
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning section row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}
	return out, nil
}

func scanSection(s rowScanner) (*domain.Section, error) {
	var sec domain.Section
	var enrollment, capacity sql.NullString
	var tag sql.NullString
	var payload, createdAt, updatedAt string
	if err := s.Scan(&sec.NRC, &sec.CourseCode, &enrollment, &capacity, &tag, &payload, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	sec.Enrollment = intOrZero(enrollment)
	sec.Capacity = intOrZero(capacity)
	sec.CrossListTag = stringOrEmpty(tag)
	sec.Dedications, _ = decodeDedications(payload)
	sec.CreatedAt = parseTimestamp(createdAt)
	sec.UpdatedAt = parseTimestamp(updatedAt)
	return &sec, nil
}
