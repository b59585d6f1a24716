package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/carga/internal/db"
	"github.com/alexanderramin/carga/internal/domain"
)

// SQLiteCourseRepo implements CourseRepo using a SQLite database.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(db db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: db}
}

const courseColumns = `code, name, credits, level, department_code, weeks, created_at`

func (r *SQLiteCourseRepo) Create(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (` + courseColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.Code,
		c.Name,
		c.Credits,
		c.Level,
		c.DepartmentCode,
		c.Weeks,
		timestampOrNow(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting course: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE UPPER(code) = UPPER(?)`
	c, err := scanCourse(r.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("course %s: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}
	return c, nil
}

func (r *SQLiteCourseRepo) List(ctx context.Context, departmentCode string) ([]*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses
		WHERE (? = '' OR UPPER(department_code) = UPPER(?))
		ORDER BY code`
	rows, err := r.db.QueryContext(ctx, query, departmentCode, departmentCode)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var out []*domain.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning course row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return out, nil
}

func scanCourse(s rowScanner) (*domain.Course, error) {
	var c domain.Course
	var credits, level, weeks sql.NullString
	var createdAt string
	if err := s.Scan(&c.Code, &c.Name, &credits, &level, &c.DepartmentCode, &weeks, &createdAt); err != nil {
		return nil, err
	}
	c.Credits = intOrZero(credits)
	c.Level = intOrZero(level)
	c.Weeks = intOrZero(weeks)
	c.CreatedAt = parseTimestamp(createdAt)
	return &c, nil
}
