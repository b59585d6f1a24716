package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/carga/internal/db"
	"github.com/alexanderramin/carga/internal/domain"
)

// SQLiteDepartmentRepo implements DepartmentRepo using a SQLite database.
type SQLiteDepartmentRepo struct {
	db db.DBTX
}

// NewSQLiteDepartmentRepo creates a new SQLiteDepartmentRepo.
func NewSQLiteDepartmentRepo(db db.DBTX) *SQLiteDepartmentRepo {
	return &SQLiteDepartmentRepo{db: db}
}

func (r *SQLiteDepartmentRepo) Create(ctx context.Context, d *domain.Department) error {
	query := `INSERT INTO departments (code, name, created_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, d.Code, d.Name, timestampOrNow(d.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting department: %w", err)
	}
	return nil
}

func (r *SQLiteDepartmentRepo) GetByCode(ctx context.Context, code string) (*domain.Department, error) {
	query := `SELECT code, name, created_at FROM departments WHERE UPPER(code) = UPPER(?)`
	var d domain.Department
	var createdAt string
	err := r.db.QueryRowContext(ctx, query, code).Scan(&d.Code, &d.Name, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("department %s: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning department: %w", err)
	}
	d.CreatedAt = parseTimestamp(createdAt)
	return &d, nil
}

func (r *SQLiteDepartmentRepo) List(ctx context.Context) ([]*domain.Department, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT code, name, created_at FROM departments ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("listing departments: %w", err)
	}
	defer rows.Close()

	var out []*domain.Department
	for rows.Next() {
		var d domain.Department
		var createdAt string
		if err := rows.Scan(&d.Code, &d.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning department row: %w", err)
		}
		d.CreatedAt = parseTimestamp(createdAt)
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating departments: %w", err)
	}
	return out, nil
}
