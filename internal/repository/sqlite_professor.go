package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/carga/internal/db"
	"github.com/alexanderramin/carga/internal/domain"
)

// SQLiteProfessorRepo implements ProfessorRepo using a SQLite database.
type SQLiteProfessorRepo struct {
	db db.DBTX
}

// NewSQLiteProfessorRepo creates a new SQLiteProfessorRepo.
func NewSQLiteProfessorRepo(db db.DBTX) *SQLiteProfessorRepo {
	return &SQLiteProfessorRepo{db: db}
}

const professorColumns = `id, name, category, dependency, created_at`

func (r *SQLiteProfessorRepo) Create(ctx context.Context, p *domain.Professor) error {
	query := `INSERT INTO professors (` + professorColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Category, p.Dependency, timestampOrNow(p.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting professor: %w", err)
	}
	return nil
}

func (r *SQLiteProfessorRepo) GetByID(ctx context.Context, id string) (*domain.Professor, error) {
	query := `SELECT ` + professorColumns + ` FROM professors WHERE id = ?`
	p, err := scanProfessor(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("professor %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning professor: %w", err)
	}
	return p, nil
}

func (r *SQLiteProfessorRepo) List(ctx context.Context) ([]*domain.Professor, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+professorColumns+` FROM professors ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing professors: %w", err)
	}
	defer rows.Close()

	var out []*domain.Professor
	for rows.Next() {
		p, err := scanProfessor(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning professor row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating professors: %w", err)
	}
	return out, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfessor(s rowScanner) (*domain.Professor, error) {
	var p domain.Professor
	var createdAt string
	if err := s.Scan(&p.ID, &p.Name, &p.Category, &p.Dependency, &createdAt); err != nil {
		return nil, err
	}
	p.CreatedAt = parseTimestamp(createdAt)
	return &p, nil
}
