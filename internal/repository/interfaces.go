package repository

import (
	"context"

	"github.com/alexanderramin/carga/internal/domain"
)

type DepartmentRepo interface {
	Create(ctx context.Context, d *domain.Department) error
	GetByCode(ctx context.Context, code string) (*domain.Department, error)
	List(ctx context.Context) ([]*domain.Department, error)
}

type ProfessorRepo interface {
	Create(ctx context.Context, p *domain.Professor) error
	GetByID(ctx context.Context, id string) (*domain.Professor, error)
	List(ctx context.Context) ([]*domain.Professor, error)
}

type CourseRepo interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByCode(ctx context.Context, code string) (*domain.Course, error)
	// List returns all courses, or only those of departmentCode when it is
	// not blank.
	List(ctx context.Context, departmentCode string) ([]*domain.Course, error)
}

type SectionRepo interface {
	Create(ctx context.Context, s *domain.Section) error
	GetByNRC(ctx context.Context, nrc string) (*domain.Section, error)
	List(ctx context.Context) ([]*domain.Section, error)
	ListByCourse(ctx context.Context, courseCode string) ([]*domain.Section, error)
	UpdateDedications(ctx context.Context, nrc string, dedications map[string]float64) error
}

type SessionRepo interface {
	// Create inserts the session and links its ProfessorIDs.
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	ListBySection(ctx context.Context, nrc string) ([]*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// WorkloadRepo is the read/write surface of the workload engine.
type WorkloadRepo interface {
	// ListRows returns every session joined with its section, course and
	// assigned professors, ordered by section NRC, session creation time
	// and session ID.
	ListRows(ctx context.Context) ([]domain.WorkloadRow, error)
	// UpdatePER stores a session's recomputed PER.
	UpdatePER(ctx context.Context, sessionID string, per float64) error
}
