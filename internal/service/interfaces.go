package service

import (
	"context"

	"github.com/alexanderramin/carga/internal/app"
	"github.com/alexanderramin/carga/internal/domain"
)

type DepartmentService interface {
	Create(ctx context.Context, d *domain.Department) error
	GetByCode(ctx context.Context, code string) (*domain.Department, error)
	List(ctx context.Context) ([]*domain.Department, error)
}

type ProfessorService interface {
	Create(ctx context.Context, p *domain.Professor) error
	GetByID(ctx context.Context, id string) (*domain.Professor, error)
	List(ctx context.Context) ([]*domain.Professor, error)
}

type CourseService interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByCode(ctx context.Context, code string) (*domain.Course, error)
	List(ctx context.Context, departmentCode string) ([]*domain.Course, error)
}

type SectionService interface {
	Create(ctx context.Context, s *domain.Section) error
	GetByNRC(ctx context.Context, nrc string) (*domain.Section, error)
	List(ctx context.Context, courseCode string) ([]*domain.Section, error)
	app.DedicateUseCase
}

type SessionService interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	ListBySection(ctx context.Context, nrc string) ([]*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// WorkloadService runs the PER and staffing computations over the store.
type WorkloadService interface {
	app.RecomputePERUseCase
	app.StatisticsUseCase
	app.StandardSizesUseCase
}
