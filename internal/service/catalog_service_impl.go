package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/carga/internal/domain"
	"github.com/alexanderramin/carga/internal/repository"
	"github.com/google/uuid"
)

type departmentInput struct {
	Code string `validate:"required,alphanum,max=8"`
	Name string `validate:"required"`
}

type departmentService struct {
	departments repository.DepartmentRepo
}

func NewDepartmentService(departments repository.DepartmentRepo) DepartmentService {
	return &departmentService{departments: departments}
}

func (s *departmentService) Create(ctx context.Context, d *domain.Department) error {
	d.Code = strings.ToUpper(strings.TrimSpace(d.Code))
	if strings.TrimSpace(d.Name) == "" {
		d.Name = domain.DependencyForDepartment(d.Code)
	}
	if err := validateInput("department", departmentInput{Code: d.Code, Name: d.Name}); err != nil {
		return err
	}
	d.CreatedAt = time.Now().UTC()
	return s.departments.Create(ctx, d)
}

func (s *departmentService) GetByCode(ctx context.Context, code string) (*domain.Department, error) {
	return s.departments.GetByCode(ctx, code)
}

func (s *departmentService) List(ctx context.Context) ([]*domain.Department, error) {
	return s.departments.List(ctx)
}

type professorInput struct {
	Name string `validate:"required"`
}

type professorService struct {
	professors repository.ProfessorRepo
}

func NewProfessorService(professors repository.ProfessorRepo) ProfessorService {
	return &professorService{professors: professors}
}

// Create stores the professor with the category as given; canonicalization
// happens when workload is computed.
func (s *professorService) Create(ctx context.Context, p *domain.Professor) error {
	p.Name = strings.TrimSpace(p.Name)
	if err := validateInput("professor", professorInput{Name: p.Name}); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now().UTC()
	return s.professors.Create(ctx, p)
}

func (s *professorService) GetByID(ctx context.Context, id string) (*domain.Professor, error) {
	return s.professors.GetByID(ctx, id)
}

func (s *professorService) List(ctx context.Context) ([]*domain.Professor, error) {
	return s.professors.List(ctx)
}

type courseInput struct {
	Code           string `validate:"required,max=16"`
	Name           string `validate:"required"`
	Credits        int    `validate:"gte=0,lte=20"`
	Level          int    `validate:"gte=0,lte=9"`
	DepartmentCode string `validate:"required"`
	Weeks          int    `validate:"gte=0,lte=52"`
}

type courseService struct {
	courses     repository.CourseRepo
	departments repository.DepartmentRepo
}

func NewCourseService(courses repository.CourseRepo, departments repository.DepartmentRepo) CourseService {
	return &courseService{courses: courses, departments: departments}
}

func (s *courseService) Create(ctx context.Context, c *domain.Course) error {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	c.DepartmentCode = strings.ToUpper(strings.TrimSpace(c.DepartmentCode))
	if c.Weeks == 0 {
		c.Weeks = domain.FullTermWeeks
	}
	err := validateInput("course", courseInput{
		Code:           c.Code,
		Name:           c.Name,
		Credits:        c.Credits,
		Level:          c.Level,
		DepartmentCode: c.DepartmentCode,
		Weeks:          c.Weeks,
	})
	if err != nil {
		return err
	}
	if _, err := s.departments.GetByCode(ctx, c.DepartmentCode); err != nil {
		return err
	}
	c.CreatedAt = time.Now().UTC()
	return s.courses.Create(ctx, c)
}

func (s *courseService) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	return s.courses.GetByCode(ctx, code)
}

func (s *courseService) List(ctx context.Context, departmentCode string) ([]*domain.Course, error) {
	return s.courses.List(ctx, departmentCode)
}
