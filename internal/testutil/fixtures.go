package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/carga/internal/domain"
	"github.com/google/uuid"
)

var testNRCCounter atomic.Int64

func NewTestDepartment(code string) *domain.Department {
	return &domain.Department{
		Code:      code,
		Name:      domain.DependencyForDepartment(code),
		CreatedAt: time.Now().UTC(),
	}
}

// Professor options
type ProfessorOption func(*domain.Professor)

func WithCategory(c string) ProfessorOption {
	return func(p *domain.Professor) {
		p.Category = c
	}
}

func WithDependency(d string) ProfessorOption {
	return func(p *domain.Professor) {
		p.Dependency = d
	}
}

func WithProfessorID(id string) ProfessorOption {
	return func(p *domain.Professor) {
		p.ID = id
	}
}

func NewTestProfessor(name string, opts ...ProfessorOption) *domain.Professor {
	p := &domain.Professor{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  "Profesor Titular",
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Course options
type CourseOption func(*domain.Course)

func WithCredits(n int) CourseOption {
	return func(c *domain.Course) {
		c.Credits = n
	}
}

func WithLevel(n int) CourseOption {
	return func(c *domain.Course) {
		c.Level = n
	}
}

func WithWeeks(n int) CourseOption {
	return func(c *domain.Course) {
		c.Weeks = n
	}
}

// NewTestCourse returns a 3-credit, level 3, full-term course.
func NewTestCourse(code, departmentCode string, opts ...CourseOption) *domain.Course {
	c := &domain.Course{
		Code:           code,
		Name:           "Curso " + code,
		Credits:        3,
		Level:          3,
		DepartmentCode: departmentCode,
		Weeks:          domain.FullTermWeeks,
		CreatedAt:      time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Section options
type SectionOption func(*domain.Section)

func WithNRC(nrc string) SectionOption {
	return func(s *domain.Section) {
		s.NRC = nrc
	}
}

func WithEnrollment(n int) SectionOption {
	return func(s *domain.Section) {
		s.Enrollment = n
	}
}

func WithCapacity(n int) SectionOption {
	return func(s *domain.Section) {
		s.Capacity = n
	}
}

func WithCrossListTag(tag string) SectionOption {
	return func(s *domain.Section) {
		s.CrossListTag = tag
	}
}

func WithDedication(professorID string, pct float64) SectionOption {
	return func(s *domain.Section) {
		s.SetDedication(professorID, pct)
	}
}

func NewTestSection(courseCode string, opts ...SectionOption) *domain.Section {
	now := time.Now().UTC()
	s := &domain.Section{
		NRC:         fmt.Sprintf("%05d", 10000+testNRCCounter.Add(1)),
		CourseCode:  courseCode,
		Enrollment:  25,
		Capacity:    30,
		Dedications: map[string]float64{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Session options
type SessionOption func(*domain.Session)

func WithSessionID(id string) SessionOption {
	return func(s *domain.Session) {
		s.ID = id
	}
}

func WithSessionType(t string) SessionOption {
	return func(s *domain.Session) {
		s.Type = t
	}
}

func WithSchedule(duration float64, days string) SessionOption {
	return func(s *domain.Session) {
		s.Duration = duration
		s.Days = days
	}
}

func WithPER(per float64) SessionOption {
	return func(s *domain.Session) {
		s.PER = per
	}
}

func WithProfessors(ids ...string) SessionOption {
	return func(s *domain.Session) {
		s.ProfessorIDs = ids
	}
}

func WithCreatedAt(t time.Time) SessionOption {
	return func(s *domain.Session) {
		s.CreatedAt = t
	}
}

// NewTestSession returns a Teórica session meeting twice a week for 1.5h.
func NewTestSession(sectionNRC string, opts ...SessionOption) *domain.Session {
	s := &domain.Session{
		ID:         uuid.New().String(),
		SectionNRC: sectionNRC,
		Type:       "Teórica",
		Duration:   1.5,
		Days:       "L,I",
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
