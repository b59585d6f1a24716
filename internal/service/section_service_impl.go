package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/carga/internal/db"
	"github.com/alexanderramin/carga/internal/domain"
	"github.com/alexanderramin/carga/internal/repository"
)

type sectionInput struct {
	NRC        string `validate:"required,numeric"`
	CourseCode string `validate:"required"`
	Enrollment int    `validate:"gte=0"`
	Capacity   int    `validate:"gte=0"`
}

type dedicationInput struct {
	ProfessorID string  `validate:"required"`
	Percentage  float64 `validate:"gte=0,lte=100"`
}

type sectionService struct {
	sections repository.SectionRepo
	courses  repository.CourseRepo
	uow      db.UnitOfWork
}

func NewSectionService(sections repository.SectionRepo, courses repository.CourseRepo, uow db.UnitOfWork) SectionService {
	return &sectionService{sections: sections, courses: courses, uow: uow}
}

func (s *sectionService) Create(ctx context.Context, sec *domain.Section) error {
	sec.NRC = strings.TrimSpace(sec.NRC)
	sec.CourseCode = strings.ToUpper(strings.TrimSpace(sec.CourseCode))
	sec.CrossListTag = strings.TrimSpace(sec.CrossListTag)
	err := validateInput("section", sectionInput{
		NRC:        sec.NRC,
		CourseCode: sec.CourseCode,
		Enrollment: sec.Enrollment,
		Capacity:   sec.Capacity,
	})
	if err != nil {
		return err
	}
	for id, pct := range sec.Dedications {
		if err := validateInput("dedication", dedicationInput{ProfessorID: id, Percentage: pct}); err != nil {
			return err
		}
	}
	if _, err := s.courses.GetByCode(ctx, sec.CourseCode); err != nil {
		return err
	}
	now := time.Now().UTC()
	sec.CreatedAt = now
	sec.UpdatedAt = now
	return s.sections.Create(ctx, sec)
}

func (s *sectionService) GetByNRC(ctx context.Context, nrc string) (*domain.Section, error) {
	return s.sections.GetByNRC(ctx, nrc)
}

// List returns every section, or only those of courseCode when it is not blank.
func (s *sectionService) List(ctx context.Context, courseCode string) ([]*domain.Section, error) {
	if courseCode == "" {
		return s.sections.List(ctx)
	}
	return s.sections.ListByCourse(ctx, courseCode)
}

// SetDedication records the percentage of a section attributed to one
// professor. Zero removes the professor from the section's dedications.
func (s *sectionService) SetDedication(ctx context.Context, nrc, professorID string, pct float64) (*domain.Section, error) {
	if err := validateInput("dedication", dedicationInput{ProfessorID: professorID, Percentage: pct}); err != nil {
		return nil, err
	}

	var updated *domain.Section
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSections := repository.NewSQLiteSectionRepo(tx)
		txProfessors := repository.NewSQLiteProfessorRepo(tx)

		sec, err := txSections.GetByNRC(ctx, nrc)
		if err != nil {
			return err
		}
		if _, err := txProfessors.GetByID(ctx, professorID); err != nil {
			return err
		}
		sec.SetDedication(professorID, pct)
		if err := txSections.UpdateDedications(ctx, sec.NRC, sec.Dedications); err != nil {
			return err
		}
		updated = sec
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("setting dedication on section %s: %w", nrc, err)
	}
	return updated, nil
}
