package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/carga/internal/db"
	"github.com/alexanderramin/carga/internal/domain"
	"github.com/alexanderramin/carga/internal/repository"
	"github.com/google/uuid"
)

type sessionInput struct {
	SectionNRC   string   `validate:"required"`
	Type         string   `validate:"required"`
	Duration     float64  `validate:"gte=0,lte=24"`
	ProfessorIDs []string `validate:"dive,required"`
}

type sessionService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
}

func NewSessionService(sessions repository.SessionRepo, uow db.UnitOfWork) SessionService {
	return &sessionService{sessions: sessions, uow: uow}
}

// Create stores the session and its professor assignments in one
// transaction. The PER starts at zero until the next recompute.
func (s *sessionService) Create(ctx context.Context, session *domain.Session) error {
	session.Type = strings.TrimSpace(session.Type)
	session.Days = strings.TrimSpace(session.Days)
	err := validateInput("session", sessionInput{
		SectionNRC:   session.SectionNRC,
		Type:         session.Type,
		Duration:     session.Duration,
		ProfessorIDs: session.ProfessorIDs,
	})
	if err != nil {
		return err
	}
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	session.CreatedAt = time.Now().UTC()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteSectionRepo(tx).GetByNRC(ctx, session.SectionNRC); err != nil {
			return err
		}
		return repository.NewSQLiteSessionRepo(tx).Create(ctx, session)
	})
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) ListBySection(ctx context.Context, nrc string) ([]*domain.Session, error) {
	return s.sessions.ListBySection(ctx, nrc)
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}
