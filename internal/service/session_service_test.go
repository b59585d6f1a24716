package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/carga/internal/domain"
	"github.com/alexanderramin/carga/internal/repository"
	"github.com/alexanderramin/carga/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Create(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	sec := c.withSection(t)
	p := &domain.Professor{Name: "Ana"}
	require.NoError(t, c.professors.Create(ctx, p))

	s := &domain.Session{SectionNRC: sec.NRC, Type: " Laboratorio ", Duration: 2, Days: "V", ProfessorIDs: []string{p.ID}}
	require.NoError(t, c.sessions.Create(ctx, s))
	assert.NotEmpty(t, s.ID)

	list, err := c.sessions.ListBySection(ctx, sec.NRC)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Laboratorio", list[0].Type)
	assert.Equal(t, []string{p.ID}, list[0].ProfessorIDs)
	assert.Equal(t, domain.SessionLaboratorio, list[0].Kind())

	require.NoError(t, c.sessions.Delete(ctx, s.ID))
	_, err = c.sessions.GetByID(ctx, s.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionService_Create_UnknownSection(t *testing.T) {
	c := newCatalog(t)

	err := c.sessions.Create(context.Background(), &domain.Session{SectionNRC: "99999", Type: "Teórica"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionService_Create_RollsBackOnAssignmentFailure(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	sec := c.withSection(t)
	p := &domain.Professor{Name: "Ana"}
	require.NoError(t, c.professors.Create(ctx, p))

	injected := errors.New("injected")
	uow := &testutil.FailOnNthExecUoW{DB: c.db, FailOn: 2, Err: injected}
	svc := NewSessionService(repository.NewSQLiteSessionRepo(c.db), uow)

	err := svc.Create(ctx, &domain.Session{SectionNRC: sec.NRC, Type: "Teórica", Duration: 1.5, Days: "L,I", ProfessorIDs: []string{p.ID}})
	assert.ErrorIs(t, err, injected)

	list, err := c.sessions.ListBySection(ctx, sec.NRC)
	require.NoError(t, err)
	assert.Empty(t, list, "session row rolled back with its assignment")
}

func TestSessionService_Create_RejectsInvalid(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	sec := c.withSection(t)

	err := c.sessions.Create(ctx, &domain.Session{SectionNRC: sec.NRC, Type: "  "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type")

	err = c.sessions.Create(ctx, &domain.Session{SectionNRC: sec.NRC, Type: "Teórica", Duration: 30})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration")

	err = c.sessions.Create(ctx, &domain.Session{SectionNRC: sec.NRC, Type: "Teórica", ProfessorIDs: []string{""}})
	require.Error(t, err)
}

func TestSessionService_KeepsUnknownTypes(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	sec := c.withSection(t)

	s := &domain.Session{SectionNRC: sec.NRC, Type: "Tutoría", Duration: 1, Days: "S"}
	require.NoError(t, c.sessions.Create(ctx, s))

	got, err := c.sessions.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tutoría", got.Type)
	assert.Equal(t, domain.SessionOther, got.Kind())
	assert.Zero(t, got.PER, "PER stays zero until the next recompute")
}

func TestSessionService_ListBySection_Order(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	sec := c.withSection(t)

	first := &domain.Session{SectionNRC: sec.NRC, Type: "Teórica", Duration: 1.5, Days: "M,J"}
	require.NoError(t, c.sessions.Create(ctx, first))
	second := &domain.Session{SectionNRC: sec.NRC, Type: "Laboratorio", Duration: 2, Days: "V"}
	require.NoError(t, c.sessions.Create(ctx, second))

	list, err := c.sessions.ListBySection(ctx, sec.NRC)
	require.NoError(t, err)
	require.Len(t, list, 2)
	ids := []string{list[0].ID, list[1].ID}
	assert.ElementsMatch(t, []string{first.ID, second.ID}, ids)

	empty, err := c.sessions.ListBySection(ctx, "99999")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
