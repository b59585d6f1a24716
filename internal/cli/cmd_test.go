package cli

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/carga/internal/app"
	"github.com/alexanderramin/carga/internal/domain"
	"github.com/alexanderramin/carga/internal/repository"
	"github.com/alexanderramin/carga/internal/service"
	"github.com/alexanderramin/carga/internal/testutil"
	"github.com/alexanderramin/carga/internal/workload"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires a full App over database.
func newTestApp(database *sql.DB) *App {
	uow := testutil.NewTestUoW(database)
	deptRepo := repository.NewSQLiteDepartmentRepo(database)
	courseRepo := repository.NewSQLiteCourseRepo(database)
	sectionRepo := repository.NewSQLiteSectionRepo(database)

	return &App{
		Departments: service.NewDepartmentService(deptRepo),
		Professors:  service.NewProfessorService(repository.NewSQLiteProfessorRepo(database)),
		Courses:     service.NewCourseService(courseRepo, deptRepo),
		Sections:    service.NewSectionService(sectionRepo, courseRepo, uow),
		Sessions:    service.NewSessionService(repository.NewSQLiteSessionRepo(database), uow),
		Workload: service.NewWorkloadService(
			repository.NewSQLiteWorkloadRepo(database),
			deptRepo,
			workload.DefaultPolicy(),
		),
	}
}

// testApp wires an App backed by an empty in-memory DB.
func testApp(t *testing.T) *App {
	t.Helper()
	return newTestApp(testutil.NewTestDB(t))
}

// seededApp wires an App over the SeedWorkload faculty.
func seededApp(t *testing.T) (*App, testutil.Seeded) {
	t.Helper()
	database := testutil.NewTestDB(t)
	seed := testutil.SeedWorkload(t, database)
	return newTestApp(database), seed
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "carga")
	assert.Contains(t, output, "stats")
}

// --- catalog ---

func TestCatalogCmds_BuildAFaculty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "department", "add", "isis")
	require.NoError(t, err)
	assert.Contains(t, out, "Created department ISIS (Ingeniería de Sistemas y Computación)")

	out, err = executeCmd(t, app, "professor", "add", "--id", "p1", "--name", "Ana Ruiz", "--category", "Profesor Asociado")
	require.NoError(t, err)
	assert.Contains(t, out, "Created professor Ana Ruiz [p1] as Asociado")

	out, err = executeCmd(t, app, "course", "add", "isis-3710", "--name", "Arquitectura", "--department", "ISIS", "--credits", "3", "--level", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Created course ISIS-3710 (3 credits, level 3)")

	out, err = executeCmd(t, app, "section", "add", "20001", "--course", "ISIS-3710", "--enrollment", "25", "--dedication", "p1=100")
	require.NoError(t, err)
	assert.Contains(t, out, "Created section 20001 of ISIS-3710 (25 enrolled)")

	out, err = executeCmd(t, app, "session", "add", "--section", "20001", "--type", "Teórica", "--duration", "1.5", "--days", "L,I", "--professor", "p1")
	require.NoError(t, err)
	assert.Contains(t, out, "on section 20001")
	assert.NotContains(t, out, "Warning")

	out, err = executeCmd(t, app, "department", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ISIS")

	out, err = executeCmd(t, app, "course", "list", "--department", "ISIS")
	require.NoError(t, err)
	assert.Contains(t, out, "ISIS-3710")

	out, err = executeCmd(t, app, "section", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "p1 100%")

	out, err = executeCmd(t, app, "session", "list", "--section", "20001")
	require.NoError(t, err)
	assert.Contains(t, out, "Teórica")
	assert.Contains(t, out, "Teorico")

	out, err = executeCmd(t, app, "professor", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana Ruiz")
}

func TestCourseAdd_UnknownDepartment(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "course", "add", "MATE-1203", "--name", "Cálculo", "--department", "MATE", "--credits", "3", "--level", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCourseAdd_RequiresFlags(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "course", "add", "ISIS-1221")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestSectionAdd_InvalidDedication(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "section", "add", "1", "--course", "X", "--dedication", "p1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want ID=PERCENT")
}

func TestSessionAdd_WarnsOnUnknownType(t *testing.T) {
	app, seed := seededApp(t)

	out, err := executeCmd(t, app, "session", "add", "--section", seed.BasicSection, "--type", "Tutoría", "--professor", seed.Titular)
	require.NoError(t, err)
	assert.Contains(t, out, "not a recognized session type")
}

func TestSessionRemove(t *testing.T) {
	app, seed := seededApp(t)

	out, err := executeCmd(t, app, "session", "remove", seed.BasicUnknown)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed session "+seed.BasicUnknown)

	_, err = app.Sessions.GetByID(context.Background(), seed.BasicUnknown)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// --- section dedicate ---

func TestSectionDedicate_WithArgs(t *testing.T) {
	app, seed := seededApp(t)

	out, err := executeCmd(t, app, "section", "dedicate", seed.GroupedSectionA, seed.Catedra, "25%")
	require.NoError(t, err)
	assert.Contains(t, out, "prof-catedra 25%")
	assert.Contains(t, out, "prof-titular 50%")
}

func TestSectionDedicate_ZeroRemovesProfessor(t *testing.T) {
	app, seed := seededApp(t)

	out, err := executeCmd(t, app, "section", "dedicate", seed.GroupedSectionA, seed.Catedra, "0")
	require.NoError(t, err)
	assert.NotContains(t, out, "prof-catedra")
}

func TestSectionDedicate_NonInteractiveNeedsArgs(t *testing.T) {
	app, seed := seededApp(t)

	_, err := executeCmd(t, app, "section", "dedicate", seed.BasicSection)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required when not on a terminal")
}

func TestSectionDedicate_FormAborted(t *testing.T) {
	app, seed := seededApp(t)
	app.IsInteractive = func() bool { return true }
	ran := false
	app.RunForm = func(*huh.Form) error {
		ran = true
		return huh.ErrUserAborted
	}

	out, err := executeCmd(t, app, "section", "dedicate", seed.BasicSection)
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Contains(t, out, "Aborted.")
}

func TestSectionDedicate_RejectsOutOfRange(t *testing.T) {
	a, seed := seededApp(t)

	_, err := executeCmd(t, a, "section", "dedicate", seed.BasicSection, seed.Titular, "150")
	require.Error(t, err)
	var verr *app.ValidationError
	assert.ErrorAs(t, err, &verr)
}

// --- per recompute ---

func TestPERRecompute_RequiresConfirmation(t *testing.T) {
	app, _ := seededApp(t)

	_, err := executeCmd(t, app, "per", "recompute")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestPERRecompute_Yes(t *testing.T) {
	app, seed := seededApp(t)

	out, err := executeCmd(t, app, "per", "recompute", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "6 updated, 0 unchanged, 0 failed")
	assert.Contains(t, out, seed.BasicUnknown+": unknown session type")

	s, err := app.Sessions.GetByID(context.Background(), seed.AdvancedTeoricaA)
	require.NoError(t, err)
	assert.Equal(t, 50.0, s.PER)
}

func TestPERRecompute_DryRunWritesNothing(t *testing.T) {
	app, seed := seededApp(t)

	out, err := executeCmd(t, app, "per", "recompute", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing written")

	s, err := app.Sessions.GetByID(context.Background(), seed.AdvancedTeoricaA)
	require.NoError(t, err)
	assert.Zero(t, s.PER)
}

func TestPERRecompute_InteractiveDeclined(t *testing.T) {
	app, seed := seededApp(t)
	app.IsInteractive = func() bool { return true }
	app.RunForm = func(*huh.Form) error { return nil }

	out, err := executeCmd(t, app, "per", "recompute")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	s, err := app.Sessions.GetByID(context.Background(), seed.BasicTeorica)
	require.NoError(t, err)
	assert.Zero(t, s.PER)
}

type failingRecompute struct{}

func (failingRecompute) RecomputePER(context.Context, app.PERRequest) (*app.PERResponse, error) {
	return &app.PERResponse{
		RunID:    "run-x",
		Updated:  1,
		Failures: []app.PERFailure{{SessionID: "ses-1", Err: errors.New("locked")}},
	}, nil
}

func TestPERRecompute_ReportsWriteFailures(t *testing.T) {
	a := testApp(t)
	a.RecomputePER = failingRecompute{}

	out, err := executeCmd(t, a, "per", "recompute", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 PER writes failed")
	assert.Contains(t, out, "locked")
}

// --- stats ---

func recomputed(t *testing.T) (*App, testutil.Seeded) {
	t.Helper()
	a, seed := seededApp(t)
	_, err := a.Workload.RecomputePER(context.Background(), app.PERRequest{})
	require.NoError(t, err)
	return a, seed
}

func TestStatsShow(t *testing.T) {
	a, _ := recomputed(t)

	out, err := executeCmd(t, a, "stats", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "INGENIERÍA DE SISTEMAS Y COMPUTACIÓN")
	assert.Contains(t, out, "Subtotal")
	assert.Contains(t, out, "6 of 8 session-professor pairs")
	assert.Contains(t, out, "excluded category: 1")
}

func TestStatsShow_Filters(t *testing.T) {
	a, _ := recomputed(t)

	out, err := executeCmd(t, a, "stats", "show", "--dependency", "ISIS", "--level", "avanzado", "--class", "practico")
	require.NoError(t, err)
	assert.Contains(t, out, "Practico")
	assert.NotContains(t, out, "Basico e intermedio")
	assert.NotContains(t, out, "Teorico")
}

func TestStatsShow_RejectsUnknownLevel(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "stats", "show", "--level", "posgrado")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown level")
}

func TestStatsSizes(t *testing.T) {
	a, _ := seededApp(t)

	out, err := executeCmd(t, a, "stats", "sizes")
	require.NoError(t, err)
	assert.Contains(t, out, "STANDARD SIZES")
	assert.Contains(t, out, "ISIS")
	assert.Contains(t, out, "MATE")
	assert.Contains(t, out, "class fallback used")
}

func TestStatsExport_File(t *testing.T) {
	a, _ := recomputed(t)
	path := filepath.Join(t.TempDir(), "stats.csv")

	out, err := executeCmd(t, a, "stats", "export", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 4 buckets to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "dependency,level,professor_type,class"))
	assert.True(t, strings.HasPrefix(lines[1], "Ingeniería de Sistemas y Computación,Basico e intermedio,Titular,Teorico,1,1,2.34,40,"))
}

func TestStatsExport_Stdout(t *testing.T) {
	a, _ := recomputed(t)

	out, err := executeCmd(t, a, "stats", "export", "-o", "-", "--type", "Cátedra")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], ",Avanzado,Cátedra,Teorico,")
}

func TestStatsBrowse_NeedsTerminal(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "stats", "browse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestStatsRequestFromFlags(t *testing.T) {
	var f statsFilters
	require.NoError(t, f.level.Set("Basico"))
	require.NoError(t, f.class.Set("TEORICO"))
	require.NoError(t, f.category.Set("Profesor Titular"))
	f.dependency = "ISIS"

	assert.Equal(t, app.StatsRequest{
		Dependency:    "ISIS",
		Level:         domain.LevelBasic,
		ProfessorType: domain.CategoryTitular,
		Class:         domain.ClassTeorico,
	}, f.request())
}
