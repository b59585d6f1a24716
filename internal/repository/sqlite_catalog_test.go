package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/carga/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentRepo_CreateGetList(t *testing.T) {
	repo := NewSQLiteDepartmentRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestDepartment("MATE")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestDepartment("ISIS")))

	got, err := repo.GetByCode(ctx, "isis")
	require.NoError(t, err)
	assert.Equal(t, "ISIS", got.Code)
	assert.Equal(t, "Ingeniería de Sistemas y Computación", got.Name)
	assert.False(t, got.CreatedAt.IsZero())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ISIS", list[0].Code)
	assert.Equal(t, "MATE", list[1].Code)
}

func TestDepartmentRepo_DuplicateCode(t *testing.T) {
	repo := NewSQLiteDepartmentRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestDepartment("ISIS")))
	assert.Error(t, repo.Create(ctx, testutil.NewTestDepartment("ISIS")))
}

func TestDepartmentRepo_GetByCode_NotFound(t *testing.T) {
	repo := NewSQLiteDepartmentRepo(testutil.NewTestDB(t))

	_, err := repo.GetByCode(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfessorRepo_CreateGetList(t *testing.T) {
	repo := NewSQLiteProfessorRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p1 := testutil.NewTestProfessor("Zoe", testutil.WithCategory("Profesor Asociado"), testutil.WithDependency("ISIS"))
	p2 := testutil.NewTestProfessor("Ana", testutil.WithCategory("AGD"))
	require.NoError(t, repo.Create(ctx, p1))
	require.NoError(t, repo.Create(ctx, p2))

	got, err := repo.GetByID(ctx, p1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Zoe", got.Name)
	assert.Equal(t, "Profesor Asociado", got.Category)
	assert.Equal(t, "ISIS", got.Dependency)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].Name, "ordered by name")

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCourseRepo_CreateGetList(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, NewSQLiteDepartmentRepo(database).Create(ctx, testutil.NewTestDepartment("ISIS")))
	require.NoError(t, NewSQLiteDepartmentRepo(database).Create(ctx, testutil.NewTestDepartment("MATE")))
	repo := NewSQLiteCourseRepo(database)

	require.NoError(t, repo.Create(ctx, testutil.NewTestCourse("ISIS-1221", "ISIS", testutil.WithCredits(2), testutil.WithLevel(1))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestCourse("ISIS-3710", "ISIS", testutil.WithWeeks(8))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestCourse("MATE-1203", "MATE")))

	got, err := repo.GetByCode(ctx, "isis-1221")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Credits)
	assert.Equal(t, 1, got.Level)
	assert.Equal(t, 16, got.Weeks)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	isis, err := repo.List(ctx, "isis")
	require.NoError(t, err)
	require.Len(t, isis, 2)
	assert.Equal(t, 8, isis[1].Weeks)
}

func TestCourseRepo_UnknownDepartmentRejected(t *testing.T) {
	repo := NewSQLiteCourseRepo(testutil.NewTestDB(t))

	err := repo.Create(context.Background(), testutil.NewTestCourse("XXXX-1000", "XXXX"))
	assert.Error(t, err)
}

func TestCourseRepo_NullNumericsReadAsZero(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, NewSQLiteDepartmentRepo(database).Create(ctx, testutil.NewTestDepartment("ISIS")))
	_, err := database.ExecContext(ctx,
		`INSERT INTO courses (code, name, department_code, created_at) VALUES ('ISIS-0000', 'Legacy', 'ISIS', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	got, err := NewSQLiteCourseRepo(database).GetByCode(ctx, "ISIS-0000")
	require.NoError(t, err)
	assert.Zero(t, got.Credits)
	assert.Zero(t, got.Level)
	assert.Zero(t, got.Weeks)
}
