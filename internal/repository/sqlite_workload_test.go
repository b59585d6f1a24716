package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/carga/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkloadRepo_ListRows(t *testing.T) {
	database := testutil.NewTestDB(t)
	seed := testutil.SeedWorkload(t, database)
	repo := NewSQLiteWorkloadRepo(database)

	rows, err := repo.ListRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 7)

	var order []string
	for _, r := range rows {
		order = append(order, r.SessionID)
	}
	assert.Equal(t, []string{
		seed.BasicTeorica, seed.BasicUnknown,
		seed.AdvancedTeoricaA, seed.AdvancedLabA,
		seed.AdvancedTeoricaB,
		seed.UncappedTaller,
		seed.MathMagistral,
	}, order)

	teoA := rows[2]
	assert.Equal(t, "Teórica", teoA.SessionType)
	assert.Equal(t, 1.5, teoA.Duration)
	assert.Equal(t, "M,J", teoA.Days)
	assert.Equal(t, seed.GroupedSectionA, teoA.SectionNRC)
	assert.Equal(t, "GRP-A", teoA.CrossListTag)
	assert.Equal(t, 20, teoA.Enrollment)
	assert.Equal(t, map[string]float64{seed.Titular: 50, seed.Catedra: 50}, teoA.Dedications)
	assert.False(t, teoA.DedicationsMalformed)
	assert.Equal(t, "ISIS-3710", teoA.CourseCode)
	assert.Equal(t, 3, teoA.Credits)
	assert.Equal(t, 16, teoA.Weeks)
	assert.Equal(t, 3, teoA.Level)
	assert.Equal(t, "ISIS", teoA.DepartmentCode)
	require.Len(t, teoA.Professors, 2)
	assert.Equal(t, seed.Catedra, teoA.Professors[0].ID)
	assert.Equal(t, "Profesor de Cátedra", teoA.Professors[0].Category)
	assert.Equal(t, seed.Titular, teoA.Professors[1].ID)
	assert.Equal(t, "DEPARTAMENTO DE INGENIERIA DE SISTEMAS", teoA.Professors[1].Dependency)
}

func TestWorkloadRepo_ListRows_Empty(t *testing.T) {
	rows, err := NewSQLiteWorkloadRepo(testutil.NewTestDB(t)).ListRows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWorkloadRepo_ListRows_FlagsMalformedDedications(t *testing.T) {
	database := testutil.NewTestDB(t)
	seed := testutil.SeedWorkload(t, database)
	ctx := context.Background()
	_, err := database.ExecContext(ctx, `UPDATE sections SET professor_dedications = 'not json' WHERE nrc = ?`, seed.MathSection)
	require.NoError(t, err)

	rows, err := NewSQLiteWorkloadRepo(database).ListRows(ctx)
	require.NoError(t, err)

	last := rows[len(rows)-1]
	assert.Equal(t, seed.MathMagistral, last.SessionID)
	assert.True(t, last.DedicationsMalformed)
	assert.Empty(t, last.Dedications)
}

func TestWorkloadRepo_ListRows_NullColumnsReadAsZero(t *testing.T) {
	database := testutil.NewTestDB(t)
	seed := testutil.SeedWorkload(t, database)
	ctx := context.Background()
	_, err := database.ExecContext(ctx, `UPDATE sections SET enrollment = NULL WHERE nrc = ?`, seed.BasicSection)
	require.NoError(t, err)
	_, err = database.ExecContext(ctx, `UPDATE sessions SET duration = NULL WHERE id = ?`, seed.BasicTeorica)
	require.NoError(t, err)

	rows, err := NewSQLiteWorkloadRepo(database).ListRows(ctx)
	require.NoError(t, err)
	assert.Zero(t, rows[0].Enrollment)
	assert.Zero(t, rows[0].Duration)
}

func TestWorkloadRepo_ListRows_NonNumericColumnsReadAsZero(t *testing.T) {
	database := testutil.NewTestDB(t)
	seed := testutil.SeedWorkload(t, database)
	ctx := context.Background()
	for _, stmt := range []struct {
		query string
		arg   string
	}{
		{`UPDATE sections SET enrollment = 'n/a' WHERE nrc = ?`, seed.BasicSection},
		{`UPDATE sessions SET duration = 'dos' WHERE id = ?`, seed.BasicTeorica},
		{`UPDATE courses SET credits = 'tres' WHERE code = ?`, "ISIS-1221"},
		{`UPDATE sessions SET per = '??' WHERE id = ?`, seed.AdvancedLabA},
	} {
		_, err := database.ExecContext(ctx, stmt.query, stmt.arg)
		require.NoError(t, err)
	}

	rows, err := NewSQLiteWorkloadRepo(database).ListRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 7)

	basic := rows[0]
	assert.Equal(t, seed.BasicTeorica, basic.SessionID)
	assert.Zero(t, basic.Enrollment)
	assert.Zero(t, basic.Duration)
	assert.Zero(t, basic.Credits)
	assert.Equal(t, 16, basic.Weeks, "numeric columns beside the bad ones still read")
	assert.True(t, basic.NumbersMalformed)

	assert.Equal(t, seed.AdvancedLabA, rows[3].SessionID)
	assert.Zero(t, rows[3].PER)
	assert.True(t, rows[3].NumbersMalformed)

	teoA := rows[2]
	assert.Equal(t, 20, teoA.Enrollment)
	assert.Equal(t, 1.5, teoA.Duration)
	assert.False(t, teoA.NumbersMalformed)
}

func TestWorkloadRepo_ListRows_NumericTextParses(t *testing.T) {
	database := testutil.NewTestDB(t)
	seed := testutil.SeedWorkload(t, database)
	ctx := context.Background()
	_, err := database.ExecContext(ctx, `UPDATE sections SET enrollment = ' 41 ' WHERE nrc = ?`, seed.BasicSection)
	require.NoError(t, err)

	rows, err := NewSQLiteWorkloadRepo(database).ListRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, 41, rows[0].Enrollment)
	assert.False(t, rows[0].NumbersMalformed)
}

func TestSectionRepo_GetByNRC_NonNumericEnrollmentReadsAsZero(t *testing.T) {
	database := testutil.NewTestDB(t)
	seed := testutil.SeedWorkload(t, database)
	ctx := context.Background()
	_, err := database.ExecContext(ctx, `UPDATE sections SET enrollment = 'n/a' WHERE nrc = ?`, seed.BasicSection)
	require.NoError(t, err)

	sec, err := NewSQLiteSectionRepo(database).GetByNRC(ctx, seed.BasicSection)
	require.NoError(t, err)
	assert.Zero(t, sec.Enrollment)
	assert.Equal(t, 40, sec.Capacity)
}

func TestNumberOrZero(t *testing.T) {
	tests := []struct {
		name          string
		in            sql.NullString
		want          float64
		wantMalformed bool
	}{
		{"null", sql.NullString{}, 0, false},
		{"blank", sql.NullString{String: "  ", Valid: true}, 0, false},
		{"integer", sql.NullString{String: "40", Valid: true}, 40, false},
		{"real", sql.NullString{String: "1.5", Valid: true}, 1.5, false},
		{"text", sql.NullString{String: "n/a", Valid: true}, 0, true},
		{"nan", sql.NullString{String: "NaN", Valid: true}, 0, true},
		{"infinity", sql.NullString{String: "Inf", Valid: true}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, malformed := numberOrZero(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMalformed, malformed)
		})
	}
}

func TestWorkloadRepo_UpdatePER(t *testing.T) {
	database := testutil.NewTestDB(t)
	seed := testutil.SeedWorkload(t, database)
	repo := NewSQLiteWorkloadRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.UpdatePER(ctx, seed.AdvancedLabA, 25))

	got, err := NewSQLiteSessionRepo(database).GetByID(ctx, seed.AdvancedLabA)
	require.NoError(t, err)
	assert.Equal(t, 25.0, got.PER)

	assert.ErrorIs(t, repo.UpdatePER(ctx, "missing", 10), ErrNotFound)
}
