package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/carga/internal/workload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory with a fake home so no real
// .env or database path leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	for _, k := range []string{"DB", "LOG_USE_CASES", "LOG_LEVEL", "UNCAPPED_COURSE", "LOW_CREDIT_BONUS", "HOURS_PER_PROFESSOR", "ENV_FILE"} {
		t.Setenv(EnvPrefix+"_"+k, "")
		require.NoError(t, os.Unsetenv(EnvPrefix+"_"+k))
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".carga", "carga.db"), cfg.DBPath)
	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, workload.DefaultPolicy(), cfg.Policy())
}

func TestLoad_FromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("CARGA_DB", "/tmp/carga-test.db")
	t.Setenv("CARGA_LOG_USE_CASES", "true")
	t.Setenv("CARGA_LOG_LEVEL", "debug")
	t.Setenv("CARGA_UNCAPPED_COURSE", " isis-4990 ")
	t.Setenv("CARGA_HOURS_PER_PROFESSOR", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/carga-test.db", cfg.DBPath)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	p := cfg.Policy()
	assert.Equal(t, "ISIS-4990", p.UncappedCourseCode)
	assert.Equal(t, 10.0, p.HoursPerProfessor)
	assert.Equal(t, 1.17, p.LowCreditBonus)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CARGA_UNCAPPED_COURSE=IIND-4000\nCARGA_LOG_USE_CASES=1\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("CARGA_UNCAPPED_COURSE")
		os.Unsetenv("CARGA_LOG_USE_CASES")
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "IIND-4000", cfg.UncappedCourseCode)
	assert.True(t, cfg.LogUseCases)
}

func TestLoad_ExplicitEnvFileMustExist(t *testing.T) {
	dir := isolate(t)
	t.Setenv("CARGA_ENV_FILE", filepath.Join(dir, "missing.env"))

	_, err := Load()
	assert.ErrorContains(t, err, "loading env file")
}

func TestLoad_RejectsBadValues(t *testing.T) {
	isolate(t)
	t.Setenv("CARGA_LOG_LEVEL", "chatty")

	_, err := Load()
	assert.ErrorContains(t, err, "CARGA_LOG_LEVEL")

	t.Setenv("CARGA_LOG_LEVEL", "info")
	t.Setenv("CARGA_HOURS_PER_PROFESSOR", "0")

	_, err = Load()
	assert.ErrorContains(t, err, "must be positive")
}

func TestConfig_PolicyBlankUncappedDisablesBypass(t *testing.T) {
	cfg := Config{HoursPerProfessor: 9}

	p := cfg.Policy()

	assert.False(t, p.Uncapped(workload.DefaultUncappedCourseCode))
}
