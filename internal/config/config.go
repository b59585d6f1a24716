package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/carga/internal/workload"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "CARGA"

// Config is the resolved runtime configuration.
type Config struct {
	DBPath      string
	LogUseCases bool
	LogLevel    slog.Level

	UncappedCourseCode string
	LowCreditBonus     float64
	HoursPerProfessor  float64
}

// Load reads configuration from the environment, after loading an optional
// dotenv file: CARGA_ENV_FILE when set, otherwise ./.env if present.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	defaults := workload.DefaultPolicy()
	v.SetDefault("db", "")
	v.SetDefault("log_use_cases", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("uncapped_course", defaults.UncappedCourseCode)
	v.SetDefault("low_credit_bonus", defaults.LowCreditBonus)
	v.SetDefault("hours_per_professor", defaults.HoursPerProfessor)

	cfg := Config{
		DBPath:             v.GetString("db"),
		LogUseCases:        v.GetBool("log_use_cases"),
		UncappedCourseCode: strings.ToUpper(strings.TrimSpace(v.GetString("uncapped_course"))),
		LowCreditBonus:     v.GetFloat64("low_credit_bonus"),
		HoursPerProfessor:  v.GetFloat64("hours_per_professor"),
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".carga", "carga.db")
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return Config{}, fmt.Errorf("parsing %s_LOG_LEVEL: %w", EnvPrefix, err)
	}
	if cfg.HoursPerProfessor <= 0 {
		return Config{}, fmt.Errorf("%s_HOURS_PER_PROFESSOR must be positive, got %v", EnvPrefix, cfg.HoursPerProfessor)
	}
	return cfg, nil
}

func loadDotEnv() error {
	if path := os.Getenv(EnvPrefix + "_ENV_FILE"); path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("loading env file %s: %w", path, err)
		}
		return nil
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("loading .env: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking .env: %w", err)
	}
	return nil
}

// Policy returns the staffing constants with the configured overrides.
func (c Config) Policy() workload.Policy {
	p := workload.DefaultPolicy()
	p.UncappedCourseCode = c.UncappedCourseCode
	if c.LowCreditBonus > 0 {
		p.LowCreditBonus = c.LowCreditBonus
	}
	if c.HoursPerProfessor > 0 {
		p.HoursPerProfessor = c.HoursPerProfessor
	}
	return p
}
