package app

import (
	"time"

	"github.com/alexanderramin/carga/internal/workload"
)

type PERRequest struct {
	// DryRun computes PER without writing it back.
	DryRun bool
}

// PERFailure is a session whose recomputed PER could not be stored.
type PERFailure struct {
	SessionID string
	Err       error
}

type PERResponse struct {
	RunID       string
	GeneratedAt time.Time
	Sizes       workload.StandardSizes
	Results     []workload.PERResult
	Skipped     []workload.PERSkip
	Updated     int
	Unchanged   int
	Failures    []PERFailure
	DryRun      bool
}
