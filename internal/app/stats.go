package app

import (
	"time"

	"github.com/alexanderramin/carga/internal/domain"
	"github.com/alexanderramin/carga/internal/workload"
)

// StatsRequest filters the reported buckets. Blank fields match everything.
type StatsRequest struct {
	Dependency    string
	Level         domain.LevelBand
	ProfessorType domain.ProfessorCategory
	Class         domain.ClassType
}

// Matches reports whether key passes every set filter.
func (r StatsRequest) Matches(key workload.BucketKey) bool {
	if r.Dependency != "" && r.Dependency != key.Dependency && domain.DependencyForDepartment(r.Dependency) != key.Dependency {
		return false
	}
	if r.Level != "" && r.Level != key.Level {
		return false
	}
	if r.ProfessorType != "" && r.ProfessorType != key.ProfessorType {
		return false
	}
	if r.Class != "" && r.Class != key.Class {
		return false
	}
	return true
}

type StatsResponse struct {
	RunID       string
	GeneratedAt time.Time
	Buckets     []workload.BucketMetrics
	Totals      workload.BucketMetrics
	Diagnostics workload.Diagnostics
	Sizes       workload.StandardSizes
	// Aggregation holds the leaves behind Buckets, for drill-down views.
	Aggregation *workload.Aggregation
}

// StandardSizeRow is one department and class of the size report.
type StandardSizeRow struct {
	Department      string
	Dependency      string
	Class           domain.ClassType
	Value           float64
	Fallback        bool
	SectionCount    int
	TotalEnrollment int
}

type StandardSizeReport struct {
	GeneratedAt time.Time
	Rows        []StandardSizeRow
}
