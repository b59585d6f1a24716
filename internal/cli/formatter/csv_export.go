package formatter

import (
	"fmt"
	"io"
	"math"

	"github.com/alexanderramin/carga/internal/workload"
	"github.com/gocarina/gocsv"
)

// BucketCSVRow is one bucket of the exported staffing report.
type BucketCSVRow struct {
	Dependency         string  `csv:"dependency"`
	Level              string  `csv:"level"`
	ProfessorType      string  `csv:"professor_type"`
	Class              string  `csv:"class"`
	Sections           int     `csv:"sections"`
	Professors         int     `csv:"professors"`
	TotalHours         float64 `csv:"total_hours"`
	TotalPER           float64 `csv:"total_per"`
	AverageHours       float64 `csv:"average_hours"`
	StandardSize       float64 `csv:"standard_size"`
	SizeFallback       bool    `csv:"size_fallback"`
	StandardSections   float64 `csv:"standard_sections"`
	RequiredHours      float64 `csv:"required_hours"`
	RequiredProfessors float64 `csv:"required_professors"`
}

// BucketCSVRows converts metrics into export rows, rounding figures to two
// decimals.
func BucketCSVRows(metrics []workload.BucketMetrics) []*BucketCSVRow {
	rows := make([]*BucketCSVRow, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, &BucketCSVRow{
			Dependency:         m.Key.Dependency,
			Level:              string(m.Key.Level),
			ProfessorType:      string(m.Key.ProfessorType),
			Class:              string(m.Key.Class),
			Sections:           m.SectionCount,
			Professors:         m.ProfessorCount,
			TotalHours:         round2(m.TotalHours),
			TotalPER:           round2(m.TotalPER),
			AverageHours:       round2(m.AverageHours),
			StandardSize:       round2(m.StandardSize),
			SizeFallback:       m.SizeFallback,
			StandardSections:   round2(m.StandardSections),
			RequiredHours:      round2(m.Hours),
			RequiredProfessors: round2(m.Professors),
		})
	}
	return rows
}

// WriteStatsCSV writes the bucket metrics as CSV with a header row.
func WriteStatsCSV(w io.Writer, metrics []workload.BucketMetrics) error {
	rows := BucketCSVRows(metrics)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("writing stats csv: %w", err)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
