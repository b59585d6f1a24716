package formatter

import (
	"testing"

	"github.com/alexanderramin/carga/internal/app"
	"github.com/alexanderramin/carga/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatStandardSizes_MarksFallback(t *testing.T) {
	report := &app.StandardSizeReport{Rows: []app.StandardSizeRow{
		{Department: "ISIS", Dependency: "Ingeniería de Sistemas y Computación", Class: domain.ClassTeorico, Value: 25.5, SectionCount: 2, TotalEnrollment: 51},
		{Department: "MATE", Dependency: "Matemáticas", Class: domain.ClassPractico, Value: 20, Fallback: true},
	}}

	out := stripANSI(FormatStandardSizes(report))

	assert.Contains(t, out, "STANDARD SIZES")
	assert.Contains(t, out, "25.5")
	assert.Contains(t, out, "20*")
	assert.Contains(t, out, "no advanced sections")
}

func TestFormatStandardSizes_Empty(t *testing.T) {
	out := stripANSI(FormatStandardSizes(&app.StandardSizeReport{}))
	assert.Contains(t, out, "No departments registered.")
}
