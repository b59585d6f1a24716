package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/carga/internal/app"
)

// FormatStandardSizes renders the Tamaño Estándar report. Rows without
// advanced sections show the class fallback, marked with an asterisk.
func FormatStandardSizes(report *app.StandardSizeReport) string {
	var b strings.Builder

	if len(report.Rows) == 0 {
		b.WriteString(Dim("No departments registered.") + "\n")
		return RenderBox("Standard sizes", b.String())
	}

	headers := []string{"DEPT", "DEPENDENCY", "CLASS", "SECTIONS", "ENROLLED", "SIZE"}
	rows := make([][]string, 0, len(report.Rows))
	fallback := false
	for _, r := range report.Rows {
		size := Bold(Decimal(r.Value))
		if r.Fallback {
			size = StyleYellow.Render(Decimal(r.Value) + "*")
			fallback = true
		}
		rows = append(rows, []string{
			r.Department,
			r.Dependency,
			ClassBadge(r.Class),
			strconv.Itoa(r.SectionCount),
			strconv.Itoa(r.TotalEnrollment),
			size,
		})
	}
	b.WriteString(RenderTableRight(headers, rows, 3, 4, 5))
	if fallback {
		b.WriteString("\n" + Dim("* no advanced sections; class fallback used") + "\n")
	}

	return RenderBox("Standard sizes", b.String())
}
