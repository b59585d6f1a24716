package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/carga/internal/app"
	"github.com/alexanderramin/carga/internal/workload"
)

const coverageBarWidth = 20

var statsHeaders = []string{
	"LEVEL", "PROFESSOR TYPE", "CLASS", "SECTIONS", "PROFS",
	"HOURS", "PER", "AVG HOURS", "STD SIZE", "STD SECTIONS", "REQ HOURS", "REQ PROFS",
}

// numeric columns of statsHeaders, right-aligned.
var statsNumeric = []int{3, 4, 5, 6, 7, 8, 9, 10, 11}

// FormatStats renders one table per dependency followed by the totals and
// the aggregation diagnostics.
func FormatStats(resp *app.StatsResponse) string {
	var b strings.Builder

	if len(resp.Buckets) == 0 {
		b.WriteString(Dim("No workload matches the filters.") + "\n")
	}

	for i, group := range groupByDependency(resp.Buckets) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(group[0].Key.Dependency) + "\n")

		rows := make([][]string, 0, len(group)+1)
		for _, m := range group {
			rows = append(rows, statsRow(m))
		}
		sub := workload.Totals(group)
		rows = append(rows, []string{
			Bold("Subtotal"), "", "",
			strconv.Itoa(sub.SectionCount), strconv.Itoa(sub.ProfessorCount),
			Decimal(sub.TotalHours), Decimal(sub.TotalPER), Decimal(sub.AverageHours), "",
			Decimal(sub.StandardSections), Decimal(sub.Hours), Bold(Decimal(sub.Professors)),
		})
		b.WriteString(RenderTableRight(statsHeaders, rows, statsNumeric...))
	}

	if hasFallback(resp.Buckets) {
		b.WriteString(Dim("* no computed standard size; class fallback used") + "\n")
	}

	if len(resp.Buckets) > 0 {
		t := resp.Totals
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s required hours, %s professors (%s recognized hours over %d sections)\n",
			Bold("Total:"),
			StyleGreen.Render(Decimal(t.Hours)),
			StyleGreen.Render(Decimal(t.Professors)),
			Decimal(t.TotalHours),
			t.SectionCount,
		))
	}

	b.WriteString("\n")
	b.WriteString(FormatDiagnostics(resp.Diagnostics))
	if resp.RunID != "" {
		b.WriteString(Dim(runLine(resp.RunID, resp.GeneratedAt)) + "\n")
	}

	return RenderBox("Workload", b.String())
}

// FormatDiagnostics renders the aggregation counters. Zero counters are
// omitted.
func FormatDiagnostics(d workload.Diagnostics) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %d of %d session-professor pairs\n",
		Dim("Included"), RenderCoverage(d.Included, d.Pairs, coverageBarWidth), d.Included, d.Pairs))

	counters := []struct {
		label string
		n     int
	}{
		{"unknown session type", d.UnknownSessionType},
		{"unmapped course level", d.UnmappedLevel},
		{"zero dedication", d.ZeroDedication},
		{"excluded category", d.ExcludedCategory},
		{"malformed dedications", d.MalformedDedications},
		{"non-numeric values read as zero", d.MalformedNumbers},
		{"sessions without staff", d.SessionsWithoutStaff},
	}
	for _, c := range counters {
		if c.n == 0 {
			continue
		}
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  %s: %d", c.label, c.n)) + "\n")
	}
	return b.String()
}

func statsRow(m workload.BucketMetrics) []string {
	size := Decimal(m.StandardSize)
	if m.SizeFallback {
		size += "*"
	}
	profs := Decimal(m.Professors)
	if m.Key.ProfessorType.IsCatchAll() {
		profs = Dim("--")
	}
	return []string{
		string(m.Key.Level),
		CategoryLabel(m.Key.ProfessorType),
		ClassBadge(m.Key.Class),
		strconv.Itoa(m.SectionCount),
		strconv.Itoa(m.ProfessorCount),
		Decimal(m.TotalHours),
		Decimal(m.TotalPER),
		Decimal(m.AverageHours),
		size,
		Decimal(m.StandardSections),
		Decimal(m.Hours),
		profs,
	}
}

// groupByDependency splits report-ordered metrics into runs sharing a
// dependency.
func groupByDependency(metrics []workload.BucketMetrics) [][]workload.BucketMetrics {
	var out [][]workload.BucketMetrics
	for _, m := range metrics {
		n := len(out)
		if n > 0 && out[n-1][0].Key.Dependency == m.Key.Dependency {
			out[n-1] = append(out[n-1], m)
			continue
		}
		out = append(out, []workload.BucketMetrics{m})
	}
	return out
}

func hasFallback(metrics []workload.BucketMetrics) bool {
	for _, m := range metrics {
		if m.SizeFallback {
			return true
		}
	}
	return false
}
