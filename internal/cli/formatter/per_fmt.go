package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/carga/internal/app"
	"github.com/alexanderramin/carga/internal/workload"
)

// FormatPER renders a PER recomputation: one row per session with its
// effective enrollment, the standard size it was resolved against and the
// new PER, then skips and write failures.
func FormatPER(resp *app.PERResponse) string {
	var b strings.Builder

	headers := []string{"SESSION", "SECTION", "DEPT", "CLASS", "ENROLLED", "GROUP", "STD SIZE", "OLD", "PER"}
	rows := make([][]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		rows = append(rows, perRow(r))
	}
	if len(rows) > 0 {
		b.WriteString(RenderTableRight(headers, rows, 4, 5, 6, 7, 8))
	} else {
		b.WriteString(Dim("No sessions to recompute.") + "\n")
	}

	if len(resp.Skipped) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Skipped") + "\n")
		for _, s := range resp.Skipped {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  %s: %s", ShortID(s.SessionID), s.Reason)) + "\n")
		}
	}

	if len(resp.Failures) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Write failures") + "\n")
		for _, f := range resp.Failures {
			b.WriteString(StyleRed.Render(fmt.Sprintf("  %s: %v", ShortID(f.SessionID), f.Err)) + "\n")
		}
	}

	b.WriteString("\n")
	if resp.DryRun {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("Dry run: %d sessions would change, nothing written.", changedCount(resp.Results))) + "\n")
	} else {
		b.WriteString(fmt.Sprintf("%s updated, %s unchanged, %s failed\n",
			StyleGreen.Render(strconv.Itoa(resp.Updated)),
			Dim(strconv.Itoa(resp.Unchanged)),
			failureCount(len(resp.Failures)),
		))
	}
	b.WriteString(Dim(runLine(resp.RunID, resp.GeneratedAt)) + "\n")

	return RenderBox("PER", b.String())
}

func perRow(r workload.PERResult) []string {
	size := Decimal(r.StandardSize)
	if r.SizeFallback {
		size += "*"
	}
	group := Dim("--")
	if r.Effective.Grouped {
		group = strconv.Itoa(r.Effective.GroupSize)
	}
	per := strconv.Itoa(r.PER)
	if r.Changed() {
		per = StyleGreen.Render(per)
	}
	return []string{
		ShortID(r.SessionID),
		r.SectionNRC,
		r.Department,
		ClassBadge(r.Class),
		strconv.Itoa(r.Effective.Enrollment),
		group,
		size,
		Dim(Decimal(r.Previous)),
		per,
	}
}

func changedCount(results []workload.PERResult) int {
	n := 0
	for _, r := range results {
		if r.Changed() {
			n++
		}
	}
	return n
}

func failureCount(n int) string {
	if n == 0 {
		return Dim("0")
	}
	return StyleRed.Render(strconv.Itoa(n))
}
