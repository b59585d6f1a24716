package workload

import (
	"math"

	"github.com/alexanderramin/carga/internal/domain"
)

// HoursInput carries everything the recognized-hours formula reads.
type HoursInput struct {
	Duration   float64
	Days       string
	Credits    int
	Weeks      int
	Category   domain.ProfessorCategory
	CourseCode string
}

// RecognizedHours returns the teaching hours recognized to a professor for
// one session: weekly contact hours scaled by term length and capped at the
// course credits, with the low-credit bonus for non-Cátedra staff. The
// uncapped course takes the scaled contact hours as they are.
func RecognizedHours(in HoursInput, p Policy) float64 {
	raw := float64(domain.WeeklyFrequency(in.Days)) * in.Duration
	scaled := raw * float64(in.Weeks) / domain.FullTermWeeks

	base := math.Min(scaled, float64(in.Credits))
	if in.Credits == 2 && !in.Category.IsCatchAll() {
		base *= p.LowCreditBonus
	}
	if p.Uncapped(in.CourseCode) {
		base = scaled
	}
	return base
}
