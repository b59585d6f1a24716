package workload

import "github.com/alexanderramin/carga/internal/domain"

// PERFallback is returned when no band or range of the table covers the
// input: enrollments below 1, and Practico standard sizes below 10.
const PERFallback = 1

// unbounded marks an open upper end of a range.
const unbounded = -1

// perRange maps enrollments in [lo, hi] to a recognized headcount.
type perRange struct {
	lo, hi int
	value  func(pe int) int
}

func (r perRange) covers(pe int) bool {
	return pe >= r.lo && (r.hi == unbounded || pe <= r.hi)
}

func fixed(v int) func(int) int { return func(int) int { return v } }

func identity(pe int) int { return pe }

// halfOver60 recognizes every student up to 60 and half of each one beyond.
func halfOver60(pe int) int { return 60 + (pe-60)/2 }

// Ranges shared by every Teorico band above the promedio segment.
var teoricoTail = []perRange{
	{61, 120, halfOver60},
	{121, unbounded, fixed(90)},
}

func teoricoRanges(standardSize float64) []perRange {
	switch {
	case standardSize >= 30:
		return append([]perRange{
			{1, 10, fixed(10)},
			{11, 60, identity},
		}, teoricoTail...)
	case standardSize >= 21:
		promedio := int(standardSize)
		return append([]perRange{
			{1, 10, identity},
			{11, 20, fixed(20)},
			{21, promedio, fixed(promedio)},
			{promedio + 1, 60, identity},
		}, teoricoTail...)
	case standardSize >= 10:
		promedio := int(standardSize)
		return append([]perRange{
			{1, 10, identity},
			{11, promedio, fixed(promedio)},
			{promedio + 1, 60, identity},
		}, teoricoTail...)
	default:
		const promedio = 10
		return append([]perRange{
			{1, promedio, fixed(10)},
			{promedio + 1, 60, identity},
		}, teoricoTail...)
	}
}

func practicoRanges(standardSize float64) []perRange {
	switch {
	case standardSize >= 20:
		return []perRange{
			{1, 6, fixed(6)},
			{7, 25, identity},
			{26, unbounded, fixed(25)},
		}
	case standardSize >= 10:
		promedio := int(standardSize)
		return []perRange{
			{1, 10, identity},
			{11, promedio, fixed(promedio)},
			{promedio + 1, 25, identity},
			{26, unbounded, fixed(25)},
		}
	default:
		// The published table has no Practico band below 10.
		return nil
	}
}

// ResolvePER maps a session's effective enrollment pe to its recognized
// headcount (PER) using the staffing table for its class and the
// department's standard size. Bands are chosen largest threshold first and
// ranges are scanned in order; the first covering range wins.
func ResolvePER(class domain.ClassType, standardSize float64, pe int) int {
	var ranges []perRange
	switch class {
	case domain.ClassTeorico:
		ranges = teoricoRanges(standardSize)
	case domain.ClassPractico:
		ranges = practicoRanges(standardSize)
	}
	for _, r := range ranges {
		if r.covers(pe) {
			return r.value(pe)
		}
	}
	return PERFallback
}
