package workload

import (
	"math"
	"sort"

	"github.com/alexanderramin/carga/internal/domain"
)

// Clamp bounds for the standard section size, per class.
var sizeBounds = map[domain.ClassType]struct{ floor, ceiling float64 }{
	domain.ClassTeorico:  {10, 30},
	domain.ClassPractico: {10, 20},
}

// StandardSize is the clamped average section enrollment of one department
// and class, computed over advanced-level courses.
type StandardSize struct {
	Value           float64
	SectionCount    int
	TotalEnrollment int
}

// StandardSizes is keyed by department code, then class.
type StandardSizes map[string]map[domain.ClassType]StandardSize

// Lookup returns the standard size for a department and class. ok is false
// when no advanced section of that class exists, or the value is zero.
func (s StandardSizes) Lookup(department string, class domain.ClassType) (float64, bool) {
	byClass, ok := s[department]
	if !ok {
		return 0, false
	}
	size, ok := byClass[class]
	if !ok || size.Value == 0 {
		return 0, false
	}
	return size.Value, true
}

// Departments returns the department codes present, sorted.
func (s StandardSizes) Departments() []string {
	out := make([]string, 0, len(s))
	for dept := range s {
		out = append(out, dept)
	}
	sort.Strings(out)
	return out
}

// ComputeStandardSizes computes the Tamaño Estándar of every department and
// class from level 3–4 sessions. Cross-listed groups are normalized over the
// whole snapshot before filtering, so a group spanning level bands gives its
// advanced sections the same effective enrollment their PER uses. Each
// section counts once per class and sessions of unrecognized type are
// ignored. The average is rounded to two decimals and then clamped.
func ComputeStandardSizes(rows []domain.WorkloadRow) StandardSizes {
	advanced := make([]domain.WorkloadRow, 0, len(rows))
	for _, r := range rows {
		if band, ok := domain.LevelBandFor(r.Level); ok && band == domain.LevelAdvanced {
			advanced = append(advanced, r)
		}
	}
	effective := NormalizeEnrollment(EnrollmentInputs(rows))

	// department -> class -> section NRC -> effective enrollment
	buckets := make(map[string]map[domain.ClassType]map[string]int)

	for _, r := range advanced {
		class, ok := domain.ClassifySession(r.SessionType)
		if !ok {
			continue
		}
		byClass, ok := buckets[r.DepartmentCode]
		if !ok {
			byClass = make(map[domain.ClassType]map[string]int)
			buckets[r.DepartmentCode] = byClass
		}
		sections, ok := byClass[class]
		if !ok {
			sections = make(map[string]int)
			byClass[class] = sections
		}
		sections[r.SectionNRC] = effective[r.SessionID].Enrollment
	}

	out := make(StandardSizes, len(buckets))
	for dept, byClass := range buckets {
		out[dept] = make(map[domain.ClassType]StandardSize, len(byClass))
		for class, sections := range byClass {
			var total int
			for _, enrollment := range sections {
				total += enrollment
			}
			var avg float64
			if n := len(sections); n > 0 {
				avg = float64(total) / float64(n)
			}
			out[dept][class] = StandardSize{
				Value:           clampSize(class, round2(avg)),
				SectionCount:    len(sections),
				TotalEnrollment: total,
			}
		}
	}
	return out
}

func clampSize(class domain.ClassType, v float64) float64 {
	b := sizeBounds[class]
	return math.Min(math.Max(v, b.floor), b.ceiling)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
