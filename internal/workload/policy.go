package workload

import "github.com/alexanderramin/carga/internal/domain"

// DefaultUncappedCourseCode is the course whose recognized hours are never
// capped at its credits.
const DefaultUncappedCourseCode = "ISIS-3990"

// Policy holds the staffing-formula constants.
type Policy struct {
	// UncappedCourseCode bypasses the credit cap, both in the hours formula
	// and when accumulating a professor's hours within a section.
	UncappedCourseCode string
	// LowCreditBonus multiplies the hours of 2-credit courses taught by
	// non-Cátedra professors.
	LowCreditBonus float64
	// HoursPerProfessor converts staffed hours into professor headcount.
	HoursPerProfessor float64
	// BasicSizes is the standard size used for basic-level buckets and as the
	// fallback when a department has no advanced sections of a class.
	BasicSizes map[domain.ClassType]float64
}

// DefaultPolicy returns the published constants.
func DefaultPolicy() Policy {
	return Policy{
		UncappedCourseCode: DefaultUncappedCourseCode,
		LowCreditBonus:     1.17,
		HoursPerProfessor:  9,
		BasicSizes: map[domain.ClassType]float64{
			domain.ClassTeorico:  30,
			domain.ClassPractico: 20,
		},
	}
}

// Uncapped reports whether courseCode bypasses the credit cap.
func (p Policy) Uncapped(courseCode string) bool {
	return p.UncappedCourseCode != "" && courseCode == p.UncappedCourseCode
}

// SizeFor returns the standard size to apply to a session or bucket: the
// basic constant for basic levels, otherwise the department's computed size
// falling back to the basic constant. fallback reports whether the constant
// was used for an advanced bucket.
func (p Policy) SizeFor(sizes StandardSizes, level domain.LevelBand, department string, class domain.ClassType) (size float64, fallback bool) {
	if level == domain.LevelAdvanced {
		if v, ok := sizes.Lookup(department, class); ok {
			return v, false
		}
		return p.BasicSizes[class], true
	}
	return p.BasicSizes[class], false
}
