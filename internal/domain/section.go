package domain

import "time"

// NoGroupTag is a cross-listing tag that never merges sections.
const NoGroupTag = "ISIS_001"

// Section is one offered instance of a course, keyed by its NRC.
type Section struct {
	NRC          string
	CourseCode   string
	Enrollment   int
	Capacity     int
	CrossListTag string
	// Dedications maps professor ID to the percentage of this section's
	// teaching load attributed to them. Percentages are independent.
	Dedications map[string]float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Grouped reports whether the section takes part in cross-list grouping.
func (s *Section) Grouped() bool {
	return IsGroupTag(s.CrossListTag)
}

// IsGroupTag reports whether tag merges the sections that share it.
func IsGroupTag(tag string) bool {
	return tag != "" && tag != NoGroupTag
}

// Dedication returns the percentage for professorID, 0 if absent.
func (s *Section) Dedication(professorID string) float64 {
	return s.Dedications[professorID]
}

// SetDedication records a professor's percentage. A zero percentage removes
// the entry.
func (s *Section) SetDedication(professorID string, pct float64) {
	if s.Dedications == nil {
		s.Dedications = make(map[string]float64)
	}
	if pct == 0 {
		delete(s.Dedications, professorID)
		return
	}
	s.Dedications[professorID] = pct
}
