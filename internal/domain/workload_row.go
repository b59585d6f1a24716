package domain

// AssignedProfessor is a professor linked to a session, as read for
// workload computation.
type AssignedProfessor struct {
	ID         string
	Category   string
	Dependency string
}

// WorkloadRow is the joined session/section/course view consumed by the
// workload engine. Missing numeric data reads as zero.
type WorkloadRow struct {
	SessionID   string
	SessionType string
	Duration    float64
	Days        string
	PER         float64

	SectionNRC   string
	CrossListTag string
	Enrollment   int
	Dedications  map[string]float64
	// DedicationsMalformed is set when the stored dedication payload could
	// not be decoded and Dedications was left empty.
	DedicationsMalformed bool
	// NumbersMalformed is set when a numeric column held text that is not a
	// number; each such value was read as zero.
	NumbersMalformed bool

	CourseCode     string
	Credits        int
	Weeks          int
	Level          int
	DepartmentCode string
	Professors     []AssignedProfessor
}
