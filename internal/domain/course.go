package domain

import "time"

// FullTermWeeks is the length of a full academic term.
const FullTermWeeks = 16

type Course struct {
	Code           string
	Name           string
	Credits        int
	Level          int
	DepartmentCode string
	Weeks          int
	CreatedAt      time.Time
}

// TermRatio is the fraction of a full term the course runs for.
func (c *Course) TermRatio() float64 {
	return float64(c.Weeks) / FullTermWeeks
}
