package domain

import "time"

type Department struct {
	Code      string
	Name      string
	CreatedAt time.Time
}

// Dependency returns the administrative dependency for the department.
func (d *Department) Dependency() string {
	return DependencyForDepartment(d.Code)
}
