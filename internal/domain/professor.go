package domain

import "time"

type Professor struct {
	ID         string
	Name       string
	Category   string
	Dependency string
	CreatedAt  time.Time
}

// CanonicalCategory returns the reduced classification of p.Category.
func (p *Professor) CanonicalCategory() ProfessorCategory {
	return CanonicalCategory(p.Category)
}
