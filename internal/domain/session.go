package domain

import "time"

// Session is one scheduled meeting pattern of a section.
type Session struct {
	ID           string
	SectionNRC   string
	Type         string
	Duration     float64
	Days         string
	PER          float64
	ProfessorIDs []string
	CreatedAt    time.Time
}

// Kind returns the canonical session type.
func (s *Session) Kind() SessionType {
	return ParseSessionType(s.Type)
}
