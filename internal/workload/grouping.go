package workload

import "github.com/alexanderramin/carga/internal/domain"

// EnrollmentInput is the slice of a session row the normalizer needs.
type EnrollmentInput struct {
	SessionID    string
	SectionNRC   string
	CrossListTag string
	Enrollment   int
}

// EffectiveEnrollment is the headcount a session is staffed for.
type EffectiveEnrollment struct {
	Enrollment int
	// GroupSize is the number of sessions sharing the cross-list tag; 1 for
	// ungrouped sessions.
	GroupSize int
	Grouped   bool
}

// NormalizeEnrollment collapses cross-listed sections so every session of a
// tag group sees the combined enrollment of the group's distinct sections.
// Sessions with no tag, or the NoGroupTag sentinel, keep their own
// section's enrollment. The result is keyed by session ID.
func NormalizeEnrollment(inputs []EnrollmentInput) map[string]EffectiveEnrollment {
	type group struct {
		sections map[string]int
		sessions int
	}
	groups := make(map[string]*group)

	for _, in := range inputs {
		if !domain.IsGroupTag(in.CrossListTag) {
			continue
		}
		g, ok := groups[in.CrossListTag]
		if !ok {
			g = &group{sections: make(map[string]int)}
			groups[in.CrossListTag] = g
		}
		g.sections[in.SectionNRC] = in.Enrollment
		g.sessions++
	}

	totals := make(map[string]int, len(groups))
	for tag, g := range groups {
		var sum int
		for _, enrollment := range g.sections {
			sum += enrollment
		}
		totals[tag] = sum
	}

	out := make(map[string]EffectiveEnrollment, len(inputs))
	for _, in := range inputs {
		if g, ok := groups[in.CrossListTag]; ok {
			out[in.SessionID] = EffectiveEnrollment{
				Enrollment: totals[in.CrossListTag],
				GroupSize:  g.sessions,
				Grouped:    true,
			}
			continue
		}
		out[in.SessionID] = EffectiveEnrollment{Enrollment: in.Enrollment, GroupSize: 1}
	}
	return out
}

// EnrollmentInputs projects workload rows onto normalizer inputs.
func EnrollmentInputs(rows []domain.WorkloadRow) []EnrollmentInput {
	inputs := make([]EnrollmentInput, 0, len(rows))
	for _, r := range rows {
		inputs = append(inputs, EnrollmentInput{
			SessionID:    r.SessionID,
			SectionNRC:   r.SectionNRC,
			CrossListTag: r.CrossListTag,
			Enrollment:   r.Enrollment,
		})
	}
	return inputs
}
