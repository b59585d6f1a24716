package workload

import "github.com/alexanderramin/carga/internal/domain"

// PERResult is the recomputed PER of one session with the inputs that
// produced it.
type PERResult struct {
	SessionID    string
	SectionNRC   string
	Department   string
	Class        domain.ClassType
	Level        domain.LevelBand
	Effective    EffectiveEnrollment
	StandardSize float64
	SizeFallback bool
	Previous     float64
	PER          int
}

// Changed reports whether the recomputed value differs from the stored one.
func (r PERResult) Changed() bool {
	return r.Previous != float64(r.PER)
}

// PERSkip records a session whose PER could not be resolved.
type PERSkip struct {
	SessionID string
	Reason    string
}

const (
	SkipUnknownSessionType = "unknown session type"
	SkipUnmappedLevel      = "unmapped course level"
)

// PERPlan is the outcome of a PER computation over a snapshot of rows.
type PERPlan struct {
	Sizes   StandardSizes
	Results []PERResult
	Skipped []PERSkip
}

// ComputePER runs the normalizer, the standard-size calculator and the
// table resolver over rows, in row order. Basic-level sessions resolve
// against the basic standard sizes; advanced sessions against their
// department's computed size.
func ComputePER(rows []domain.WorkloadRow, p Policy) PERPlan {
	plan := PERPlan{Sizes: ComputeStandardSizes(rows)}
	effective := NormalizeEnrollment(EnrollmentInputs(rows))

	for _, r := range rows {
		class, ok := domain.ClassifySession(r.SessionType)
		if !ok {
			plan.Skipped = append(plan.Skipped, PERSkip{SessionID: r.SessionID, Reason: SkipUnknownSessionType})
			continue
		}
		level, ok := domain.LevelBandFor(r.Level)
		if !ok {
			plan.Skipped = append(plan.Skipped, PERSkip{SessionID: r.SessionID, Reason: SkipUnmappedLevel})
			continue
		}

		size, fallback := p.SizeFor(plan.Sizes, level, r.DepartmentCode, class)
		eff := effective[r.SessionID]
		plan.Results = append(plan.Results, PERResult{
			SessionID:    r.SessionID,
			SectionNRC:   r.SectionNRC,
			Department:   r.DepartmentCode,
			Class:        class,
			Level:        level,
			Effective:    eff,
			StandardSize: size,
			SizeFallback: fallback,
			Previous:     r.PER,
			PER:          ResolvePER(class, size, eff.Enrollment),
		})
	}
	return plan
}
