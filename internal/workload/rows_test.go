package workload

import "github.com/alexanderramin/carga/internal/domain"

type rowOption func(*domain.WorkloadRow)

// newRow returns an advanced ISIS Teorica session with one full-time
// Titular professor; options adjust it.
func newRow(id, nrc string, opts ...rowOption) domain.WorkloadRow {
	r := domain.WorkloadRow{
		SessionID:      id,
		SessionType:    "Teórica",
		Duration:       1.5,
		Days:           "L,I",
		SectionNRC:     nrc,
		Enrollment:     25,
		Dedications:    map[string]float64{"p1": 100},
		CourseCode:     "ISIS-3710",
		Credits:        3,
		Weeks:          16,
		Level:          3,
		DepartmentCode: "ISIS",
		Professors:     []domain.AssignedProfessor{{ID: "p1", Category: "Profesor Titular"}},
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func withType(t string) rowOption { return func(r *domain.WorkloadRow) { r.SessionType = t } }

func withEnrollment(n int) rowOption { return func(r *domain.WorkloadRow) { r.Enrollment = n } }

func withTag(tag string) rowOption { return func(r *domain.WorkloadRow) { r.CrossListTag = tag } }

func withLevel(level int) rowOption { return func(r *domain.WorkloadRow) { r.Level = level } }

func withDepartment(code string) rowOption {
	return func(r *domain.WorkloadRow) { r.DepartmentCode = code }
}

func withCourse(code string, credits int) rowOption {
	return func(r *domain.WorkloadRow) {
		r.CourseCode = code
		r.Credits = credits
	}
}

func withSchedule(duration float64, days string) rowOption {
	return func(r *domain.WorkloadRow) {
		r.Duration = duration
		r.Days = days
	}
}

func withPER(per float64) rowOption { return func(r *domain.WorkloadRow) { r.PER = per } }

func withProfessors(profs ...domain.AssignedProfessor) rowOption {
	return func(r *domain.WorkloadRow) { r.Professors = profs }
}

func withDedications(d map[string]float64) rowOption {
	return func(r *domain.WorkloadRow) { r.Dedications = d }
}
