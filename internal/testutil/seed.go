package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"
)

// Seeded names the rows SeedWorkload writes.
type Seeded struct {
	Titular, Catedra, AGD string

	BasicSection, GroupedSectionA, GroupedSectionB, UncappedSection, MathSection string

	BasicTeorica, BasicUnknown string

	AdvancedTeoricaA, AdvancedLabA, AdvancedTeoricaB string

	UncappedTaller, MathMagistral string
}

// SeedWorkload writes a small faculty covering both level bands, a
// cross-listed pair, the uncapped course, an excluded AGD professor and a
// session of unknown type. Session creation times follow declaration order.
func SeedWorkload(t *testing.T, database *sql.DB) Seeded {
	t.Helper()
	s := Seeded{
		Titular: "prof-titular",
		Catedra: "prof-catedra",
		AGD:     "prof-agd",

		BasicSection:    "10001",
		GroupedSectionA: "20001",
		GroupedSectionB: "20002",
		UncappedSection: "30001",
		MathSection:     "40001",

		BasicTeorica:     "ses-basic-teorica",
		BasicUnknown:     "ses-basic-unknown",
		AdvancedTeoricaA: "ses-adv-teorica-a",
		AdvancedLabA:     "ses-adv-lab-a",
		AdvancedTeoricaB: "ses-adv-teorica-b",
		UncappedTaller:   "ses-uncapped-taller",
		MathMagistral:    "ses-math-magistral",
	}

	ctx := context.Background()
	exec := func(query string, args ...any) {
		t.Helper()
		if _, err := database.ExecContext(ctx, query, args...); err != nil {
			t.Fatalf("seeding workload: %v", err)
		}
	}
	base := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	stamp := func(i int) string { return base.Add(time.Duration(i) * time.Minute).Format(time.RFC3339) }

	for _, code := range []string{"ISIS", "MATE"} {
		exec(`INSERT INTO departments (code, name, created_at) VALUES (?, ?, ?)`, code, code, stamp(0))
	}

	exec(`INSERT INTO professors (id, name, category, dependency, created_at) VALUES (?, ?, ?, ?, ?)`,
		s.Titular, "Ana Titular", "Profesor Titular", "DEPARTAMENTO DE INGENIERIA DE SISTEMAS", stamp(0))
	exec(`INSERT INTO professors (id, name, category, dependency, created_at) VALUES (?, ?, ?, ?, ?)`,
		s.Catedra, "Luis Catedra", "Profesor de Cátedra", "", stamp(0))
	exec(`INSERT INTO professors (id, name, category, dependency, created_at) VALUES (?, ?, ?, ?, ?)`,
		s.AGD, "Eva Asistente Graduada", "AGD", "", stamp(0))

	courses := []struct {
		code, dept            string
		credits, level, weeks int
	}{
		{"ISIS-1221", "ISIS", 2, 1, 16},
		{"ISIS-3710", "ISIS", 3, 3, 16},
		{"ISIS-3990", "ISIS", 2, 4, 16},
		{"MATE-1203", "MATE", 3, 1, 16},
	}
	for _, c := range courses {
		exec(`INSERT INTO courses (code, name, credits, level, department_code, weeks, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			c.code, c.code, c.credits, c.level, c.dept, c.weeks, stamp(0))
	}

	sections := []struct {
		nrc, course, tag string
		enrollment       int
		dedications      map[string]float64
	}{
		{s.BasicSection, "ISIS-1221", "", 40, map[string]float64{s.Titular: 100}},
		{s.GroupedSectionA, "ISIS-3710", "GRP-A", 20, map[string]float64{s.Titular: 50, s.Catedra: 50}},
		{s.GroupedSectionB, "ISIS-3710", "GRP-A", 30, map[string]float64{s.Catedra: 100}},
		{s.UncappedSection, "ISIS-3990", "ISIS_001", 8, map[string]float64{s.Titular: 100}},
		{s.MathSection, "MATE-1203", "", 35, map[string]float64{s.AGD: 100}},
	}
	for _, sec := range sections {
		payload, err := json.Marshal(sec.dedications)
		if err != nil {
			t.Fatalf("seeding workload: %v", err)
		}
		var tag any
		if sec.tag != "" {
			tag = sec.tag
		}
		exec(`INSERT INTO sections (nrc, course_code, enrollment, capacity, cross_list_tag, professor_dedications, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			sec.nrc, sec.course, sec.enrollment, sec.enrollment, tag, string(payload), stamp(0), stamp(0))
	}

	sessions := []struct {
		id, nrc, kind, days string
		duration            float64
		professors          []string
	}{
		{s.BasicTeorica, s.BasicSection, "Magistral", "L,I", 1.5, []string{s.Titular}},
		{s.BasicUnknown, s.BasicSection, "Tutoría", "S", 1, []string{s.Titular}},
		{s.AdvancedTeoricaA, s.GroupedSectionA, "Teórica", "M,J", 1.5, []string{s.Titular, s.Catedra}},
		{s.AdvancedLabA, s.GroupedSectionA, "Laboratorio", "V", 2, []string{s.Titular}},
		{s.AdvancedTeoricaB, s.GroupedSectionB, "Teórica", "M,J", 1.5, []string{s.Catedra}},
		{s.UncappedTaller, s.UncappedSection, "Taller y PBL", "L,M", 4, []string{s.Titular}},
		{s.MathMagistral, s.MathSection, "Magistral", "L,I", 1.5, []string{s.AGD}},
	}
	for i, ses := range sessions {
		exec(`INSERT INTO sessions (id, section_nrc, type, duration, days, per, created_at) VALUES (?, ?, ?, ?, ?, 0, ?)`,
			ses.id, ses.nrc, ses.kind, ses.duration, ses.days, stamp(i+1))
		for _, prof := range ses.professors {
			exec(`INSERT INTO session_professors (session_id, professor_id) VALUES (?, ?)`, ses.id, prof)
		}
	}
	return s
}
