package workload

import "github.com/alexanderramin/carga/internal/domain"

// BucketMetrics are the staffing figures of one bucket.
type BucketMetrics struct {
	Key BucketKey

	TotalHours     float64
	TotalPER       float64
	SectionCount   int
	ProfessorCount int
	// AverageHours is TotalHours per distinct section (Horas Promedio).
	AverageHours float64
	// StandardSize is the section size the bucket is normalized against.
	StandardSize float64
	// SizeFallback is set for advanced buckets whose department had no
	// computed standard size.
	SizeFallback bool
	// StandardSections is TotalPER expressed in standard-size sections.
	StandardSections float64
	// Hours is the teaching load the dependency must staff.
	Hours float64
	// Professors is the required headcount, rounded to two decimals. Always
	// zero for Cátedra buckets.
	Professors float64
}

// Reduce walks the aggregation in report order and derives the combined
// metrics of every bucket.
func Reduce(agg *Aggregation, sizes StandardSizes, p Policy) []BucketMetrics {
	keys := agg.SortedKeys()
	out := make([]BucketMetrics, 0, len(keys))
	for _, key := range keys {
		out = append(out, reduceBucket(agg.Buckets[key], sizes, p))
	}
	return out
}

func reduceBucket(b *Bucket, sizes StandardSizes, p Policy) BucketMetrics {
	m := BucketMetrics{
		Key:            b.Key,
		SectionCount:   len(b.Sections()),
		ProfessorCount: len(b.Professors()),
	}
	for _, leaf := range b.Leaves {
		m.TotalHours += leaf.Hours
		m.TotalPER += leaf.PER
	}
	if m.SectionCount > 0 {
		m.AverageHours = m.TotalHours / float64(m.SectionCount)
	}

	department := domain.DepartmentForDependency(b.Key.Dependency)
	m.StandardSize, m.SizeFallback = p.SizeFor(sizes, b.Key.Level, department, b.Key.Class)
	if m.StandardSize != 0 {
		m.StandardSections = m.TotalPER / m.StandardSize
	}

	m.Hours = m.AverageHours * m.StandardSections
	if !b.Key.ProfessorType.IsCatchAll() && p.HoursPerProfessor > 0 {
		m.Professors = round2(m.Hours / p.HoursPerProfessor)
	}
	return m
}

// Totals sums metrics across buckets. Averages are not additive and are
// recomputed from the summed hours and sections.
func Totals(metrics []BucketMetrics) BucketMetrics {
	var t BucketMetrics
	for _, m := range metrics {
		t.TotalHours += m.TotalHours
		t.TotalPER += m.TotalPER
		t.SectionCount += m.SectionCount
		t.ProfessorCount += m.ProfessorCount
		t.StandardSections += m.StandardSections
		t.Hours += m.Hours
		t.Professors += m.Professors
	}
	if t.SectionCount > 0 {
		t.AverageHours = t.TotalHours / float64(t.SectionCount)
	}
	t.Professors = round2(t.Professors)
	return t
}
