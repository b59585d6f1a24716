package workload

import (
	"math"
	"sort"

	"github.com/alexanderramin/carga/internal/domain"
)

// BucketKey identifies one staffing bucket of the aggregation.
type BucketKey struct {
	Dependency    string
	Level         domain.LevelBand
	ProfessorType domain.ProfessorCategory
	Class         domain.ClassType
}

// LeafKey identifies one professor's load within a section.
type LeafKey struct {
	SectionNRC  string
	ProfessorID string
}

// Contribution is a leaf value.
type Contribution struct {
	Hours float64
	PER   float64
}

// Bucket holds the leaves of one BucketKey.
type Bucket struct {
	Key    BucketKey
	Leaves map[LeafKey]*Contribution
}

// Sections returns the distinct section NRCs in the bucket, sorted.
func (b *Bucket) Sections() []string {
	seen := make(map[string]bool)
	for k := range b.Leaves {
		seen[k.SectionNRC] = true
	}
	return sortedKeys(seen)
}

// Professors returns the distinct professor IDs in the bucket, sorted.
func (b *Bucket) Professors() []string {
	seen := make(map[string]bool)
	for k := range b.Leaves {
		seen[k.ProfessorID] = true
	}
	return sortedKeys(seen)
}

// SortedLeaves returns the leaf keys ordered by section then professor.
func (b *Bucket) SortedLeaves() []LeafKey {
	keys := make([]LeafKey, 0, len(b.Leaves))
	for k := range b.Leaves {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].SectionNRC != keys[j].SectionNRC {
			return keys[i].SectionNRC < keys[j].SectionNRC
		}
		return keys[i].ProfessorID < keys[j].ProfessorID
	})
	return keys
}

// Diagnostics counts the (session, professor) pairs left out of the
// aggregation, by reason.
type Diagnostics struct {
	Pairs                int
	Included             int
	UnknownSessionType   int
	UnmappedLevel        int
	ZeroDedication       int
	ExcludedCategory     int
	MalformedDedications int
	MalformedNumbers     int
	SessionsWithoutStaff int
}

// Skipped is the number of pairs that contributed nothing.
func (d Diagnostics) Skipped() int {
	return d.UnknownSessionType + d.UnmappedLevel + d.ZeroDedication + d.ExcludedCategory
}

// Aggregation is the workload tree flattened onto composite keys.
type Aggregation struct {
	Buckets     map[BucketKey]*Bucket
	Diagnostics Diagnostics
}

// SortedKeys returns the bucket keys in report order: dependency, level band,
// professor category, class.
func (a *Aggregation) SortedKeys() []BucketKey {
	keys := make([]BucketKey, 0, len(a.Buckets))
	for k := range a.Buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return lessBucketKey(keys[i], keys[j]) })
	return keys
}

// Aggregate joins every session with its assigned professors and books the
// recognized hours and PER of each pair to its bucket.
//
// Rows must arrive in a stable order: when a professor has several sessions
// of one class in the same section, the first pair sets the leaf's PER and
// later pairs only add hours.
func Aggregate(rows []domain.WorkloadRow, p Policy) *Aggregation {
	agg := &Aggregation{Buckets: make(map[BucketKey]*Bucket)}
	d := &agg.Diagnostics

	for _, r := range rows {
		if r.DedicationsMalformed {
			d.MalformedDedications++
		}
		if r.NumbersMalformed {
			d.MalformedNumbers++
		}
		if len(r.Professors) == 0 {
			d.SessionsWithoutStaff++
			continue
		}
		for _, prof := range r.Professors {
			d.Pairs++

			dependency := domain.ResolveDependency(prof.Dependency, r.DepartmentCode)

			level, ok := domain.LevelBandFor(r.Level)
			if !ok {
				d.UnmappedLevel++
				continue
			}
			class, ok := domain.ClassifySession(r.SessionType)
			if !ok {
				d.UnknownSessionType++
				continue
			}
			dedication := r.Dedications[prof.ID]
			if dedication == 0 {
				d.ZeroDedication++
				continue
			}
			category := domain.CanonicalCategory(prof.Category)
			if category.ExcludedFromWorkload() {
				d.ExcludedCategory++
				continue
			}

			share := dedication / 100
			hours := RecognizedHours(HoursInput{
				Duration:   r.Duration,
				Days:       r.Days,
				Credits:    r.Credits,
				Weeks:      r.Weeks,
				Category:   category,
				CourseCode: r.CourseCode,
			}, p) * share
			per := r.PER * share

			key := BucketKey{Dependency: dependency, Level: level, ProfessorType: category, Class: class}
			bucket, ok := agg.Buckets[key]
			if !ok {
				bucket = &Bucket{Key: key, Leaves: make(map[LeafKey]*Contribution)}
				agg.Buckets[key] = bucket
			}

			leafKey := LeafKey{SectionNRC: r.SectionNRC, ProfessorID: prof.ID}
			leaf, ok := bucket.Leaves[leafKey]
			if !ok {
				bucket.Leaves[leafKey] = &Contribution{Hours: hours, PER: per}
			} else if p.Uncapped(r.CourseCode) {
				leaf.Hours += hours
			} else {
				leaf.Hours = math.Min(leaf.Hours+hours, float64(r.Credits))
			}
			d.Included++
		}
	}
	return agg
}

func lessBucketKey(a, b BucketKey) bool {
	if a.Dependency != b.Dependency {
		return a.Dependency < b.Dependency
	}
	if a.Level != b.Level {
		return indexOf(domain.LevelBands, a.Level) < indexOf(domain.LevelBands, b.Level)
	}
	if a.ProfessorType != b.ProfessorType {
		return indexOf(domain.ProfessorCategories, a.ProfessorType) < indexOf(domain.ProfessorCategories, b.ProfessorType)
	}
	return indexOf(domain.ClassTypes, a.Class) < indexOf(domain.ClassTypes, b.Class)
}

func indexOf[T comparable](list []T, v T) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return len(list)
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
