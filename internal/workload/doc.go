// Package workload turns session, section and course rows into staffing
// figures: effective enrollments, standard section sizes, PER values,
// recognized teaching hours and the per-dependency aggregation derived from
// them. Everything here is pure and deterministic for a given row order.
package workload
