package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/carga/internal/app"
	"github.com/alexanderramin/carga/internal/domain"
	"github.com/alexanderramin/carga/internal/repository"
	"github.com/alexanderramin/carga/internal/workload"
	"github.com/google/uuid"
)

type workloadService struct {
	rows        repository.WorkloadRepo
	departments repository.DepartmentRepo
	policy      workload.Policy
	observer    UseCaseObserver
}

func NewWorkloadService(
	rows repository.WorkloadRepo,
	departments repository.DepartmentRepo,
	policy workload.Policy,
	observers ...UseCaseObserver,
) WorkloadService {
	return &workloadService{
		rows:        rows,
		departments: departments,
		policy:      policy,
		observer:    useCaseObserverOrNoop(observers),
	}
}

// RecomputePER resolves the PER of every session from a fresh snapshot and
// writes each changed value back. Writes are independent: a failed write is
// recorded and the batch continues.
func (s *workloadService) RecomputePER(ctx context.Context, req app.PERRequest) (resp *app.PERResponse, err error) {
	runID := uuid.New().String()
	fields := map[string]any{"run_id": runID, "dry_run": req.DryRun}
	done := observe(ctx, s.observer, "recompute-per", fields)
	defer func() { done(err) }()

	rows, err := s.rows.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading workload rows: %w", err)
	}
	plan := workload.ComputePER(rows, s.policy)

	resp = &app.PERResponse{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Sizes:       plan.Sizes,
		Results:     plan.Results,
		Skipped:     plan.Skipped,
		DryRun:      req.DryRun,
	}
	for _, r := range plan.Results {
		if !r.Changed() {
			resp.Unchanged++
			continue
		}
		if req.DryRun {
			continue
		}
		if werr := s.rows.UpdatePER(ctx, r.SessionID, float64(r.PER)); werr != nil {
			resp.Failures = append(resp.Failures, app.PERFailure{SessionID: r.SessionID, Err: werr})
			continue
		}
		resp.Updated++
	}

	fields["rows"] = len(rows)
	fields["resolved"] = len(plan.Results)
	fields["skipped"] = len(plan.Skipped)
	fields["updated"] = resp.Updated
	fields["unchanged"] = resp.Unchanged
	fields["write_failures"] = len(resp.Failures)
	return resp, nil
}

// Statistics aggregates the stored rows and reduces every bucket. The
// request filters only what is reported; standard sizes always come from
// the full snapshot.
func (s *workloadService) Statistics(ctx context.Context, req app.StatsRequest) (resp *app.StatsResponse, err error) {
	runID := uuid.New().String()
	fields := map[string]any{"run_id": runID}
	done := observe(ctx, s.observer, "statistics", fields)
	defer func() { done(err) }()

	rows, err := s.rows.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading workload rows: %w", err)
	}
	sizes := workload.ComputeStandardSizes(rows)
	agg := workload.Aggregate(rows, s.policy)

	var buckets []workload.BucketMetrics
	for _, m := range workload.Reduce(agg, sizes, s.policy) {
		if req.Matches(m.Key) {
			buckets = append(buckets, m)
		}
	}

	d := agg.Diagnostics
	fields["rows"] = len(rows)
	fields["buckets"] = len(buckets)
	fields["pairs"] = d.Pairs
	fields["included"] = d.Included
	fields["skipped_unknown_session_type"] = d.UnknownSessionType
	fields["skipped_unmapped_level"] = d.UnmappedLevel
	fields["skipped_zero_dedication"] = d.ZeroDedication
	fields["skipped_excluded_category"] = d.ExcludedCategory
	fields["malformed_dedications"] = d.MalformedDedications
	fields["malformed_numbers"] = d.MalformedNumbers
	fields["sessions_without_staff"] = d.SessionsWithoutStaff

	return &app.StatsResponse{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Buckets:     buckets,
		Totals:      workload.Totals(buckets),
		Diagnostics: d,
		Sizes:       sizes,
		Aggregation: agg,
	}, nil
}

// StandardSizes reports the size of every known department and class.
// Departments without advanced sections of a class show the fallback.
func (s *workloadService) StandardSizes(ctx context.Context) (resp *app.StandardSizeReport, err error) {
	fields := map[string]any{}
	done := observe(ctx, s.observer, "standard-sizes", fields)
	defer func() { done(err) }()

	rows, err := s.rows.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading workload rows: %w", err)
	}
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading departments: %w", err)
	}
	sizes := workload.ComputeStandardSizes(rows)

	codes := make(map[string]bool, len(departments))
	for _, d := range departments {
		codes[d.Code] = true
	}
	for _, code := range sizes.Departments() {
		codes[code] = true
	}

	resp = &app.StandardSizeReport{GeneratedAt: time.Now().UTC()}
	for _, code := range sortedCodes(codes) {
		for _, class := range domain.ClassTypes {
			value, fallback := s.policy.SizeFor(sizes, domain.LevelAdvanced, code, class)
			stat := sizes[code][class]
			resp.Rows = append(resp.Rows, app.StandardSizeRow{
				Department:      code,
				Dependency:      domain.DependencyForDepartment(code),
				Class:           class,
				Value:           value,
				Fallback:        fallback,
				SectionCount:    stat.SectionCount,
				TotalEnrollment: stat.TotalEnrollment,
			})
		}
	}
	fields["departments"] = len(codes)
	return resp, nil
}
