package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/carga/internal/db"
	"github.com/alexanderramin/carga/internal/domain"
)

// FailOnNthExecUoW is a test UoW that injects an error on the Nth ExecContext
// call within a transaction, e.g. the professor link written after a session
// row, so rollback can be asserted.
//
// ExecContext calls are counted starting at 1. Reads pass through.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failOnNthExec{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failOnNthExec struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.count.Add(1)
	if n == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// PERStore is the workload read/write surface FailingPERWriter wraps.
type PERStore interface {
	ListRows(ctx context.Context) ([]domain.WorkloadRow, error)
	UpdatePER(ctx context.Context, sessionID string, per float64) error
}

// FailingPERWriter passes reads through and fails UpdatePER for the session
// IDs in FailFor.
type FailingPERWriter struct {
	PERStore
	FailFor map[string]error
	writes  atomic.Int32
}

func (f *FailingPERWriter) UpdatePER(ctx context.Context, sessionID string, per float64) error {
	f.writes.Add(1)
	if err, ok := f.FailFor[sessionID]; ok {
		return err
	}
	return f.PERStore.UpdatePER(ctx, sessionID, per)
}

// Writes is the number of UpdatePER calls seen, failed or not.
func (f *FailingPERWriter) Writes() int {
	return int(f.writes.Load())
}
