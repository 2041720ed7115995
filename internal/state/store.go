// Package state records the history of script runs in SQLite.
// It stores run metadata only; variable and truth-table state is never
// persisted.
package state

import (
	"context"
	"time"
)

// RunStatus is the lifecycle state of a run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// Run is one recorded execution of a script.
type Run struct {
	ID          string        `json:"id"`
	Script      string        `json:"script"`
	Status      RunStatus     `json:"status"`
	Statements  int           `json:"statements"`
	Warnings    int           `json:"warnings"`
	Duration    time.Duration `json:"duration_ns"`
	Error       string        `json:"error,omitempty"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}

// RunStats are the counters stored when a run completes.
type RunStats struct {
	Statements int
	Warnings   int
	Duration   time.Duration
}

// Store persists run history.
type Store interface {
	CreateRun(ctx context.Context, script string) (*Run, error)
	CompleteRun(ctx context.Context, id string, status RunStatus, stats RunStats, errMsg string) error
	GetRun(ctx context.Context, id string) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]*Run, error)
	Close() error
}
