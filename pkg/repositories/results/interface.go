package results

import (
	"context"
)

// Repository defines storage operations for completed simulation runs.
// Runs live only for the lifetime of the process; the engine does not
// persist history across sessions.
type Repository interface {
	// SaveRun stores a completed run, assigning it an ID if it has none
	SaveRun(ctx context.Context, run *Run) error

	// GetRun retrieves a run by ID
	GetRun(ctx context.Context, id string) (*Run, error)

	// ListRuns retrieves up to limit runs, newest first
	ListRuns(ctx context.Context, limit int) ([]*Run, error)

	// Close closes any resources used by the repository
	Close() error
}
