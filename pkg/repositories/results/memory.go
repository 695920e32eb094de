package results

import (
	"context"
	"sync"
	"time"

	"github.com/fadedpez/martingale/internal/types"
	"github.com/google/uuid"
)

// MemoryRepository implements Repository interface with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of run ID to run
	runs map[string]*Run
	// Run IDs in insertion order
	order []string
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		runs: make(map[string]*Run),
	}
}

// SaveRun stores a run, assigning an ID and timestamp if missing
func (r *MemoryRepository) SaveRun(ctx context.Context, run *Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	if _, exists := r.runs[run.ID]; !exists {
		r.order = append(r.order, run.ID)
	}
	r.runs[run.ID] = run
	return nil
}

// GetRun retrieves a run by ID
func (r *MemoryRepository) GetRun(ctx context.Context, id string) (*Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, exists := r.runs[id]
	if !exists {
		return nil, types.NewSimError(types.ErrRunNotFound, "no run with ID "+id)
	}
	return run, nil
}

// ListRuns retrieves up to limit runs, newest first
func (r *MemoryRepository) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit < 1 || limit > len(r.order) {
		limit = len(r.order)
	}

	runs := make([]*Run, 0, limit)
	for i := len(r.order) - 1; i >= 0 && len(runs) < limit; i-- {
		runs = append(runs, r.runs[r.order[i]])
	}
	return runs, nil
}

// Close closes the repository (a no-op for in-memory storage)
func (r *MemoryRepository) Close() error {
	return nil
}
