package service

import (
	"context"
	"sync"
)

// Runner serializes runs of a SyncService: a run requested while another is
// active fails fast with ErrSyncInProgress instead of queueing.
type Runner struct {
	svc SyncService
	mu  sync.Mutex
}

// NewRunner wraps svc.
func NewRunner(svc SyncService) *Runner {
	return &Runner{svc: svc}
}

// Run implements SyncService.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if !r.mu.TryLock() {
		return nil, ErrSyncInProgress
	}
	defer r.mu.Unlock()

	return r.svc.Run(ctx)
}
