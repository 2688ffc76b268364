package lifecycle

import "context"

// OptimizeSummary reports what Optimize removed.
type OptimizeSummary struct {
	// ExpiredSessions is the number of sessions idle for longer than
	// the session TTL.
	ExpiredSessions int64

	// Orphans is the number of settings, blocks, messages and sessions
	// that referred to deleted users or trees.
	Orphans int64
}

// Optimizer keeps a long-running database small and its query planner
// statistics fresh. It is safe to run at any time.
type Optimizer interface {
	// Optimize removes expired sessions and orphaned rows, then updates
	// storage and statistics (VACUUM, ANALYZE).
	Optimize(ctx context.Context) (OptimizeSummary, error)
}
