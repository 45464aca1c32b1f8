package secondary

import (
	"context"
	"time"
)

// HistoryRepository defines the secondary port for the cycle history
// ledger. Writes are best-effort observability: a failed append is logged
// by the caller and never disturbs the cycle itself.
type HistoryRepository interface {
	// Append persists one attempt record.
	Append(ctx context.Context, record *HistoryRecord) error

	// List retrieves attempt records matching the given filters, newest
	// first.
	List(ctx context.Context, filters HistoryFilters) ([]*HistoryRecord, error)

	// PruneOlderThan deletes records older than the specified number of
	// days and returns how many were removed.
	PruneOlderThan(ctx context.Context, days int) (int, error)
}

// HistoryRecord represents one generate or display attempt as stored in
// persistence.
type HistoryRecord struct {
	ID         int64
	RunID      string // Groups records from one process run
	Kind       string // 'generate' or 'display'
	Slot       int    // 0 means the shared path was used
	Path       string
	Prompt     string // Empty for display records
	Seed       int    // 0 for display records
	Status     string // 'ok' or 'failed'
	Detail     string // Failure description, empty on success
	StartedAt  time.Time
	FinishedAt time.Time
}

// HistoryFilters contains filter options for querying history.
type HistoryFilters struct {
	Kind   string
	RunID  string
	Status string
	Limit  int
}
