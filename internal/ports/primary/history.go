package primary

import "context"

// HistoryService defines the primary port for the cycle history ledger.
type HistoryService interface {
	// List retrieves history entries matching the given filters.
	List(ctx context.Context, filters HistoryFilters) ([]*HistoryEntry, error)

	// Prune deletes entries older than the specified number of days.
	Prune(ctx context.Context, olderThanDays int) (int, error)
}

// HistoryEntry represents one generate or display attempt at the port
// boundary.
type HistoryEntry struct {
	ID         int64
	RunID      string
	Kind       string
	Slot       int
	Path       string
	Prompt     string
	Seed       int
	Status     string
	Detail     string
	StartedAt  string
	FinishedAt string
}

// HistoryFilters contains filter options for querying history.
type HistoryFilters struct {
	Kind   string
	RunID  string
	Status string
	Limit  int
}
