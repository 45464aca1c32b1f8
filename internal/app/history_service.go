package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/inkcycle/internal/ports/primary"
	"github.com/example/inkcycle/internal/ports/secondary"
)

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	historyRepo secondary.HistoryRepository
}

// NewHistoryService creates a new HistoryService with injected dependencies.
func NewHistoryService(historyRepo secondary.HistoryRepository) *HistoryServiceImpl {
	return &HistoryServiceImpl{
		historyRepo: historyRepo,
	}
}

// List retrieves history entries matching the given filters, newest first.
func (s *HistoryServiceImpl) List(ctx context.Context, filters primary.HistoryFilters) ([]*primary.HistoryEntry, error) {
	records, err := s.historyRepo.List(ctx, secondary.HistoryFilters{
		Kind:   filters.Kind,
		RunID:  filters.RunID,
		Status: filters.Status,
		Limit:  filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]*primary.HistoryEntry, len(records))
	for i, r := range records {
		entries[i] = s.recordToEntry(r)
	}
	return entries, nil
}

// Prune deletes entries older than the specified number of days.
func (s *HistoryServiceImpl) Prune(ctx context.Context, olderThanDays int) (int, error) {
	if olderThanDays <= 0 {
		return 0, fmt.Errorf("prune window must be at least 1 day, got %d", olderThanDays)
	}

	count, err := s.historyRepo.PruneOlderThan(ctx, olderThanDays)
	if err != nil {
		return 0, fmt.Errorf("failed to prune history: %w", err)
	}
	return count, nil
}

func (s *HistoryServiceImpl) recordToEntry(r *secondary.HistoryRecord) *primary.HistoryEntry {
	return &primary.HistoryEntry{
		ID:         r.ID,
		RunID:      r.RunID,
		Kind:       r.Kind,
		Slot:       r.Slot,
		Path:       r.Path,
		Prompt:     r.Prompt,
		Seed:       r.Seed,
		Status:     r.Status,
		Detail:     r.Detail,
		StartedAt:  r.StartedAt.Format(time.RFC3339),
		FinishedAt: r.FinishedAt.Format(time.RFC3339),
	}
}

// Ensure HistoryServiceImpl implements the interface
var _ primary.HistoryService = (*HistoryServiceImpl)(nil)
