// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/inkcycle/internal/ports/secondary"
)

// HistoryRepository implements secondary.HistoryRepository with SQLite.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new SQLite history repository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Append persists one attempt record and fills in its assigned ID.
func (r *HistoryRepository) Append(ctx context.Context, record *secondary.HistoryRecord) error {
	var prompt, detail sql.NullString
	if record.Prompt != "" {
		prompt = sql.NullString{String: record.Prompt, Valid: true}
	}
	if record.Detail != "" {
		detail = sql.NullString{String: record.Detail, Valid: true}
	}
	var seed sql.NullInt64
	if record.Seed != 0 {
		seed = sql.NullInt64{Int64: int64(record.Seed), Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO cycle_history (run_id, kind, slot, path, prompt, seed, status, detail, started_at, finished_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.RunID,
		record.Kind,
		record.Slot,
		record.Path,
		prompt,
		seed,
		record.Status,
		detail,
		record.StartedAt,
		record.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append history record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read history record id: %w", err)
	}
	record.ID = id

	return nil
}

// List retrieves attempt records matching the given filters, newest first.
func (r *HistoryRepository) List(ctx context.Context, filters secondary.HistoryFilters) ([]*secondary.HistoryRecord, error) {
	query := `SELECT id, run_id, kind, slot, path, prompt, seed, status, detail, started_at, finished_at FROM cycle_history WHERE 1=1`
	args := []any{}

	if filters.Kind != "" {
		query += " AND kind = ?"
		args = append(args, filters.Kind)
	}

	if filters.RunID != "" {
		query += " AND run_id = ?"
		args = append(args, filters.RunID)
	}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	query += " ORDER BY id DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var records []*secondary.HistoryRecord
	for rows.Next() {
		var (
			prompt sql.NullString
			detail sql.NullString
			seed   sql.NullInt64
		)

		record := &secondary.HistoryRecord{}
		err := rows.Scan(&record.ID,
			&record.RunID,
			&record.Kind,
			&record.Slot,
			&record.Path,
			&prompt,
			&seed,
			&record.Status,
			&detail,
			&record.StartedAt,
			&record.FinishedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}
		record.Prompt = prompt.String
		record.Detail = detail.String
		record.Seed = int(seed.Int64)

		records = append(records, record)
	}

	return records, nil
}

// PruneOlderThan deletes records older than the given number of days.
func (r *HistoryRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM cycle_history WHERE started_at < datetime('now', ?)",
		fmt.Sprintf("-%d days", days),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune history: %w", err)
	}

	count, _ := result.RowsAffected()
	return int(count), nil
}

// Ensure HistoryRepository implements the interface
var _ secondary.HistoryRepository = (*HistoryRepository)(nil)
