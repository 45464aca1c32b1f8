package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/inkcycle/internal/ports/primary"
)

// HistoryRenderer is a thin adapter that renders the cycle history ledger.
type HistoryRenderer struct {
	service primary.HistoryService
	out     io.Writer
}

// NewHistoryRenderer creates a new HistoryRenderer with the given service.
func NewHistoryRenderer(service primary.HistoryService, out io.Writer) *HistoryRenderer {
	return &HistoryRenderer{
		service: service,
		out:     out,
	}
}

// List prints history entries matching the filters, newest first.
func (a *HistoryRenderer) List(ctx context.Context, filters primary.HistoryFilters) error {
	entries, err := a.service.List(ctx, filters)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No history recorded")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tSLOT\tSTATUS\tSTARTED\tDETAIL")
	fmt.Fprintln(w, "--\t----\t----\t------\t-------\t------")
	for _, e := range entries {
		slot := "-"
		if e.Slot != 0 {
			slot = fmt.Sprintf("%d", e.Slot)
		}
		detail := e.Detail
		if len(detail) > 60 {
			detail = detail[:57] + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			e.Kind,
			slot,
			e.Status,
			e.StartedAt,
			detail,
		)
	}
	w.Flush()
	return nil
}

// Prune deletes entries older than the given number of days.
func (a *HistoryRenderer) Prune(ctx context.Context, days int) error {
	count, err := a.service.Prune(ctx, days)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Pruned %d history records older than %d days\n", count, days)
	return nil
}
