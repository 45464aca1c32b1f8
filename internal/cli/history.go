package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/inkcycle/internal/ports/primary"
	"github.com/example/inkcycle/internal/wire"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the generate/display attempt ledger",
	Long: `Show the cycle history ledger, newest first.

Every generate and display attempt is recorded in the gallery's history
database with its run ID, slot, status, and failure detail, so restarts
and fail-stops can be reconstructed afterwards.

Examples:
  inkcycle history
  inkcycle history --kind generate --limit 10
  inkcycle history --status failed
  inkcycle history prune --days 90`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")
		status, _ := cmd.Flags().GetString("status")
		runID, _ := cmd.Flags().GetString("run")

		return wire.HistoryRenderer().List(context.Background(), primary.HistoryFilters{
			Kind:   kind,
			RunID:  runID,
			Status: status,
			Limit:  limit,
		})
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete history records older than a number of days",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		return wire.HistoryRenderer().Prune(context.Background(), days)
	},
}

func init() {
	// history list flags
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum records to show")
	historyCmd.Flags().StringP("kind", "k", "", "Filter by kind (generate or display)")
	historyCmd.Flags().StringP("status", "s", "", "Filter by status (ok or failed)")
	historyCmd.Flags().String("run", "", "Filter by run ID")

	// history prune flags
	historyPruneCmd.Flags().Int("days", 90, "Delete records older than this many days")

	historyCmd.AddCommand(historyPruneCmd)
}

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	return historyCmd
}
