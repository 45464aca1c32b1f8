package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/inkcycle/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the gallery cursor, ring occupancy, and latest artifact",
		Long: `Display a snapshot of the gallery: the persisted cursor, how many ring
slots hold an artifact, and the artifact a display phase would resolve
to right now (after the same recovery lookup the cycle uses).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.StatusRenderer().Render(context.Background())
		},
	}
}
