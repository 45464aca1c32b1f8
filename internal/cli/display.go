package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/inkcycle/internal/wire"
)

// DisplayCmd returns the display command
func DisplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "display",
		Short: "Show the newest artifact on the display",
		Long: `Run a single display phase: locate the most recent artifact that actually
exists on disk, tolerating drift between the persisted cursor and the
files in the gallery, and invoke the viewer on it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := wire.CycleService().Display(context.Background())
			if err != nil {
				return err
			}

			if result.Slot == 0 {
				fmt.Printf("✓ Displayed shared artifact: %s\n", result.Path)
			} else {
				fmt.Printf("✓ Displayed slot %d: %s\n", result.Slot, result.Path)
			}
			return nil
		},
	}
}
