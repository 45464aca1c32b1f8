package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/inkcycle/internal/wire"
)

// RunCmd returns the run command
func RunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the generate/display cycle until stopped",
		Long: `Run the picture-frame cycle: generate an image into the next ring slot,
show the newest artifact on the display, sleep, repeat.

On a fresh gallery the first phase is a generation (there is nothing to
show yet); otherwise the newest surviving artifact is displayed first.
The loop stops on the first renderer or viewer failure (fail-stop) or on
SIGINT/SIGTERM (clean shutdown). There are no retries: a fresh start
re-enters through recovery instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := wire.Logger()
			defer logger.Close()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				sig := <-sigChan
				logger.Info("received shutdown signal", "signal", sig.String())
				cancel()
			}()

			fmt.Printf("Starting cycle (gallery: %s)\n", wire.Config().GalleryDir)

			if err := wire.CycleService().Run(ctx); err != nil {
				return err
			}

			fmt.Println("✓ Cycle stopped cleanly")
			return nil
		},
	}
}
