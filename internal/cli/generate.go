package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/inkcycle/internal/ports/primary"
	"github.com/example/inkcycle/internal/wire"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one artifact into the next ring slot",
	Long: `Run a single generate phase: allocate the next ring slot, invoke the
renderer targeted at it, verify the artifact exists, and refresh the
shared artifact.

Examples:
  inkcycle generate
  inkcycle generate --prompt "a lighthouse at dusk" --seed 42
  inkcycle generate --steps 6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		promptText, _ := cmd.Flags().GetString("prompt")
		seed, _ := cmd.Flags().GetInt("seed")
		steps, _ := cmd.Flags().GetInt("steps")

		result, err := wire.CycleService().Generate(ctx, primary.GenerateOptions{
			Prompt: promptText,
			Seed:   seed,
			Steps:  steps,
		})
		if err != nil {
			return err
		}

		fmt.Printf("✓ Generated slot %d\n", result.Slot)
		fmt.Printf("  Path:   %s\n", result.Path)
		fmt.Printf("  Prompt: %s\n", result.Prompt)
		fmt.Printf("  Seed:   %d\n", result.Seed)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("prompt", "p", "", "Prompt text (default: composed from the prompt library)")
	generateCmd.Flags().Int("seed", 0, "Render seed (default: random 1-10000)")
	generateCmd.Flags().Int("steps", 0, "Diffusion steps (default: configured value)")
}

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	return generateCmd
}
