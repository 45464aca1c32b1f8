package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/inkcycle/internal/cli"
	"github.com/example/inkcycle/internal/version"
	"github.com/example/inkcycle/internal/wire"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "inkcycle",
		Short:   "inkcycle - generate/display art cycle for e-ink frames",
		Version: version.String(),
		Long: `inkcycle runs a perpetual generate/display cycle: it renders images
with OnnxStream into a bounded ring of gallery slots and pushes the
freshest artifact to an e-paper display, alternating forever.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if configPath != "" {
				wire.SetConfigPath(configPath)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.inkcycle/config.json)")

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.RunCmd())
	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.DisplayCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
