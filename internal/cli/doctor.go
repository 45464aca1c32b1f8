package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/inkcycle/internal/config"
	"github.com/example/inkcycle/internal/db"
	"github.com/example/inkcycle/internal/prompt"
	"github.com/example/inkcycle/internal/wire"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the inkcycle environment",
		Long: `Comprehensive environment health check for inkcycle.

Validates:
- Config file readable
- Gallery root writable
- Renderer binary present and executable
- Model directory present
- Prompt library loads and composes
- Viewer command resolvable
- History database opens

The cycle fail-stops on the first broken collaborator, so run this after
any change to the renderer, models, or display setup.

Examples:
  inkcycle doctor          # Run full health check
  inkcycle doctor --quiet  # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{}
			hasErrors := false

			cfg, cfgResult := checkConfig()
			results = append(results, cfgResult)

			if cfg != nil {
				results = append(results, checkGalleryRoot(cfg))
				results = append(results, checkRenderer(cfg))
				results = append(results, checkModelDir(cfg))
				results = append(results, checkPrompts(cfg))
				results = append(results, checkViewer(cfg))
				results = append(results, checkHistoryDB(cfg))
			}

			// Check for errors
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				// Print compact table
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, colorStatus(r.Status))
				}
				fmt.Println()

				// Print details for non-passing checks
				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. The cycle fail-stops on the first broken collaborator.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// colorStatus renders a check glyph in the conventional color.
func colorStatus(status string) string {
	switch status {
	case "✓":
		return color.New(color.FgGreen).Sprint(status)
	case "⚠":
		return color.New(color.FgYellow).Sprint(status)
	default:
		return color.New(color.FgRed).Sprint(status)
	}
}

// checkConfig loads the config file; every other check depends on it.
func checkConfig() (*config.Config, CheckResult) {
	path, err := wire.ConfigPath()
	if err != nil {
		return nil, CheckResult{Name: "Config", Status: "✗", Details: "  " + err.Error()}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, CheckResult{
			Name:    "Config",
			Status:  "✗",
			Details: fmt.Sprintf("  Cannot load %s\n  Run: inkcycle init", path),
		}
	}

	return cfg, CheckResult{Name: "Config", Status: "✓"}
}

// checkGalleryRoot verifies the gallery root exists (creating it if
// needed) and is writable.
func checkGalleryRoot(cfg *config.Config) CheckResult {
	if err := os.MkdirAll(cfg.GalleryDir, 0755); err != nil {
		return CheckResult{
			Name:    "Gallery Root",
			Status:  "✗",
			Details: fmt.Sprintf("  Cannot create %s: %v", cfg.GalleryDir, err),
		}
	}

	probe := filepath.Join(cfg.GalleryDir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return CheckResult{
			Name:    "Gallery Root",
			Status:  "✗",
			Details: fmt.Sprintf("  %s is not writable", cfg.GalleryDir),
		}
	}
	os.Remove(probe)

	return CheckResult{Name: "Gallery Root", Status: "✓"}
}

// checkRenderer verifies the sd binary exists and is executable.
func checkRenderer(cfg *config.Config) CheckResult {
	info, err := os.Stat(cfg.Renderer.Binary)
	if err != nil {
		// Not a direct path; it may still resolve via PATH.
		if _, lookErr := exec.LookPath(cfg.Renderer.Binary); lookErr == nil {
			return CheckResult{Name: "Renderer", Status: "✓"}
		}
		return CheckResult{
			Name:    "Renderer",
			Status:  "✗",
			Details: fmt.Sprintf("  %s not found", cfg.Renderer.Binary),
		}
	}

	if info.Mode()&0111 == 0 {
		return CheckResult{
			Name:    "Renderer",
			Status:  "✗",
			Details: fmt.Sprintf("  %s is not executable", cfg.Renderer.Binary),
		}
	}

	return CheckResult{Name: "Renderer", Status: "✓"}
}

// checkModelDir verifies the model directory exists.
func checkModelDir(cfg *config.Config) CheckResult {
	info, err := os.Stat(cfg.Renderer.ModelDir)
	if err != nil || !info.IsDir() {
		return CheckResult{
			Name:    "Model Dir",
			Status:  "✗",
			Details: fmt.Sprintf("  %s not found", cfg.Renderer.ModelDir),
		}
	}
	return CheckResult{Name: "Model Dir", Status: "✓"}
}

// checkPrompts loads the prompt library and composes one prompt from it.
func checkPrompts(cfg *config.Config) CheckResult {
	lib, err := prompt.Load(cfg.PromptsPath)
	if err != nil {
		return CheckResult{
			Name:    "Prompts",
			Status:  "✗",
			Details: fmt.Sprintf("  %v\n  Run: inkcycle init", err),
		}
	}

	if composed := lib.Compose(func(n int) int { return 0 }); composed == "" {
		return CheckResult{Name: "Prompts", Status: "✗", Details: "  Library composes an empty prompt"}
	}
	return CheckResult{Name: "Prompts", Status: "✓"}
}

// checkViewer verifies the viewer command resolves to something runnable.
func checkViewer(cfg *config.Config) CheckResult {
	if len(cfg.Viewer.Command) == 0 {
		return CheckResult{Name: "Viewer", Status: "✗", Details: "  Viewer command is empty"}
	}

	bin := cfg.Viewer.Command[0]
	if _, err := exec.LookPath(bin); err != nil {
		if _, statErr := os.Stat(bin); statErr != nil {
			return CheckResult{
				Name:    "Viewer",
				Status:  "✗",
				Details: fmt.Sprintf("  %s not found in PATH", bin),
			}
		}
	}

	return CheckResult{Name: "Viewer", Status: "✓"}
}

// checkHistoryDB opens (creating if needed) the ledger database.
func checkHistoryDB(cfg *config.Config) CheckResult {
	database, err := db.Open(db.PathInGallery(cfg.GalleryDir))
	if err != nil {
		return CheckResult{Name: "History DB", Status: "✗", Details: "  " + err.Error()}
	}
	database.Close()
	return CheckResult{Name: "History DB", Status: "✓"}
}
