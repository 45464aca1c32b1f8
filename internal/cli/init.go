package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/inkcycle/internal/adapters/filesystem"
	"github.com/example/inkcycle/internal/config"
	"github.com/example/inkcycle/internal/db"
	"github.com/example/inkcycle/internal/prompt"
	"github.com/example/inkcycle/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the config, gallery, prompt library, and history database",
		Long: `Initialize a fresh inkcycle installation:
- write the default config (unless one exists)
- create the gallery root
- seed a starter prompt library (unless one exists)
- initialize the history database

Existing files are left untouched, so init is safe to re-run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := wire.ConfigPath()
			if err != nil {
				return fmt.Errorf("failed to resolve config path: %w", err)
			}

			cfg, err := config.Load(path)
			if err == nil {
				fmt.Printf("Config already exists at %s\n", path)
			} else {
				cfg, err = config.Default()
				if err != nil {
					return err
				}
				if err := config.Save(path, cfg); err != nil {
					return err
				}
				fmt.Printf("✓ Config written to %s\n", path)
			}

			gallery := filesystem.NewGallery(cfg.GalleryDir)
			if err := gallery.EnsureRoot(); err != nil {
				return err
			}
			fmt.Printf("✓ Gallery root at %s\n", cfg.GalleryDir)

			if err := seedPrompts(cfg.PromptsPath); err != nil {
				return fmt.Errorf("failed to seed prompt library: %w", err)
			}
			fmt.Printf("✓ Prompt library at %s\n", cfg.PromptsPath)

			database, err := db.Open(db.PathInGallery(cfg.GalleryDir))
			if err != nil {
				return fmt.Errorf("failed to initialize history database: %w", err)
			}
			defer database.Close()
			fmt.Printf("✓ History database at %s\n", db.PathInGallery(cfg.GalleryDir))

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  inkcycle doctor    # verify renderer and viewer")
			fmt.Println("  inkcycle run       # start the cycle")

			return nil
		},
	}
}

// seedPrompts writes the starter prompt library unless one already exists.
func seedPrompts(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // Already exists, skip
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(prompt.Starter(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
