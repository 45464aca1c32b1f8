package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/example/inkcycle/internal/ports/secondary"
)

// SharedFileName is the well-known default artifact inside the gallery
// root, shown before any slot exists and refreshed after each successful
// generation.
const SharedFileName = "output.png"

// Gallery implements secondary.Gallery: the slot-to-path layout of one
// gallery root.
type Gallery struct {
	root string
}

// NewGallery creates a gallery over the given root directory.
func NewGallery(root string) *Gallery {
	return &Gallery{root: root}
}

// Root returns the gallery root directory.
func (g *Gallery) Root() string {
	return g.root
}

// SlotPath returns the fixed artifact path for a slot: output<slot>.png.
func (g *Gallery) SlotPath(slot int) string {
	return filepath.Join(g.root, fmt.Sprintf("output%d.png", slot))
}

// SharedPath returns the default artifact path: output.png.
func (g *Gallery) SharedPath() string {
	return filepath.Join(g.root, SharedFileName)
}

// Exists reports whether a file is present at path.
func (g *Gallery) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// EnsureRoot creates the gallery root if it does not exist.
func (g *Gallery) EnsureRoot() error {
	if err := os.MkdirAll(g.root, 0755); err != nil {
		return fmt.Errorf("failed to create gallery root: %w", err)
	}
	return nil
}

// Refresh copies the artifact at src over the shared path.
func (g *Gallery) Refresh(src string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open artifact: %w", err)
	}
	defer in.Close()

	out, err := os.Create(g.SharedPath())
	if err != nil {
		return fmt.Errorf("failed to create shared artifact: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy artifact: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close shared artifact: %w", err)
	}

	return nil
}

var _ secondary.Gallery = (*Gallery)(nil)
