// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// all gallery and history logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/inkcycle/internal/ports/primary"
)

// StatusRenderer is a thin adapter that renders the gallery snapshot.
// It depends only on the GalleryService interface, enabling easy testing with mocks.
type StatusRenderer struct {
	service primary.GalleryService
	out     io.Writer
}

// NewStatusRenderer creates a new StatusRenderer with the given service.
func NewStatusRenderer(service primary.GalleryService, out io.Writer) *StatusRenderer {
	return &StatusRenderer{
		service: service,
		out:     out,
	}
}

// Render prints the cursor, ring occupancy, and the artifact a display
// phase would resolve to right now.
func (a *StatusRenderer) Render(ctx context.Context) error {
	status, err := a.service.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to read gallery status: %w", err)
	}

	fmt.Fprintf(a.out, "\nGallery: %s\n", status.Root)

	fmt.Fprintf(a.out, "Cursor:  %d of %d", status.Cursor, status.RingSize)
	if status.Cursor == 0 {
		fmt.Fprint(a.out, " (nothing generated yet)")
	}
	fmt.Fprintln(a.out)

	fmt.Fprintf(a.out, "Slots:   %d of %d occupied\n", len(status.SlotsPresent), status.RingSize)

	latest := "shared artifact"
	if status.LatestSlot != 0 {
		latest = fmt.Sprintf("slot %d", status.LatestSlot)
	}
	fmt.Fprintf(a.out, "Latest:  %s (%s) %s\n", status.LatestPath, latest, existsGlyph(status.LatestExists))

	if status.LatestSlot != 0 {
		fmt.Fprintf(a.out, "Shared:  %s\n", existsGlyph(status.SharedExists))
	}
	fmt.Fprintln(a.out)

	return nil
}

// existsGlyph renders file presence as a colored marker.
func existsGlyph(exists bool) string {
	if exists {
		return color.New(color.FgHiGreen).Sprint("✓ present")
	}
	return color.New(color.FgRed).Sprint("✗ missing")
}
