package secondary

import (
	"context"
	"time"
)

// Renderer defines the secondary port for the external image renderer.
// The contract is deliberately thin: exit status plus the post-condition
// "file exists at OutputPath on success", which the caller verifies.
type Renderer interface {
	// Render invokes the renderer targeted at req.OutputPath and blocks
	// until it exits.
	Render(ctx context.Context, req RenderRequest) error
}

// RenderRequest carries everything one render invocation needs.
type RenderRequest struct {
	OutputPath string
	Prompt     string
	Seed       int
	Steps      int
	Width      int
	Height     int
}

// Viewer defines the secondary port for the external display program.
type Viewer interface {
	// Show invokes the viewer on the artifact at path and blocks until
	// it exits.
	Show(ctx context.Context, path string) error
}

// Clock defines the secondary port for time. Injected so the scheduler's
// duty cycle is testable without real delays.
type Clock interface {
	// Now returns the current wall-clock time.
	Now() time.Time

	// Sleep blocks for d or until ctx is cancelled, whichever comes
	// first. Returns ctx.Err() on cancellation, nil otherwise.
	Sleep(ctx context.Context, d time.Duration) error
}
