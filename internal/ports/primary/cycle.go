// Package primary defines the primary ports (driving interfaces) for the application.
package primary

import "context"

// CycleService defines the primary port for the generate/display cycle.
type CycleService interface {
	// Run executes the cycle forever: generate into the next slot, show
	// the newest artifact, sleep, repeat. It returns nil on context
	// cancellation (clean shutdown) and the fatal failure otherwise.
	Run(ctx context.Context) error

	// Generate executes a single generate phase: allocate the next slot,
	// render into it, verify the artifact exists, refresh the shared path.
	Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error)

	// Display executes a single display phase: locate the newest existing
	// artifact and show it.
	Display(ctx context.Context) (*DisplayResult, error)
}

// GenerateOptions carries per-invocation overrides for a generate phase.
// Zero values defer to configured or derived defaults.
type GenerateOptions struct {
	Prompt string // Overrides prompt composition when non-empty
	Seed   int    // 0 means a fresh random seed
	Steps  int    // 0 means the configured step count
}

// GenerateResult describes a completed generate phase.
type GenerateResult struct {
	Slot   int
	Path   string
	Prompt string
	Seed   int
}

// DisplayResult describes a completed display phase.
type DisplayResult struct {
	Slot int // 0 means the shared path was shown
	Path string
}
