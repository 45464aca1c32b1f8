// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// CursorStore defines the secondary port for cursor persistence.
// The cursor is the only piece of durable state the scheduler owns.
type CursorStore interface {
	// Load reads the persisted cursor. An absent, unreadable, malformed,
	// or out-of-range record degrades to 0; Load never fails.
	Load(ctx context.Context) int

	// Save durably writes the cursor, creating the gallery root if
	// missing. A save failure is best-effort territory: the caller logs
	// it and continues with the slot it already allocated.
	Save(ctx context.Context, cursor int) error
}

// Gallery defines the secondary port for artifact path layout and
// existence checks inside the gallery root.
type Gallery interface {
	// Root returns the gallery root directory.
	Root() string

	// SlotPath returns the fixed artifact path for a slot (1..ring size).
	SlotPath(slot int) string

	// SharedPath returns the well-known default artifact path used before
	// any slot exists and refreshed after each successful generation.
	SharedPath() string

	// Exists reports whether a file is present at the given path.
	// Existence is the only evidence of a successful generation.
	Exists(path string) bool

	// EnsureRoot creates the gallery root if it does not exist.
	EnsureRoot() error

	// Refresh copies the artifact at src over the shared path.
	Refresh(src string) error
}
