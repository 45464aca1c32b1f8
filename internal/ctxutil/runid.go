// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// RunKey is the context key for the cycle run ID.
// Exported so it can be used consistently across packages.
type RunKey struct{}

// WithRunID returns a context with the run ID embedded. One run ID is
// minted per process run and stamped on every history record it writes.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunKey{}, runID)
}

// RunIDFromContext returns the run ID from context, or empty string if not set.
func RunIDFromContext(ctx context.Context) string {
	if v := ctx.Value(RunKey{}); v != nil {
		return v.(string)
	}
	return ""
}
