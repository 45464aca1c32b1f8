// Package clock provides the real-time implementation of the Clock port.
package clock

import (
	"context"
	"time"

	"github.com/example/inkcycle/internal/ports/secondary"
)

// System is the wall-clock implementation used outside tests.
type System struct{}

// NewSystem returns the system clock.
func NewSystem() *System {
	return &System{}
}

// Now returns the current wall-clock time.
func (s *System) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d or until ctx is cancelled, whichever comes first.
func (s *System) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var _ secondary.Clock = (*System)(nil)
