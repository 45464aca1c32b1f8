// Package cycle contains the pure business logic for the generate/display
// alternation. This is part of the Functional Core - no I/O, only pure
// functions; time and process invocation are injected by the caller.
package cycle

import "time"

// Phase represents the possible states of the cycle scheduler.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseBootstrapping Phase = "bootstrapping"
	PhaseGenerating    Phase = "generating"
	PhaseDisplaying    Phase = "displaying"
	PhaseStopped       Phase = "stopped"
)

// Duty-cycle constants. A short pause after showing, a long pause to give
// the renderer room on low-power hardware. Fixed constants, never config.
const (
	DelayAfterDisplay  = 300 * time.Second
	DelayAfterGenerate = 3600 * time.Second
)

// Step is the scheduler's next move: wait for Delay, then enter Next.
// The first phase of a run always carries a zero Delay.
type Step struct {
	Next  Phase
	Delay time.Duration
}

// Bootstrap decides the first working phase from the recovered cursor.
// A cursor of 0 means nothing has ever been generated, so there is
// nothing to show yet and one Generate phase must run first.
func Bootstrap(cursor int) Step {
	if cursor == 0 {
		return Step{Next: PhaseGenerating}
	}
	return Step{Next: PhaseDisplaying}
}

// AfterGenerate returns the step following a Generate phase. Generation
// failures are fatal: a broken renderer is an environment problem that
// retries cannot fix.
func AfterGenerate(ok bool) Step {
	if !ok {
		return Step{Next: PhaseStopped}
	}
	return Step{Next: PhaseDisplaying, Delay: DelayAfterGenerate}
}

// AfterDisplay returns the step following a Display phase. Display
// failures are fatal for the same reason generation failures are.
func AfterDisplay(ok bool) Step {
	if !ok {
		return Step{Next: PhaseStopped}
	}
	return Step{Next: PhaseGenerating, Delay: DelayAfterDisplay}
}

// Terminal reports whether the scheduler loop must exit in this phase.
func Terminal(p Phase) bool {
	return p == PhaseStopped
}
