// Package ring contains the pure business logic for the artifact ring.
// This is part of the Functional Core - no I/O, only pure functions over
// the cursor value and an injected existence predicate.
package ring

// Slots is the fixed size of the artifact ring. The gallery never holds
// more than this many slot files; the oldest slot is reused next.
const Slots = 50

// InRange reports whether a persisted cursor value is usable.
// 0 is valid and means "no artifact has ever been produced".
func InRange(cursor int) bool {
	return cursor >= 0 && cursor <= Slots
}

// Next computes the slot that follows the given cursor in ring order:
// 1, 2, ..., Slots, 1. Next(0) == 1 with no special case, so the very
// first allocation lands on slot 1.
func Next(cursor int) int {
	return (cursor % Slots) + 1
}

// Target is the result of a recovery lookup. When Slot is zero the
// caller should use the shared default artifact path instead of a
// numbered slot path.
type Target struct {
	Slot int
}

// Shared reports whether the target resolves to the shared default path.
func (t Target) Shared() bool {
	return t.Slot == 0
}

// Latest finds the most recently produced slot whose artifact is actually
// present, tolerating drift between the cursor and the files on disk.
// Priority order:
//   - cursor 0 means nothing was ever allocated: the shared path wins.
//   - The cursor's own slot, when present (the common case).
//   - Scanning downward from cursor-1 to 1 (the newest allocation may have
//     crashed after the cursor advanced but before the file was written).
//   - Scanning downward from Slots to cursor+1 (the surviving artifact may
//     sit just before the wrap point).
//   - Nothing anywhere: the shared path, which the caller must still check.
//
// The result is always the closest-preceding existing slot in allocation
// order, never a file out of cycle order.
func Latest(cursor int, exists func(slot int) bool) Target {
	if cursor == 0 {
		return Target{}
	}

	if exists(cursor) {
		return Target{Slot: cursor}
	}

	for slot := cursor - 1; slot >= 1; slot-- {
		if exists(slot) {
			return Target{Slot: slot}
		}
	}

	for slot := Slots; slot >= cursor+1; slot-- {
		if exists(slot) {
			return Target{Slot: slot}
		}
	}

	return Target{}
}
