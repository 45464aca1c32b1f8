package app

import "fmt"

// GenerationError indicates the renderer failed or its artifact never
// appeared on disk. Generation errors are fatal to the cycle.
type GenerationError struct {
	Slot int
	Path string
	Err  error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("generation failed for slot %d: artifact %s missing after render", e.Slot, e.Path)
	}
	return fmt.Sprintf("generation failed for slot %d: %v", e.Slot, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// DisplayError indicates the viewer failed or there was nothing to show.
// Display errors are fatal to the cycle.
type DisplayError struct {
	Path string
	Err  error
}

func (e *DisplayError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("display failed: no artifact at %s", e.Path)
	}
	return fmt.Sprintf("display failed for %s: %v", e.Path, e.Err)
}

func (e *DisplayError) Unwrap() error {
	return e.Err
}
