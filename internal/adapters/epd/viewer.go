// Package epd contains the adapter for the external e-paper display program.
package epd

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/example/inkcycle/internal/logging"
	"github.com/example/inkcycle/internal/ports/secondary"
)

// Viewer implements secondary.Viewer by invoking a configured display
// command with the artifact path appended as the final argument.
type Viewer struct {
	command []string
	logger  *logging.Logger
}

// NewViewer creates a viewer adapter around the given argv prefix.
func NewViewer(command []string, logger *logging.Logger) (*Viewer, error) {
	if len(command) == 0 {
		return nil, fmt.Errorf("viewer command is empty")
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Viewer{
		command: command,
		logger:  logger,
	}, nil
}

// Show invokes the display program on the artifact at path and blocks
// until it exits.
func (v *Viewer) Show(ctx context.Context, path string) error {
	argv := v.argv(path)

	v.logger.Info("invoking viewer", "command", argv[0], "path", path)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("viewer failed: %w (output: %s)", err, output)
	}

	return nil
}

// argv assembles the full invocation: configured prefix plus the
// artifact path as the final argument.
func (v *Viewer) argv(path string) []string {
	return append(append([]string{}, v.command...), path)
}

var _ secondary.Viewer = (*Viewer)(nil)
