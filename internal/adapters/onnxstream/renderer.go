// Package onnxstream contains the adapter for the OnnxStream sd renderer.
package onnxstream

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/example/inkcycle/internal/logging"
	"github.com/example/inkcycle/internal/ports/secondary"
)

// Renderer implements secondary.Renderer by invoking the OnnxStream sd
// binary. The contract is exit status only; the caller verifies the
// output file separately.
type Renderer struct {
	binary   string
	modelDir string
	logger   *logging.Logger
}

// NewRenderer creates a renderer adapter for the given sd binary and
// model directory.
func NewRenderer(binary, modelDir string, logger *logging.Logger) *Renderer {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Renderer{
		binary:   binary,
		modelDir: modelDir,
		logger:   logger,
	}
}

// Render invokes sd targeted at req.OutputPath and blocks until it exits.
func (r *Renderer) Render(ctx context.Context, req secondary.RenderRequest) error {
	args := buildArgs(r.modelDir, req)

	r.logger.Info("invoking renderer",
		"binary", r.binary,
		"prompt", req.Prompt,
		"seed", req.Seed,
		"output", req.OutputPath)

	cmd := exec.CommandContext(ctx, r.binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("renderer failed: %w (output: %s)", err, output)
	}

	return nil
}

// buildArgs assembles the sd argument list. Kept separate so the exact
// invocation is testable without spawning a process.
func buildArgs(modelDir string, req secondary.RenderRequest) []string {
	return []string{
		"--xl", "--turbo",
		"--models-path", modelDir,
		"--rpi-lowmem",
		"--prompt", req.Prompt,
		"--seed", strconv.Itoa(req.Seed),
		"--output", req.OutputPath,
		"--steps", strconv.Itoa(req.Steps),
		"--res", fmt.Sprintf("%dx%d", req.Width, req.Height),
	}
}

var _ secondary.Renderer = (*Renderer)(nil)
