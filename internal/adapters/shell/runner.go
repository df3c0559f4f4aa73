// Package shell provides the external command runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/shipit/internal/core/domain"
	"go.trai.ch/shipit/internal/core/ports"
	"go.trai.ch/shipit/internal/engine/gate"
	"go.trai.ch/zerr"
)

var _ ports.CommandRunner = (*Runner)(nil)

// Runner implements ports.CommandRunner using os/exec. Every command is
// admitted through the gate, which is the sole throttle on the fan-out from
// concurrent dependency resolution and uploads.
type Runner struct {
	gate   *gate.Gate
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(g *gate.Gate, logger ports.Logger) *Runner {
	return &Runner{
		gate:   g,
		logger: logger,
	}
}

// Run executes the command in dir and returns captured stdout and stderr.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	err := r.gate.Do(ctx, func() error {
		cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // commands are assembled by adapters, not user input
		cmd.Dir = dir
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		return cmd.Run()
	})
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.With(zerr.With(zerr.With(
			zerr.Wrap(err, domain.ErrCommandFailed.Error()),
			"command", name+" "+strings.Join(args, " ")),
			"exit_code", exitCode),
			"stderr", strings.TrimSpace(stderr.String()),
		)
		return stdout.String(), stderr.String(), wrapped
	}

	return stdout.String(), stderr.String(), nil
}
