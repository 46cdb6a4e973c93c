package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// waitDelay bounds how long Wait lingers on I/O after the process exits or
// the context is cancelled
const waitDelay = 2 * time.Second

// ExecRunner runs external programs with os/exec
type ExecRunner struct {
	logger *zap.Logger
}

// NewExecRunner creates a process runner
func NewExecRunner(logger *zap.Logger) *ExecRunner {
	return &ExecRunner{logger: logger}
}

// Run executes name with args and returns its standard output
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.logger.Debug("Running command", zap.String("command", name), zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return out, fmt.Errorf("%s failed: %w (stderr: %s)",
				name, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return out, fmt.Errorf("%s failed: %w", name, err)
	}
	return out, nil
}

// RunWithInput executes name with args, writing input to its standard input.
// Output is not captured: tools such as xclip leave a child running that
// inherits the parent's stdout and stderr.
func (r *ExecRunner) RunWithInput(ctx context.Context, input []byte, name string, args ...string) error {
	r.logger.Debug("Running command with input",
		zap.String("command", name),
		zap.Strings("args", args),
		zap.Int("bytes", len(input)))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = bytes.NewReader(input)
	cmd.WaitDelay = waitDelay
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

// LookPath resolves name in PATH
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
