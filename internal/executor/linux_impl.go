//go:build linux
// +build linux

package executor

import (
	"context"
	"fmt"
	"strings"

	"github.com/genricoloni/hyprarrange/internal/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// defaultBinary is the program name exported commands start with
const defaultBinary = "hyprctl"

// HyprctlApplier executes exported placement commands one by one
type HyprctlApplier struct {
	logger *zap.Logger
	runner domain.CommandRunner
	binary string
}

// NewApplier creates the platform-specific apply sink (Linux implementation)
func NewApplier(logger *zap.Logger, runner domain.CommandRunner, cfg domain.Config) (*HyprctlApplier, error) {
	binary := cfg.GetHyprctlBinary()
	if binary == "" {
		return nil, fmt.Errorf("no hyprctl binary configured")
	}
	return &HyprctlApplier{
		logger: logger,
		runner: runner,
		binary: binary,
	}, nil
}

// Apply runs every command in order. Failures are logged and collected; they
// never stop the remaining commands.
func (a *HyprctlApplier) Apply(ctx context.Context, commands []string) error {
	var errs error
	applied := 0

	for i, line := range commands {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		name := fields[0]
		if name == defaultBinary {
			name = a.binary
		}

		out, err := a.runner.Run(ctx, name, fields[1:]...)
		if err != nil {
			a.logger.Error("Placement command failed",
				zap.Int("index", i),
				zap.String("command", line),
				zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("command %d (%s): %w", i, line, err))
			continue
		}

		// hyprctl exits 0 and prints the reason when a keyword is rejected
		if reply := strings.TrimSpace(string(out)); reply != "" && reply != "ok" {
			a.logger.Error("Placement command rejected",
				zap.Int("index", i),
				zap.String("command", line),
				zap.String("reply", reply))
			errs = multierr.Append(errs, fmt.Errorf("command %d (%s): %s", i, line, reply))
			continue
		}

		applied++
	}

	a.logger.Info("Layout applied",
		zap.Int("applied", applied),
		zap.Int("total", len(commands)))

	return errs
}
