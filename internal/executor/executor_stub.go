//go:build !linux
// +build !linux

package executor

import (
	"context"
	"fmt"

	"github.com/genricoloni/hyprarrange/internal/domain"
	"go.uber.org/zap"
)

// StubApplier is a placeholder for platforms without Hyprland
type StubApplier struct {
	logger *zap.Logger
}

// NewApplier creates a stub apply sink for unsupported platforms
func NewApplier(logger *zap.Logger, runner domain.CommandRunner, cfg domain.Config) (*StubApplier, error) {
	logger.Warn("Applying layouts is only supported on Linux")
	return &StubApplier{logger: logger}, nil
}

// Apply returns an error indicating the platform is not supported
func (a *StubApplier) Apply(ctx context.Context, commands []string) error {
	return fmt.Errorf("applying monitor layouts is not supported on this platform")
}
