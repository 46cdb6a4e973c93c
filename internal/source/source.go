package source

import (
	"fmt"
	"os"

	"github.com/genricoloni/hyprarrange/internal/domain"
	"go.uber.org/zap"
)

// NewMonitorSource returns the source selected by configuration.
// SourceAuto is resolved from the session environment.
func NewMonitorSource(logger *zap.Logger, cfg domain.Config, runner domain.CommandRunner) (domain.MonitorSource, error) {
	kind := cfg.GetSource()
	if kind == domain.SourceAuto {
		kind = detectSource(os.Getenv)
		logger.Info("Monitor source detected", zap.String("source", string(kind)))
	}

	switch kind {
	case domain.SourceHyprctl:
		return NewHyprctlSource(logger, runner, cfg), nil
	case domain.SourceX11:
		return NewX11Source(logger), nil
	case domain.SourceScreenshot:
		return NewScreenshotSource(logger), nil
	default:
		return nil, fmt.Errorf("unknown monitor source %q", kind)
	}
}

// detectSource prefers Hyprland, then an X11 display, then the generic
// display bounds
func detectSource(getenv func(string) string) domain.SourceKind {
	if getenv("HYPRLAND_INSTANCE_SIGNATURE") != "" {
		return domain.SourceHyprctl
	}
	if getenv("DISPLAY") != "" && getenv("WAYLAND_DISPLAY") == "" {
		return domain.SourceX11
	}
	return domain.SourceScreenshot
}
