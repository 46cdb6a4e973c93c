package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/genricoloni/hyprarrange/internal/domain"
	"go.uber.org/zap"
)

// ErrNoClipboardTool is returned when none of wl-copy, xclip or xsel is installed
var ErrNoClipboardTool = errors.New("clipboard: wl-copy, xclip or xsel required")

// tool is a command line clipboard writer reading the text on stdin
type tool struct {
	binary  string
	args    []string
	wayland bool
}

var tools = []tool{
	{binary: "wl-copy", wayland: true},
	{binary: "xclip", args: []string{"-selection", "clipboard", "-i"}},
	{binary: "xsel", args: []string{"-b", "-i"}},
}

// SystemClipboard writes to the session clipboard through an external tool
type SystemClipboard struct {
	logger *zap.Logger
	runner domain.CommandRunner
	getenv func(string) string
}

// NewSystemClipboard creates a clipboard sink
func NewSystemClipboard(logger *zap.Logger, runner domain.CommandRunner) *SystemClipboard {
	return &SystemClipboard{
		logger: logger,
		runner: runner,
		getenv: os.Getenv,
	}
}

// SetText replaces the clipboard content. wl-copy is only considered inside a
// Wayland session.
func (c *SystemClipboard) SetText(ctx context.Context, text string) error {
	if text == "" {
		return errors.New("clipboard: empty data")
	}

	onWayland := c.getenv("WAYLAND_DISPLAY") != ""
	for _, t := range tools {
		if t.wayland && !onWayland {
			continue
		}
		path, err := c.runner.LookPath(t.binary)
		if err != nil {
			continue
		}

		if err := c.runner.RunWithInput(ctx, []byte(text), path, t.args...); err != nil {
			return fmt.Errorf("clipboard: %s: %w", t.binary, err)
		}
		c.logger.Info("Config copied to clipboard",
			zap.String("tool", t.binary),
			zap.Int("bytes", len(text)))
		return nil
	}

	return ErrNoClipboardTool
}
