package arranger

import (
	"context"
	"fmt"

	"github.com/genricoloni/hyprarrange/internal/domain"
	"github.com/genricoloni/hyprarrange/internal/layout"
	"github.com/genricoloni/hyprarrange/internal/render"
	"github.com/genricoloni/hyprarrange/internal/script"
	"go.uber.org/zap"
)

const appliedSummary = "Monitor layout applied"

// Arranger wires the layout engine to the outside world: it reads monitors
// from the display server, and applies, copies or renders the result.
type Arranger struct {
	logger    *zap.Logger
	cfg       domain.Config
	source    domain.MonitorSource
	applier   domain.Applier
	clipboard domain.Clipboard
	notifier  domain.Notifier
	renderer  *render.PreviewRenderer
}

// NewArranger creates a new arranger
func NewArranger(
	logger *zap.Logger,
	cfg domain.Config,
	src domain.MonitorSource,
	applier domain.Applier,
	clip domain.Clipboard,
	notifier domain.Notifier,
	renderer *render.PreviewRenderer,
) *Arranger {
	return &Arranger{
		logger:    logger,
		cfg:       cfg,
		source:    src,
		applier:   applier,
		clipboard: clip,
		notifier:  notifier,
		renderer:  renderer,
	}
}

// ZoomPolicy builds the zoom policy from configuration
func (a *Arranger) ZoomPolicy() layout.ZoomPolicy {
	lo, hi := a.cfg.GetScaleBounds()
	return layout.ZoomPolicy{
		Initial: a.cfg.GetInitialScale(),
		Min:     lo,
		Max:     hi,
		Step:    a.cfg.GetZoomStep(),
	}
}

// Load queries the monitor source and returns an engine centered in the
// configured viewport
func (a *Arranger) Load(ctx context.Context) (*layout.Engine, error) {
	descs, err := a.source.Monitors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list monitors: %w", err)
	}

	reg, err := layout.Load(descs)
	if err != nil {
		return nil, fmt.Errorf("failed to load monitors: %w", err)
	}
	if reg.Len() == 0 {
		a.logger.Warn("No monitors reported, layout is empty")
	}

	a.logger.Info("Monitors loaded", zap.Int("count", reg.Len()))
	return layout.NewEngine(a.logger, reg, a.cfg.GetViewport(), a.ZoomPolicy()), nil
}

// Apply sends the current layout to the display server and, on success,
// posts a desktop notification. A failed notification is only logged.
func (a *Arranger) Apply(ctx context.Context, e *layout.Engine) error {
	commands := e.ExportCommands()
	if len(commands) == 0 {
		a.logger.Warn("Nothing to apply")
		return nil
	}

	if err := a.applier.Apply(ctx, commands); err != nil {
		return fmt.Errorf("failed to apply layout: %w", err)
	}

	body := fmt.Sprintf("%d monitors", len(commands))
	if err := a.notifier.Notify(ctx, appliedSummary, body); err != nil {
		a.logger.Warn("Failed to send notification", zap.Error(err))
	}
	return nil
}

// CopyConfig places the config block on the clipboard and returns it. An
// empty layout leaves the clipboard untouched.
func (a *Arranger) CopyConfig(ctx context.Context, e *layout.Engine) (string, error) {
	text := e.ExportClipboardConfig()
	if text == "" {
		a.logger.Warn("Nothing to copy")
		return "", nil
	}
	if err := a.clipboard.SetText(ctx, text); err != nil {
		return "", fmt.Errorf("failed to copy layout: %w", err)
	}

	a.logger.Info("Layout copied to clipboard", zap.Int("monitors", e.Registry().Len()))
	return text, nil
}

// Preview renders the current frame to path, or to the configured preview
// path when path is empty. It returns the path written.
func (a *Arranger) Preview(e *layout.Engine, path string) (string, error) {
	if path == "" {
		path = a.cfg.GetPreviewPath()
	}
	img := a.renderer.Render(e.Frame(), e.Viewport())
	if err := a.renderer.Save(path, img); err != nil {
		return "", err
	}
	return path, nil
}

// Replay drives e with a scripted session
func (a *Arranger) Replay(e *layout.Engine, s *script.Session) script.Result {
	res := s.Play(e)
	a.logger.Info("Session replayed",
		zap.Int("events", res.Events),
		zap.Int("handled", res.Handled),
		zap.Float64("scale", e.ScaleFactor()))
	return res
}
