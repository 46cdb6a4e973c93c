package source

import (
	"context"
	"fmt"

	"github.com/genricoloni/hyprarrange/internal/domain"
	"github.com/kbinani/screenshot"
	"go.uber.org/zap"
)

// ScreenshotSource uses the OS display bounds. Connector names are not
// available, so monitors are called display-0, display-1, ...
type ScreenshotSource struct {
	logger *zap.Logger
}

// NewScreenshotSource creates the display-bounds fallback source
func NewScreenshotSource(logger *zap.Logger) *ScreenshotSource {
	return &ScreenshotSource{logger: logger}
}

// Monitors returns the bounds of every active display
func (s *ScreenshotSource) Monitors(ctx context.Context) ([]domain.MonitorDescriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		s.logger.Warn("No active displays detected")
		return nil, nil
	}

	out := make([]domain.MonitorDescriptor, 0, n)
	for i := 0; i < n; i++ {
		bounds := screenshot.GetDisplayBounds(i)
		out = append(out, domain.MonitorDescriptor{
			Name:   fmt.Sprintf("display-%d", i),
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
			X:      bounds.Min.X,
			Y:      bounds.Min.Y,
			Scale:  1,
		})
	}
	return out, nil
}
