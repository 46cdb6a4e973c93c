package source

import (
	"context"
	"fmt"

	"github.com/genricoloni/hyprarrange/internal/domain"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
	"go.uber.org/zap"
)

// X11Source reads active CRTCs from the X server through RandR
type X11Source struct {
	logger *zap.Logger
}

// NewX11Source creates an X11 RandR source
func NewX11Source(logger *zap.Logger) *X11Source {
	return &X11Source{logger: logger}
}

// Monitors returns one descriptor per enabled CRTC, named after its first output
func (s *X11Source) Monitors(ctx context.Context) ([]domain.MonitorDescriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11 connection failed: %w", err)
	}
	defer conn.Close()

	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	root := xproto.Setup(conn).DefaultScreen(conn).Root
	resources, err := randr.GetScreenResources(conn, root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var out []domain.MonitorDescriptor
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(conn, crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			s.logger.Debug("Skipping unreadable CRTC", zap.Int("crtc", i), zap.Error(err))
			continue
		}
		// Disabled CRTCs report a zero mode and no outputs
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("CRTC-%d", i)
		output, err := randr.GetOutputInfo(conn, info.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil && len(output.Name) > 0 {
			name = string(output.Name)
		}

		out = append(out, domain.MonitorDescriptor{
			Name:   name,
			Width:  int(info.Width),
			Height: int(info.Height),
			X:      int(info.X),
			Y:      int(info.Y),
			Scale:  1,
		})
	}

	s.logger.Debug("Monitors read from RandR", zap.Int("count", len(out)))
	return out, nil
}
