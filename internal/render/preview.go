package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/hyprarrange/internal/domain"
	"github.com/genricoloni/hyprarrange/internal/layout"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	borderWidth = 2
	labelOffset = 20
	nameLineY   = 40
	lineSpacing = 20
)

var (
	backgroundColor = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff}
	borderColor     = color.NRGBA{R: 230, G: 230, B: 230, A: 0xff}
	labelColor      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// PreviewRenderer draws the tiles of a layout frame onto an image
type PreviewRenderer struct {
	logger *zap.Logger
}

// NewPreviewRenderer creates a renderer
func NewPreviewRenderer(logger *zap.Logger) *PreviewRenderer {
	return &PreviewRenderer{logger: logger}
}

// fillColor cycles through three shades of blue by registry index
func fillColor(index int) color.NRGBA {
	k := uint8(index % 3)
	return color.NRGBA{R: 51 * k, G: 51 * k, B: 51 + 51*k, A: 0xff}
}

// Render draws tiles on a canvas the size of viewport. Each monitor gets a
// light border, an inner fill, its name and, when the tile asks for it, its
// position and resolution.
func (r *PreviewRenderer) Render(tiles []layout.Tile, viewport domain.Size) *image.NRGBA {
	canvas := imaging.New(viewport.Width, viewport.Height, backgroundColor)

	for _, t := range tiles {
		x, y := int(t.X), int(t.Y)
		w, h := int(t.Width), int(t.Height)
		if w <= 0 || h <= 0 {
			r.logger.Debug("Skipping degenerate tile", zap.String("monitor", t.Name))
			continue
		}

		canvas = imaging.Paste(canvas, imaging.New(w, h, borderColor), image.Pt(x, y))
		if w > 2*borderWidth && h > 2*borderWidth {
			inner := imaging.New(w-2*borderWidth, h-2*borderWidth, fillColor(t.Index))
			canvas = imaging.Paste(canvas, inner, image.Pt(x+borderWidth, y+borderWidth))
		}

		drawLabel(canvas, x+labelOffset, y+nameLineY, t.Name)
		if t.ShowDetails {
			drawLabel(canvas, x+labelOffset, y+nameLineY+lineSpacing,
				fmt.Sprintf("Position : %d X %d", t.RelX, t.RelY))
			drawLabel(canvas, x+labelOffset, y+nameLineY+2*lineSpacing,
				fmt.Sprintf("Resolution : %d X %d", t.PixelWidth, t.PixelHeight))
		}
	}

	return canvas
}

func drawLabel(dst *image.NRGBA, x, y int, text string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// Encode writes img as PNG
func (r *PreviewRenderer) Encode(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	return nil
}

// Save writes img to path; the format follows the file extension
func (r *PreviewRenderer) Save(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save preview: %w", err)
	}

	r.logger.Info("Preview saved", zap.String("path", path))
	return nil
}
