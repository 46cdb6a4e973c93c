package layout

import (
	"image"

	"github.com/genricoloni/hyprarrange/internal/domain"
)

// Offset is a translation applied to every monitor
type Offset struct {
	DX int
	DY int
}

// IsZero reports whether the offset moves nothing
func (o Offset) IsZero() bool {
	return o.DX == 0 && o.DY == 0
}

// BoundingBox returns the union of all monitor rectangles in layout space.
// ok is false for an empty slice.
func BoundingBox(monitors []Monitor) (box image.Rectangle, ok bool) {
	if len(monitors) == 0 {
		return image.Rectangle{}, false
	}

	box = image.Rect(monitors[0].X, monitors[0].Y, monitors[0].Right(), monitors[0].Bottom())
	for _, m := range monitors[1:] {
		box.Min.X = min(box.Min.X, m.X)
		box.Min.Y = min(box.Min.Y, m.Y)
		box.Max.X = max(box.Max.X, m.Right())
		box.Max.Y = max(box.Max.Y, m.Bottom())
	}
	return box, true
}

// Center computes the translation that puts the bounding box of monitors in
// the middle of a viewport rendered at scale. The target area in layout space
// is viewport/scale. An empty slice yields a zero offset.
func Center(monitors []Monitor, viewport domain.Size, scale float64) Offset {
	box, ok := BoundingBox(monitors)
	if !ok || scale <= 0 {
		return Offset{}
	}

	newX := int((float64(viewport.Width)/scale - float64(box.Dx())) / 2)
	newY := int((float64(viewport.Height)/scale - float64(box.Dy())) / 2)

	return Offset{
		DX: newX - box.Min.X,
		DY: newY - box.Min.Y,
	}
}
