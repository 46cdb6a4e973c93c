package layout

// DetailScaleThreshold is the scale factor above which position and
// resolution labels are drawn
const DetailScaleThreshold = 0.15

// Tile is what the renderer needs to draw one monitor
type Tile struct {
	// Index is the position in the registry, used for colour cycling
	Index int
	Name  string

	// On-screen rectangle
	X      float64
	Y      float64
	Width  float64
	Height float64

	// Position relative to the reference monitor
	RelX int
	RelY int

	PixelWidth  int
	PixelHeight int

	ShowDetails bool
}

// Frame returns one tile per monitor in registry order
func (e *Engine) Frame() []Tile {
	monitors := e.registry.monitors
	ref, ok := Reference(monitors)
	if !ok {
		return nil
	}

	details := e.scale > DetailScaleThreshold
	tiles := make([]Tile, 0, len(monitors))
	for i, m := range monitors {
		tiles = append(tiles, Tile{
			Index:       i,
			Name:        m.Name,
			X:           float64(m.X) * e.scale,
			Y:           float64(m.Y) * e.scale,
			Width:       float64(m.Width) * e.scale,
			Height:      float64(m.Height) * e.scale,
			RelX:        m.X - ref.X,
			RelY:        m.Y - ref.Y,
			PixelWidth:  m.Width,
			PixelHeight: m.Height,
			ShowDetails: details,
		})
	}
	return tiles
}
