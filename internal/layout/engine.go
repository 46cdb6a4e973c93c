package layout

import (
	"github.com/genricoloni/hyprarrange/internal/domain"
	"go.uber.org/zap"
)

// ScrollDirection is the direction of a scroll event
type ScrollDirection int

const (
	// ScrollUp zooms in
	ScrollUp ScrollDirection = iota
	// ScrollDown zooms out
	ScrollDown
)

// EventHandler receives input from the windowing collaborator.
// Every method reports whether the event was consumed.
type EventHandler interface {
	OnPointerDown(x, y float64) bool
	OnPointerMove(x, y float64) bool
	OnPointerUp(x, y float64) bool
	OnScroll(dir ScrollDirection) bool
	OnResize(width, height int) bool
}

// ZoomPolicy bounds the scale factor and sets the step per scroll event
type ZoomPolicy struct {
	Initial float64
	Min     float64
	Max     float64
	Step    float64
}

// DefaultZoomPolicy starts at 0.2 and allows zooming between 0.1 and 0.3
func DefaultZoomPolicy() ZoomPolicy {
	return ZoomPolicy{Initial: 0.2, Min: 0.1, Max: 0.3, Step: 1.1}
}

// In returns the scale after one zoom-in step, capped at Max
func (z ZoomPolicy) In(scale float64) float64 {
	return min(scale*z.Step, z.Max)
}

// Out returns the scale after one zoom-out step, floored at Min
func (z ZoomPolicy) Out(scale float64) float64 {
	return max(scale/z.Step, z.Min)
}

// dragSession is the Dragging state: which monitor and where the pointer was
// last seen, in screen coordinates.
type dragSession struct {
	index int
	lastX float64
	lastY float64
}

// Engine owns the registry, the view state and the drag session. It is the
// only writer of monitor positions and must be driven from a single goroutine.
type Engine struct {
	logger   *zap.Logger
	registry *Registry
	zoom     ZoomPolicy
	scale    float64
	viewport domain.Size
	drag     *dragSession
	redraw   func()
}

var _ EventHandler = (*Engine)(nil)

// NewEngine creates an engine and centers the layout in viewport
func NewEngine(logger *zap.Logger, registry *Registry, viewport domain.Size, zoom ZoomPolicy) *Engine {
	e := &Engine{
		logger:   logger,
		registry: registry,
		zoom:     zoom,
		scale:    zoom.Initial,
		viewport: viewport,
	}
	e.Recenter()
	return e
}

// SetRedraw registers a callback invoked after every state change
func (e *Engine) SetRedraw(fn func()) {
	e.redraw = fn
}

// Registry returns the underlying registry
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Monitors returns a snapshot of all monitors in registry order
func (e *Engine) Monitors() []Monitor {
	return e.registry.All()
}

// ScaleFactor returns the current zoom level
func (e *Engine) ScaleFactor() float64 {
	return e.scale
}

// Viewport returns the last known viewport size
func (e *Engine) Viewport() domain.Size {
	return e.viewport
}

// Dragging returns the name of the monitor being dragged, if any
func (e *Engine) Dragging() (string, bool) {
	if e.drag == nil {
		return "", false
	}
	return e.registry.at(e.drag.index).Name, true
}

// Recenter translates the whole arrangement so that its bounding box sits in
// the middle of the viewport at the current scale
func (e *Engine) Recenter() Offset {
	off := Center(e.registry.monitors, e.viewport, e.scale)
	if !off.IsZero() {
		e.registry.Translate(off.DX, off.DY)
		e.logger.Debug("Layout recentered",
			zap.Int("dx", off.DX),
			zap.Int("dy", off.DY),
			zap.Float64("scale", e.scale))
	}
	return off
}

// OnPointerDown starts dragging the first monitor whose scaled rectangle
// contains the pointer. Edges are inclusive.
func (e *Engine) OnPointerDown(x, y float64) bool {
	for i := range e.registry.monitors {
		m := e.registry.at(i)
		sx := float64(m.X) * e.scale
		sy := float64(m.Y) * e.scale
		sw := float64(m.Width) * e.scale
		sh := float64(m.Height) * e.scale

		if x >= sx && x <= sx+sw && y >= sy && y <= sy+sh {
			e.drag = &dragSession{index: i, lastX: x, lastY: y}
			m.Snapping = false
			e.logger.Debug("Drag started", zap.String("monitor", m.Name))
			e.requestRedraw()
			return true
		}
	}
	return false
}

// OnPointerMove moves the dragged monitor by the pointer delta in layout
// units.
//
// While the dragged monitor is not snapping, every other monitor is moved by
// the opposite delta first: the dragged monitor stays visually anchored and
// the rest of the arrangement pans beneath it. Once a collision constrains the
// dragged monitor, the others stay put until the next drag starts.
func (e *Engine) OnPointerMove(x, y float64) bool {
	if e.drag == nil {
		return false
	}

	dx := int((x - e.drag.lastX) / e.scale)
	dy := int((y - e.drag.lastY) / e.scale)

	dragged := e.registry.at(e.drag.index)
	if !dragged.Snapping {
		for i := range e.registry.monitors {
			if i == e.drag.index {
				continue
			}
			other := e.registry.at(i)
			other.X -= dx
			other.Y -= dy
		}
	}

	dragged.X += dx
	dragged.Y += dy

	nx, ny, snapped := Resolve(*dragged, e.registry.othersOf(e.drag.index))
	dragged.X = nx
	dragged.Y = ny
	dragged.Snapping = snapped

	e.drag.lastX = x
	e.drag.lastY = y

	e.requestRedraw()
	return true
}

// OnPointerUp recenters the layout and ends the drag session. It reports
// whether a drag was in progress.
func (e *Engine) OnPointerUp(x, y float64) bool {
	e.Recenter()
	e.requestRedraw()

	if e.drag == nil {
		return false
	}
	e.logger.Debug("Drag finished", zap.String("monitor", e.registry.at(e.drag.index).Name))
	e.drag = nil
	return true
}

// OnScroll changes the zoom level within the policy bounds and recenters
func (e *Engine) OnScroll(dir ScrollDirection) bool {
	prev := e.scale
	switch dir {
	case ScrollUp:
		e.scale = e.zoom.In(e.scale)
	case ScrollDown:
		e.scale = e.zoom.Out(e.scale)
	default:
		return false
	}

	if e.scale != prev {
		e.logger.Debug("Zoom changed", zap.Float64("from", prev), zap.Float64("to", e.scale))
	}

	e.Recenter()
	e.requestRedraw()
	return true
}

// OnResize records the new viewport size and recenters
func (e *Engine) OnResize(width, height int) bool {
	e.viewport = domain.Size{Width: width, Height: height}
	e.Recenter()
	e.requestRedraw()
	return true
}

// ExportCommands returns the apply commands for the current layout
func (e *Engine) ExportCommands() []string {
	return e.registry.ExportCommands()
}

// ExportClipboardConfig returns the config block for the current layout
func (e *Engine) ExportClipboardConfig() string {
	return e.registry.ExportClipboardConfig()
}

func (e *Engine) requestRedraw() {
	if e.redraw != nil {
		e.redraw()
	}
}
