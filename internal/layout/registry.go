package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/genricoloni/hyprarrange/internal/domain"
	"go.uber.org/multierr"
)

// MaxNameLength is the longest connector name accepted at load time
const MaxNameLength = 49

var (
	// ErrDuplicateName is returned when two descriptors share a name
	ErrDuplicateName = errors.New("duplicate monitor name")
	// ErrInvalidName is returned for empty, oversized or malformed names
	ErrInvalidName = errors.New("invalid monitor name")
	// ErrInvalidDimensions is returned for non-positive width or height
	ErrInvalidDimensions = errors.New("monitor dimensions must be positive")
	// ErrUnknownMonitor is returned when a name is not in the registry
	ErrUnknownMonitor = errors.New("unknown monitor")
)

// Monitor is the geometry and mutable position state of one display.
// X and Y are layout-space coordinates; Name, Width, Height and Scale never
// change after Load.
type Monitor struct {
	Name   string
	X      int
	Y      int
	Width  int
	Height int
	Scale  float64
	// Snapping is set while the last move was constrained by a collision
	Snapping bool
}

// Right returns the x coordinate of the right edge
func (m Monitor) Right() int { return m.X + m.Width }

// Bottom returns the y coordinate of the bottom edge
func (m Monitor) Bottom() int { return m.Y + m.Height }

// Registry is the ordered set of monitors loaded at startup.
// Order is discovery order and stays stable for the whole session.
type Registry struct {
	monitors []Monitor
	index    map[string]int
}

// Load builds a registry from descriptors. Every malformed descriptor is
// reported; an empty list yields an empty registry.
func Load(descriptors []domain.MonitorDescriptor) (*Registry, error) {
	r := &Registry{
		monitors: make([]Monitor, 0, len(descriptors)),
		index:    make(map[string]int, len(descriptors)),
	}

	var errs error
	for i, d := range descriptors {
		if err := validateDescriptor(d); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("descriptor %d (%q): %w", i, d.Name, err))
			continue
		}
		if _, dup := r.index[d.Name]; dup {
			errs = multierr.Append(errs, fmt.Errorf("descriptor %d (%q): %w", i, d.Name, ErrDuplicateName))
			continue
		}
		r.index[d.Name] = len(r.monitors)
		r.monitors = append(r.monitors, Monitor{
			Name:   d.Name,
			X:      d.X,
			Y:      d.Y,
			Width:  d.Width,
			Height: d.Height,
			Scale:  d.Scale,
		})
	}

	if errs != nil {
		return nil, errs
	}
	return r, nil
}

func validateDescriptor(d domain.MonitorDescriptor) error {
	if d.Name == "" || len(d.Name) > MaxNameLength {
		return ErrInvalidName
	}
	// Names end up inside comma-separated placement directives
	if strings.ContainsAny(d.Name, ", \t\r\n") {
		return ErrInvalidName
	}
	if d.Width <= 0 || d.Height <= 0 {
		return ErrInvalidDimensions
	}
	return nil
}

// Len returns the number of monitors
func (r *Registry) Len() int {
	return len(r.monitors)
}

// All returns a snapshot of every monitor in registry order
func (r *Registry) All() []Monitor {
	out := make([]Monitor, len(r.monitors))
	copy(out, r.monitors)
	return out
}

// Get returns the monitor with the given name
func (r *Registry) Get(name string) (Monitor, bool) {
	i, ok := r.index[name]
	if !ok {
		return Monitor{}, false
	}
	return r.monitors[i], true
}

// SetPosition moves a monitor to (x, y) in layout space
func (r *Registry) SetPosition(name string, x, y int) error {
	i, ok := r.index[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMonitor, name)
	}
	r.monitors[i].X = x
	r.monitors[i].Y = y
	return nil
}

// SetSnapping updates the snapping flag of a monitor
func (r *Registry) SetSnapping(name string, snapping bool) error {
	i, ok := r.index[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMonitor, name)
	}
	r.monitors[i].Snapping = snapping
	return nil
}

// Translate shifts every monitor by (dx, dy)
func (r *Registry) Translate(dx, dy int) {
	for i := range r.monitors {
		r.monitors[i].X += dx
		r.monitors[i].Y += dy
	}
}

// at returns a pointer into the backing slice; only the engine mutates through it.
func (r *Registry) at(i int) *Monitor {
	return &r.monitors[i]
}

// othersOf returns every monitor except the one at index skip, in order
func (r *Registry) othersOf(skip int) []Monitor {
	out := make([]Monitor, 0, len(r.monitors)-1)
	for i, m := range r.monitors {
		if i != skip {
			out = append(out, m)
		}
	}
	return out
}
