package layout

import (
	"fmt"
	"strings"
)

// ApplyCommandPrefix is prepended to every placement directive by ExportCommands
const ApplyCommandPrefix = "hyprctl keyword monitor"

// Placement is the exported position of one monitor, relative to the
// reference monitor
type Placement struct {
	Name   string
	Width  int
	Height int
	X      int
	Y      int
}

// Directive formats the placement as "<name>,<w>x<h>,<x>x<y>,1".
// Scale is always written as 1.
func (p Placement) Directive() string {
	return fmt.Sprintf("%s,%dx%d,%dx%d,1", p.Name, p.Width, p.Height, p.X, p.Y)
}

// Reference returns the monitor with the smallest x+y. Ties go to the first
// one in the given order.
func Reference(monitors []Monitor) (Monitor, bool) {
	if len(monitors) == 0 {
		return Monitor{}, false
	}
	ref := monitors[0]
	for _, m := range monitors[1:] {
		if m.X+m.Y < ref.X+ref.Y {
			ref = m
		}
	}
	return ref, true
}

// Placements normalizes monitors so that the reference monitor sits at (0,0)
func Placements(monitors []Monitor) []Placement {
	ref, ok := Reference(monitors)
	if !ok {
		return nil
	}
	out := make([]Placement, 0, len(monitors))
	for _, m := range monitors {
		out = append(out, Placement{
			Name:   m.Name,
			Width:  m.Width,
			Height: m.Height,
			X:      m.X - ref.X,
			Y:      m.Y - ref.Y,
		})
	}
	return out
}

// ExportCommands returns one apply command per monitor, in registry order
func (r *Registry) ExportCommands() []string {
	placements := Placements(r.monitors)
	out := make([]string, 0, len(placements))
	for _, p := range placements {
		out = append(out, ApplyCommandPrefix+" "+p.Directive())
	}
	return out
}

// ExportClipboardConfig returns the layout as config lines, one
// "monitor=<directive>" per monitor, each terminated by a newline
func (r *Registry) ExportClipboardConfig() string {
	var b strings.Builder
	for _, p := range Placements(r.monitors) {
		b.WriteString("monitor=")
		b.WriteString(p.Directive())
		b.WriteByte('\n')
	}
	return b.String()
}
