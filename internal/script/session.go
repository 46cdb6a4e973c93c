package script

import (
	"fmt"
	"os"

	"github.com/genricoloni/hyprarrange/internal/layout"
	"gopkg.in/yaml.v3"
)

// Action names accepted in a session file
const (
	ActionDown   = "down"
	ActionMove   = "move"
	ActionUp     = "up"
	ActionScroll = "scroll"
	ActionResize = "resize"
	ActionDrag   = "drag"
)

// Viewport is the optional initial viewport of a session
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Step is one recorded input event. Which fields are used depends on Action.
type Step struct {
	Action    string  `yaml:"action"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	ToX       float64 `yaml:"to_x"`
	ToY       float64 `yaml:"to_y"`
	Steps     int     `yaml:"steps"`
	Direction string  `yaml:"direction"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
}

// Session is a scripted interaction replayed through a layout.EventHandler
type Session struct {
	Viewport *Viewport `yaml:"viewport"`
	Steps    []Step    `yaml:"steps"`
}

// Result counts how many events the handler consumed
type Result struct {
	Events  int
	Handled int
}

// Parse decodes and validates a session document
func Parse(data []byte) (*Session, error) {
	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	if s.Viewport != nil && (s.Viewport.Width <= 0 || s.Viewport.Height <= 0) {
		return nil, fmt.Errorf("viewport must be positive, got %dx%d", s.Viewport.Width, s.Viewport.Height)
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return &s, nil
}

// Load reads a session file from disk
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return Parse(data)
}

func (s Step) validate() error {
	switch s.Action {
	case ActionDown, ActionMove, ActionUp:
		return nil
	case ActionScroll:
		if s.Direction != "up" && s.Direction != "down" {
			return fmt.Errorf("scroll direction must be up or down, got %q", s.Direction)
		}
	case ActionResize:
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("resize must be positive, got %dx%d", s.Width, s.Height)
		}
	case ActionDrag:
		if s.Steps < 0 {
			return fmt.Errorf("drag steps must not be negative, got %d", s.Steps)
		}
	default:
		return fmt.Errorf("unknown action %q", s.Action)
	}
	return nil
}

// Play feeds every step to h in order. A drag expands to a pointer down,
// Steps evenly spaced moves (at least one) and a pointer up.
func (s *Session) Play(h layout.EventHandler) Result {
	var res Result
	record := func(handled bool) {
		res.Events++
		if handled {
			res.Handled++
		}
	}

	if s.Viewport != nil {
		record(h.OnResize(s.Viewport.Width, s.Viewport.Height))
	}

	for _, step := range s.Steps {
		switch step.Action {
		case ActionDown:
			record(h.OnPointerDown(step.X, step.Y))
		case ActionMove:
			record(h.OnPointerMove(step.X, step.Y))
		case ActionUp:
			record(h.OnPointerUp(step.X, step.Y))
		case ActionScroll:
			dir := layout.ScrollUp
			if step.Direction == "down" {
				dir = layout.ScrollDown
			}
			record(h.OnScroll(dir))
		case ActionResize:
			record(h.OnResize(step.Width, step.Height))
		case ActionDrag:
			n := max(step.Steps, 1)
			record(h.OnPointerDown(step.X, step.Y))
			for i := 1; i <= n; i++ {
				f := float64(i) / float64(n)
				record(h.OnPointerMove(step.X+(step.ToX-step.X)*f, step.Y+(step.ToY-step.Y)*f))
			}
			record(h.OnPointerUp(step.ToX, step.ToY))
		}
	}
	return res
}
