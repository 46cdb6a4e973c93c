package domain

// MonitorDescriptor is one physical display as reported by the display server
type MonitorDescriptor struct {
	// Name is the connector name (e.g. "DP-1", "HDMI-A-1")
	Name string
	// Width and Height are the pixel dimensions of the active mode
	Width  int
	Height int
	// X and Y are the current position in the global layout
	X int
	Y int
	// Scale is the reported DPI scale factor
	Scale float64
}

// Size holds viewport dimensions in on-screen pixels
type Size struct {
	Width  int
	Height int
}

// SourceKind selects where monitor descriptors are read from
type SourceKind string

const (
	// SourceAuto detects the best source from the environment
	SourceAuto SourceKind = "auto"
	// SourceHyprctl queries Hyprland through hyprctl
	SourceHyprctl SourceKind = "hyprctl"
	// SourceX11 queries the X server through RandR
	SourceX11 SourceKind = "x11"
	// SourceScreenshot uses the OS display bounds (no connector names)
	SourceScreenshot SourceKind = "screenshot"
)
