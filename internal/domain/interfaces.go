package domain

import "context"

// MonitorSource supplies the monitors known to the display server.
// It is queried once at startup.
type MonitorSource interface {
	// Monitors returns one descriptor per physical monitor in discovery order
	Monitors(ctx context.Context) ([]MonitorDescriptor, error)
}

// Applier executes exported placement commands against the display server
type Applier interface {
	// Apply runs every command in order. A failing command does not stop
	// the remaining ones; all failures are reported in the returned error.
	Apply(ctx context.Context, commands []string) error
}

// Clipboard places text on the system clipboard
type Clipboard interface {
	// SetText replaces the clipboard content with text
	SetText(ctx context.Context, text string) error
}

// Notifier shows a desktop notification
type Notifier interface {
	// Notify sends a notification with the given summary and body
	Notify(ctx context.Context, summary, body string) error
}

// CommandRunner runs external programs.
// This abstraction allows us to mock process execution in tests.
//
//go:generate mockgen -destination=mocks/command_runner_mock.go -package=mocks github.com/genricoloni/hyprarrange/internal/domain CommandRunner
type CommandRunner interface {
	// Run executes name with args and returns its standard output
	Run(ctx context.Context, name string, args ...string) ([]byte, error)

	// RunWithInput executes name with args, feeding input on standard input
	RunWithInput(ctx context.Context, input []byte, name string, args ...string) error

	// LookPath reports the resolved path of an executable in PATH
	LookPath(name string) (string, error)
}

// Config defines the interface for application configuration
type Config interface {
	// GetSource returns the configured monitor source
	GetSource() SourceKind

	// GetHyprctlBinary returns the hyprctl executable name or path
	GetHyprctlBinary() string

	// GetViewport returns the initial viewport size
	GetViewport() Size

	// GetInitialScale returns the starting zoom level
	GetInitialScale() float64

	// GetScaleBounds returns the inclusive zoom bounds
	GetScaleBounds() (min, max float64)

	// GetZoomStep returns the multiplier applied per scroll event
	GetZoomStep() float64

	// GetPreviewPath returns the default output path for rendered previews
	GetPreviewPath() string

	// NotifyEnabled reports whether a desktop notification follows an apply
	NotifyEnabled() bool
}
