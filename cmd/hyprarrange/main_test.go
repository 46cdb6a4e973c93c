package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"go.uber.org/fx"
	"go.uber.org/zap/zapcore"
)

// TestAppGraphValidity verifies that the dependency graph is resolvable.
// This test will fail if you forget an fx.Provide for a required interface.
func TestAppGraphValidity(t *testing.T) {
	err := fx.ValidateApp(AppOptions(""))
	if err != nil {
		t.Errorf("Dependency graph is not valid: %v", err)
	}
}

// TestNewLogger specifically verifies the logger configuration
func TestNewLogger(t *testing.T) {
	logger, err := newLogger()
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	if logger == nil {
		t.Fatal("Logger should not be nil")
	}
	logger.Info("Test logger initialization")
}

func TestNewLogger_Level(t *testing.T) {
	t.Setenv(logLevelEnv, "debug")
	logger, err := newLogger()
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level should be enabled")
	}

	t.Setenv(logLevelEnv, "loud")
	if _, err := newLogger(); err == nil {
		t.Error("expected error for an unknown level")
	}
}

// TestEndToEndStartup tries a real startup/stop in a controlled environment
func TestEndToEndStartup(t *testing.T) {
	app := fx.New(
		AppOptions(""),
		fx.NopLogger, // Silence Fx logs during tests
	)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	if err := app.Start(ctx); err != nil {
		t.Fatalf("App failed to start: %v", err)
	}
	if err := app.Stop(ctx); err != nil {
		t.Fatalf("App failed to stop: %v", err)
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()
	expected := []string{"apply", "export", "list", "preview", "replay", "version"}

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, name := range expected {
		found := false
		for _, n := range names {
			if n == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q missing, have %v", name, names)
		}
	}
}

func TestRootCmd_Version(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "hyprarrange dev\n" {
		t.Errorf("unexpected version output %q", out.String())
	}
}

func TestRootCmd_ReplayNeedsScript(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"replay"})

	if err := root.Execute(); err == nil {
		t.Error("expected error without a script argument")
	}
}

// fakeHyprctl writes a shell script that answers `monitors -j` with two
// monitors and acknowledges every keyword
func fakeHyprctl(t *testing.T, dir string) string {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("requires /bin/sh and the hyprctl applier")
	}

	path := filepath.Join(dir, "hyprctl")
	script := `#!/bin/sh
if [ "$1" = "keyword" ]; then
  echo ok
  exit 0
fi
echo '[{"id":0,"name":"DP-1","width":1920,"height":1080,"x":0,"y":0,"scale":1},{"id":1,"name":"HDMI-A-1","width":2560,"height":1440,"x":1920,"y":0,"scale":1.25}]'
`
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func runWithFakeHyprctl(t *testing.T, args ...string) string {
	t.Helper()
	dir := t.TempDir()
	binary := fakeHyprctl(t, dir)

	cfgPath := filepath.Join(dir, "hyprarrange.yaml")
	cfg := "source: hyprctl\nhyprctl_binary: " + binary + "\nnotify: false\npreview_path: " + filepath.Join(dir, "preview.png") + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(logLevelEnv, "error")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))

	if err := root.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return out.String()
}

func TestCommands_WithFakeHyprctl(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name: "Export Commands",
			args: []string{"export"},
			expected: "hyprctl keyword monitor DP-1,1920x1080,0x0,1\n" +
				"hyprctl keyword monitor HDMI-A-1,2560x1440,1920x0,1\n",
		},
		{
			name:     "Export Config Block",
			args:     []string{"export", "--clipboard"},
			expected: "monitor=DP-1,1920x1080,0x0,1\nmonitor=HDMI-A-1,2560x1440,1920x0,1\n",
		},
		{
			name:     "List",
			args:     []string{"list"},
			expected: "DP-1             1920x1080 at 0,0 scale 1.00\nHDMI-A-1         2560x1440 at 1920,0 scale 1.25\n",
		},
		{
			name:     "Apply",
			args:     []string{"apply"},
			expected: "Applied 2 monitors\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runWithFakeHyprctl(t, tt.args...); got != tt.expected {
				t.Errorf("expected:\n%s\ngot:\n%s", tt.expected, got)
			}
		})
	}
}

func TestCommands_Preview(t *testing.T) {
	out := strings.TrimSpace(runWithFakeHyprctl(t, "preview"))
	if filepath.Base(out) != "preview.png" {
		t.Fatalf("unexpected preview path %q", out)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("preview not written: %v", err)
	}
}

func TestCommands_Replay(t *testing.T) {
	dir := t.TempDir()
	session := filepath.Join(dir, "session.yaml")
	// zoom out once: scale 0.2 -> 0.1818..., layout stays the same
	if err := os.WriteFile(session, []byte("steps:\n  - {action: scroll, direction: down}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got := runWithFakeHyprctl(t, "replay", session)
	expected := "hyprctl keyword monitor DP-1,1920x1080,0x0,1\n" +
		"hyprctl keyword monitor HDMI-A-1,2560x1440,1920x0,1\n"
	if got != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, got)
	}
}
