package source

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/genricoloni/hyprarrange/internal/domain"
	"go.uber.org/zap"
)

// hyprMonitor is the subset of `hyprctl monitors -j` we consume
type hyprMonitor struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Scale    float64 `json:"scale"`
	Disabled bool    `json:"disabled"`
}

// HyprctlSource reads the monitor list from Hyprland via hyprctl
type HyprctlSource struct {
	logger *zap.Logger
	runner domain.CommandRunner
	binary string
}

// NewHyprctlSource creates a source that shells out to the configured hyprctl binary
func NewHyprctlSource(logger *zap.Logger, runner domain.CommandRunner, cfg domain.Config) *HyprctlSource {
	return &HyprctlSource{
		logger: logger,
		runner: runner,
		binary: cfg.GetHyprctlBinary(),
	}
}

// Monitors queries hyprctl for JSON output and falls back to the plain text
// listing when the JSON cannot be decoded
func (s *HyprctlSource) Monitors(ctx context.Context) ([]domain.MonitorDescriptor, error) {
	out, err := s.runner.Run(ctx, s.binary, "monitors", "-j")
	if err != nil {
		return nil, fmt.Errorf("hyprctl monitors failed: %w", err)
	}

	monitors, err := ParseMonitorsJSON(out)
	if err == nil {
		s.logger.Debug("Monitors read from hyprctl JSON", zap.Int("count", len(monitors)))
		return monitors, nil
	}

	s.logger.Warn("Could not decode hyprctl JSON output, falling back to text", zap.Error(err))

	out, err = s.runner.Run(ctx, s.binary, "monitors")
	if err != nil {
		return nil, fmt.Errorf("hyprctl monitors failed: %w", err)
	}

	monitors = ParseMonitorsText(out)
	s.logger.Debug("Monitors read from hyprctl text output", zap.Int("count", len(monitors)))
	return monitors, nil
}

// ParseMonitorsJSON decodes `hyprctl monitors -j`. Disabled monitors are skipped.
func ParseMonitorsJSON(data []byte) ([]domain.MonitorDescriptor, error) {
	var raw []hyprMonitor
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode monitors: %w", err)
	}

	out := make([]domain.MonitorDescriptor, 0, len(raw))
	for _, m := range raw {
		if m.Disabled {
			continue
		}
		out = append(out, domain.MonitorDescriptor{
			Name:   m.Name,
			Width:  m.Width,
			Height: m.Height,
			X:      m.X,
			Y:      m.Y,
			Scale:  m.Scale,
		})
	}
	return out, nil
}

// ParseMonitorsText parses the human readable `hyprctl monitors` listing:
//
//	Monitor DP-1 (ID 0):
//		2560x1440@143.97200 at 1920x0
//		scale: 1.00
//
// Lines that do not match are ignored.
func ParseMonitorsText(data []byte) []domain.MonitorDescriptor {
	var (
		out     []domain.MonitorDescriptor
		current domain.MonitorDescriptor
		inBlock bool
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if strings.Contains(line, "Monitor ") && strings.Contains(line, "ID") {
			if inBlock {
				out = append(out, current)
			}
			inBlock = true
			current = domain.MonitorDescriptor{}
			if fields := strings.Fields(trimmed); len(fields) >= 2 {
				current.Name = fields[1]
			}
			continue
		}
		if !inBlock {
			continue
		}

		switch {
		case strings.Contains(line, "@"):
			var (
				w, h, x, y int
				rate       float64
			)
			if n, _ := fmt.Sscanf(trimmed, "%dx%d@%f at %dx%d", &w, &h, &rate, &x, &y); n == 5 {
				current.Width = w
				current.Height = h
				current.X = x
				current.Y = y
			}
		case strings.HasPrefix(trimmed, "scale:"):
			var scale float64
			if n, _ := fmt.Sscanf(trimmed, "scale: %f", &scale); n == 1 {
				current.Scale = scale
			}
		}
	}
	if inBlock {
		out = append(out, current)
	}
	return out
}
