package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/genricoloni/hyprarrange/internal/domain"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	configName = "hyprarrange"
	envPrefix  = "HYPRARRANGE"

	defaultSource        = string(domain.SourceAuto)
	defaultHyprctlBinary = "hyprctl"
	defaultViewportW     = 1280
	defaultViewportH     = 720
	defaultInitialScale  = 0.2
	defaultMinScale      = 0.1
	defaultMaxScale      = 0.3
	defaultZoomStep      = 1.1
	defaultPreviewPath   = "~/hyprarrange-preview.png"
	defaultNotify        = true
)

// FilePath is an explicit configuration file. Empty means search the
// default locations.
type FilePath string

// AppConfig holds application configuration
type AppConfig struct {
	logger        *zap.Logger
	source        domain.SourceKind
	hyprctlBinary string
	viewport      domain.Size
	initialScale  float64
	minScale      float64
	maxScale      float64
	zoomStep      float64
	previewPath   string
	notify        bool
}

var _ domain.Config = (*AppConfig)(nil)

// NewAppConfig loads configuration from defaults, the optional YAML file and
// HYPRARRANGE_* environment variables, in increasing priority
func NewAppConfig(logger *zap.Logger, path FilePath) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(string(path))
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir())
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		logger.Debug("No configuration file found, using defaults")
	}

	cfg := &AppConfig{
		logger:        logger,
		source:        domain.SourceKind(strings.ToLower(v.GetString("source"))),
		hyprctlBinary: v.GetString("hyprctl_binary"),
		viewport: domain.Size{
			Width:  v.GetInt("viewport_width"),
			Height: v.GetInt("viewport_height"),
		},
		initialScale: v.GetFloat64("initial_scale"),
		minScale:     v.GetFloat64("min_scale"),
		maxScale:     v.GetFloat64("max_scale"),
		zoomStep:     v.GetFloat64("zoom_step"),
		previewPath:  expandPath(v.GetString("preview_path")),
		notify:       v.GetBool("notify"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("Configuration loaded",
		zap.String("file", v.ConfigFileUsed()),
		zap.String("source", string(cfg.source)),
		zap.Float64("initialScale", cfg.initialScale),
		zap.String("previewPath", cfg.previewPath))

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("source", defaultSource)
	v.SetDefault("hyprctl_binary", defaultHyprctlBinary)
	v.SetDefault("viewport_width", defaultViewportW)
	v.SetDefault("viewport_height", defaultViewportH)
	v.SetDefault("initial_scale", defaultInitialScale)
	v.SetDefault("min_scale", defaultMinScale)
	v.SetDefault("max_scale", defaultMaxScale)
	v.SetDefault("zoom_step", defaultZoomStep)
	v.SetDefault("preview_path", defaultPreviewPath)
	v.SetDefault("notify", defaultNotify)
}

// Validate returns every problem found in the configuration
func (c *AppConfig) Validate() error {
	var err error

	switch c.source {
	case domain.SourceAuto, domain.SourceHyprctl, domain.SourceX11, domain.SourceScreenshot:
	default:
		err = multierr.Append(err, fmt.Errorf("source %q is not one of auto, hyprctl, x11, screenshot", c.source))
	}
	if c.hyprctlBinary == "" {
		err = multierr.Append(err, errors.New("hyprctl_binary must not be empty"))
	}
	if c.viewport.Width <= 0 || c.viewport.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("viewport must be positive, got %dx%d", c.viewport.Width, c.viewport.Height))
	}
	if c.minScale <= 0 || c.minScale >= c.maxScale {
		err = multierr.Append(err, fmt.Errorf("scale bounds must satisfy 0 < min_scale < max_scale, got %g and %g", c.minScale, c.maxScale))
	}
	if c.initialScale < c.minScale || c.initialScale > c.maxScale {
		err = multierr.Append(err, fmt.Errorf("initial_scale %g is outside [%g, %g]", c.initialScale, c.minScale, c.maxScale))
	}
	if c.zoomStep <= 1 {
		err = multierr.Append(err, fmt.Errorf("zoom_step must be greater than 1, got %g", c.zoomStep))
	}

	return err
}

// configDir returns $XDG_CONFIG_HOME/hyprarrange, falling back to
// ~/.config/hyprarrange
func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, configName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", configName)
}

// expandPath resolves environment variables and a leading ~
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if len(p) > 0 && p[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}

// GetSource returns the configured monitor source
func (c *AppConfig) GetSource() domain.SourceKind {
	return c.source
}

// GetHyprctlBinary returns the hyprctl executable
func (c *AppConfig) GetHyprctlBinary() string {
	return c.hyprctlBinary
}

// GetViewport returns the initial viewport size
func (c *AppConfig) GetViewport() domain.Size {
	return c.viewport
}

// GetInitialScale returns the starting zoom level
func (c *AppConfig) GetInitialScale() float64 {
	return c.initialScale
}

// GetScaleBounds returns the zoom bounds
func (c *AppConfig) GetScaleBounds() (float64, float64) {
	return c.minScale, c.maxScale
}

// GetZoomStep returns the per-scroll zoom multiplier
func (c *AppConfig) GetZoomStep() float64 {
	return c.zoomStep
}

// GetPreviewPath returns where previews are written by default
func (c *AppConfig) GetPreviewPath() string {
	return c.previewPath
}

// NotifyEnabled reports whether applies are followed by a notification
func (c *AppConfig) NotifyEnabled() bool {
	return c.notify
}
