package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ashshourov/OrbitSphere/internal/anim"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ORBITSPHERE_"

// Config is the root configuration structure for OrbitSphere.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Layout  LayoutConfig  `yaml:"layout"`
	Scenes  ScenesConfig  `yaml:"scenes"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig controls the Ebitengine window and frame clock.
type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	TPS    int     `yaml:"tps"`
	Scale  float64 `yaml:"scale"` // pixels per world unit
}

// LayoutConfig selects the stage layout. An empty path uses the embedded default.
type LayoutConfig struct {
	Path string `yaml:"path"`
}

// ScenesConfig holds choreography timings.
type ScenesConfig struct {
	Easing string       `yaml:"easing"`
	Title  TitleConfig  `yaml:"title"`
	Orbit  OrbitConfig  `yaml:"orbit"`
	Detail DetailConfig `yaml:"detail"`
}

// TitleConfig times the title card.
type TitleConfig struct {
	FadeIn  time.Duration `yaml:"fade_in"`
	Hold    time.Duration `yaml:"hold"`
	FadeOut time.Duration `yaml:"fade_out"`
}

// OrbitConfig times the orbit view.
type OrbitConfig struct {
	FadeIn  time.Duration `yaml:"fade_in"`
	FadeOut time.Duration `yaml:"fade_out"`
}

// DetailConfig times the detail view and places the selected item.
type DetailConfig struct {
	Move         time.Duration `yaml:"move"`
	ExtrasFadeIn time.Duration `yaml:"extras_fade_in"`
	FadeOut      time.Duration `yaml:"fade_out"`
	Settle       time.Duration `yaml:"settle"`
	DisplayPoint Point         `yaml:"display_point"`
}

// Point is a world-space coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment overrides.
//
// An empty path skips the file and yields the defaults plus overrides.
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "OrbitSphere",
			Width:  1280,
			Height: 720,
			TPS:    60,
			Scale:  60,
		},
		Scenes: ScenesConfig{
			Easing: "linear",
			Title: TitleConfig{
				FadeIn:  1500 * time.Millisecond,
				Hold:    2 * time.Second,
				FadeOut: 500 * time.Millisecond,
			},
			Orbit: OrbitConfig{
				FadeIn:  1500 * time.Millisecond,
				FadeOut: 500 * time.Millisecond,
			},
			Detail: DetailConfig{
				Move:         1200 * time.Millisecond,
				ExtrasFadeIn: 800 * time.Millisecond,
				FadeOut:      500 * time.Millisecond,
				Settle:       200 * time.Millisecond,
				DisplayPoint: Point{X: -4, Y: 0},
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvPrefix + "LAYOUT_PATH"); v != "" {
		cfg.Layout.Path = v
	}
	if v := os.Getenv(EnvPrefix + "EASING"); v != "" {
		cfg.Scenes.Easing = v
	}
	if v := os.Getenv(EnvPrefix + "TPS"); v != "" {
		tps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sTPS: %w", EnvPrefix, err)
		}
		cfg.Window.TPS = tps
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, "window.width and window.height must be positive")
	}
	if c.Window.TPS < 1 || c.Window.TPS > 240 {
		errs = append(errs, "window.tps must be between 1 and 240")
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, "window.scale must be positive")
	}

	if _, err := anim.EasingByName(c.Scenes.Easing); err != nil {
		errs = append(errs, fmt.Sprintf("scenes.easing must be one of %s", strings.Join(anim.EasingNames(), ", ")))
	}

	durations := []struct {
		key string
		d   time.Duration
	}{
		{"scenes.title.fade_in", c.Scenes.Title.FadeIn},
		{"scenes.title.hold", c.Scenes.Title.Hold},
		{"scenes.title.fade_out", c.Scenes.Title.FadeOut},
		{"scenes.orbit.fade_in", c.Scenes.Orbit.FadeIn},
		{"scenes.orbit.fade_out", c.Scenes.Orbit.FadeOut},
		{"scenes.detail.move", c.Scenes.Detail.Move},
		{"scenes.detail.extras_fade_in", c.Scenes.Detail.ExtrasFadeIn},
		{"scenes.detail.fade_out", c.Scenes.Detail.FadeOut},
		{"scenes.detail.settle", c.Scenes.Detail.Settle},
	}
	for _, d := range durations {
		if d.d < 0 {
			errs = append(errs, d.key+" must not be negative")
		}
	}

	p := c.Scenes.Detail.DisplayPoint
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		errs = append(errs, "scenes.detail.display_point must be finite")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, "logging.level must be debug, info, warn, or error")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		errs = append(errs, "logging.format must be json or text")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}
