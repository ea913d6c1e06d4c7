// Package config provides configuration types, defaults, and persistence for encore.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/encore/internal/tracing"
)

// Config holds all configuration options for encore.
type Config struct {
	// DBPath is the SQLite database file holding seat reservations.
	// Default: .encore/encore.db relative to the working directory.
	DBPath string `mapstructure:"db_path"`

	// AutoRefresh reloads the seat map when the database changes on disk.
	AutoRefresh bool `mapstructure:"auto_refresh"`

	Venue   VenueConfig   `mapstructure:"venue"`
	Marquee MarqueeConfig `mapstructure:"marquee"`
	API     APIConfig     `mapstructure:"api"`
	Theme   ThemeConfig   `mapstructure:"theme"`
}

// VenueConfig describes the house the kiosk sells seats for.
type VenueConfig struct {
	Name string `mapstructure:"name"`

	// Capacity is the number of seats, numbered 1..Capacity.
	Capacity int `mapstructure:"capacity"`

	// SeatsPerRow controls seat map layout only, not validity.
	SeatsPerRow int `mapstructure:"seats_per_row"`
}

// MarqueeConfig holds the marquee card timing profile.
//
// The step gaps and effect durations are a contract with the renderer:
// the bounce/tada overlap only happens when BounceGap stays one second
// shorter than BounceDuration.
type MarqueeConfig struct {
	Title string `mapstructure:"title"`

	// Effect durations (how long each effect stays active).
	ShakeDuration  time.Duration `mapstructure:"shake_duration"`
	BounceDuration time.Duration `mapstructure:"bounce_duration"`
	TadaDuration   time.Duration `mapstructure:"tada_duration"`

	// Step gaps (delay from one trigger to the next).
	ShakeGap  time.Duration `mapstructure:"shake_gap"`
	BounceGap time.Duration `mapstructure:"bounce_gap"`
	LoopGap   time.Duration `mapstructure:"loop_gap"`

	// RotateWindow is how long the card stays flipped after a rotate.
	RotateWindow time.Duration `mapstructure:"rotate_window"`
}

// APIConfig holds the HTTP reservation API configuration.
type APIConfig struct {
	// Addr is the listen address for `encore serve`.
	Addr string `mapstructure:"addr"`

	Tracing tracing.Config `mapstructure:"tracing"`
}

// ThemeConfig holds color customization options.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"`
	Subtle    string `mapstructure:"subtle"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		DBPath:      filepath.Join(".encore", "encore.db"),
		AutoRefresh: true,
		Venue: VenueConfig{
			Name:        "The Encore Room",
			Capacity:    40,
			SeatsPerRow: 8,
		},
		Marquee: MarqueeConfig{
			Title:          "TONIGHT ONLY",
			ShakeDuration:  2 * time.Second,
			BounceDuration: 4 * time.Second,
			TadaDuration:   3 * time.Second,
			ShakeGap:       2 * time.Second,
			BounceGap:      3 * time.Second,
			LoopGap:        3 * time.Second,
			RotateWindow:   2 * time.Second,
		},
		API: APIConfig{
			Addr:    "localhost:19990",
			Tracing: tracing.DefaultConfig(),
		},
		Theme: ThemeConfig{
			Highlight: "#7D56F4",
			Subtle:    "#6C6C6C",
			Error:     "#EF4444",
			Success:   "#10B981",
		},
	}
}

// Validate checks invariants that would break the kiosk at runtime.
func Validate(cfg Config) error {
	if cfg.Venue.Capacity < 1 {
		return fmt.Errorf("venue.capacity must be at least 1, got %d", cfg.Venue.Capacity)
	}
	if cfg.Venue.SeatsPerRow < 1 {
		return fmt.Errorf("venue.seats_per_row must be at least 1, got %d", cfg.Venue.SeatsPerRow)
	}
	m := cfg.Marquee
	for _, d := range []struct {
		name string
		dur  time.Duration
	}{
		{"shake_duration", m.ShakeDuration},
		{"bounce_duration", m.BounceDuration},
		{"tada_duration", m.TadaDuration},
		{"shake_gap", m.ShakeGap},
		{"bounce_gap", m.BounceGap},
		{"loop_gap", m.LoopGap},
		{"rotate_window", m.RotateWindow},
	} {
		if d.dur <= 0 {
			return fmt.Errorf("marquee.%s must be positive, got %s", d.name, d.dur)
		}
	}
	return nil
}

// defaultConfigTemplate is written on first run so users have a commented
// starting point. Values mirror Defaults().
const defaultConfigTemplate = `# encore configuration
db_path: .encore/encore.db
auto_refresh: true

venue:
  name: The Encore Room
  capacity: 40
  seats_per_row: 8

marquee:
  title: TONIGHT ONLY
  # Effect durations are a contract with the renderer. The default step
  # gaps make tada start one second before bounce finishes.
  shake_duration: 2s
  bounce_duration: 4s
  tada_duration: 3s
  shake_gap: 2s
  bounce_gap: 3s
  loop_gap: 3s
  rotate_window: 2s

api:
  addr: localhost:19990
  tracing:
    enabled: false
    exporter: file

theme:
  highlight: "#7D56F4"
  subtle: "#6C6C6C"
  error: "#EF4444"
  success: "#10B981"
`

// WriteDefaultConfig writes the commented default config file at path,
// creating parent directories as needed. Existing files are left alone.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0644); err != nil { //nolint:gosec // config file is not sensitive
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
