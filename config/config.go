// Package config provides configuration loading and access for the puzzle browser.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all application configuration.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Menu      MenuConfig      `yaml:"menu"`
	Puzzles   PuzzlesConfig   `yaml:"puzzles"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// MenuConfig holds the menu layout and the puzzles it lists.
type MenuConfig struct {
	Title         string       `yaml:"title"`
	TitleFontSize float32      `yaml:"title_font_size"`
	YearFontSize  float32      `yaml:"year_font_size"`
	DayFontSize   float32      `yaml:"day_font_size"`
	Padding       float32      `yaml:"padding"`
	RowGap        float32      `yaml:"row_gap"`
	GridColumns   int          `yaml:"grid_columns"`
	GridGap       float32      `yaml:"grid_gap"`
	ButtonSize    float32      `yaml:"button_size"`
	ButtonRadius  float32      `yaml:"button_radius"`
	Years         []YearConfig `yaml:"years"`
}

// YearConfig lists the days shown for one event year.
// Days takes precedence over the FirstDay..LastDay range.
type YearConfig struct {
	Year     int   `yaml:"year"`
	FirstDay int   `yaml:"first_day"`
	LastDay  int   `yaml:"last_day"`
	Days     []int `yaml:"days"`
}

// PuzzlesConfig holds puzzle content settings.
type PuzzlesConfig struct {
	InputDir string `yaml:"input_dir"` // Root of <year>/day-<day>-input.txt files
}

// TelemetryConfig holds frame statistics settings.
type TelemetryConfig struct {
	PerfWindow     int     `yaml:"perf_window"`      // Frames per statistics window
	LogIntervalSec float64 `yaml:"log_interval_sec"` // Seconds between perf log lines
}

// PuzzleRef is one (year, day) entry of the menu.
type PuzzleRef struct {
	Year int
	Day  int
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Puzzles   []PuzzleRef // Menu entries in display order
	ScreenW32 float32
	ScreenH32 float32
}

// MaxDay is the last puzzle day of any event.
const MaxDay = 25

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := Parse(cfg, data); err != nil {
			return nil, err
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse overlays YAML data on cfg; only fields present in data are overwritten.
func Parse(cfg *Config, data []byte) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// computeDerived validates the menu and calculates values derived from it.
func (c *Config) computeDerived() error {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	if len(c.Menu.Years) == 0 {
		return fmt.Errorf("menu: no years configured")
	}
	if c.Menu.GridColumns < 1 {
		return fmt.Errorf("menu: grid_columns must be positive, got %d", c.Menu.GridColumns)
	}

	seen := make(map[int]bool, len(c.Menu.Years))
	c.Derived.Puzzles = c.Derived.Puzzles[:0]
	for _, y := range c.Menu.Years {
		if y.Year < 2015 || y.Year > 65535 {
			return fmt.Errorf("menu: invalid year %d", y.Year)
		}
		if seen[y.Year] {
			return fmt.Errorf("menu: year %d listed twice", y.Year)
		}
		seen[y.Year] = true

		days := y.Days
		if len(days) == 0 {
			for d := y.FirstDay; d <= y.LastDay; d++ {
				days = append(days, d)
			}
		}
		if len(days) == 0 {
			return fmt.Errorf("menu: year %d has no days", y.Year)
		}

		seenDay := make(map[int]bool, len(days))
		for _, d := range days {
			if d < 1 || d > MaxDay {
				return fmt.Errorf("menu: year %d: day %d out of range 1..%d", y.Year, d, MaxDay)
			}
			if seenDay[d] {
				return fmt.Errorf("menu: year %d: day %d listed twice", y.Year, d)
			}
			seenDay[d] = true
			c.Derived.Puzzles = append(c.Derived.Puzzles, PuzzleRef{Year: y.Year, Day: d})
		}
	}
	return nil
}

// DaysOf returns the configured days of a year in display order.
func (c *Config) DaysOf(year int) []int {
	var days []int
	for _, p := range c.Derived.Puzzles {
		if p.Year == year {
			days = append(days, p.Day)
		}
	}
	return days
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
