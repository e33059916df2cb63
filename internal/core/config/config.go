// Package config handles configuration loading and validation for cadence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/cadence/internal/core/styles"
)

// StoreFileName is the organiser file name used when no path is configured.
const StoreFileName = "manager.json"

// Config holds the application configuration.
type Config struct {
	StoreFile string        `yaml:"store_file"`
	Display   DisplayConfig `yaml:"display"`
	Accrual   AccrualConfig `yaml:"accrual"`
}

// DisplayConfig controls the today view.
type DisplayConfig struct {
	ShowRemaining bool   `yaml:"show_remaining"` // append the remaining budget to each task
	CatchUpDays   int    `yaml:"catch_up_days"`  // show the catch-up notice above this many elapsed days
	Theme         string `yaml:"theme"`          // built-in color theme name
}

// AccrualConfig tunes how elapsed time turns into due occurrences.
type AccrualConfig struct {
	WeekStart string `yaml:"week_start"` // weekday a week begins on, for weekly tasks
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		StoreFile: DefaultStoreFile(),
		Display: DisplayConfig{
			CatchUpDays: 1,
			Theme:       styles.DefaultTheme,
		},
		Accrual: AccrualConfig{
			WeekStart: "monday",
		},
	}
}

// DefaultStoreFile returns manager.json beside the running executable,
// falling back to the working directory when the executable path is unknown.
func DefaultStoreFile() string {
	exe, err := os.Executable()
	if err != nil {
		return StoreFileName
	}
	return filepath.Join(filepath.Dir(exe), StoreFileName)
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, defaults are returned. A non-empty storeFile overrides the
// store_file setting.
func Load(configPath, storeFile string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if storeFile != "" {
		cfg.StoreFile = storeFile
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.StoreFile == "" {
		c.StoreFile = defaults.StoreFile
	}
	if c.Display.Theme == "" {
		c.Display.Theme = defaults.Display.Theme
	}
	if c.Accrual.WeekStart == "" {
		c.Accrual.WeekStart = defaults.Accrual.WeekStart
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.StoreFile == "" {
		return fmt.Errorf("store_file cannot be empty")
	}

	if c.Display.CatchUpDays < 0 {
		return fmt.Errorf("display.catch_up_days must not be negative")
	}

	if _, ok := styles.GetPalette(c.Display.Theme); !ok {
		return fmt.Errorf("display.theme %q is unknown, expected one of %s", c.Display.Theme, strings.Join(styles.ThemeNames(), ", "))
	}

	if _, ok := parseWeekday(c.Accrual.WeekStart); !ok {
		return fmt.Errorf("accrual.week_start %q is not a weekday", c.Accrual.WeekStart)
	}

	return nil
}

// Palette returns the colors of the configured theme.
func (c *Config) Palette() styles.Palette {
	p, _ := styles.GetPalette(c.Display.Theme)
	return p
}

// WeekStart returns the configured first day of the week.
func (c *Config) WeekStart() time.Weekday {
	day, _ := parseWeekday(c.Accrual.WeekStart)
	return day
}

func parseWeekday(name string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), name) {
			return d, true
		}
	}
	return time.Sunday, false
}
