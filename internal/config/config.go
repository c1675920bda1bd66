// Package config provides configuration management for Costwise.
// Configurations are loaded from TOML files with XDG-compliant paths.
package config

import (
	"errors"
	"fmt"
)

// Config holds the complete application configuration.
type Config struct {
	Project  ProjectConfig  `toml:"project"`
	Display  DisplayConfig  `toml:"display"`
	Pricing  PricingConfig  `toml:"pricing"`
	Logging  LoggingConfig  `toml:"logging"`
	Database DatabaseConfig `toml:"database"`
}

// ProjectConfig contains the default project identity.
type ProjectConfig struct {
	DefaultHouseName string `toml:"default_house_name"`
}

// DisplayConfig controls TUI appearance and numeric formatting.
type DisplayConfig struct {
	CurrencySymbol     string      `toml:"currency_symbol"`
	DecimalPlaces      int         `toml:"decimal_places"`
	ThousandsSeparator bool        `toml:"thousands_separator"`
	AreaUnit           string      `toml:"area_unit"`
	LengthUnit         string      `toml:"length_unit"`
	ColorScheme        ColorScheme `toml:"color_scheme"`
}

// ColorScheme defines the terminal color palette.
type ColorScheme string

const (
	ColorSchemeGreenPhosphor ColorScheme = "green_phosphor"
	ColorSchemeAmber         ColorScheme = "amber"
	ColorSchemeWhite         ColorScheme = "white"
)

// Valid returns true if the color scheme is one of the known palettes.
func (c ColorScheme) Valid() bool {
	switch c {
	case ColorSchemeGreenPhosphor, ColorSchemeAmber, ColorSchemeWhite:
		return true
	default:
		return false
	}
}

// PricingConfig contains the markup rates compounded over base cost.
// Rates are fractions, not percentages.
type PricingConfig struct {
	TaxRate    float64 `toml:"tax_rate"`
	AdminRate  float64 `toml:"admin_rate"`
	ProfitRate float64 `toml:"profit_rate"`
}

// LoggingConfig controls application logging.
type LoggingConfig struct {
	Level LogLevel `toml:"level"`
	File  string   `toml:"file"`
}

// LogLevel defines logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Valid returns true if the log level is recognized.
func (l LogLevel) Valid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// DatabaseConfig controls SQLite database settings.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			DefaultHouseName: "My House",
		},
		Display: DisplayConfig{
			CurrencySymbol:     "$",
			DecimalPlaces:      0,
			ThousandsSeparator: true,
			AreaUnit:           "m²",
			LengthUnit:         "m",
			ColorScheme:        ColorSchemeGreenPhosphor,
		},
		Pricing: PricingConfig{
			TaxRate:    0.19,
			AdminRate:  0.15,
			ProfitRate: 0.20,
		},
		Logging: LoggingConfig{
			Level: LogLevelInfo,
			File:  "logs/costwise.log",
		},
		Database: DatabaseConfig{
			Path: "costwise.db",
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Project.DefaultHouseName == "" {
		errs = append(errs, errors.New("project: default_house_name is required"))
	}
	if err := c.Display.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}
	if err := c.Pricing.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("pricing: %w", err))
	}
	if !c.Logging.Level.Valid() {
		errs = append(errs, fmt.Errorf("logging: invalid level %q", c.Logging.Level))
	}
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database: path is required"))
	}

	return errors.Join(errs...)
}

// Validate checks the display settings.
func (d *DisplayConfig) Validate() error {
	if d.DecimalPlaces < 0 || d.DecimalPlaces > 6 {
		return fmt.Errorf("decimal_places must be between 0 and 6, got %d", d.DecimalPlaces)
	}
	if !d.ColorScheme.Valid() {
		return fmt.Errorf("invalid color_scheme %q", d.ColorScheme)
	}
	return nil
}

// Validate checks the pricing rates.
func (p *PricingConfig) Validate() error {
	rates := []struct {
		name  string
		value float64
	}{
		{"tax_rate", p.TaxRate},
		{"admin_rate", p.AdminRate},
		{"profit_rate", p.ProfitRate},
	}
	for _, rate := range rates {
		if rate.value < 0 || rate.value >= 1 {
			return fmt.Errorf("%s must be in [0, 1), got %v", rate.name, rate.value)
		}
	}
	return nil
}
