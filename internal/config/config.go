// Package config provides YAML-based configuration loading for match3
// sessions and board layout fixtures.
package config

import (
	"fmt"
	"slices"
)

// Config contains all configuration for a match3 session.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Tiles    TilesConfig    `yaml:"tiles"`
	Cascade  CascadeConfig  `yaml:"cascade"`
	Autoplay AutoplayConfig `yaml:"autoplay"`
	Log      LogConfig      `yaml:"log"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Preset SizePreset `yaml:"preset,omitempty"` // Overrides width and height when set
}

// TilesConfig defines where new tile values come from.
type TilesConfig struct {
	Symbols  []string `yaml:"symbols"`
	Supplier string   `yaml:"supplier"` // Registered supplier name, see package supply
	Seed     int64    `yaml:"seed"`     // 0 = derive from current time
}

// CascadeConfig defines cascade resolution limits.
type CascadeConfig struct {
	MaxPasses     int  `yaml:"max_passes"`     // 0 = engine default
	SettleInitial bool `yaml:"settle_initial"` // Clear runs left by the initial fill
}

// AutoplayConfig defines the headless play loop.
type AutoplayConfig struct {
	Moves  int    `yaml:"moves"`
	Policy string `yaml:"policy"` // "first" or "random"
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Autoplay policies.
const (
	PolicyFirst  = "first"
	PolicyRandom = "random"
)

// SizePreset represents a named board size.
type SizePreset string

const (
	PresetSmall   SizePreset = "small"
	PresetClassic SizePreset = "classic"
	PresetLarge   SizePreset = "large"
)

// Presets lists the known size presets in ascending size.
func Presets() []SizePreset {
	return []SizePreset{PresetSmall, PresetClassic, PresetLarge}
}

// SizeForPreset returns the board width and height for a preset.
func SizeForPreset(preset SizePreset) (width, height int, ok bool) {
	switch preset {
	case PresetSmall:
		return 5, 5, true
	case PresetClassic:
		return 8, 8, true
	case PresetLarge:
		return 10, 10, true
	default:
		return 0, 0, false
	}
}

// ApplyPreset overrides the board size with a preset and records its name.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *Config, preset SizePreset) error {
	if preset == "" {
		return nil
	}
	w, h, ok := SizeForPreset(preset)
	if !ok {
		return fmt.Errorf("unknown size preset %q (want one of %v)", preset, Presets())
	}
	cfg.Board.Width = w
	cfg.Board.Height = h
	cfg.Board.Preset = preset
	return nil
}

// ValidationError contains details about a rejected configuration.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the configuration for values no session can run with.
// Supplier names are checked when the supplier is created.
func (c Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("board must be at least 1x1, got %dx%d", c.Board.Width, c.Board.Height),
		}
	}

	if len(c.Tiles.Symbols) < 2 {
		return ValidationError{
			Code:    "TOO_FEW_SYMBOLS",
			Message: fmt.Sprintf("need at least 2 symbols, got %d", len(c.Tiles.Symbols)),
		}
	}

	seen := make(map[string]bool, len(c.Tiles.Symbols))
	for _, s := range c.Tiles.Symbols {
		if s == "" {
			return ValidationError{Code: "EMPTY_SYMBOL", Message: "symbols must not be empty strings"}
		}
		if seen[s] {
			return ValidationError{Code: "DUPLICATE_SYMBOL", Message: fmt.Sprintf("symbol %q listed twice", s)}
		}
		seen[s] = true
	}

	if c.Cascade.MaxPasses < 0 {
		return ValidationError{
			Code:    "INVALID_CASCADE",
			Message: fmt.Sprintf("max_passes must not be negative, got %d", c.Cascade.MaxPasses),
		}
	}

	if c.Autoplay.Moves < 0 {
		return ValidationError{
			Code:    "INVALID_MOVES",
			Message: fmt.Sprintf("autoplay moves must not be negative, got %d", c.Autoplay.Moves),
		}
	}

	if !slices.Contains([]string{"", PolicyFirst, PolicyRandom}, c.Autoplay.Policy) {
		return ValidationError{
			Code:    "INVALID_POLICY",
			Message: fmt.Sprintf("unknown autoplay policy %q", c.Autoplay.Policy),
		}
	}

	return nil
}
