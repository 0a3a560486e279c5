package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout is a fixed board loaded from a YAML fixture.
//
//	name: corner-swap
//	rows:
//	  - [A, B, A, C]
//	  - [D, C, A, C]
//	refill: [X, Y, Z]
type Layout struct {
	Name   string     `yaml:"name"`
	Rows   [][]string `yaml:"rows"`
	Refill []string   `yaml:"refill,omitempty"` // Values handed out before the configured supplier takes over
}

// Width returns the number of columns.
func (l Layout) Width() int {
	if len(l.Rows) == 0 {
		return 0
	}
	return len(l.Rows[0])
}

// Height returns the number of rows.
func (l Layout) Height() int {
	return len(l.Rows)
}

// Validate checks that the grid is rectangular and has no blank cells.
func (l Layout) Validate() error {
	if l.Height() == 0 || l.Width() == 0 {
		return ValidationError{Code: "EMPTY_LAYOUT", Message: "layout has no cells"}
	}
	for i, row := range l.Rows {
		if len(row) != l.Width() {
			return ValidationError{
				Code:    "RAGGED_LAYOUT",
				Message: fmt.Sprintf("row %d has %d cells, want %d", i, len(row), l.Width()),
			}
		}
		for j, v := range row {
			if v == "" {
				return ValidationError{
					Code:    "EMPTY_SYMBOL",
					Message: fmt.Sprintf("cell (%d,%d) is blank", i, j),
				}
			}
		}
	}
	return nil
}

// ParseLayout decodes and validates a layout document.
func ParseLayout(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("yaml parse error: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// LoadLayout reads a layout file.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	return l, nil
}
