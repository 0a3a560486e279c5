package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultConfig returns the default match3 configuration.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Width:  8,
			Height: 8,
		},
		Tiles: TilesConfig{
			Symbols:  []string{"R", "G", "B", "Y", "P", "O"},
			Supplier: "random",
			Seed:     0,
		},
		Cascade: CascadeConfig{
			MaxPasses:     1000,
			SettleInitial: true,
		},
		Autoplay: AutoplayConfig{
			Moves:  50,
			Policy: PolicyFirst,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMatch3YAML
}
