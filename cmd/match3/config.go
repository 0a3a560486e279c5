package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/match3/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Prints the configuration a session would use, after the config search
order and the --seed flag are applied. With --default the built-in config
file is printed instead, ready to copy to ~/.match3/config.yaml.

Examples:
  match3 config
  match3 config --default > ~/.match3/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagConfigDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("%v", err)
	}
	if flagSeed != 0 {
		cfg.Tiles.Seed = flagSeed
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fatalf("%v", err)
	}
	os.Stdout.Write(data)
}
