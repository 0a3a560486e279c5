// match3 runs headless tile-matching sessions from the command line.
//
// Usage:
//
//	match3 play                  - Autoplay a session and record it
//	match3 check <layout.yaml>   - Inspect or play a move on a fixed board
//	match3 suppliers             - List available tile suppliers
//	match3 history               - Show recorded sessions
//	match3 config                - Print the effective or default config
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible sessions
//	--db <path>          - Set database path (default: ~/.match3/history.db)
//	--config <path>      - Use a specific config file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match3 - headless tile-matching sessions",
	Long: `Match3 runs the swap/match/cascade rules of a tile-matching puzzle
without a user interface. Sessions play themselves and are recorded.

Available commands:
  play       - Autoplay a session
  check      - Inspect a fixed board layout
  suppliers  - Show tile suppliers
  history    - View recorded sessions
  config     - Print the configuration

Examples:
  match3 play --preset small --moves 20
  match3 play --seed 42 --policy random
  match3 check configs/layouts/column.yaml 2 3 3 3
  match3 history --limit 5`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, then time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/history.db", "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(suppliersCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the config and applies the global seed flag.
// A zero seed after that is replaced with the current time.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("%v", err)
	}
	if flagSeed != 0 {
		cfg.Tiles.Seed = flagSeed
	}
	if cfg.Tiles.Seed == 0 {
		cfg.Tiles.Seed = time.Now().UnixNano()
	}
	return cfg
}

// newLogger creates the stderr logger. The flag wins over the config level.
func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
	})

	level := cfg.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	if level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			fatalf("invalid log level %q", level)
		}
		logger.SetLevel(lvl)
	}
	return logger
}
