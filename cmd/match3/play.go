package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/session"
	"github.com/vovakirdan/match3/internal/storage"
	"github.com/vovakirdan/match3/internal/supply"
)

var (
	flagPreset   string
	flagMoves    int
	flagPolicy   string
	flagSupplier string
	flagNoSave   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Autoplay a session",
	Long: `Creates a board, then plays legal swaps until the move budget is spent
or no legal swap is left. The finished session is recorded in the history
database.

Size presets: small (5x5), classic (8x8), large (10x10).

Examples:
  match3 play
  match3 play --preset large --moves 200
  match3 play --supplier cycle --no-save`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board size preset")
	playCmd.Flags().IntVar(&flagMoves, "moves", 0, "Move budget (0 = use config)")
	playCmd.Flags().StringVar(&flagPolicy, "policy", "", "Move policy: first or random")
	playCmd.Flags().StringVar(&flagSupplier, "supplier", "", "Tile supplier (see 'match3 suppliers')")
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the session")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	preset := config.SizePreset(flagPreset)
	if preset == "" {
		preset = cfg.Board.Preset
	}
	if err := config.ApplyPreset(&cfg, preset); err != nil {
		fatalf("%v", err)
	}
	if flagMoves > 0 {
		cfg.Autoplay.Moves = flagMoves
	}
	if flagPolicy != "" {
		cfg.Autoplay.Policy = flagPolicy
	}
	if flagSupplier != "" {
		cfg.Tiles.Supplier = flagSupplier
	}

	logger := newLogger(cfg)

	tiles, err := supply.Create(cfg.Tiles.Supplier, cfg.Tiles.Symbols, cfg.Tiles.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'match3 suppliers' to see available suppliers.")
		os.Exit(1)
	}

	s, err := session.New(cfg, tiles, logger)
	if err != nil {
		fatalf("%v", err)
	}
	logger.Info("session started",
		"id", s.ID(),
		"size", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"supplier", cfg.Tiles.Supplier,
		"seed", cfg.Tiles.Seed,
	)

	start := time.Now()
	played, playErr := s.Play(cfg.Autoplay.Moves)
	elapsed := time.Since(start)

	fmt.Println(renderBoard(s.Board().Values(), cfg.Tiles.Symbols))
	fmt.Println()
	printSnapshot(s.Snapshot(), played)

	if !flagNoSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("Failed to open history database", "error", err)
		} else {
			if _, err := s.Finish(store, elapsed); err != nil {
				logger.Warn("Failed to record session", "error", err)
			}
			store.Close()
		}
	}

	if playErr != nil {
		fatalf("%v", playErr)
	}
}

func printSnapshot(snap session.Snapshot, played int) {
	fmt.Printf("  %-14s %d\n", "Moves", played)
	fmt.Printf("  %-14s %d\n", "Matches", snap.Matches)
	fmt.Printf("  %-14s %d\n", "Tiles cleared", snap.TilesCleared)
	fmt.Printf("  %-14s %d\n", "Refill passes", snap.Refills)
	fmt.Printf("  %-14s %d\n", "Best cascade", snap.MaxCascade)
	fmt.Printf("  %-14s %s\n", "State", snap.State)
}
