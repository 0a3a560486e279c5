package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/match3"
	"github.com/vovakirdan/match3/internal/session"
	"github.com/vovakirdan/match3/internal/supply"
)

var checkCmd = &cobra.Command{
	Use:   "check <layout.yaml> [row col row col]",
	Short: "Inspect a fixed board layout",
	Long: `Loads a board layout and lists its legal swaps. With two positions the
swap is played and every match and refill it caused is printed.

The initial board is used as written: existing runs are not settled.

Examples:
  match3 check configs/layouts/column.yaml
  match3 check configs/layouts/column.yaml 2 3 3 3`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 && len(args) != 5 {
			return fmt.Errorf("accepts a layout and optionally 4 coordinates, received %d args", len(args))
		}
		return nil
	},
	Run: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	cfg.Cascade.SettleInitial = false

	layout, err := config.LoadLayout(args[0])
	if err != nil {
		fatalf("%v", err)
	}

	tiles, err := supply.Create(cfg.Tiles.Supplier, cfg.Tiles.Symbols, cfg.Tiles.Seed)
	if err != nil {
		fatalf("%v", err)
	}

	s, err := session.FromLayout(cfg, layout, tiles, newLogger(cfg))
	if err != nil {
		fatalf("%v", err)
	}
	board := s.Board()

	title := layout.Name
	if title == "" {
		title = args[0]
	}
	fmt.Printf("Layout - %s (%dx%d)\n", title, board.Width(), board.Height())
	fmt.Println(renderBoard(board.Values(), cfg.Tiles.Symbols))
	fmt.Println()

	if len(args) == 1 {
		printValidMoves(board.ValidMoves())
		return
	}

	coords := make([]int, 4)
	for i, arg := range args[1:] {
		n, err := strconv.Atoi(arg)
		if err != nil {
			fatalf("invalid coordinate %q", arg)
		}
		coords[i] = n
	}
	a, b := match3.P(coords[0], coords[1]), match3.P(coords[2], coords[3])

	if !board.CanMove(a, b) {
		fmt.Printf("Swap %s <-> %s is not legal.\n", a, b)
		return
	}

	res, err := s.Move(a, b)
	for i, e := range res.Effects {
		switch e.Kind {
		case match3.EffectMatch:
			fmt.Printf("  %2d. match  %s x%d at %v\n", i+1, e.Match.Value, e.Match.Len(), e.Match.Positions)
		case match3.EffectRefill:
			fmt.Printf("  %2d. refill\n", i+1)
		}
	}
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Println()
	fmt.Println(renderBoard(board.Values(), cfg.Tiles.Symbols))
	if s.State() == session.StateDeadlocked {
		fmt.Println("No legal swaps left.")
	}
}

func printValidMoves(moves []match3.Swap) {
	if len(moves) == 0 {
		fmt.Println("No legal swaps.")
		return
	}

	fmt.Printf("Legal swaps (%d):\n", len(moves))
	for _, m := range moves {
		fmt.Printf("  %s <-> %s\n", m.A, m.B)
	}
}
