package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/storage"
)

var (
	flagHistoryLimit  int
	flagHistoryPreset string
	flagHistoryClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "Show recorded sessions",
	Long: `Display recent sessions, the best sessions of a preset, or a single
session by ID.

Examples:
  match3 history
  match3 history --preset classic
  match3 history 1f0c6a52-...
  match3 history --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().StringVar(&flagHistoryPreset, "preset", "", "Show the best sessions of a preset")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded sessions")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening history database: %v", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearSessions(); err != nil {
			fatalf("%v", err)
		}
		fmt.Println("History cleared.")
		return
	}

	if len(args) == 1 {
		rec, err := store.SessionByID(args[0])
		if err != nil {
			fatalf("%v", err)
		}
		if rec == nil {
			fatalf("no session %q", args[0])
		}
		fmt.Println(sessionTable([]storage.SessionRecord{*rec}))
		fmt.Printf("ID: %s  Matches: %d  Refill passes: %d  Duration: %s\n",
			rec.ID, rec.Matches, rec.Refills, rec.Duration.Round(time.Millisecond))
		return
	}

	var records []storage.SessionRecord
	if flagHistoryPreset != "" {
		fmt.Printf("Best sessions - %s\n", flagHistoryPreset)
		records, err = store.BestSessions(flagHistoryPreset, flagHistoryLimit)
	} else {
		fmt.Println("Recent sessions")
		records, err = store.RecentSessions(flagHistoryLimit)
	}
	if err != nil {
		fatalf("%v", err)
	}

	if len(records) == 0 {
		fmt.Println()
		fmt.Println("No sessions recorded yet.")
		fmt.Println("Run 'match3 play' to record one.")
		return
	}

	fmt.Println(sessionTable(records))

	st, err := store.Stats()
	if err == nil {
		fmt.Printf("Sessions: %d  Moves: %d  Tiles cleared: %d  Best cascade: %d  Deadlocked: %d\n",
			st.Sessions, st.TotalMoves, st.TilesCleared, st.BestCascade, st.Deadlocked)
	}
}

func sessionTable(records []storage.SessionRecord) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "Size", "Supplier", "Seed", "Moves", "Cleared", "Cascade", "End", "Date")

	for _, r := range records {
		end := "budget"
		if r.Deadlocked {
			end = "deadlock"
		}
		size := fmt.Sprintf("%dx%d", r.Width, r.Height)
		if r.Preset != "" {
			size = r.Preset
		}
		t.Row(
			shortID(r.ID),
			size,
			r.Supplier,
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Moves),
			strconv.Itoa(r.TilesCleared),
			strconv.Itoa(r.MaxCascade),
			end,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	return t.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
