package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/supply"
)

var suppliersCmd = &cobra.Command{
	Use:   "suppliers",
	Short: "List all tile suppliers",
	Long:  `Shows the tile suppliers that can be named in the config or with --supplier.`,
	Run:   runSuppliers,
}

func runSuppliers(cmd *cobra.Command, args []string) {
	suppliers := supply.List()

	if len(suppliers) == 0 {
		fmt.Println("No suppliers available.")
		return
	}

	fmt.Println("Available suppliers:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, s := range suppliers {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, s := range suppliers {
		fmt.Printf("  %-*s  %s\n", maxNameLen, s.Name, s.Description)
	}

	fmt.Println()
	fmt.Println("Run 'match3 play --supplier <name>' to use one.")
}
