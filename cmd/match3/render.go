package main

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// symbolColors is indexed by the symbol's position in the configured set.
var symbolColors = []lipgloss.Color{
	lipgloss.Color("196"), // Red
	lipgloss.Color("46"),  // Green
	lipgloss.Color("33"),  // Blue
	lipgloss.Color("226"), // Yellow
	lipgloss.Color("201"), // Magenta
	lipgloss.Color("208"), // Orange
	lipgloss.Color("51"),  // Cyan
	lipgloss.Color("255"), // White
}

// renderBoard draws the grid in a rounded border, one column per value.
// Values outside the symbol set (layout fixtures, scripted refills) are drawn uncolored.
func renderBoard(values [][]string, symbols []string) string {
	width := 1
	for _, row := range values {
		for _, v := range row {
			width = max(width, lipgloss.Width(v))
		}
	}

	cell := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	lines := make([]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			style := cell
			if v == "" {
				v = "."
				style = style.Foreground(lipgloss.Color("240"))
			} else if idx := slices.Index(symbols, v); idx >= 0 {
				style = style.Bold(true).Foreground(symbolColors[idx%len(symbolColors)])
			}
			cells[j] = style.Render(v)
		}
		lines[i] = strings.Join(cells, " ")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
