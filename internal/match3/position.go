package match3

import "fmt"

// Position addresses a cell on the board.
// Row increases downward, Col increases to the right.
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Adjacent returns true if other is an orthogonal neighbour of p:
// same row and one column apart, or same column and one row apart.
func (p Position) Adjacent(other Position) bool {
	sameRow := p.Row == other.Row
	sameCol := p.Col == other.Col

	if sameRow && abs(p.Col-other.Col) == 1 {
		return true
	}
	if sameCol && abs(p.Row-other.Row) == 1 {
		return true
	}
	return false
}

// Swap is an unordered pair of adjacent positions.
type Swap struct {
	A Position
	B Position
}

// String returns a string representation of the swap.
func (s Swap) String() string {
	return fmt.Sprintf("%s<->%s", s.A, s.B)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
