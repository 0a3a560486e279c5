package match3

// CanMove reports whether swapping a and b is legal: both positions on the
// board, orthogonally adjacent, and the swap produces at least one run in the
// rows or columns the two positions lie on. The board is not modified.
func (b *Board[T]) CanMove(a, c Position) bool {
	if !b.InBounds(a) || !b.InBounds(c) {
		return false
	}
	if !a.Adjacent(c) {
		return false
	}
	return speculate(b.grid.clone(), a, c)
}

// ValidMoves returns every legal swap on the board in row-major order.
// Each pair is reported once, as (p, right neighbour) then (p, lower neighbour).
func (b *Board[T]) ValidMoves() []Swap {
	var moves []Swap
	scratch := b.grid.clone()

	for row := range b.height {
		for col := range b.width {
			p := P(row, col)
			if col+1 < b.width {
				if right := P(row, col+1); speculate(scratch, p, right) {
					moves = append(moves, Swap{A: p, B: right})
				}
			}
			if row+1 < b.height {
				if down := P(row+1, col); speculate(scratch, p, down) {
					moves = append(moves, Swap{A: p, B: down})
				}
			}
		}
	}
	return moves
}

// Deadlocked returns true if no legal swap exists.
func (b *Board[T]) Deadlocked() bool {
	return len(b.ValidMoves()) == 0
}

// speculate swaps a and c on scratch, checks the four affected lines and
// swaps back. scratch is left as it was found.
func speculate[T comparable](scratch grid[T], a, c Position) bool {
	scratch.swap(a, c)
	defer scratch.swap(a, c)

	return HasMatch(scratch[a.Row]) ||
		HasMatch(scratch[c.Row]) ||
		HasMatch(scratch.column(a.Col)) ||
		HasMatch(scratch.column(c.Col))
}
