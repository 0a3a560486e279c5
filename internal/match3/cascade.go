package match3

import "fmt"

// resolve runs scan/remove/refill passes until a pass finds no match.
// Every effect reported corresponds to a mutation already applied, so a
// runaway cascade is stopped before its pass is reported.
func (b *Board[T]) resolve(r *reporter[T]) error {
	for pass := 0; ; pass++ {
		matches := b.grid.matches()
		if len(matches) == 0 {
			return nil
		}
		if pass >= b.maxPasses {
			return fmt.Errorf("%w: still matching after %d passes", ErrCascadeDidNotTerminate, pass)
		}

		for _, m := range matches {
			r.emit(MatchEffect(m))
		}

		b.clearMatches(matches)
		b.collapse()
		r.emit(RefillEffect[T]())
	}
}

// clearMatches empties every cell that belongs to a match. Cells shared by
// a row run and a column run are cleared once.
func (b *Board[T]) clearMatches(matches []Match[T]) {
	for _, m := range matches {
		for _, p := range m.Positions {
			b.grid[p.Row][p.Col].clear()
		}
	}
}

// collapse applies gravity and refills, column by column from left to right.
// Surviving values keep their order and settle at the bottom. The emptied
// rows above them are refilled top-down in supply order.
func (b *Board[T]) collapse() {
	kept := make([]T, 0, b.height)

	for col := range b.width {
		kept = kept[:0]
		for row := range b.height {
			if v, ok := b.grid[row][col].Value(); ok {
				kept = append(kept, v)
			}
		}

		missing := b.height - len(kept)
		for row := range missing {
			b.grid[row][col].set(b.supplier.Next())
		}
		for i, v := range kept {
			b.grid[missing+i][col].set(v)
		}
	}
}
