package match3

// Cell is one slot of the board. Its position is fixed when the board is
// built; only the value changes.
type Cell[T comparable] struct {
	value  T
	filled bool
	pos    Position
}

// Value returns the cell value and whether the cell holds one.
func (c Cell[T]) Value() (T, bool) {
	return c.value, c.filled
}

// Position returns the grid coordinates of the cell.
func (c Cell[T]) Position() Position {
	return c.pos
}

// Empty returns true if the cell was cleared and not yet refilled.
func (c Cell[T]) Empty() bool {
	return !c.filled
}

func (c *Cell[T]) set(v T) {
	c.value = v
	c.filled = true
}

func (c *Cell[T]) clear() {
	var zero T
	c.value = zero
	c.filled = false
}

// sameValue reports whether two cells hold equal values. Empty cells never match.
func sameValue[T comparable](a, b Cell[T]) bool {
	return !a.Empty() && !b.Empty() && a.value == b.value
}

// grid is the cell storage, indexed [row][col].
type grid[T comparable] [][]Cell[T]

func newGrid[T comparable](width, height int) grid[T] {
	g := make(grid[T], height)
	for row := range g {
		g[row] = make([]Cell[T], width)
		for col := range g[row] {
			g[row][col].pos = P(row, col)
		}
	}
	return g
}

// clone returns a deep copy. Used for speculative swaps.
func (g grid[T]) clone() grid[T] {
	out := make(grid[T], len(g))
	for row := range g {
		out[row] = make([]Cell[T], len(g[row]))
		copy(out[row], g[row])
	}
	return out
}

// swap exchanges the contents of two cells. Positions stay with their slots.
func (g grid[T]) swap(a, b Position) {
	ca, cb := &g[a.Row][a.Col], &g[b.Row][b.Col]
	ca.value, cb.value = cb.value, ca.value
	ca.filled, cb.filled = cb.filled, ca.filled
}

func (g grid[T]) row(i int) []Cell[T] {
	out := make([]Cell[T], len(g[i]))
	copy(out, g[i])
	return out
}

func (g grid[T]) column(j int) []Cell[T] {
	out := make([]Cell[T], len(g))
	for row := range g {
		out[row] = g[row][j]
	}
	return out
}

// matches scans rows in increasing index, then columns in increasing index.
func (g grid[T]) matches() []Match[T] {
	var found []Match[T]
	for i := range g {
		found = append(found, Scan(g[i])...)
	}
	if len(g) == 0 {
		return found
	}
	for j := range g[0] {
		found = append(found, Scan(g.column(j))...)
	}
	return found
}
