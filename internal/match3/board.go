// Package match3 implements the rules of a tile-matching puzzle: the grid of
// tile values, swap legality, run detection and the remove/fall/refill cascade
// that follows an accepted swap.
//
// The package is pure logic with no I/O. Frontends observe what happened
// through the effects returned from Move or through a registered Listener.
package match3

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxPasses bounds the number of scan/remove/refill passes a single
// move may trigger before the cascade is considered runaway.
const DefaultMaxPasses = 1000

var (
	ErrInvalidDimension       = errors.New("match3: board dimensions must be positive")
	ErrNilSupplier            = errors.New("match3: tile supplier is nil")
	ErrCascadeDidNotTerminate = errors.New("match3: cascade did not terminate")
)

// Supplier produces the value for a newly created cell.
// Implementations must always return a value; they are called once per cell
// at construction and once per emptied cell during refills.
type Supplier[T comparable] interface {
	Next() T
}

// SupplierFunc adapts a plain function to the Supplier interface.
type SupplierFunc[T comparable] func() T

// Next calls f.
func (f SupplierFunc[T]) Next() T {
	return f()
}

// Option configures a Board at construction.
type Option func(*options)

type options struct {
	maxPasses int
}

// WithMaxPasses overrides DefaultMaxPasses. Values below 1 are ignored.
func WithMaxPasses(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxPasses = n
		}
	}
}

// Board owns the grid of cells for one game.
// It is not safe for concurrent use; a board is driven by a single caller.
type Board[T comparable] struct {
	supplier  Supplier[T]
	width     int
	height    int
	grid      grid[T]
	listener  Listener[T]
	maxPasses int
}

// New creates a width x height board and fills it row-major, calling the
// supplier once per cell. The supplier is never called when the dimensions
// are rejected.
func New[T comparable](supplier Supplier[T], width, height int, opts ...Option) (*Board[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}
	if supplier == nil {
		return nil, ErrNilSupplier
	}

	b := newBoard(supplier, width, height, opts)
	for row := range height {
		for col := range width {
			b.grid[row][col].set(supplier.Next())
		}
	}
	return b, nil
}

// FromValues creates a board from a literal grid indexed [row][col].
// All rows must have the same non-zero length. The supplier is only used
// for refills.
func FromValues[T comparable](supplier Supplier[T], rows [][]T, opts ...Option) (*Board[T], error) {
	height := len(rows)
	if height == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidDimension)
	}
	width := len(rows[0])
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, i, len(r), width)
		}
	}
	if supplier == nil {
		return nil, ErrNilSupplier
	}

	b := newBoard(supplier, width, height, opts)
	for row := range height {
		for col := range width {
			b.grid[row][col].set(rows[row][col])
		}
	}
	return b, nil
}

func newBoard[T comparable](supplier Supplier[T], width, height int, opts []Option) *Board[T] {
	o := options{maxPasses: DefaultMaxPasses}
	for _, opt := range opts {
		opt(&o)
	}
	return &Board[T]{
		supplier:  supplier,
		width:     width,
		height:    height,
		grid:      newGrid[T](width, height),
		maxPasses: o.maxPasses,
	}
}

// Width returns the number of columns.
func (b *Board[T]) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board[T]) Height() int {
	return b.height
}

// InBounds returns true if p lies on the board.
// Rows are checked against the height and columns against the width.
func (b *Board[T]) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.height && p.Col >= 0 && p.Col < b.width
}

// Piece returns the value at p. The second result is false when p is out
// of bounds or the cell is empty.
func (b *Board[T]) Piece(p Position) (T, bool) {
	if !b.InBounds(p) {
		var zero T
		return zero, false
	}
	return b.grid[p.Row][p.Col].Value()
}

// AddListener registers the listener that receives effects during Move and
// Settle. A later registration replaces the earlier one; nil removes it.
func (b *Board[T]) AddListener(l Listener[T]) {
	b.listener = l
}

// Row returns a copy of row i, or nil if i is out of range.
func (b *Board[T]) Row(i int) []Cell[T] {
	if i < 0 || i >= b.height {
		return nil
	}
	return b.grid.row(i)
}

// Column returns a copy of column j, or nil if j is out of range.
func (b *Board[T]) Column(j int) []Cell[T] {
	if j < 0 || j >= b.width {
		return nil
	}
	return b.grid.column(j)
}

// Matches scans every row, then every column, and returns all runs found.
func (b *Board[T]) Matches() []Match[T] {
	return b.grid.matches()
}

// Values returns a copy of the grid indexed [row][col].
// Empty cells hold the zero value.
func (b *Board[T]) Values() [][]T {
	out := make([][]T, b.height)
	for row := range b.height {
		out[row] = make([]T, b.width)
		for col := range b.width {
			out[row][col], _ = b.grid[row][col].Value()
		}
	}
	return out
}

// String renders the grid one row per line, empty cells as ".".
func (b *Board[T]) String() string {
	var sb strings.Builder
	for row := range b.height {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range b.width {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if v, ok := b.grid[row][col].Value(); ok {
				fmt.Fprint(&sb, v)
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
