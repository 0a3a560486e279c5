package match3

import (
	"strings"
	"testing"
)

// scriptSupplier returns its values in order, cycling when exhausted.
type scriptSupplier struct {
	values []string
	calls  int
}

func script(values ...string) *scriptSupplier {
	return &scriptSupplier{values: values}
}

func (s *scriptSupplier) Next() string {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

// rows turns compact strings like "ABAC" into a [row][col] grid of one-letter values.
func rows(lines ...string) [][]string {
	out := make([][]string, len(lines))
	for i, l := range lines {
		out[i] = strings.Split(l, "")
	}
	return out
}

func mustBoard(t *testing.T, s Supplier[string], lines ...string) *Board[string] {
	t.Helper()
	b, err := FromValues(s, rows(lines...))
	if err != nil {
		t.Fatalf("FromValues() failed: %v", err)
	}
	return b
}

// recorder collects effects delivered to a listener.
type recorder struct {
	effects []Effect[string]
}

func (r *recorder) OnEffect(e Effect[string]) {
	r.effects = append(r.effects, e)
}

func assertNoEmptyCells(t *testing.T, b *Board[string]) {
	t.Helper()
	for row := range b.Height() {
		for col := range b.Width() {
			if _, ok := b.Piece(P(row, col)); !ok {
				t.Errorf("cell %v is empty after resolution", P(row, col))
			}
		}
	}
}

func samePositions(a, b []Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
