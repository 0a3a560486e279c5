package match3

// MinRun is the shortest run of equal values that counts as a match.
const MinRun = 3

// Match is one contiguous run of at least MinRun equal values along a single
// row or column.
type Match[T comparable] struct {
	Value     T
	Positions []Position // In line order
}

// Len returns the number of cells in the run.
func (m Match[T]) Len() int {
	return len(m.Positions)
}

// Scan walks a line of cells once and returns every run of MinRun or more
// equal values. Runs do not overlap: a run closes when the value changes and
// the next run starts at that cell. Empty cells never take part in a run.
func Scan[T comparable](line []Cell[T]) []Match[T] {
	var found []Match[T]
	start := 0

	for i := 1; i <= len(line); i++ {
		if i < len(line) && sameValue(line[start], line[i]) {
			continue
		}

		if !line[start].Empty() && i-start >= MinRun {
			positions := make([]Position, 0, i-start)
			for _, c := range line[start:i] {
				positions = append(positions, c.pos)
			}
			found = append(found, Match[T]{
				Value:     line[start].value,
				Positions: positions,
			})
		}
		start = i
	}

	return found
}

// HasMatch returns true if the line contains at least one run.
func HasMatch[T comparable](line []Cell[T]) bool {
	run := 1
	for i := 1; i < len(line); i++ {
		if sameValue(line[i-1], line[i]) {
			run++
			if run >= MinRun {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}
