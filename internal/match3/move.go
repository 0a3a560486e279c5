package match3

// Move attempts to swap a and b.
//
// An illegal move leaves the board untouched and returns no effects and no
// error. A legal move commits the swap and resolves the full cascade before
// returning; each effect is also passed to the registered listener as it
// happens. The only error is ErrCascadeDidNotTerminate, in which case the
// board holds the state after the last reported pass.
func (b *Board[T]) Move(a, c Position) (MoveResult[T], error) {
	if !b.CanMove(a, c) {
		return MoveResult[T]{Board: b}, nil
	}

	b.grid.swap(a, c)

	r := &reporter[T]{listener: b.listener}
	err := b.resolve(r)
	return MoveResult[T]{Board: b, Effects: r.effects}, err
}

// Settle resolves runs already present on the board, such as those left by
// a random fill, without a swap. It reports effects exactly like Move.
func (b *Board[T]) Settle() (MoveResult[T], error) {
	r := &reporter[T]{listener: b.listener}
	err := b.resolve(r)
	return MoveResult[T]{Board: b, Effects: r.effects}, err
}
