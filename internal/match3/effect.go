package match3

// EffectKind identifies what an Effect reports.
type EffectKind int

const (
	EffectMatch  EffectKind = iota // A run was found and is about to be cleared
	EffectRefill                   // Cleared cells were compacted and refilled
)

// String returns a human-readable name for the kind.
func (k EffectKind) String() string {
	switch k {
	case EffectMatch:
		return "Match"
	case EffectRefill:
		return "Refill"
	default:
		return "Unknown"
	}
}

// Effect is one observable step of a move. Match is only set for EffectMatch.
type Effect[T comparable] struct {
	Kind  EffectKind
	Match Match[T]
}

// MatchEffect wraps m in an Effect.
func MatchEffect[T comparable](m Match[T]) Effect[T] {
	return Effect[T]{Kind: EffectMatch, Match: m}
}

// RefillEffect returns the effect emitted once per cascade pass.
func RefillEffect[T comparable]() Effect[T] {
	return Effect[T]{Kind: EffectRefill}
}

// Listener receives effects synchronously, in order, while a move resolves.
type Listener[T comparable] interface {
	OnEffect(e Effect[T])
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc[T comparable] func(e Effect[T])

// OnEffect calls f.
func (f ListenerFunc[T]) OnEffect(e Effect[T]) {
	f(e)
}

// MoveResult is the outcome of a move attempt.
// An empty Effects slice means the move was rejected.
type MoveResult[T comparable] struct {
	Board   *Board[T]
	Effects []Effect[T]
}

// Accepted returns true if the move changed the board.
func (r MoveResult[T]) Accepted() bool {
	return len(r.Effects) > 0
}

// reporter accumulates the effects of one call and forwards each to the
// listener as it is recorded.
type reporter[T comparable] struct {
	effects  []Effect[T]
	listener Listener[T]
}

func (r *reporter[T]) emit(e Effect[T]) {
	r.effects = append(r.effects, e)
	if r.listener != nil {
		r.listener.OnEffect(e)
	}
}
