package chess

import "errors"

// Error categories for every failure the engine surfaces. Each returned
// error wraps exactly one of these sentinels, so callers can classify with
// errors.Is while still receiving a human-readable explanation. A rejected
// operation never mutates game state.
var (
	// ErrInvalidInput reports malformed square, move or piece-type text.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIllegalMove reports a well-formed move that is not in the legal
	// set: wrong turn, empty source, destination unreachable, or a move
	// that would leave the mover's own king in check.
	ErrIllegalMove = errors.New("illegal move")

	// ErrWrongState reports an operation the current GameState forbids,
	// such as moving while a promotion is pending or after game over.
	ErrWrongState = errors.New("wrong game state")

	// ErrInvariant reports an internal impossibility and signals an
	// engine bug rather than caller error.
	ErrInvariant = errors.New("engine invariant violated")
)
