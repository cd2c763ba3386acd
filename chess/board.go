package chess

import "fmt"

// Board is a 64-slot mailbox holding the piece placement. It is the
// ground truth of occupancy and performs no move-legality checking, so
// it can be used for arbitrary position setup as well as by the engine
// itself. The only placement rule it enforces is at most one king per
// color.
//
// The zero value is not a usable board; use NewBoard or startingBoard.
type Board struct {
	squares [64]Piece
}

// NewBoard returns an empty board.
func NewBoard() Board {
	var b Board
	for i := range b.squares {
		b.squares[i] = NoPiece
	}
	return b
}

// startingBoard returns the standard initial placement.
func startingBoard() Board {
	b := NewBoard()
	back := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, pt := range back {
		b.squares[squareAt(0, file)] = NewPiece(pt, White)
		b.squares[squareAt(1, file)] = WhitePawn
		b.squares[squareAt(6, file)] = BlackPawn
		b.squares[squareAt(7, file)] = NewPiece(pt, Black)
	}
	return b
}

// Get returns the piece at sq, or NoPiece if the square is empty.
// Errors if sq is not a board square.
func (b *Board) Get(sq Square) (Piece, error) {
	if !sq.IsValid() {
		return NoPiece, fmt.Errorf("%w: square %d is not on the board", ErrInvalidInput, sq)
	}
	return b.squares[sq], nil
}

// Put places piece on sq. Errors if sq is invalid, or if placing a king
// would give its color a second king.
func (b *Board) Put(sq Square, piece Piece) error {
	if !sq.IsValid() {
		return fmt.Errorf("%w: square %d is not on the board", ErrInvalidInput, sq)
	}
	if piece.Type() == King {
		if ksq := b.kingSquare(piece.Color()); ksq != NoSquare && ksq != sq {
			return fmt.Errorf("%w: the %s king is already on the board at %s", ErrInvalidInput, piece.Color(), ksq)
		}
	}
	b.squares[sq] = piece
	return nil
}

// Remove clears sq and returns its prior occupant (NoPiece if empty).
// Errors if sq is invalid.
func (b *Board) Remove(sq Square) (Piece, error) {
	if !sq.IsValid() {
		return NoPiece, fmt.Errorf("%w: square %d is not on the board", ErrInvalidInput, sq)
	}
	removed := b.squares[sq]
	b.squares[sq] = NoPiece
	return removed, nil
}

// at returns the occupant of sq without validation.
func (b *Board) at(sq Square) Piece {
	return b.squares[sq]
}

// Squares returns a snapshot copy of the full placement, indexed by
// Square (A1=0 .. H8=63).
func (b *Board) Squares() [64]Piece {
	return b.squares
}

// kingSquare locates the king of the given color, or NoSquare if that
// color has no king on the board.
func (b *Board) kingSquare(c Color) Square {
	want := NewPiece(King, c)
	for idx, p := range b.squares {
		if p == want {
			return Square(idx)
		}
	}
	return NoSquare
}
