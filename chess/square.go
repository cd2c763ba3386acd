// Package chess implements an authoritative chess rules engine: board
// state, legal move generation including castling and en passant, and
// game-over classification (checkmate, stalemate and the draw rules).
// It holds no I/O; presentation layers are expected to call the Game
// query and command surface.
package chess

import (
	"fmt"
	"strings"
)

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// NewSquare creates a square from rank and file (both 0-7).
func NewSquare(rank, file int) (Square, error) {
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return NoSquare, fmt.Errorf("%w: rank %d, file %d out of range 0-7", ErrInvalidInput, rank, file)
	}
	return Square(rank*8 + file), nil
}

// SquareFromIndex creates a square from a linear board index (0-63).
func SquareFromIndex(idx int) (Square, error) {
	if idx < 0 || idx > 63 {
		return NoSquare, fmt.Errorf("%w: index %d out of range 0-63", ErrInvalidInput, idx)
	}
	return Square(idx), nil
}

// ParseSquare parses algebraic notation (e.g. "e4") into a Square.
// Input is trimmed and case-insensitive.
func ParseSquare(s string) (Square, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if len(t) != 2 {
		return NoSquare, fmt.Errorf("%w: square %q must be two characters", ErrInvalidInput, s)
	}

	file := int(t[0] - 'a')
	rank := int(t[1] - '1')

	if file < 0 || file > 7 {
		return NoSquare, fmt.Errorf("%w: square %q file must be a-h", ErrInvalidInput, s)
	}
	if rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("%w: square %q rank must be 1-8", ErrInvalidInput, s)
	}

	return Square(rank*8 + file), nil
}

// squareAt is the unchecked constructor used where rank and file are
// already known to be on the board.
func squareAt(rank, file int) Square {
	return Square(rank*8 + file)
}

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// Index returns the linear board index of the square (0-63).
func (sq Square) Index() int {
	return int(sq)
}

// IsValid returns true if the square is a real board square (0-63).
// NoSquare is never valid.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Offset returns the square shifted by dRank ranks and dFile files, or
// an error if the result falls off the board.
func (sq Square) Offset(dRank, dFile int) (Square, error) {
	rank := sq.Rank() + dRank
	file := sq.File() + dFile
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return NoSquare, fmt.Errorf("%w: offset (%d,%d) from %s leaves the board", ErrInvalidInput, dRank, dFile, sq)
	}
	return squareAt(rank, file), nil
}

// String returns the algebraic notation for the square (e.g. "e4").
// NoSquare is rendered as "-".
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}
