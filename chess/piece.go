package chess

import (
	"fmt"
	"strings"
)

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// pawnDir returns the rank direction this color's pawns advance:
// +1 for White, -1 for Black.
func (c Color) pawnDir() int {
	if c == White {
		return 1
	}
	return -1
}

// promotionRank returns the farthest rank for this color's pawns.
func (c Color) promotionRank() int {
	if c == White {
		return 7
	}
	return 0
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// ParsePieceType parses a piece-type selector: a single letter (K, Q, R,
// B, N, P in either case), a Unicode chess symbol of either color, or an
// English piece name ("queen", "Knight", ...). Input is trimmed.
func ParsePieceType(s string) (PieceType, error) {
	t := strings.TrimSpace(s)
	if runes := []rune(t); len(runes) == 1 {
		return pieceTypeFromRune(runes[0])
	}
	switch strings.ToLower(t) {
	case "king":
		return King, nil
	case "queen":
		return Queen, nil
	case "rook":
		return Rook, nil
	case "bishop":
		return Bishop, nil
	case "knight":
		return Knight, nil
	case "pawn":
		return Pawn, nil
	}
	return NoPieceType, fmt.Errorf("%w: %q does not name a piece", ErrInvalidInput, s)
}

func pieceTypeFromRune(r rune) (PieceType, error) {
	switch r {
	case 'K', 'k', '♔', '♚':
		return King, nil
	case 'Q', 'q', '♕', '♛':
		return Queen, nil
	case 'R', 'r', '♖', '♜':
		return Rook, nil
	case 'B', 'b', '♗', '♝':
		return Bishop, nil
	case 'N', 'n', '♘', '♞':
		return Knight, nil
	case 'P', 'p', '♙', '♟':
		return Pawn, nil
	}
	return NoPieceType, fmt.Errorf("%w: %q does not represent a piece", ErrInvalidInput, string(r))
}

// Piece combines PieceType and Color into a single value.
// Encoded as: pieceType + color*6
type Piece uint8

const (
	WhitePawn   Piece = Piece(Pawn) + Piece(White)*6
	WhiteKnight Piece = Piece(Knight) + Piece(White)*6
	WhiteBishop Piece = Piece(Bishop) + Piece(White)*6
	WhiteRook   Piece = Piece(Rook) + Piece(White)*6
	WhiteQueen  Piece = Piece(Queen) + Piece(White)*6
	WhiteKing   Piece = Piece(King) + Piece(White)*6
	BlackPawn   Piece = Piece(Pawn) + Piece(Black)*6
	BlackKnight Piece = Piece(Knight) + Piece(Black)*6
	BlackBishop Piece = Piece(Bishop) + Piece(Black)*6
	BlackRook   Piece = Piece(Rook) + Piece(Black)*6
	BlackQueen  Piece = Piece(Queen) + Piece(Black)*6
	BlackKing   Piece = Piece(King) + Piece(Black)*6
	NoPiece     Piece = 12
)

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(pt) + Piece(c)*6
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p % 6)
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 6)
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p >= NoPiece {
		return " "
	}
	chars := "PNBRQKpnbrqk"
	return string(chars[p])
}

// Symbol returns the Unicode Miscellaneous Symbols glyph for the piece,
// e.g. '♞' for a black knight. Returns a space for NoPiece.
func (p Piece) Symbol() rune {
	if p >= NoPiece {
		return ' '
	}
	symbols := []rune{'♙', '♘', '♗', '♖', '♕', '♔', '♟', '♞', '♝', '♜', '♛', '♚'}
	return symbols[p]
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}
