package chess

import (
	"errors"
	"testing"

	"github.com/hailam/chessrules/internal/testutil"
)

func TestColorOther(t *testing.T) {
	testutil.AssertEqual(t, White.Other(), Black)
	testutil.AssertEqual(t, Black.Other(), White)
}

func TestNewPiece(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for pt := Pawn; pt < NoPieceType; pt++ {
			p := NewPiece(pt, c)
			testutil.AssertEqual(t, p.Type(), pt)
			testutil.AssertEqual(t, p.Color(), c)
		}
	}
	testutil.AssertEqual(t, NewPiece(NoPieceType, White), NoPiece)
	testutil.AssertEqual(t, NewPiece(Queen, NoColor), NoPiece)
	testutil.AssertEqual(t, NoPiece.Type(), NoPieceType)
	testutil.AssertEqual(t, NoPiece.Color(), NoColor)
}

func TestParsePieceType(t *testing.T) {
	cases := []struct {
		in   string
		want PieceType
	}{
		{"K", King},
		{"k", King},
		{"Q", Queen},
		{"r", Rook},
		{"B", Bishop},
		{"n", Knight},
		{"p", Pawn},
		{"♕", Queen},
		{"♞", Knight},
		{"♚", King},
		{"queen", Queen},
		{"Knight", Knight},
		{"ROOK", Rook},
		{" bishop ", Bishop},
		{"pawn", Pawn},
		{"king", King},
	}
	for _, tc := range cases {
		pt, err := ParsePieceType(tc.in)
		testutil.AssertNoError(t, err, "parse %q", tc.in)
		testutil.AssertEqual(t, pt, tc.want, "parse %q", tc.in)
	}

	for _, bad := range []string{"", "x", "duke", "qq", "♔♔"} {
		_, err := ParsePieceType(bad)
		testutil.AssertError(t, err, "parse %q", bad)
		testutil.AssertTrue(t, errors.Is(err, ErrInvalidInput), "parse %q", bad)
	}
}

func TestPieceString(t *testing.T) {
	testutil.AssertEqual(t, WhitePawn.String(), "P")
	testutil.AssertEqual(t, WhiteKing.String(), "K")
	testutil.AssertEqual(t, BlackQueen.String(), "q")
	testutil.AssertEqual(t, BlackPawn.String(), "p")
	testutil.AssertEqual(t, NoPiece.String(), " ")
}

func TestPieceSymbol(t *testing.T) {
	testutil.AssertEqual(t, WhiteKing.Symbol(), '♔')
	testutil.AssertEqual(t, WhitePawn.Symbol(), '♙')
	testutil.AssertEqual(t, BlackKnight.Symbol(), '♞')
	testutil.AssertEqual(t, BlackQueen.Symbol(), '♛')
	testutil.AssertEqual(t, NoPiece.Symbol(), ' ')
}

func TestPieceFromChar(t *testing.T) {
	for _, p := range []Piece{
		WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing,
		BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing,
	} {
		testutil.AssertEqual(t, PieceFromChar(p.String()[0]), p)
	}
	testutil.AssertEqual(t, PieceFromChar('x'), NoPiece)
	testutil.AssertEqual(t, PieceFromChar(' '), NoPiece)
}
