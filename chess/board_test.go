package chess

import (
	"errors"
	"testing"

	"github.com/hailam/chessrules/internal/testutil"
)

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()
	for idx := range b.squares {
		testutil.AssertEqual(t, b.squares[idx], NoPiece, "square %d", idx)
	}
}

func TestStartingBoard(t *testing.T) {
	b := startingBoard()

	back := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, pt := range back {
		testutil.AssertEqual(t, b.at(squareAt(0, file)), NewPiece(pt, White))
		testutil.AssertEqual(t, b.at(squareAt(7, file)), NewPiece(pt, Black))
		testutil.AssertEqual(t, b.at(squareAt(1, file)), WhitePawn)
		testutil.AssertEqual(t, b.at(squareAt(6, file)), BlackPawn)
	}
	for rank := 2; rank <= 5; rank++ {
		for file := 0; file < 8; file++ {
			testutil.AssertEqual(t, b.at(squareAt(rank, file)), NoPiece)
		}
	}
}

func TestBoardGetPutRemove(t *testing.T) {
	b := NewBoard()

	testutil.AssertNoError(t, b.Put(E4, WhiteQueen))
	p, err := b.Get(E4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, p, WhiteQueen)

	removed, err := b.Remove(E4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, removed, WhiteQueen)

	p, err = b.Get(E4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, p, NoPiece)

	removed, err = b.Remove(E4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, removed, NoPiece)

	_, err = b.Get(NoSquare)
	testutil.AssertTrue(t, errors.Is(err, ErrInvalidInput))
	err = b.Put(NoSquare, WhitePawn)
	testutil.AssertTrue(t, errors.Is(err, ErrInvalidInput))
	_, err = b.Remove(Square(99))
	testutil.AssertTrue(t, errors.Is(err, ErrInvalidInput))
}

func TestBoardRejectsSecondKing(t *testing.T) {
	b := NewBoard()
	testutil.AssertNoError(t, b.Put(E1, WhiteKing))

	err := b.Put(D4, WhiteKing)
	testutil.AssertTrue(t, errors.Is(err, ErrInvalidInput))

	// Re-placing the same king on its own square is fine, and a second
	// black king is still rejected independently.
	testutil.AssertNoError(t, b.Put(E1, WhiteKing))
	testutil.AssertNoError(t, b.Put(E8, BlackKing))
	err = b.Put(A8, BlackKing)
	testutil.AssertTrue(t, errors.Is(err, ErrInvalidInput))
}

func TestBoardKingSquare(t *testing.T) {
	b := NewBoard()
	testutil.AssertEqual(t, b.kingSquare(White), NoSquare)

	testutil.AssertNoError(t, b.Put(G5, WhiteKing))
	testutil.AssertEqual(t, b.kingSquare(White), G5)
	testutil.AssertEqual(t, b.kingSquare(Black), NoSquare)
}

func TestBoardSquaresIsSnapshot(t *testing.T) {
	b := startingBoard()
	snap := b.Squares()
	snap[E2.Index()] = NoPiece
	testutil.AssertEqual(t, b.at(E2), WhitePawn)
}
