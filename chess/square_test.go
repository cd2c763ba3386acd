package chess

import (
	"errors"
	"testing"

	"github.com/hailam/chessrules/internal/testutil"
)

func TestNewSquare(t *testing.T) {
	sq, err := NewSquare(0, 0)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sq, A1)

	sq, err = NewSquare(7, 7)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sq, H8)

	sq, err = NewSquare(3, 4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sq, E4)

	for _, bad := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {100, 100}} {
		_, err := NewSquare(bad[0], bad[1])
		testutil.AssertError(t, err, "rank %d file %d", bad[0], bad[1])
		testutil.AssertTrue(t, errors.Is(err, ErrInvalidInput))
	}
}

func TestSquareFromIndex(t *testing.T) {
	for idx := 0; idx < 64; idx++ {
		sq, err := SquareFromIndex(idx)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, sq.Index(), idx)
	}
	_, err := SquareFromIndex(64)
	testutil.AssertTrue(t, errors.Is(err, ErrInvalidInput))
	_, err = SquareFromIndex(-1)
	testutil.AssertTrue(t, errors.Is(err, ErrInvalidInput))
}

func TestParseSquare(t *testing.T) {
	cases := []struct {
		in   string
		want Square
	}{
		{"a1", A1},
		{"h8", H8},
		{"e4", E4},
		{"E4", E4},
		{" d5 ", D5},
		{"C3", C3},
	}
	for _, tc := range cases {
		sq, err := ParseSquare(tc.in)
		testutil.AssertNoError(t, err, "parse %q", tc.in)
		testutil.AssertEqual(t, sq, tc.want, "parse %q", tc.in)
	}

	for _, bad := range []string{"", "e", "e44", "j1", "a0", "a9", "4e", "--"} {
		_, err := ParseSquare(bad)
		testutil.AssertError(t, err, "parse %q", bad)
		testutil.AssertTrue(t, errors.Is(err, ErrInvalidInput), "parse %q", bad)
	}
}

func TestSquareRankFile(t *testing.T) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := squareAt(rank, file)
			testutil.AssertEqual(t, sq.Rank(), rank)
			testutil.AssertEqual(t, sq.File(), file)
		}
	}
	testutil.AssertEqual(t, E4.Rank(), 3)
	testutil.AssertEqual(t, E4.File(), 4)
	testutil.AssertEqual(t, E4.Index(), 28)
}

func TestSquareOffset(t *testing.T) {
	sq, err := E4.Offset(1, 0)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sq, E5)

	sq, err = E4.Offset(-2, 3)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sq, H2)

	_, err = A1.Offset(-1, 0)
	testutil.AssertTrue(t, errors.Is(err, ErrInvalidInput))
	_, err = H8.Offset(0, 1)
	testutil.AssertTrue(t, errors.Is(err, ErrInvalidInput))
}

func TestSquareString(t *testing.T) {
	testutil.AssertEqual(t, A1.String(), "a1")
	testutil.AssertEqual(t, H8.String(), "h8")
	testutil.AssertEqual(t, E4.String(), "e4")
	testutil.AssertEqual(t, NoSquare.String(), "-")
}

func TestSquareIsValid(t *testing.T) {
	testutil.AssertTrue(t, A1.IsValid())
	testutil.AssertTrue(t, H8.IsValid())
	testutil.AssertFalse(t, NoSquare.IsValid())
	testutil.AssertFalse(t, Square(200).IsValid())
}
