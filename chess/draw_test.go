package chess

import (
	"testing"

	"github.com/hailam/chessrules/internal/testutil"
)

func TestRepetitionCount(t *testing.T) {
	g := NewGame()
	testutil.AssertEqual(t, g.RepetitionCount(), 0)
	testutil.AssertFalse(t, g.CanClaimThreefoldRepetition())

	// One knight shuffle brings the starting position back once.
	playMoves(t, g, [][2]string{
		{"g1", "f3"}, {"g8", "f6"}, {"f3", "g1"}, {"f6", "g8"},
	})
	testutil.AssertEqual(t, g.RepetitionCount(), 1)
	testutil.AssertFalse(t, g.CanClaimThreefoldRepetition())

	// A second shuffle makes the third occurrence: claimable.
	playMoves(t, g, [][2]string{
		{"g1", "f3"}, {"g8", "f6"}, {"f3", "g1"}, {"f6", "g8"},
	})
	testutil.AssertEqual(t, g.RepetitionCount(), 2)
	testutil.AssertTrue(t, g.CanClaimThreefoldRepetition())
	testutil.AssertEqual(t, g.State(), InProgress, "a claim is not an automatic end")
}

func TestFivefoldRepetitionEndsGame(t *testing.T) {
	g := NewGame()
	shuffle := [][2]string{
		{"g1", "f3"}, {"g8", "f6"}, {"f3", "g1"}, {"f6", "g8"},
	}

	// The cycle visits four positions; the fourth full shuffle brings
	// the starting position up for the fifth time.
	for cycle := 0; cycle < 3; cycle++ {
		playMoves(t, g, shuffle)
		testutil.AssertEqual(t, g.State(), InProgress, "cycle %d", cycle)
	}
	playMoves(t, g, shuffle[:3])
	testutil.AssertEqual(t, g.State(), InProgress)

	state, err := g.Move("f6", "g8")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, state, GameOver)
	testutil.AssertEqual(t, g.Reason(), FivefoldRepetition)
}

// rookTourMove renders the one-square rook shift for the given ply of
// the two-rook shuffle used by the 75-move test: the white rook cycles
// files a-g on rank 4, the black rook files a-f on rank 5. Neither rook
// ever checks, captures or blocks the other, and the period mismatch
// (7 against 6) keeps any single position from recurring often enough
// to end the game by repetition first.
func rookTourMove(ply int) (from, to string) {
	sq := func(file int, rank byte) string {
		return string([]byte{byte('a' + file), rank})
	}
	if ply%2 == 0 {
		n := ply / 2
		return sq(n%7, '4'), sq((n+1)%7, '4')
	}
	n := ply / 2
	return sq(n%6, '5'), sq((n+1)%6, '5')
}

func TestSeventyFiveMoveRule(t *testing.T) {
	g := mustParseFEN(t, "7k/8/8/r7/R7/8/8/7K w - - 0 0")

	for ply := 0; ply < 150; ply++ {
		if g.State() == GameOver {
			t.Fatalf("game ended early at ply %d: %s", ply, g.Reason())
		}
		from, to := rookTourMove(ply)
		if _, err := g.Move(from, to); err != nil {
			t.Fatalf("ply %d, move %s -> %s: %v", ply, from, to, err)
		}

		if ply == 98 {
			testutil.AssertFalse(t, g.CanClaimFiftyMoveRule())
		}
		if ply == 99 {
			// 100 quiet plies: the 50-move rule becomes claimable long
			// before the forced cutoff.
			testutil.AssertEqual(t, g.HalfmoveClock(), 100)
			testutil.AssertTrue(t, g.CanClaimFiftyMoveRule())
		}
	}

	testutil.AssertEqual(t, g.HalfmoveClock(), 150)
	testutil.AssertEqual(t, g.State(), GameOver)
	testutil.AssertEqual(t, g.Reason(), SeventyFiveMoveRule)
}

func TestCheckmatePrecedesSeventyFiveMoveRule(t *testing.T) {
	// The mating move is also the 150th quiet ply; mate wins the tie.
	g := mustParseFEN(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 149 100")

	state, err := g.Move("a1", "a8")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, state, GameOver)
	testutil.AssertEqual(t, g.Reason(), Checkmate)
}

func TestFiftyMoveClockResetsOnPawnMove(t *testing.T) {
	g := mustParseFEN(t, "4k3/8/8/8/8/8/4P3/R3K3 w - - 99 60")
	testutil.AssertEqual(t, g.HalfmoveClock(), 99)

	playMoves(t, g, [][2]string{{"e2", "e3"}})
	testutil.AssertEqual(t, g.HalfmoveClock(), 0)
	testutil.AssertFalse(t, g.CanClaimFiftyMoveRule())
}
