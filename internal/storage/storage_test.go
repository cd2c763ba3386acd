package storage

import (
	"testing"

	"github.com/hailam/chessrules/internal/testutil"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadGame(t *testing.T) {
	s := openTestStorage(t)

	saved := &SavedGame{
		Name:  "italian",
		FEN:   "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 2",
		Moves: []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4"},
	}
	testutil.AssertNoError(t, s.SaveGame(saved))
	testutil.AssertFalse(t, saved.SavedAt.IsZero())

	got, found, err := s.LoadGame("italian")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, found)
	testutil.AssertEqual(t, got.FEN, saved.FEN)
	testutil.AssertEqual(t, got.Moves, saved.Moves)

	_, found, err = s.LoadGame("no-such-game")
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, found)
}

func TestSaveGameNeedsName(t *testing.T) {
	s := openTestStorage(t)
	testutil.AssertError(t, s.SaveGame(&SavedGame{Name: "  "}))
}

func TestSaveGameOverwrites(t *testing.T) {
	s := openTestStorage(t)

	testutil.AssertNoError(t, s.SaveGame(&SavedGame{Name: "g", Moves: []string{"e2e4"}}))
	testutil.AssertNoError(t, s.SaveGame(&SavedGame{Name: "g", Moves: []string{"d2d4"}}))

	got, found, err := s.LoadGame("g")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, found)
	testutil.AssertEqual(t, got.Moves, []string{"d2d4"})
}

func TestListGames(t *testing.T) {
	s := openTestStorage(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		testutil.AssertNoError(t, s.SaveGame(&SavedGame{Name: name}))
	}

	games, err := s.ListGames()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(games), 3)
	testutil.AssertEqual(t, games[0].Name, "alpha")
	testutil.AssertEqual(t, games[1].Name, "mid")
	testutil.AssertEqual(t, games[2].Name, "zeta")
}

func TestDeleteGame(t *testing.T) {
	s := openTestStorage(t)

	testutil.AssertNoError(t, s.SaveGame(&SavedGame{Name: "g"}))
	testutil.AssertNoError(t, s.DeleteGame("g"))

	_, found, err := s.LoadGame("g")
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, found)

	// Deleting again is a no-op.
	testutil.AssertNoError(t, s.DeleteGame("g"))
}

func TestStats(t *testing.T) {
	s := openTestStorage(t)

	stats, err := s.LoadStats()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats.GamesFinished, 0)

	testutil.AssertNoError(t, s.RecordResult("Checkmate"))
	testutil.AssertNoError(t, s.RecordResult("Checkmate"))
	testutil.AssertNoError(t, s.RecordResult("Stalemate"))

	stats, err = s.LoadStats()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats.GamesFinished, 3)
	testutil.AssertEqual(t, stats.ByReason["Checkmate"], 2)
	testutil.AssertEqual(t, stats.ByReason["Stalemate"], 1)
}
