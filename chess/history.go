package chess

// HistoryEntry records one completed move: the serialized position the
// move was played from, the squares involved, and the pieces moved and
// captured (Captured is NoPiece for a quiet move).
type HistoryEntry struct {
	FEN      string
	From     Square
	To       Square
	Moved    Piece
	Captured Piece
}

// History returns the game's move ledger in play order. The returned
// slice is a copy.
func (g *Game) History() []HistoryEntry {
	out := make([]HistoryEntry, len(g.history))
	copy(out, g.history)
	return out
}

// recordHistory appends the ledger entry for the move about to be
// applied and counts the outgoing position toward repetition. Must be
// called before applyMove so the snapshot describes the position the
// move was played from.
func (g *Game) recordHistory(from, to Square) {
	fp := g.fingerprint()
	g.history = append(g.history, HistoryEntry{
		FEN:      g.FEN(),
		From:     from,
		To:       to,
		Moved:    g.board.at(from),
		Captured: g.capturedBy(from, to),
	})
	g.repetition[fp]++
}

// capturedBy resolves which piece, if any, the move from -> to removes,
// including the pawn taken en passant.
func (g *Game) capturedBy(from, to Square) Piece {
	if p := g.board.at(to); p != NoPiece {
		return p
	}
	mover := g.board.at(from)
	if mover.Type() == Pawn && to == g.enPassant {
		dir := mover.Color().pawnDir()
		return g.board.at(squareAt(to.Rank()-dir, to.File()))
	}
	return NoPiece
}

// RepetitionCount returns how many times the current position has
// occurred before. Positions are compared by fingerprint: piece
// placement, active color, castling rights and en passant eligibility
// (counted only when the capture is actually playable).
func (g *Game) RepetitionCount() int {
	return g.repetition[g.fingerprint()]
}

// CanClaimThreefoldRepetition reports whether the current position has
// occurred at least twice before, making the threefold repetition rule
// claimable by either player.
func (g *Game) CanClaimThreefoldRepetition() bool {
	return g.RepetitionCount() >= 2
}

// CanClaimFiftyMoveRule reports whether 50 full moves have passed with
// no capture or pawn move, making the 50-move rule claimable.
func (g *Game) CanClaimFiftyMoveRule() bool {
	return g.halfmoveClock >= 100
}
