package chess

// InCheck reports whether c's king is attacked by the opponent. If c
// has no king on the board it returns false rather than an error, so
// non-standard setups remain queryable.
func (g *Game) InCheck(c Color) bool {
	return g.inCheck(c, 0)
}

// inCheck is the bounded-depth worker behind InCheck: the king is in
// check iff some opposing piece's generated move set, at the current
// recursion depth, contains the king's square.
func (g *Game) inCheck(c Color, depth int) bool {
	kingSq := g.board.kingSquare(c)
	if kingSq == NoSquare {
		return false
	}

	for idx := range g.board.squares {
		p := g.board.squares[idx]
		if p == NoPiece || p.Color() == c {
			continue
		}
		moves, _ := g.legalMoves(Square(idx), depth)
		for _, to := range moves {
			if to == kingSq {
				return true
			}
		}
	}
	return false
}
