package chess

import "fmt"

// maxLegalityDepth bounds the mutual recursion between move generation
// and check detection. Legality needs a king-safety simulation, the
// simulation needs the opponent's replies, and those replies would need
// king-safety checks of their own; past this depth the simulation is
// skipped and candidates are accepted pseudo-legally, because the outer
// call has already captured the relevant threat information.
const maxLegalityDepth = 2

var (
	royalDirs = [8][2]int{
		{1, 1}, {1, 0}, {1, -1}, {0, 1}, {0, -1}, {-1, 1}, {-1, 0}, {-1, -1},
	}
	rookDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightJumps = [8][2]int{
		{2, 1}, {2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {-2, 1}, {-2, -1},
	}
)

// LegalMoves returns every destination the piece on from may legally
// move to under the full current state, including the requirement that
// the move must not leave the mover's own king in check.
//
// An empty source yields an empty (not erroneous) result; an invalid
// square is an error.
func (g *Game) LegalMoves(from Square) ([]Square, error) {
	return g.legalMoves(from, 0)
}

// LegalCaptureMoves returns the subset of LegalMoves that capture,
// counting en passant.
func (g *Game) LegalCaptureMoves(from Square) ([]Square, error) {
	return g.filteredMoves(from, true)
}

// LegalNonCaptureMoves returns the subset of LegalMoves that do not
// capture.
func (g *Game) LegalNonCaptureMoves(from Square) ([]Square, error) {
	return g.filteredMoves(from, false)
}

func (g *Game) filteredMoves(from Square, wantCapture bool) ([]Square, error) {
	moves, err := g.legalMoves(from, 0)
	if err != nil {
		return nil, err
	}
	out := moves[:0]
	for _, to := range moves {
		if g.isCapture(from, to) == wantCapture {
			out = append(out, to)
		}
	}
	return out, nil
}

// legalMoves generates the legal destination set for from. depth counts
// how deep in the legality/check recursion this call sits; external
// callers pass 0.
func (g *Game) legalMoves(from Square, depth int) ([]Square, error) {
	if !from.IsValid() {
		return nil, fmt.Errorf("%w: square %d is not on the board", ErrInvalidInput, from)
	}
	depth++

	piece := g.board.at(from)
	if piece == NoPiece {
		return nil, nil
	}

	var moves []Square
	push := func(dRank, dFile int) {
		moves = append(moves, squareAt(from.Rank()+dRank, from.File()+dFile))
	}

	switch piece.Type() {
	case King:
		for _, d := range royalDirs {
			if g.tryStep(from, d[0], d[1], 1, depth) {
				push(d[0], d[1])
			}
		}
		moves = append(moves, g.castlingMoves(from, piece.Color(), depth)...)

	case Queen:
		for _, d := range royalDirs {
			for n := 1; n < 8; n++ {
				if !g.tryStep(from, d[0], d[1], n, depth) {
					break
				}
				push(d[0]*n, d[1]*n)
			}
		}

	case Rook:
		for _, d := range rookDirs {
			for n := 1; n < 8; n++ {
				if !g.tryStep(from, d[0], d[1], n, depth) {
					break
				}
				push(d[0]*n, d[1]*n)
			}
		}

	case Bishop:
		for _, d := range bishopDirs {
			for n := 1; n < 8; n++ {
				if !g.tryStep(from, d[0], d[1], n, depth) {
					break
				}
				push(d[0]*n, d[1]*n)
			}
		}

	case Knight:
		for _, d := range knightJumps {
			if g.tryStep(from, d[0], d[1], 1, depth) {
				push(d[0], d[1])
			}
		}

	case Pawn:
		dir := piece.Color().pawnDir()
		startRank := 1
		if piece.Color() == Black {
			startRank = 6
		}

		// Forward steps never capture. The double step is only open
		// from the starting rank with the intervening square empty,
		// which tryStep's obstruction walk already enforces. Each
		// distance is tried independently: a single push can fail the
		// king-safety simulation while the double push passes it.
		maxForward := 1
		if from.Rank() == startRank {
			maxForward = 2
		}
		for n := 1; n <= maxForward; n++ {
			if !g.tryStep(from, dir, 0, n, depth) {
				continue
			}
			to := squareAt(from.Rank()+dir*n, from.File())
			if !g.isCapture(from, to) {
				push(dir*n, 0)
			}
		}

		// Diagonal steps must capture, en passant included.
		for _, df := range [2]int{-1, 1} {
			to, err := from.Offset(dir, df)
			if err != nil {
				continue
			}
			if g.isCapture(from, to) && g.tryStep(from, dir, df, 1, depth) {
				push(dir, df)
			}
		}
	}

	return moves, nil
}

// tryStep walks (dRank,dFile) from from for the given number of steps
// and reports whether the arrival square is reachable: on the board,
// unobstructed before the final step, and not occupied by a friendly
// piece. Sliding pieces call it with increasing step counts and stop on
// the first false.
//
// Below maxLegalityDepth the candidate is additionally simulated on a
// scratch copy and rejected if it would leave the mover's king in
// check.
func (g *Game) tryStep(from Square, dRank, dFile, steps, depth int) bool {
	mover := g.board.at(from)
	if mover == NoPiece {
		return false
	}

	to := from
	for i := 1; i <= steps; i++ {
		next, err := to.Offset(dRank, dFile)
		if err != nil {
			return false // off the board
		}
		to = next

		if occupant := g.board.at(to); occupant != NoPiece {
			if i != steps {
				return false // obstructed before the final step
			}
			if occupant.Color() == mover.Color() {
				return false
			}
			break // capture on the final step
		}
	}

	if depth >= maxLegalityDepth {
		return true
	}

	sim := g.scratch()
	sim.applyMove(from, to)
	return !sim.inCheck(mover.Color(), depth)
}

// castlingMoves yields the castling arrival squares available to the
// king on from. A side is offered iff its right is held, every square
// strictly between king and rook is empty, and the king's current and
// transited squares are not attacked. The arrival square itself goes
// through the same simulation as any other candidate. The rook hop
// happens at move-application time, keyed on the arrival square.
func (g *Game) castlingMoves(from Square, c Color, depth int) []Square {
	var out []Square
	for _, geo := range castleTable {
		if geo.color != c || geo.kingFrom != from || g.castling&geo.right == 0 {
			continue
		}

		clear := true
		for _, sq := range geo.between {
			if g.board.at(sq) != NoPiece {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}

		if depth < maxLegalityDepth {
			// Castling out of check.
			if g.inCheck(c, depth) {
				continue
			}
			// Castling through an attacked square.
			safe := true
			for _, sq := range geo.transit {
				sim := g.scratch()
				sim.applyMove(from, sq)
				if sim.inCheck(c, depth) {
					safe = false
					break
				}
			}
			if !safe {
				continue
			}
			// Castling into an attacked square.
			sim := g.scratch()
			sim.applyMove(from, geo.kingTo)
			if sim.inCheck(c, depth) {
				continue
			}
		}

		out = append(out, geo.kingTo)
	}
	return out
}

// isCapture reports whether moving from -> to would capture, including
// a pawn landing on the live en passant target. It does not check move
// legality.
func (g *Game) isCapture(from, to Square) bool {
	mover := g.board.at(from)
	if mover == NoPiece {
		return false
	}
	if target := g.board.at(to); target != NoPiece {
		return target.Color() != mover.Color()
	}
	return mover.Type() == Pawn && to == g.enPassant
}
