package chess

import "fmt"

// GameState classifies the engine's current position in the turn cycle.
type GameState uint8

const (
	// InProgress is the playable state; the game starts here.
	InProgress GameState = iota
	// Check is InProgress with the active color's king under attack;
	// only moves that resolve the check are legal.
	Check
	// WaitingOnPromotionChoice blocks all moves until SetPromotion
	// supplies a piece type for the pawn on its farthest rank.
	WaitingOnPromotionChoice
	// GameOver is terminal; no state-altering operation is accepted.
	GameOver
)

// String returns the state name.
func (s GameState) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Check:
		return "Check"
	case WaitingOnPromotionChoice:
		return "WaitingOnPromotionChoice"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameOverReason explains a GameOver state. It is NoGameOverReason
// whenever the game is still running.
type GameOverReason uint8

const (
	NoGameOverReason GameOverReason = iota
	Checkmate
	Stalemate
	SeventyFiveMoveRule
	FivefoldRepetition
	InsufficientMaterial
	ManualDraw
)

// String returns the reason name.
func (r GameOverReason) String() string {
	switch r {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case SeventyFiveMoveRule:
		return "SeventyFiveMoveRule"
	case FivefoldRepetition:
		return "FivefoldRepetition"
	case InsufficientMaterial:
		return "InsufficientMaterial"
	case ManualDraw:
		return "ManualDraw"
	default:
		return "None"
	}
}

// Game runs a single game of chess. It owns the authoritative board,
// castling rights, en passant eligibility, draw counters and move
// history, and sequences turns, promotions and game-over detection.
//
// A Game is not safe for concurrent mutation; callers sharing one
// instance must serialize the mutating calls externally.
type Game struct {
	state       GameState
	reason      GameOverReason
	activeColor Color

	board     Board
	castling  CastlingRights
	enPassant Square // passed-over square after a double-step, else NoSquare

	halfmoveClock  int // plies since the last capture or pawn move
	fullmoveNumber int // incremented after every Black move

	history    []HistoryEntry
	repetition map[string]int // position fingerprint -> prior occurrences
}

// NewGame returns a game in the standard starting position with White
// to move.
func NewGame() *Game {
	return &Game{
		state:       InProgress,
		activeColor: White,
		board:       startingBoard(),
		castling:    AllCastling,
		enPassant:   NoSquare,
		repetition:  make(map[string]int),
	}
}

// State returns the current game state.
func (g *Game) State() GameState {
	return g.state
}

// Reason returns why the game ended, or NoGameOverReason while it is
// still running.
func (g *Game) Reason() GameOverReason {
	return g.reason
}

// ActiveColor returns the color whose turn it is.
func (g *Game) ActiveColor() Color {
	return g.activeColor
}

// Squares returns a snapshot of the piece placement, indexed by Square.
func (g *Game) Squares() [64]Piece {
	return g.board.Squares()
}

// Castling returns the remaining castling rights.
func (g *Game) Castling() CastlingRights {
	return g.castling
}

// EnPassantTarget returns the square a pawn passed over on the previous
// move, or NoSquare when no en passant capture is pending.
func (g *Game) EnPassantTarget() Square {
	return g.enPassant
}

// HalfmoveClock returns the number of plies since the last capture or
// pawn move. It drives the 50- and 75-move rules.
func (g *Game) HalfmoveClock() int {
	return g.halfmoveClock
}

// FullmoveNumber returns the number of completed Black moves.
func (g *Game) FullmoveNumber() int {
	return g.fullmoveNumber
}

// Get returns the piece at sq, or NoPiece if the square is empty.
func (g *Game) Get(sq Square) (Piece, error) {
	return g.board.Get(sq)
}

// Put places piece at sq without any legality checking, for position
// setup. A second king of one color is rejected.
func (g *Game) Put(sq Square, piece Piece) error {
	return g.board.Put(sq, piece)
}

// Remove clears sq and returns the prior occupant.
func (g *Game) Remove(sq Square) (Piece, error) {
	return g.board.Remove(sq)
}

// Move parses two algebraic squares (e.g. "e2", "e4") and submits the
// move between them.
func (g *Game) Move(from, to string) (GameState, error) {
	fromSq, err := ParseSquare(from)
	if err != nil {
		return g.state, err
	}
	toSq, err := ParseSquare(to)
	if err != nil {
		return g.state, err
	}
	return g.MoveSquares(fromSq, toSq)
}

// MoveSquares submits the move from -> to for the active color.
//
// The move is rejected, leaving all state untouched, if the game is not
// in a movable state, the source is empty or holds the opponent's
// piece, or the destination is not in the legal set for the source.
// On success the board, rights, counters and history are updated and
// the new state is returned.
func (g *Game) MoveSquares(from, to Square) (GameState, error) {
	if g.state != InProgress && g.state != Check {
		return g.state, fmt.Errorf("%w: no move can be made while the game is %s", ErrWrongState, g.state)
	}
	if !from.IsValid() || !to.IsValid() {
		return g.state, fmt.Errorf("%w: move %s -> %s is not on the board", ErrInvalidInput, from, to)
	}

	piece := g.board.at(from)
	if piece == NoPiece {
		return g.state, fmt.Errorf("%w: there is no piece on %s", ErrIllegalMove, from)
	}
	if piece.Color() != g.activeColor {
		return g.state, fmt.Errorf("%w: it is %s's turn", ErrIllegalMove, g.activeColor)
	}

	legal, err := g.legalMoves(from, 0)
	if err != nil {
		return g.state, err
	}
	found := false
	for _, sq := range legal {
		if sq == to {
			found = true
			break
		}
	}
	if !found {
		return g.state, fmt.Errorf("%w: %s cannot move from %s to %s (the piece cannot reach that square, or the move would leave your king in check)",
			ErrIllegalMove, piece.Type(), from, to)
	}

	g.recordHistory(from, to)
	g.applyMove(from, to)
	g.updateGameState()
	return g.state, nil
}

// SetPromotion resolves a pending promotion by replacing the promoting
// pawn with the chosen piece type. King and Pawn are rejected, as is
// calling this in any state other than WaitingOnPromotionChoice.
func (g *Game) SetPromotion(pt PieceType) (GameState, error) {
	if g.state != WaitingOnPromotionChoice {
		return g.state, fmt.Errorf("%w: the game is not waiting for a promotion choice (state is %s)", ErrWrongState, g.state)
	}
	if pt == King || pt == Pawn || pt >= NoPieceType {
		return g.state, fmt.Errorf("%w: a pawn cannot promote to a %s", ErrIllegalMove, pt)
	}

	sq, ok := g.findPromotionPawn()
	if !ok {
		return g.state, fmt.Errorf("%w: waiting on promotion with no pawn on %s's farthest rank", ErrInvariant, g.activeColor)
	}

	g.board.squares[sq] = NewPiece(pt, g.activeColor)
	g.updateGameState()
	return g.state, nil
}

// SubmitDraw ends the game as a manual draw. It is accepted in any
// state except GameOver.
func (g *Game) SubmitDraw() error {
	if g.state == GameOver {
		return fmt.Errorf("%w: the game is already over (%s)", ErrWrongState, g.reason)
	}
	g.conclude(ManualDraw)
	return nil
}

// scratch returns a throwaway copy of the game for move simulation.
// History and repetition bookkeeping are dropped: a simulation only
// needs board, rights, en passant and clocks.
func (g *Game) scratch() *Game {
	c := *g
	c.history = nil
	c.repetition = nil
	return &c
}

// applyMove relocates the piece on from to to and keeps every dependent
// field consistent: en passant capture and target, castling rook
// relocation, rights revocation tied to the rook home squares, and the
// half- and full-move counters. Callers have already validated
// legality; this never fails.
func (g *Game) applyMove(from, to Square) (moved, captured Piece) {
	moved = g.board.at(from)
	captured = g.board.at(to)

	g.board.squares[from] = NoPiece
	g.board.squares[to] = moved

	if moved.Type() == Pawn || captured != NoPiece {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}
	if g.activeColor == Black {
		g.fullmoveNumber++
	}

	if moved.Type() == Pawn {
		dir := moved.Color().pawnDir()
		if to == g.enPassant {
			// The captured pawn stands one rank behind the landing square.
			capSq := squareAt(to.Rank()-dir, to.File())
			captured = g.board.at(capSq)
			g.board.squares[capSq] = NoPiece
			g.halfmoveClock = 0
		}
		if absInt(to.Rank()-from.Rank()) == 2 {
			g.enPassant = squareAt(from.Rank()+dir, from.File())
		} else {
			g.enPassant = NoSquare
		}
	} else {
		g.enPassant = NoSquare
	}

	switch moved.Type() {
	case King:
		for _, geo := range castleTable {
			if geo.color == moved.Color() && from == geo.kingFrom && to == geo.kingTo && g.castling&geo.right != 0 {
				g.board.squares[geo.rookTo] = g.board.squares[geo.rookFrom]
				g.board.squares[geo.rookFrom] = NoPiece
			}
		}
		g.castling &^= colorRights(moved.Color())
	case Rook:
		g.castling &^= rookHomeRight(from)
	}
	// A capture landing on a rook home square kills that right no
	// matter what did the capturing.
	if captured.Type() == Rook {
		g.castling &^= rookHomeRight(to)
	}

	return moved, captured
}

// updateGameState reclassifies the position after a completed move.
// Order matters: a pending promotion freezes the turn, then the draw
// rules and check/mate/stalemate are evaluated for the newly active
// color, with the 75-move rule last so that mate and stalemate take
// precedence when simultaneous.
func (g *Game) updateGameState() {
	if g.state == GameOver {
		return
	}

	if _, ok := g.findPromotionPawn(); ok {
		g.state = WaitingOnPromotionChoice
		return
	}

	g.activeColor = g.activeColor.Other()

	if g.repetition[g.fingerprint()] >= 4 {
		g.conclude(FivefoldRepetition)
		return
	}

	g.classify()
}

// classify evaluates the draw rules and check/mate/stalemate for the
// color now to move. Also used to seat a position loaded from FEN.
func (g *Game) classify() {
	if g.insufficientMaterial() {
		g.conclude(InsufficientMaterial)
		return
	}

	if g.inCheck(g.activeColor, 1) {
		if g.canMakeLegalMove() {
			g.state = Check
			// A king that has been checked forfeits castling.
			g.castling &^= colorRights(g.activeColor)
		} else {
			g.conclude(Checkmate)
			return
		}
	} else {
		if g.canMakeLegalMove() {
			g.state = InProgress
		} else {
			g.conclude(Stalemate)
			return
		}
	}

	if g.halfmoveClock >= 150 {
		g.conclude(SeventyFiveMoveRule)
	}
}

func (g *Game) conclude(r GameOverReason) {
	g.state = GameOver
	g.reason = r
}

// canMakeLegalMove reports whether the active color has at least one
// legal move anywhere on the board.
func (g *Game) canMakeLegalMove() bool {
	for idx := range g.board.squares {
		p := g.board.squares[idx]
		if p == NoPiece || p.Color() != g.activeColor {
			continue
		}
		moves, _ := g.legalMoves(Square(idx), 0)
		if len(moves) > 0 {
			return true
		}
	}
	return false
}

// findPromotionPawn locates the active color's pawn on its farthest
// rank, if any.
func (g *Game) findPromotionPawn() (Square, bool) {
	rank := g.activeColor.promotionRank()
	pawn := NewPiece(Pawn, g.activeColor)
	for file := 0; file < 8; file++ {
		sq := squareAt(rank, file)
		if g.board.at(sq) == pawn {
			return sq, true
		}
	}
	return NoSquare, false
}

// insufficientMaterial reports whether the remaining material is one of
// the recognized dead positions: bare kings, king plus a single minor
// piece versus king, or king and bishop versus king and bishop with
// both bishops on same-colored squares. It deliberately does not try to
// cover full dead-position theory.
func (g *Game) insufficientMaterial() bool {
	var total, kings, bishops, knights int
	bishopSquareParity := -1
	bishopsShareColor := true

	for idx, p := range g.board.squares {
		if p == NoPiece {
			continue
		}
		total++
		if total > 4 {
			return false
		}
		switch p.Type() {
		case King:
			kings++
		case Bishop:
			bishops++
			sq := Square(idx)
			parity := (sq.Rank() + sq.File()) % 2
			if bishopSquareParity == -1 {
				bishopSquareParity = parity
			} else if parity != bishopSquareParity {
				bishopsShareColor = false
			}
		case Knight:
			knights++
		default:
			return false
		}
	}

	switch {
	case total == 2 && kings == 2:
		return true
	case total == 3 && kings == 2 && (bishops == 1 || knights == 1):
		return true
	case total == 4 && kings == 2 && bishops == 2:
		return bishopsShareColor
	}
	return false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
