package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the serialized form of the starting position. The
// fullmove field counts completed Black moves and so begins at 0.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0"

// FEN returns the Forsyth-Edwards Notation for the current position:
// piece placement, active color, castling rights, en passant target,
// half-move clock and full-move counter. It is a derived, recomputable
// view, never the source of truth.
//
// The en passant field is only populated while some pawn can legally
// execute the capture.
func (g *Game) FEN() string {
	return fmt.Sprintf("%s %d %d", g.fingerprint(), g.halfmoveClock, g.fullmoveNumber)
}

// fingerprint returns the first four FEN fields: exactly the state
// subset that identifies a position for repetition counting.
func (g *Game) fingerprint() string {
	var sb strings.Builder

	// Piece placement, rank 8 first.
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := g.board.at(squareAt(rank, file))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if g.activeColor == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(g.castling.String())

	sb.WriteByte(' ')
	sb.WriteString(g.enPassantField())

	return sb.String()
}

// enPassantField renders the en passant target square, but only when an
// active-color pawn can actually play the capture; a double step nobody
// can answer does not distinguish the position.
func (g *Game) enPassantField() string {
	if g.enPassant == NoSquare {
		return "-"
	}

	// A capturing pawn stands beside the passed-over square, one rank
	// on the opponent's side of it.
	dRank := -g.activeColor.pawnDir()
	pawn := NewPiece(Pawn, g.activeColor)
	for _, dFile := range [2]int{-1, 1} {
		from, err := g.enPassant.Offset(dRank, dFile)
		if err != nil {
			continue
		}
		if g.board.at(from) != pawn {
			continue
		}
		moves, _ := g.legalMoves(from, 0)
		for _, to := range moves {
			if to == g.enPassant {
				return g.enPassant.String()
			}
		}
	}
	return "-"
}

// ParseFEN builds a game from a FEN string. At least the placement,
// active color, castling and en passant fields must be present; the
// clocks default to zero. The loaded game starts with an empty history,
// so repetition counting begins at the loaded position.
func ParseFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("%w: FEN needs at least 4 fields, got %d", ErrInvalidInput, len(parts))
	}

	g := &Game{
		state:      InProgress,
		board:      NewBoard(),
		enPassant:  NoSquare,
		repetition: make(map[string]int),
	}

	if err := parsePlacement(&g.board, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		g.activeColor = White
	case "b":
		g.activeColor = Black
	default:
		return nil, fmt.Errorf("%w: active color must be w or b, got %q", ErrInvalidInput, parts[1])
	}

	castling, err := parseCastlingField(parts[2])
	if err != nil {
		return nil, err
	}
	g.castling = castling

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("%w: bad en passant square %q", ErrInvalidInput, parts[3])
		}
		g.enPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil || hmc < 0 {
			return nil, fmt.Errorf("%w: bad half-move clock %q", ErrInvalidInput, parts[4])
		}
		g.halfmoveClock = hmc
	}
	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil || fmn < 0 {
			return nil, fmt.Errorf("%w: bad full-move counter %q", ErrInvalidInput, parts[5])
		}
		g.fullmoveNumber = fmn
	}

	g.classify()
	return g, nil
}

func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: placement needs 8 ranks, got %d", ErrInvalidInput, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0
		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("%w: too many squares in rank %d", ErrInvalidInput, rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return fmt.Errorf("%w: bad piece character %q", ErrInvalidInput, c)
			}
			if err := b.Put(squareAt(rank, file), piece); err != nil {
				return err
			}
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d covers %d squares", ErrInvalidInput, rank+1, file)
		}
	}
	return nil
}

func parseCastlingField(s string) (CastlingRights, error) {
	if s == "-" {
		return NoCastling, nil
	}
	var cr CastlingRights
	for _, c := range s {
		switch c {
		case 'K':
			cr |= WhiteKingSideCastle
		case 'Q':
			cr |= WhiteQueenSideCastle
		case 'k':
			cr |= BlackKingSideCastle
		case 'q':
			cr |= BlackQueenSideCastle
		default:
			return NoCastling, fmt.Errorf("%w: bad castling character %q", ErrInvalidInput, c)
		}
	}
	return cr, nil
}
