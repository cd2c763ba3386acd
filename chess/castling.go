package chess

// CastlingRights represents the available castling options. Rights are
// monotonic: once lost they are never regained.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side still holds the right to
// castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	return cr&castleRight(c, kingSide) != 0
}

func castleRight(c Color, kingSide bool) CastlingRights {
	if c == White {
		if kingSide {
			return WhiteKingSideCastle
		}
		return WhiteQueenSideCastle
	}
	if kingSide {
		return BlackKingSideCastle
	}
	return BlackQueenSideCastle
}

// colorRights returns both of a color's rights as a mask.
func colorRights(c Color) CastlingRights {
	if c == White {
		return WhiteKingSideCastle | WhiteQueenSideCastle
	}
	return BlackKingSideCastle | BlackQueenSideCastle
}

// castleGeometry describes one castling opportunity in terms of fixed
// board geometry. Rights are tied to these squares, not to piece
// identity across moves.
type castleGeometry struct {
	right    CastlingRights
	color    Color
	kingFrom Square
	kingTo   Square
	rookFrom Square
	rookTo   Square
	between  []Square // strictly between king and rook; must be empty
	transit  []Square // crossed by the king, excluding arrival; must be safe
}

// castleTable enumerates the four castling opportunities. The king
// arrival squares (kingTo) double as the trigger for rook relocation at
// move-application time.
var castleTable = [4]castleGeometry{
	{WhiteKingSideCastle, White, E1, G1, H1, F1, []Square{F1, G1}, []Square{F1}},
	{WhiteQueenSideCastle, White, E1, C1, A1, D1, []Square{B1, C1, D1}, []Square{D1}},
	{BlackKingSideCastle, Black, E8, G8, H8, F8, []Square{F8, G8}, []Square{F8}},
	{BlackQueenSideCastle, Black, E8, C8, A8, D8, []Square{B8, C8, D8}, []Square{D8}},
}

// rookHomeRight maps a rook home square to the right it anchors.
// Covers both a rook leaving home and any capture landing there.
func rookHomeRight(sq Square) CastlingRights {
	switch sq {
	case A1:
		return WhiteQueenSideCastle
	case H1:
		return WhiteKingSideCastle
	case A8:
		return BlackQueenSideCastle
	case H8:
		return BlackKingSideCastle
	}
	return NoCastling
}
