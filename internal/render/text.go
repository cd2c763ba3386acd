// Package render turns a board snapshot into human-facing output: a
// fixed-width text diagram for terminals and an SVG diagram for
// everything else.
package render

import (
	"strings"

	"github.com/hailam/chessrules/chess"
)

// Text renders the placement as a framed 8x8 diagram, rank 8 at the
// top, FEN piece letters for occupied squares and '*' for empty ones:
//
//	|:-------------:|
//	|r n b q k b n r|
//	|p p p p p p p p|
//	|* * * * * * * *|
//	|* * * * * * * *|
//	|* * * * * * * *|
//	|* * * * * * * *|
//	|P P P P P P P P|
//	|R N B Q K B N R|
//	|:-------------:|
//
// No trailing newline.
func Text(squares [64]chess.Piece) string {
	var sb strings.Builder
	sb.WriteString("|:-------------:|\n")

	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('|')
		for file := 0; file < 8; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			p := squares[rank*8+file]
			if p == chess.NoPiece {
				sb.WriteByte('*')
			} else {
				sb.WriteString(p.String())
			}
		}
		sb.WriteString("|\n")
	}

	sb.WriteString("|:-------------:|")
	return sb.String()
}

// TextWithCoords is Text with file letters below and rank numbers along
// the left edge, for interactive use.
func TextWithCoords(squares [64]chess.Piece) string {
	lines := strings.Split(Text(squares), "\n")
	var sb strings.Builder

	sb.WriteString("  " + lines[0] + "\n")
	for i, rank := 1, 8; rank >= 1; i, rank = i+1, rank-1 {
		sb.WriteString(string(byte('0'+rank)) + " " + lines[i] + "\n")
	}
	sb.WriteString("  " + lines[9] + "\n")
	sb.WriteString("   a b c d e f g h")
	return sb.String()
}
