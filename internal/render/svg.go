package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/hailam/chessrules/chess"
)

// Board geometry in SVG user units.
const (
	squareSize = 64
	margin     = 24
	boardSize  = 8 * squareSize
)

const (
	lightFill = "#f0d9b5"
	darkFill  = "#b58863"
	labelFill = "#333333"
)

// SVG writes the placement as a standalone SVG document: a checkered
// board with Unicode piece glyphs and file/rank labels in the margins.
func SVG(w io.Writer, squares [64]chess.Piece) {
	canvas := svg.New(w)
	total := boardSize + 2*margin
	canvas.Start(total, total)
	canvas.Rect(0, 0, total, total, "fill:#ffffff")

	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			x := margin + file*squareSize
			y := margin + (7-rank)*squareSize

			fill := lightFill
			if (rank+file)%2 == 0 {
				fill = darkFill
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)

			p := squares[rank*8+file]
			if p == chess.NoPiece {
				continue
			}
			canvas.Text(x+squareSize/2, y+squareSize/2,
				string(p.Symbol()),
				fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central", squareSize*3/4))
		}
	}

	labelStyle := "font-size:14px;font-family:sans-serif;text-anchor:middle;fill:" + labelFill
	for file := 0; file < 8; file++ {
		x := margin + file*squareSize + squareSize/2
		canvas.Text(x, total-margin/3, string(rune('a'+file)), labelStyle)
	}
	for rank := 0; rank < 8; rank++ {
		y := margin + (7-rank)*squareSize + squareSize/2 + 5
		canvas.Text(margin/2, y, string(rune('1'+rank)), labelStyle)
	}

	canvas.End()
}
