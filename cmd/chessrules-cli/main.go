// Command chessrules-cli plays a game of chess in the terminal: moves
// are entered as coordinate pairs ("e2 e4"), games can be saved to and
// loaded from the local database, and positions can be exported as SVG.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hailam/chessrules/chess"
	"github.com/hailam/chessrules/internal/render"
	"github.com/hailam/chessrules/internal/storage"
)

var dbDir = flag.String("db", "", "database directory (default: the platform data dir)")

func main() {
	flag.Parse()

	var store *storage.Storage
	var err error
	if *dbDir != "" {
		store, err = storage.Open(*dbDir)
	} else {
		store, err = storage.OpenDefault()
	}
	if err != nil {
		log.Printf("Warning: persistence unavailable: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	repl := &repl{
		game:  chess.NewGame(),
		store: store,
		in:    bufio.NewScanner(os.Stdin),
	}
	repl.run()
}

type repl struct {
	game  *chess.Game
	store *storage.Storage
	in    *bufio.Scanner
	moves []string // coordinate record of the current game, for saving
}

func (r *repl) run() {
	fmt.Println("chessrules - type 'help' for commands")
	r.printBoard()

	for {
		fmt.Printf("%s> ", r.prompt())
		if !r.in.Scan() {
			return
		}
		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			return
		case "help":
			printHelp()
		case "new":
			r.game = chess.NewGame()
			r.moves = nil
			r.printBoard()
		case "board":
			r.printBoard()
		case "fen":
			fmt.Println(r.game.FEN())
		case "state":
			r.printState()
		case "colour", "color":
			fmt.Println(r.game.ActiveColor())
		case "piece":
			r.showPiece(fields[1:])
		case "moves":
			r.showMoves(fields[1:])
		case "history":
			r.printHistory()
		case "draw":
			r.submitDraw()
		case "save":
			r.saveGame(fields[1:])
		case "load":
			r.loadGame(fields[1:])
		case "games":
			r.listGames()
		case "delete":
			r.deleteGame(fields[1:])
		case "svg":
			r.exportSVG(fields[1:])
		default:
			if len(fields) == 2 {
				r.playMove(fields[0], fields[1])
			} else {
				fmt.Println("unrecognized command; type 'help'")
			}
		}
	}
}

// prompt names whose input is expected next.
func (r *repl) prompt() string {
	switch r.game.State() {
	case chess.WaitingOnPromotionChoice:
		return fmt.Sprintf("%s promotes to", r.game.ActiveColor())
	case chess.GameOver:
		return "game over"
	default:
		return r.game.ActiveColor().String()
	}
}

func (r *repl) playMove(from, to string) {
	state, err := r.game.Move(from, to)
	if err != nil {
		fmt.Println(err)
		return
	}
	r.moves = append(r.moves, from+to)
	r.printBoard()

	if state == chess.WaitingOnPromotionChoice {
		r.choosePromotion()
		state = r.game.State()
	}
	if state == chess.Check {
		fmt.Printf("%s is in check\n", r.game.ActiveColor())
	}
	if state == chess.GameOver {
		r.announceGameOver()
	}
}

// choosePromotion keeps asking until a valid piece type is accepted.
func (r *repl) choosePromotion() {
	for r.game.State() == chess.WaitingOnPromotionChoice {
		fmt.Printf("promote to (q, r, b, n): ")
		if !r.in.Scan() {
			return
		}
		pt, err := chess.ParsePieceType(strings.TrimSpace(r.in.Text()))
		if err != nil {
			fmt.Println(err)
			continue
		}
		if _, err := r.game.SetPromotion(pt); err != nil {
			fmt.Println(err)
			continue
		}
		r.moves = append(r.moves, "="+chess.NewPiece(pt, chess.Black).String())
		r.printBoard()
	}
	if r.game.State() == chess.GameOver {
		r.announceGameOver()
	}
}

func (r *repl) submitDraw() {
	if err := r.game.SubmitDraw(); err != nil {
		fmt.Println(err)
		return
	}
	r.announceGameOver()
}

func (r *repl) announceGameOver() {
	fmt.Printf("game over: %s\n", r.game.Reason())
	if r.store != nil {
		if err := r.store.RecordResult(r.game.Reason().String()); err != nil {
			log.Printf("record result: %v", err)
		}
	}
}

func (r *repl) printBoard() {
	fmt.Println(render.TextWithCoords(r.game.Squares()))
}

func (r *repl) printState() {
	fmt.Printf("state: %s, to move: %s\n", r.game.State(), r.game.ActiveColor())
	fmt.Printf("castling: %s, en passant: %s\n", r.game.Castling(), r.game.EnPassantTarget())
	fmt.Printf("halfmove clock: %d, fullmoves: %d\n", r.game.HalfmoveClock(), r.game.FullmoveNumber())
	if r.game.CanClaimThreefoldRepetition() {
		fmt.Println("threefold repetition is claimable (type 'draw')")
	}
	if r.game.CanClaimFiftyMoveRule() {
		fmt.Println("the 50-move rule is claimable (type 'draw')")
	}
}

func (r *repl) showMoves(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: moves <square>")
		return
	}
	sq, err := chess.ParseSquare(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	moves, err := r.game.LegalMoves(sq)
	if err != nil {
		fmt.Println(err)
		return
	}
	if len(moves) == 0 {
		fmt.Printf("no legal moves from %s\n", sq)
		return
	}
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	fmt.Println(strings.Join(out, " "))
}

func (r *repl) showPiece(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: piece <square>")
		return
	}
	sq, err := chess.ParseSquare(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	p, err := r.game.Get(sq)
	if err != nil {
		fmt.Println(err)
		return
	}
	if p == chess.NoPiece {
		fmt.Printf("%s is empty\n", sq)
		return
	}
	fmt.Printf("%s %s (%c)\n", p.Color(), p.Type(), p.Symbol())
}

func (r *repl) printHistory() {
	hist := r.game.History()
	if len(hist) == 0 {
		fmt.Println("no moves played")
		return
	}
	for i, h := range hist {
		fmt.Printf("%3d. %s %s -> %s", i+1, h.Moved.Type(), h.From, h.To)
		if h.Captured != chess.NoPiece {
			fmt.Printf(" takes %s", h.Captured.Type())
		}
		fmt.Println()
	}
}

func (r *repl) saveGame(args []string) {
	if r.store == nil {
		fmt.Println("persistence is unavailable")
		return
	}
	if len(args) != 1 {
		fmt.Println("usage: save <name>")
		return
	}
	err := r.store.SaveGame(&storage.SavedGame{
		Name:   args[0],
		FEN:    r.game.FEN(),
		Moves:  append([]string(nil), r.moves...),
		Result: r.resultString(),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("saved as %q\n", args[0])
}

func (r *repl) loadGame(args []string) {
	if r.store == nil {
		fmt.Println("persistence is unavailable")
		return
	}
	if len(args) != 1 {
		fmt.Println("usage: load <name>")
		return
	}
	saved, found, err := r.store.LoadGame(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	if !found {
		fmt.Printf("no saved game named %q\n", args[0])
		return
	}
	game, err := chess.ParseFEN(saved.FEN)
	if err != nil {
		fmt.Printf("saved game %q is corrupt: %v\n", args[0], err)
		return
	}
	r.game = game
	r.moves = append([]string(nil), saved.Moves...)
	fmt.Printf("loaded %q (saved %s)\n", saved.Name, saved.SavedAt.Format("2006-01-02 15:04"))
	r.printBoard()
}

func (r *repl) listGames() {
	if r.store == nil {
		fmt.Println("persistence is unavailable")
		return
	}
	games, err := r.store.ListGames()
	if err != nil {
		fmt.Println(err)
		return
	}
	if len(games) == 0 {
		fmt.Println("no saved games")
		return
	}
	for _, g := range games {
		line := fmt.Sprintf("%s  (%d moves, saved %s)", g.Name, len(g.Moves), g.SavedAt.Format("2006-01-02 15:04"))
		if g.Result != "" {
			line += "  " + g.Result
		}
		fmt.Println(line)
	}
}

func (r *repl) deleteGame(args []string) {
	if r.store == nil {
		fmt.Println("persistence is unavailable")
		return
	}
	if len(args) != 1 {
		fmt.Println("usage: delete <name>")
		return
	}
	if err := r.store.DeleteGame(args[0]); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("deleted %q\n", args[0])
}

func (r *repl) exportSVG(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: svg <file>")
		return
	}
	f, err := os.Create(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()
	render.SVG(f, r.game.Squares())
	fmt.Printf("wrote %s\n", args[0])
}

func (r *repl) resultString() string {
	if r.game.State() != chess.GameOver {
		return ""
	}
	return r.game.Reason().String()
}

func printHelp() {
	fmt.Print(`commands:
  <from> <to>    play a move, e.g. "e2 e4"
  moves <square> list legal moves from a square
  piece <square> identify the piece on a square
  colour         show whose turn it is
  board          reprint the board
  state          show turn, castling rights and draw counters
  fen            print the position as FEN
  history        list the moves played so far
  draw           agree to a draw (or claim a claimable one)
  save <name>    save the game
  load <name>    load a saved game (by position)
  games          list saved games
  delete <name>  delete a saved game
  svg <file>     export the position as an SVG image
  new            start a fresh game
  quit           leave
`)
}
