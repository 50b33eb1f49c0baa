// chessmodel viewer - shows a board in an Ebitengine window
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessmodel/internal/board"
	"github.com/hailam/chessmodel/internal/storage"
	"github.com/hailam/chessmodel/internal/ui"
)

var fen = flag.String("fen", "", "FEN piece placement to show instead of the starting position")

func main() {
	flag.Parse()

	state := board.NewGameState()
	if *fen != "" {
		var err error
		if state, err = board.ParsePlacement(*fen); err != nil {
			log.Fatal(err)
		}
	}

	store, err := storage.NewStorage()
	if err != nil {
		log.Printf("Warning: storage unavailable: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	game, err := ui.NewGame(state, store)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(game.ScreenSize())
	ebiten.SetWindowTitle("chessmodel")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
