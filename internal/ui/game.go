// Package ui implements a board viewer using Ebitengine.
//
// Click a piece, then a square, to place it there (no rules are applied).
// Keys: R resets to the starting position, C toggles coordinates, S saves a
// snapshot, Escape quits.
package ui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessmodel/internal/board"
	"github.com/hailam/chessmodel/internal/render"
	"github.com/hailam/chessmodel/internal/storage"
)

// Game implements ebiten.Game interface.
type Game struct {
	state    *board.GameState
	renderer *render.ImageRenderer
	input    *InputHandler
	store    *storage.Storage
	prefs    *storage.Preferences

	selected *board.Piece
	frame    *ebiten.Image
	dirty    bool
}

// NewGame creates a viewer for state. store may be nil, in which case
// default preferences are used and snapshots cannot be saved.
func NewGame(state *board.GameState, store *storage.Storage) (*Game, error) {
	g := &Game{
		state: state,
		input: NewInputHandler(),
		store: store,
		prefs: storage.DefaultPreferences(),
		dirty: true,
	}

	if store != nil {
		prefs, err := store.LoadPreferences()
		if err != nil {
			log.Printf("Failed to load preferences: %v", err)
		} else {
			g.prefs = prefs
		}
	}

	if err := g.buildRenderer(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) buildRenderer() error {
	r, err := render.NewImageRenderer(g.prefs.SquareSize, g.prefs.ShowCoordinates)
	if err != nil {
		return err
	}
	g.renderer = r
	g.dirty = true
	return nil
}

// ScreenSize returns the window size needed to show the board.
func (g *Game) ScreenSize() (int, int) {
	size := g.renderer.ImageSize()
	return size, size
}

// Update handles input. It is called every tick.
func (g *Game) Update() error {
	g.input.Update()

	for _, key := range g.input.JustPressedKeys() {
		switch key {
		case ebiten.KeyEscape:
			return ebiten.Termination
		case ebiten.KeyR:
			g.state = board.NewGameState()
			g.selected = nil
			g.dirty = true
		case ebiten.KeyC:
			g.prefs.ShowCoordinates = !g.prefs.ShowCoordinates
			if err := g.buildRenderer(); err != nil {
				return err
			}
			ebiten.SetWindowSize(g.ScreenSize())
			g.savePreferences()
		case ebiten.KeyS:
			g.saveSnapshot()
		}
	}

	if g.input.IsLeftJustPressed() {
		g.handleClick(g.input.MousePosition())
	}
	return nil
}

// handleClick selects the piece under the cursor, or moves the selected
// piece to the clicked square.
func (g *Game) handleClick(x, y int) {
	ix, ok := g.renderer.IndexAt(x, y)
	if !ok {
		g.selected = nil
		return
	}
	target := ix.Position()

	if g.selected == nil {
		g.selected = g.state.PieceAt(target.Column, target.Row)
		return
	}

	g.selected.MoveSelfAbsolute(target.Column, target.Row)
	g.selected = nil
	g.dirty = true
}

func (g *Game) savePreferences() {
	if g.store == nil {
		return
	}
	if err := g.store.SavePreferences(g.prefs); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}

func (g *Game) saveSnapshot() {
	if g.store == nil {
		log.Printf("No store configured; snapshot not saved")
		return
	}
	snap, err := g.store.SaveSnapshot("viewer", g.state)
	if err != nil {
		log.Printf("Failed to save snapshot: %v", err)
		return
	}
	log.Printf("Saved snapshot %s", snap.ID)
}

// Draw draws the board. The rendered frame is cached until the state changes.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty || g.frame == nil {
		img := g.renderer.Render(g.state.GenerateBoard(nil))
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImageFromImage(img)
		g.dirty = false
	}
	screen.DrawImage(g.frame, &ebiten.DrawImageOptions{})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}
