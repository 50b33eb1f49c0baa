package board

import (
	"errors"
	"fmt"
)

// backRank lists the back-rank piece types with their columns, in the
// order starting pieces are generated.
var backRank = []struct {
	pieceType PieceType
	columns   []byte
}{
	{Rook, []byte{'a', 'h'}},
	{Knight, []byte{'b', 'g'}},
	{Bishop, []byte{'c', 'f'}},
	{Queen, []byte{'d'}},
	{King, []byte{'e'}},
}

// GenerateStartingPieces returns the 32 pieces of the standard starting
// position. For each color (White first) the back rank comes first, then
// the eight pawns from a to h.
func GenerateStartingPieces() []*Piece {
	pieces := make([]*Piece, 0, 4*BoardSize)

	for _, color := range Colors() {
		row := color.StartingRow()
		for _, br := range backRank {
			for _, column := range br.columns {
				pieces = append(pieces, NewPiece(column, row, color, br.pieceType))
			}
		}

		row += color.Direction()
		for _, column := range Columns {
			pieces = append(pieces, NewPiece(column, row, color, Pawn))
		}
	}

	return pieces
}

// GameState owns the collection of pieces at a point in time.
// It does not prevent two pieces from sharing a square.
type GameState struct {
	pieces []*Piece
}

// NewGameState returns a GameState holding the standard starting position.
func NewGameState() *GameState {
	return &GameState{pieces: GenerateStartingPieces()}
}

// NewGameStateFromPieces returns a GameState that owns the given pieces.
// A nil slice yields an empty game state, not the starting position.
func NewGameStateFromPieces(pieces []*Piece) *GameState {
	return &GameState{pieces: pieces}
}

// Pieces returns the owned pieces in insertion order.
func (g *GameState) Pieces() []*Piece {
	return g.pieces
}

// Board is a projection of a GameState, indexed board[column][row] by
// zero-based ordinals. A cell holds either a *Piece or the fill value.
type Board [BoardSize][BoardSize]any

// At returns the cell content at the given normal position, or nil if the
// position is off the board.
func (b Board) At(column byte, row int) any {
	ix := NormalToIndex(toLower(column), row)
	if !ix.IsValid() {
		return nil
	}
	return b[ix.J][ix.I]
}

// PieceAt returns the piece at the given normal position, or nil.
func (b Board) PieceAt(column byte, row int) *Piece {
	p, _ := b.At(column, row).(*Piece)
	return p
}

// GenerateBoard projects the pieces onto an 8x8 array. Every cell starts
// as fill; when two pieces share a square the later one wins. Pieces off
// the board are left out of the projection.
func (g *GameState) GenerateBoard(fill any) Board {
	var b Board
	for j := range b {
		for i := range b[j] {
			b[j][i] = fill
		}
	}

	for _, p := range g.pieces {
		ix := NormalToIndex(p.column, p.row)
		if !ix.IsValid() {
			continue
		}
		b[ix.J][ix.I] = p
	}

	return b
}

// PieceAt returns the piece that the board projection shows at the given
// position, or nil. Off-board positions are never shown, so they yield nil.
func (g *GameState) PieceAt(column byte, row int) *Piece {
	column = toLower(column)
	if !(Position{Column: column, Row: row}).IsValid() {
		return nil
	}

	var found *Piece
	for _, p := range g.pieces {
		if p.column == column && p.row == row {
			found = p
		}
	}
	return found
}

// Count returns the number of pieces with the given color and type.
func (g *GameState) Count(color Color, pt PieceType) int {
	n := 0
	for _, p := range g.pieces {
		if p.color == color && p.pieceType == pt {
			n++
		}
	}
	return n
}

// DeepCopy returns a GameState with independent copies of every piece.
func (g *GameState) DeepCopy() *GameState {
	pieces := make([]*Piece, len(g.pieces))
	for i, p := range g.pieces {
		pieces[i] = p.DeepCopy()
	}
	return &GameState{pieces: pieces}
}

// Validate reports every piece that is off the board and every square held
// by more than one piece. Construction never validates; callers that want
// a well-formed position call this explicitly.
func (g *GameState) Validate() error {
	var errs []error
	seen := make(map[Position]*Piece, len(g.pieces))

	for _, p := range g.pieces {
		pos := p.Position()
		if !pos.IsValid() {
			errs = append(errs, fmt.Errorf("%w: %s", ErrOffBoard, p))
			continue
		}
		if prev, ok := seen[pos]; ok {
			errs = append(errs, fmt.Errorf("%w: %s and %s", ErrDuplicatePosition, prev, p))
			continue
		}
		seen[pos] = p
	}

	return errors.Join(errs...)
}
