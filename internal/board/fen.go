package board

import (
	"fmt"
	"strings"
)

// StartPlacement is the FEN piece placement field of the starting position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// Placement returns the FEN piece placement field for the board projection
// of the game state. Rank 8 comes first.
func (g *GameState) Placement() string {
	b := g.GenerateBoard(nil)

	var sb strings.Builder
	for i := BoardSize - 1; i >= 0; i-- {
		empty := 0
		for j := 0; j < BoardSize; j++ {
			p, ok := b[j][i].(*Piece)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.FENChar())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if i > 0 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}

// ParsePlacement builds a GameState from a FEN piece placement field. A full
// FEN string is accepted; fields after the first are ignored. Pieces are
// created rank 8 first, a to h within a rank.
func ParsePlacement(fen string) (*GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidPlacement)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != BoardSize {
		return nil, fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidPlacement, len(ranks))
	}

	var pieces []*Piece
	for n, rankStr := range ranks {
		row := Rows[BoardSize-1-n] // FEN starts from rank 8
		file := 0

		for _, c := range rankStr {
			if file >= BoardSize {
				return nil, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidPlacement, row)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			color, pt, ok := pieceFromFENChar(c)
			if !ok {
				return nil, fmt.Errorf("%w: invalid piece character %q", ErrInvalidPlacement, c)
			}
			pieces = append(pieces, NewPiece(Columns[file], row, color, pt))
			file++
		}

		if file != BoardSize {
			return nil, fmt.Errorf("%w: invalid number of squares in rank %d: got %d", ErrInvalidPlacement, row, file)
		}
	}

	return NewGameStateFromPieces(pieces), nil
}

// pieceFromFENChar converts a FEN character to a color and piece type.
func pieceFromFENChar(c rune) (Color, PieceType, bool) {
	color := Black
	if c >= 'A' && c <= 'Z' {
		color = White
		c += 'a' - 'A'
	}

	for _, pt := range PieceTypes() {
		if rune(pt.Char()) == c {
			return color, pt, true
		}
	}
	return 0, 0, false
}
