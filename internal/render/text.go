package render

import (
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/hailam/chessmodel/internal/board"
)

// DefaultFiller marks empty squares in text output.
const DefaultFiller = '#'

// TextRenderer prints a board projection as a grid of glyphs, rank 8 first.
type TextRenderer struct {
	// Filler marks cells without a piece. Zero means DefaultFiller.
	Filler rune
	// Color enables ANSI colors: white pieces bold yellow, black pieces
	// bold cyan, filler faint.
	Color bool
}

// DebugBoard renders b with '#' for empty squares and no colors.
func DebugBoard(b board.Board) string {
	return TextRenderer{}.Render(b)
}

// Render returns one line per row from row 8 down to row 1. Every cell is
// followed by a space.
func (r TextRenderer) Render(b board.Board) string {
	au := aurora.NewAurora(r.Color)
	filler := r.Filler
	if filler == 0 {
		filler = DefaultFiller
	}

	var sb strings.Builder
	for i := board.BoardSize - 1; i >= 0; i-- {
		for j := 0; j < board.BoardSize; j++ {
			p, ok := b[j][i].(*board.Piece)
			switch {
			case !ok:
				sb.WriteString(au.Faint(string(filler)).String())
			case p.IsWhite():
				sb.WriteString(au.Yellow(string(p.Unicode())).Bold().String())
			default:
				sb.WriteString(au.Cyan(string(p.Unicode())).Bold().String())
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
