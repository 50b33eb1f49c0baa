// Package render draws board projections as text and as images.
package render

import "image/color"

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare color.RGBA
	DarkSquare  color.RGBA
	Background  color.RGBA
	TextColor   color.RGBA
	WhitePiece  color.RGBA
	BlackPiece  color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare: color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:  color.RGBA{181, 136, 99, 255},  // Brown
		Background:  color.RGBA{40, 44, 52, 255},    // Dark gray
		TextColor:   color.RGBA{220, 220, 220, 255}, // Light gray
		WhitePiece:  color.RGBA{255, 255, 255, 255},
		BlackPiece:  color.RGBA{20, 20, 20, 255},
	}
}

// SquareColor returns the color of the square at index (i, j).
// a1 (0, 0) is dark.
func (t *Theme) SquareColor(i, j int) color.RGBA {
	if (i+j)%2 == 0 {
		return t.DarkSquare
	}
	return t.LightSquare
}
