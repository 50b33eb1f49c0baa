package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/hailam/chessmodel/internal/board"
)

// ImageRenderer paints board projections into RGBA images.
type ImageRenderer struct {
	sprites         *SpriteManager
	theme           *Theme
	squareSize      int
	margin          int
	showCoordinates bool
	face            font.Face
}

// NewImageRenderer creates a renderer with squares of squareSize pixels.
// With showCoordinates a margin holding file letters and rank numbers is
// drawn around the board.
func NewImageRenderer(squareSize int, showCoordinates bool) (*ImageRenderer, error) {
	theme := DefaultTheme()

	sprites, err := NewSpriteManager(squareSize, theme)
	if err != nil {
		return nil, err
	}

	r := &ImageRenderer{
		sprites:         sprites,
		theme:           theme,
		squareSize:      squareSize,
		showCoordinates: showCoordinates,
	}

	if showCoordinates {
		r.margin = squareSize / 2
		r.face, err = newLabelFace(float64(squareSize) / 3)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// newLabelFace loads the Go regular font at the given size.
func newLabelFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse label font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create label face: %w", err)
	}
	return face, nil
}

// ImageSize returns the width and height of rendered images in pixels.
func (r *ImageRenderer) ImageSize() int {
	return board.BoardSize*r.squareSize + 2*r.margin
}

// SquareSize returns the size of one square in pixels.
func (r *ImageRenderer) SquareSize() int {
	return r.squareSize
}

// Theme returns the renderer's theme.
func (r *ImageRenderer) Theme() *Theme {
	return r.theme
}

// SquareOrigin returns the top-left pixel of the square at index (i, j).
// Row 1 is at the bottom.
func (r *ImageRenderer) SquareOrigin(i, j int) image.Point {
	return image.Pt(
		r.margin+j*r.squareSize,
		r.margin+(board.BoardSize-1-i)*r.squareSize, // Flip so row 1 is at bottom
	)
}

// IndexAt converts pixel coordinates to a board index. It reports false
// for points in the margin or outside the image.
func (r *ImageRenderer) IndexAt(x, y int) (board.Index, bool) {
	x -= r.margin
	y -= r.margin
	limit := board.BoardSize * r.squareSize
	if x < 0 || x >= limit || y < 0 || y >= limit {
		return board.NoIndex, false
	}
	return board.Index{
		I: board.BoardSize - 1 - y/r.squareSize, // Flip so row 1 is at bottom
		J: x / r.squareSize,
	}, true
}

// Render paints b and returns the image.
func (r *ImageRenderer) Render(b board.Board) *image.RGBA {
	size := r.ImageSize()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(r.theme.Background), image.Point{}, xdraw.Src)

	for j := 0; j < board.BoardSize; j++ {
		for i := 0; i < board.BoardSize; i++ {
			origin := r.SquareOrigin(i, j)
			square := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(r.squareSize, r.squareSize))}
			xdraw.Draw(img, square, image.NewUniform(r.theme.SquareColor(i, j)), image.Point{}, xdraw.Src)

			p, ok := b[j][i].(*board.Piece)
			if !ok {
				continue
			}
			if sprite := r.sprites.GetPiece(p); sprite != nil {
				xdraw.Draw(img, square, sprite, image.Point{}, xdraw.Over)
			}
		}
	}

	if r.showCoordinates {
		r.drawCoordinates(img)
	}
	return img
}

// drawCoordinates draws file letters below the board and rank numbers to
// its left.
func (r *ImageRenderer) drawCoordinates(img *image.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.theme.TextColor),
		Face: r.face,
	}
	ascent := r.face.Metrics().Ascent.Ceil()
	bottom := r.margin + board.BoardSize*r.squareSize

	for j, column := range board.Columns {
		label := string(column)
		w := d.MeasureString(label).Ceil()
		x := r.margin + j*r.squareSize + (r.squareSize-w)/2
		y := bottom + (r.margin+ascent)/2
		d.Dot = fixed.P(x, y)
		d.DrawString(label)
	}

	for i, row := range board.Rows {
		label := fmt.Sprint(row)
		w := d.MeasureString(label).Ceil()
		origin := r.SquareOrigin(i, 0)
		x := (r.margin - w) / 2
		y := origin.Y + (r.squareSize+ascent)/2
		d.Dot = fixed.P(x, y)
		d.DrawString(label)
	}
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
