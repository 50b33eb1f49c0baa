package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"

	"github.com/hailam/chessmodel/internal/board"
)

// defaultRenderScale renders sprites at 3x and scales them down for sharp edges.
const defaultRenderScale = 3.0

// pieceShapes holds SVG elements for each piece type on a 45x45 canvas.
// FILL and STROKE are replaced per color.
var pieceShapes = map[board.PieceType][]string{
	board.King: {
		`<path d="M 13 35 L 11 22 C 15 17 30 17 34 22 L 32 35 Z"/>`,
		`<path d="M 21 4 L 24 4 L 24 8 L 28 8 L 28 11 L 24 11 L 24 17 L 21 17 L 21 11 L 17 11 L 17 8 L 21 8 Z"/>`,
	},
	board.Queen: {
		`<path d="M 12 35 L 9 14 L 15 25 L 17 11 L 21 24 L 22.5 9 L 24 24 L 28 11 L 30 25 L 36 14 L 33 35 Z"/>`,
		`<circle cx="9" cy="12" r="2"/>`,
		`<circle cx="17" cy="9" r="2"/>`,
		`<circle cx="22.5" cy="7" r="2"/>`,
		`<circle cx="28" cy="9" r="2"/>`,
		`<circle cx="36" cy="12" r="2"/>`,
	},
	board.Rook: {
		`<path d="M 13 35 L 14 16 L 31 16 L 32 35 Z"/>`,
		`<path d="M 11 16 L 11 9 L 15 9 L 15 12 L 20 12 L 20 9 L 25 9 L 25 12 L 30 12 L 30 9 L 34 9 L 34 16 Z"/>`,
	},
	board.Bishop: {
		`<path d="M 15 35 L 19 22 L 26 22 L 30 35 Z"/>`,
		`<path d="M 22.5 8 C 30 12 30 20 22.5 23 C 15 20 15 12 22.5 8 Z"/>`,
		`<circle cx="22.5" cy="6" r="2.5"/>`,
	},
	board.Knight: {
		`<path d="M 14 35 L 16 24 L 12 20 L 14 14 L 22 8 L 24 5 L 26 9 C 32 12 33 22 31 35 Z"/>`,
	},
	board.Pawn: {
		`<path d="M 15 35 L 18 21 L 27 21 L 30 35 Z"/>`,
		`<circle cx="22.5" cy="15" r="6"/>`,
	},
}

// plinth is drawn under every piece.
const plinth = `<path d="M 9 39 L 36 39 L 36 35 L 9 35 Z"/>`

// pieceSVG returns the SVG document for a piece of the given color and type.
func pieceSVG(c board.Color, pt board.PieceType, theme *Theme) string {
	fill, stroke := theme.WhitePiece, theme.BlackPiece
	if c.IsBlack() {
		fill, stroke = theme.BlackPiece, theme.WhitePiece
	}

	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="45" height="45" viewBox="0 0 45 45">`)
	for _, shape := range append(pieceShapes[pt], plinth) {
		attrs := fmt.Sprintf(` fill="%s" stroke="%s" stroke-width="1.5" stroke-linejoin="round"/>`,
			hexColor(fill), hexColor(stroke))
		sb.WriteString(strings.TrimSuffix(shape, "/>") + attrs)
	}
	sb.WriteString(`</svg>`)
	return sb.String()
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

type spriteKey struct {
	color     board.Color
	pieceType board.PieceType
}

// SpriteManager holds rasterized piece sprites.
type SpriteManager struct {
	pieces      map[spriteKey]*image.RGBA
	size        int     // Display size (e.g., 64)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
}

// NewSpriteManager rasterizes all twelve piece sprites at the given size.
func NewSpriteManager(size int, theme *Theme) (*SpriteManager, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid sprite size %d", size)
	}

	sm := &SpriteManager{
		pieces:      make(map[spriteKey]*image.RGBA),
		size:        size,
		renderScale: defaultRenderScale,
	}
	if err := sm.loadPieces(theme); err != nil {
		return nil, err
	}
	return sm, nil
}

// loadPieces parses and rasterizes the SVG for every color and type.
func (sm *SpriteManager) loadPieces(theme *Theme) error {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for _, c := range board.Colors() {
		for _, pt := range board.PieceTypes() {
			icon, err := oksvg.ReadIconStream(strings.NewReader(pieceSVG(c, pt, theme)))
			if err != nil {
				return fmt.Errorf("parse %s %s sprite: %w", c.Name(), pt.Name(), err)
			}

			icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

			hi := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
			scanner := rasterx.NewScannerGV(renderSize, renderSize, hi, hi.Bounds())
			raster := rasterx.NewDasher(renderSize, renderSize, scanner)
			icon.Draw(raster, 1.0)

			sprite := image.NewRGBA(image.Rect(0, 0, sm.size, sm.size))
			xdraw.CatmullRom.Scale(sprite, sprite.Bounds(), hi, hi.Bounds(), xdraw.Over, nil)

			sm.pieces[spriteKey{c, pt}] = sprite
		}
	}
	return nil
}

// GetPiece returns the sprite for a piece, or nil if p is nil.
func (sm *SpriteManager) GetPiece(p *board.Piece) *image.RGBA {
	if p == nil {
		return nil
	}
	return sm.pieces[spriteKey{p.Color(), p.Type()}]
}

// Size returns the size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
