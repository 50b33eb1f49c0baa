package board

import "fmt"

// Color represents the color of a piece.
type Color uint8

const (
	White Color = iota
	Black
)

// Colors returns all colors in declaration order.
func Colors() []Color {
	return []Color{White, Black}
}

// Name returns the lower-case color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "nocolor"
	}
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// IsWhite reports whether c is White.
func (c Color) IsWhite() bool { return c == White }

// IsBlack reports whether c is Black.
func (c Color) IsBlack() bool { return c == Black }

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// StartingRow returns the back rank of the color: 1 for White, 8 for Black.
func (c Color) StartingRow() int {
	if c.IsWhite() {
		return Rows[0]
	}
	return Rows[BoardSize-1]
}

// Direction returns +1 for White and -1 for Black (the way pawns advance).
func (c Color) Direction() int {
	if c.IsWhite() {
		return 1
	}
	return -1
}

// ParseColor converts a color name ("white"/"black") to a Color.
func ParseColor(name string) (Color, error) {
	for _, c := range Colors() {
		if c.Name() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: color %q", ErrUnknownName, name)
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	King PieceType = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// PieceTypes returns all piece types in declaration order.
func PieceTypes() []PieceType {
	return []PieceType{King, Queen, Rook, Bishop, Knight, Pawn}
}

var pieceTypeNames = [...]string{"king", "queen", "rook", "bishop", "knight", "pawn"}

// Name returns the lower-case piece type name.
func (pt PieceType) Name() string {
	if int(pt) < len(pieceTypeNames) {
		return pieceTypeNames[pt]
	}
	return "none"
}

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	default:
		return "None"
	}
}

var pieceTypeChars = [...]byte{'k', 'q', 'r', 'b', 'n', 'p'}

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	if int(pt) >= len(pieceTypeChars) {
		return ' '
	}
	return pieceTypeChars[pt]
}

// ParsePieceType converts a piece type name ("king", ...) to a PieceType.
func ParsePieceType(name string) (PieceType, error) {
	for _, pt := range PieceTypes() {
		if pt.Name() == name {
			return pt, nil
		}
	}
	return 0, fmt.Errorf("%w: piece type %q", ErrUnknownName, name)
}

// whiteKingGlyph is U+2654. The twelve chess glyphs follow it contiguously:
// white king..pawn, then black king..pawn.
const whiteKingGlyph = '♔'

// Piece is a chess piece with a fixed color and type and a mutable position.
type Piece struct {
	column    byte
	row       int
	color     Color
	pieceType PieceType
}

// NewPiece creates a piece. The column is stored lower-case; neither
// coordinate is range checked.
func NewPiece(column byte, row int, color Color, pt PieceType) *Piece {
	return &Piece{
		column:    toLower(column),
		row:       row,
		color:     color,
		pieceType: pt,
	}
}

// Column returns the piece's column letter.
func (p *Piece) Column() byte { return p.column }

// Row returns the piece's row number.
func (p *Piece) Row() int { return p.row }

// Position returns the piece's normal position.
func (p *Piece) Position() Position {
	return Position{Column: p.column, Row: p.row}
}

// Color returns the piece's color.
func (p *Piece) Color() Color { return p.color }

// Type returns the piece's type.
func (p *Piece) Type() PieceType { return p.pieceType }

// IsWhite reports whether the piece is white.
func (p *Piece) IsWhite() bool { return p.color.IsWhite() }

// IsBlack reports whether the piece is black.
func (p *Piece) IsBlack() bool { return p.color.IsBlack() }

// Equals reports whether both pieces have the same position, color and type.
// Comparing against nil is always false.
func (p *Piece) Equals(other *Piece) bool {
	if p == nil || other == nil {
		return false
	}
	if p == other {
		return true
	}
	return *p == *other
}

// DeepCopy returns an independent copy of the piece.
func (p *Piece) DeepCopy() *Piece {
	cp := *p
	return &cp
}

// MoveSelfRelative moves the piece in place by the given column/row increment.
func (p *Piece) MoveSelfRelative(columnDelta, rowDelta int) {
	to := RelativePosition(p.column, p.row, columnDelta, rowDelta)
	p.MoveSelfAbsolute(to.Column, to.Row)
}

// MoveSelfAbsolute moves the piece in place to the given position.
func (p *Piece) MoveSelfAbsolute(column byte, row int) {
	p.column = toLower(column)
	p.row = row
}

// MoveRelative returns a copy of the piece moved by the given increment.
// The receiver is not modified.
func (p *Piece) MoveRelative(columnDelta, rowDelta int) *Piece {
	to := RelativePosition(p.column, p.row, columnDelta, rowDelta)
	return p.MoveAbsolute(to.Column, to.Row)
}

// MoveAbsolute returns a copy of the piece moved to the given position.
// The receiver is not modified.
func (p *Piece) MoveAbsolute(column byte, row int) *Piece {
	cp := p.DeepCopy()
	cp.MoveSelfAbsolute(column, row)
	return cp
}

// Unicode returns the chess glyph for the piece (e.g., '♔' for the white king).
func (p *Piece) Unicode() rune {
	glyph := rune(whiteKingGlyph)
	if p.IsBlack() {
		glyph += 6
	}

	switch p.pieceType {
	case Queen:
		glyph += 1
	case Rook:
		glyph += 2
	case Bishop:
		glyph += 3
	case Knight:
		glyph += 4
	case Pawn:
		glyph += 5
	}
	return glyph
}

// FENChar returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p *Piece) FENChar() byte {
	c := p.pieceType.Char()
	if p.IsWhite() {
		return c - ('a' - 'A')
	}
	return c
}

// String returns a readable description such as "white king e1".
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s %s", p.color.Name(), p.pieceType.Name(), p.Position())
}
