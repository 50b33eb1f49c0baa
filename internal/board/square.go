// Package board implements the chess piece and position data model.
//
// Two coordinate forms are used:
//
//	Normal {Column, Row}       Index {I, J}
//
//	  a b c d e f g h            0 1 2 3 4 5 6 7  J
//	8 . . . . . . . .          7 . . . . . . . .
//	7 . . . . . . . .          6 . . . . . . . .
//	...                        ...
//	1 . . . . . . . .          0 . . . . . . . .
//	                           I
//
// I is the row ordinal (row 1 = 0) and J the column ordinal (a = 0).
package board

import "fmt"

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Columns lists the column letters in board order.
var Columns = [BoardSize]byte{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'}

// Rows lists the row numbers in board order.
var Rows = [BoardSize]int{1, 2, 3, 4, 5, 6, 7, 8}

// Position is a normal (algebraic) coordinate.
type Position struct {
	Column byte
	Row    int
}

// Index is a zero-based array coordinate: I is the row ordinal, J the column ordinal.
type Index struct {
	I, J int
}

// NoIndex is returned by NormalToIndex when neither component is on the board.
var NoIndex = Index{I: -1, J: -1}

// String returns the algebraic notation for the position (e.g., "e4").
func (p Position) String() string {
	return fmt.Sprintf("%c%d", p.Column, p.Row)
}

// IsValid returns true if the position lies on the 8x8 board.
func (p Position) IsValid() bool {
	return p.Column >= Columns[0] && p.Column <= Columns[BoardSize-1] &&
		p.Row >= Rows[0] && p.Row <= Rows[BoardSize-1]
}

// Index returns the index form of the position.
func (p Position) Index() Index {
	return NormalToIndex(p.Column, p.Row)
}

// IsValid returns true if both components are in 0..7.
func (ix Index) IsValid() bool {
	return ix.I >= 0 && ix.I < BoardSize && ix.J >= 0 && ix.J < BoardSize
}

// Position returns the normal form of the index.
func (ix Index) Position() Position {
	return IndexToNormal(ix.I, ix.J)
}

// RelativePosition shifts column by columnIncr and row by rowIncr.
// The result is not clamped and may lie off the board.
func RelativePosition(column byte, row, columnIncr, rowIncr int) Position {
	ordinal := int(toLower(column)) - int(Columns[0]) + columnIncr
	return Position{
		Column: byte(int(Columns[0]) + ordinal),
		Row:    row + rowIncr,
	}
}

// NormalToIndex converts a normal position to its index form.
// A component outside the board is reported as -1.
func NormalToIndex(column byte, row int) Index {
	ix := NoIndex
	for j, c := range Columns {
		if c == column {
			ix.J = j
			break
		}
	}
	for i, r := range Rows {
		if r == row {
			ix.I = i
			break
		}
	}
	return ix
}

// IndexToNormal converts an index position to its normal form.
// Indices outside 0..7 return the zero Position.
func IndexToNormal(i, j int) Position {
	if !(Index{I: i, J: j}).IsValid() {
		return Position{}
	}
	return Position{Column: Columns[j], Row: Rows[i]}
}

// ParsePosition parses algebraic notation (e.g., "e4" or "E4") into a Position.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}

	p := Position{Column: toLower(s[0]), Row: int(s[1] - '0')}
	if !p.IsValid() {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	return p, nil
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
