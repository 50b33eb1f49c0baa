package board

import (
	"testing"

	"github.com/hailam/chessmodel/internal/testutil"
)

func TestColorProperties(t *testing.T) {
	tests := []struct {
		color       Color
		name        string
		startingRow int
		direction   int
	}{
		{White, "white", 1, 1},
		{Black, "black", 8, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Name(); got != tt.name {
				t.Errorf("Name() = %q; want %q", got, tt.name)
			}
			if got := tt.color.StartingRow(); got != tt.startingRow {
				t.Errorf("StartingRow() = %d; want %d", got, tt.startingRow)
			}
			if got := tt.color.Direction(); got != tt.direction {
				t.Errorf("Direction() = %d; want %d", got, tt.direction)
			}
			if tt.color.IsWhite() == tt.color.IsBlack() {
				t.Error("IsWhite() and IsBlack() must differ")
			}
			parsed, err := ParseColor(tt.name)
			testutil.AssertNoError(t, err)
			if parsed != tt.color {
				t.Errorf("ParseColor(%q) = %v; want %v", tt.name, parsed, tt.color)
			}
		})
	}

	if White.Other() != Black || Black.Other() != White {
		t.Error("Other() does not swap colors")
	}
	testutil.AssertEqual(t, Colors(), []Color{White, Black})
}

func TestPieceTypeNames(t *testing.T) {
	want := []string{"king", "queen", "rook", "bishop", "knight", "pawn"}
	var got []string
	for _, pt := range PieceTypes() {
		got = append(got, pt.Name())

		parsed, err := ParsePieceType(pt.Name())
		testutil.AssertNoError(t, err)
		if parsed != pt {
			t.Errorf("ParsePieceType(%q) = %v; want %v", pt.Name(), parsed, pt)
		}
	}
	testutil.AssertEqual(t, got, want)

	_, err := ParsePieceType("archbishop")
	testutil.AssertErrorIs(t, err, ErrUnknownName)
	_, err = ParseColor("red")
	testutil.AssertErrorIs(t, err, ErrUnknownName)
}

func TestNewPieceLowersColumn(t *testing.T) {
	p := NewPiece('E', 1, White, King)
	if p.Column() != 'e' {
		t.Errorf("Column() = %c; want e", p.Column())
	}
	if p.Row() != 1 || p.Color() != White || p.Type() != King {
		t.Errorf("NewPiece fields = %s; want white king e1", p)
	}
}

func TestPieceEquals(t *testing.T) {
	p := NewPiece('e', 1, White, King)

	tests := []struct {
		name  string
		other *Piece
		want  bool
	}{
		{"nil", nil, false},
		{"same pointer", p, true},
		{"same fields", NewPiece('E', 1, White, King), true},
		{"different column", NewPiece('d', 1, White, King), false},
		{"different row", NewPiece('e', 2, White, King), false},
		{"different color", NewPiece('e', 1, Black, King), false},
		{"different type", NewPiece('e', 1, White, Queen), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Equals(tt.other); got != tt.want {
				t.Errorf("Equals(%v) = %v; want %v", tt.other, got, tt.want)
			}
		})
	}

	var nilPiece *Piece
	testutil.AssertFalse(t, nilPiece.Equals(p), "nil receiver")
}

func TestPieceDeepCopy(t *testing.T) {
	original := NewPiece('b', 1, White, Knight)
	cp := original.DeepCopy()

	if cp == original {
		t.Fatal("DeepCopy returned the same pointer")
	}
	testutil.AssertTrue(t, original.Equals(cp), "equal right after copy")

	cp.MoveSelfRelative(1, 2)
	if original.Position() != (Position{'b', 1}) {
		t.Errorf("original moved to %v", original.Position())
	}
	if cp.Position() != (Position{'c', 3}) {
		t.Errorf("copy at %v; want c3", cp.Position())
	}
	testutil.AssertFalse(t, original.Equals(cp), "equal after copy moved")
}

func TestPieceMoveSelf(t *testing.T) {
	p := NewPiece('e', 2, White, Pawn)

	p.MoveSelfRelative(0, 2)
	if p.Position() != (Position{'e', 4}) {
		t.Errorf("after MoveSelfRelative(0, 2) at %v; want e4", p.Position())
	}

	p.MoveSelfRelative(0, 0)
	if p.Position() != (Position{'e', 4}) {
		t.Errorf("after MoveSelfRelative(0, 0) at %v; want e4", p.Position())
	}

	p.MoveSelfAbsolute('H', 7)
	if p.Position() != (Position{'h', 7}) {
		t.Errorf("after MoveSelfAbsolute(H, 7) at %v; want h7", p.Position())
	}
}

func TestPieceMoveReturnsCopy(t *testing.T) {
	p := NewPiece('g', 8, Black, Knight)

	moved := p.MoveRelative(-1, -2)
	if moved == p {
		t.Fatal("MoveRelative returned the receiver")
	}
	if p.Position() != (Position{'g', 8}) {
		t.Errorf("receiver moved to %v", p.Position())
	}
	if moved.Position() != (Position{'f', 6}) {
		t.Errorf("MoveRelative result at %v; want f6", moved.Position())
	}
	if moved.Color() != Black || moved.Type() != Knight {
		t.Errorf("MoveRelative changed identity: %s", moved)
	}

	jumped := p.MoveAbsolute('C', 3)
	if p.Position() != (Position{'g', 8}) {
		t.Errorf("receiver moved to %v", p.Position())
	}
	if jumped.Position() != (Position{'c', 3}) {
		t.Errorf("MoveAbsolute result at %v; want c3", jumped.Position())
	}
}

func TestPieceUnicode(t *testing.T) {
	tests := []struct {
		color Color
		pt    PieceType
		want  rune
	}{
		{White, King, '♔'},
		{White, Queen, '♕'},
		{White, Rook, '♖'},
		{White, Bishop, '♗'},
		{White, Knight, '♘'},
		{White, Pawn, '♙'},
		{Black, King, '♚'},
		{Black, Queen, '♛'},
		{Black, Rook, '♜'},
		{Black, Bishop, '♝'},
		{Black, Knight, '♞'},
		{Black, Pawn, '♟'},
	}

	for _, tt := range tests {
		t.Run(tt.color.Name()+" "+tt.pt.Name(), func(t *testing.T) {
			p := NewPiece('a', 1, tt.color, tt.pt)
			if got := p.Unicode(); got != tt.want {
				t.Errorf("Unicode() = %c (%U); want %c (%U)", got, got, tt.want, tt.want)
			}
		})
	}

	for _, pt := range PieceTypes() {
		w := NewPiece('a', 1, White, pt).Unicode()
		b := NewPiece('a', 1, Black, pt).Unicode()
		if b-w != 6 {
			t.Errorf("%s: black glyph %U - white glyph %U = %d; want 6", pt, b, w, b-w)
		}
	}
}

func TestPieceTypeChar(t *testing.T) {
	want := "kqrbnp"
	for i, pt := range PieceTypes() {
		if got := pt.Char(); got != want[i] {
			t.Errorf("%s.Char() = %c; want %c", pt, got, want[i])
		}
	}
	if got := PieceType(42).Char(); got != ' ' {
		t.Errorf("PieceType(42).Char() = %q; want ' '", got)
	}
	if n := testing.AllocsPerRun(100, func() { _ = Knight.Char() }); n != 0 {
		t.Errorf("Char allocates %v times per call; want 0", n)
	}
}

func TestPieceFENChar(t *testing.T) {
	if got := NewPiece('a', 1, White, Knight).FENChar(); got != 'N' {
		t.Errorf("white knight FENChar() = %c; want N", got)
	}
	if got := NewPiece('a', 1, Black, Queen).FENChar(); got != 'q' {
		t.Errorf("black queen FENChar() = %c; want q", got)
	}
}

func TestPieceString(t *testing.T) {
	testutil.AssertEqual(t, NewPiece('e', 8, Black, King).String(), "black king e8")
}
