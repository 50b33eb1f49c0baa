package board

import (
	"testing"

	"github.com/hailam/chessmodel/internal/testutil"
)

func TestNormalIndexRoundTrip(t *testing.T) {
	for _, column := range Columns {
		for _, row := range Rows {
			ix := NormalToIndex(column, row)
			if !ix.IsValid() {
				t.Fatalf("NormalToIndex(%c, %d) = %+v; want valid index", column, row, ix)
			}
			got := IndexToNormal(ix.I, ix.J)
			want := Position{Column: column, Row: row}
			if got != want {
				t.Errorf("IndexToNormal(NormalToIndex(%v)) = %v", want, got)
			}
		}
	}
}

func TestIndexNormalRoundTrip(t *testing.T) {
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			p := IndexToNormal(i, j)
			got := NormalToIndex(p.Column, p.Row)
			if got != (Index{I: i, J: j}) {
				t.Errorf("NormalToIndex(IndexToNormal(%d, %d)) = %+v", i, j, got)
			}
		}
	}
}

func TestNormalToIndex(t *testing.T) {
	tests := []struct {
		name   string
		column byte
		row    int
		want   Index
	}{
		{"a1", 'a', 1, Index{I: 0, J: 0}},
		{"e1", 'e', 1, Index{I: 0, J: 4}},
		{"h8", 'h', 8, Index{I: 7, J: 7}},
		{"d5", 'd', 5, Index{I: 4, J: 3}},
		{"unknown column", 'z', 4, Index{I: 3, J: -1}},
		{"unknown row", 'c', 9, Index{I: -1, J: 2}},
		{"row zero", 'c', 0, Index{I: -1, J: 2}},
		{"both unknown", 'i', 0, NoIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, NormalToIndex(tt.column, tt.row), tt.want)
		})
	}
}

func TestIndexToNormalOutOfRange(t *testing.T) {
	for _, ix := range []Index{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if got := IndexToNormal(ix.I, ix.J); got != (Position{}) {
			t.Errorf("IndexToNormal(%d, %d) = %v; want zero Position", ix.I, ix.J, got)
		}
	}
}

func TestRelativePosition(t *testing.T) {
	tests := []struct {
		name       string
		column     byte
		row        int
		columnIncr int
		rowIncr    int
		want       Position
	}{
		{"zero increments", 'e', 4, 0, 0, Position{'e', 4}},
		{"upper-case column", 'E', 4, 0, 0, Position{'e', 4}},
		{"knight jump", 'g', 1, -1, 2, Position{'f', 3}},
		{"down the board", 'a', 8, 7, -7, Position{'h', 1}},
		{"off the right edge", 'h', 1, 1, 0, Position{'i', 1}},
		{"off the bottom", 'a', 1, 0, -1, Position{'a', 0}},
		{"off the left edge", 'a', 1, -1, 0, Position{'`', 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativePosition(tt.column, tt.row, tt.columnIncr, tt.rowIncr)
			if got != tt.want {
				t.Errorf("RelativePosition(%c, %d, %d, %d) = %v; want %v",
					tt.column, tt.row, tt.columnIncr, tt.rowIncr, got, tt.want)
			}
		})
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{"e4", Position{'e', 4}, false},
		{"A1", Position{'a', 1}, false},
		{"h8", Position{'h', 8}, false},
		{"i1", Position{}, true},
		{"a9", Position{}, true},
		{"a0", Position{}, true},
		{"e", Position{}, true},
		{"e10", Position{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePosition(tt.in)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, ErrInvalidPosition)
				return
			}
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("ParsePosition(%q) = %v; want %v", tt.in, got, tt.want)
			}
			if got.String() != toLowerString(tt.in) {
				t.Errorf("String() = %q; want %q", got.String(), toLowerString(tt.in))
			}
		})
	}
}

func TestPositionIndexConversions(t *testing.T) {
	p := Position{Column: 'c', Row: 6}
	ix := p.Index()
	if ix != (Index{I: 5, J: 2}) {
		t.Fatalf("Index() = %+v; want {5 2}", ix)
	}
	if ix.Position() != p {
		t.Errorf("Position() = %v; want %v", ix.Position(), p)
	}
}

func toLowerString(s string) string {
	b := []byte(s)
	for i := range b {
		b[i] = toLower(b[i])
	}
	return string(b)
}
