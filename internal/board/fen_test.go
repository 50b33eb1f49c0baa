package board

import (
	"testing"

	"github.com/hailam/chessmodel/internal/testutil"
)

func TestPlacementStart(t *testing.T) {
	testutil.AssertEqual(t, NewGameState().Placement(), StartPlacement)
}

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		count int
	}{
		{"start placement", StartPlacement, 32},
		{"full FEN", StartPlacement + " w KQkq - 0 1", 32},
		{"kings only", "4k3/8/8/8/8/8/8/4K3", 2},
		{"empty board", "8/8/8/8/8/8/8/8", 0},
		{"mid-game", "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R", 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParsePlacement(tt.fen)
			testutil.AssertNoError(t, err)
			if g == nil {
				return
			}
			if len(g.Pieces()) != tt.count {
				t.Errorf("pieces = %d; want %d", len(g.Pieces()), tt.count)
			}

			want := tt.fen
			if len(want) > len(StartPlacement) && want[:len(StartPlacement)] == StartPlacement {
				want = StartPlacement
			}
			testutil.AssertEqual(t, g.Placement(), want)
			testutil.AssertNoError(t, g.Validate())
		})
	}
}

func TestParsePlacementPieces(t *testing.T) {
	g, err := ParsePlacement("4k3/8/8/8/8/8/8/4K3")
	testutil.AssertNoError(t, err)

	var got []string
	for _, p := range g.Pieces() {
		got = append(got, p.String())
	}
	testutil.AssertEqual(t, got, []string{"black king e8", "white king e1"})
}

func TestParsePlacementErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"seven ranks", "8/8/8/8/8/8/8"},
		{"bad piece", "4x3/8/8/8/8/8/8/4K3"},
		{"short rank", "4k2/8/8/8/8/8/8/4K3"},
		{"long rank", "4k4/8/8/8/8/8/8/4K3"},
		{"overflow digit", "8p/8/8/8/8/8/8/8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePlacement(tt.fen)
			testutil.AssertErrorIs(t, err, ErrInvalidPlacement)
		})
	}
}
