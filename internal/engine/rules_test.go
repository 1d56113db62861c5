package engine

import (
	"testing"

	"github.com/lgbarn/fenboard/internal/chess"
)

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"kings only", "8/8/8/4k3/8/8/8/4K3 w - - 0 1", true},
		{"king and bishop", "8/8/8/4k3/8/8/8/2B1K3 w - - 0 1", true},
		{"king and knight", "8/8/8/4k3/8/8/8/4K1n1 w - - 0 1", true},
		{"same colour bishops", "5b2/8/8/4k3/8/8/8/2B1K3 w - - 0 1", true},
		{"opposite colour bishops", "2b5/8/8/4k3/8/8/8/2B1K3 w - - 0 1", false},
		{"two knights", "8/8/8/4k3/8/8/8/1N2K1N1 w - - 0 1", false},
		{"rook", "8/8/8/4k3/8/8/8/R3K3 w - - 0 1", false},
		{"pawn", "8/8/8/4k3/8/8/P7/4K3 w - - 0 1", false},
		{"initial position", InitialFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasInsufficientMaterial(mustDecode(t, tt.fen)); got != tt.want {
				t.Errorf("HasInsufficientMaterial(%q) = %v, want %v", tt.fen, got, tt.want)
			}
		})
	}
}

func TestIsLightSquare(t *testing.T) {
	tests := []struct {
		sq   chess.Square
		want bool
	}{
		{chess.A8, true},
		{chess.H1, true},
		{chess.A1, false},
		{chess.H8, false},
		{chess.E4, true},
		{chess.D4, false},
	}

	for _, tt := range tests {
		t.Run(tt.sq.String(), func(t *testing.T) {
			if got := isLightSquare(tt.sq); got != tt.want {
				t.Errorf("isLightSquare(%s) = %v, want %v", tt.sq, got, tt.want)
			}
		})
	}
}

func TestHasStandardMaterial(t *testing.T) {
	if !HasStandardMaterial(NewInitialPosition()) {
		t.Error("initial position should have standard material")
	}

	pos := mustDecode(t, "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2")
	if HasStandardMaterial(pos) {
		t.Error("position after a capture should not have standard material")
	}

	odds := mustDecode(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/1NBQKBNR w Kkq - 0 1")
	if HasStandardMaterial(odds) {
		t.Error("rook odds should not have standard material")
	}
}

func TestAnalyzeRules(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want RuleReport
	}{
		{"initial", InitialFEN, RuleReport{}},
		{"fifty moves", "8/8/8/4k3/8/8/8/R3K3 w - - 100 90", RuleReport{FiftyMoveRule: true, MaterialOdds: true}},
		{
			name: "seventy five moves with bare kings",
			fen:  "8/8/8/4k3/8/8/8/4K3 w - - 150 120",
			want: RuleReport{FiftyMoveRule: true, SeventyFiveMoveRule: true, InsufficientMaterial: true, MaterialOdds: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzeRules(mustDecode(t, tt.fen)); got != tt.want {
				t.Errorf("AnalyzeRules(%q) = %+v, want %+v", tt.fen, got, tt.want)
			}
		})
	}
}
