package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/testutil"
)

const afterE4FEN = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"

func TestGenerateTargets_Opening(t *testing.T) {
	tests := []struct {
		fen  string
		from string
		want []string
	}{
		// White pawns and knights from the initial position
		{InitialFEN, "a2", []string{"a4", "a3"}},
		{InitialFEN, "b2", []string{"b4", "b3"}},
		{InitialFEN, "c2", []string{"c4", "c3"}},
		{InitialFEN, "d2", []string{"d4", "d3"}},
		{InitialFEN, "e2", []string{"e4", "e3"}},
		{InitialFEN, "f2", []string{"f4", "f3"}},
		{InitialFEN, "g2", []string{"g4", "g3"}},
		{InitialFEN, "h2", []string{"h4", "h3"}},
		{InitialFEN, "b1", []string{"a3", "c3"}},
		{InitialFEN, "g1", []string{"f3", "h3"}},
		// Black to move after 1.e4
		{afterE4FEN, "a7", []string{"a6", "a5"}},
		{afterE4FEN, "d7", []string{"d6", "d5"}},
		{afterE4FEN, "h7", []string{"h6", "h5"}},
		{afterE4FEN, "b8", []string{"a6", "c6"}},
		{afterE4FEN, "g8", []string{"f6", "h6"}},
		// Blocked pieces
		{InitialFEN, "a1", nil},
		{InitialFEN, "c1", nil},
		{InitialFEN, "d1", nil},
		{InitialFEN, "e1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			pos := mustDecode(t, tt.fen)
			testutil.AssertSquares(t, GenerateTargets(pos, chess.MustParseSquare(tt.from)), tt.want...)
		})
	}
}

func TestGenerateTargets_NoMoves(t *testing.T) {
	pos := NewInitialPosition()

	tests := []struct {
		name string
		from chess.Square
	}{
		{"empty square", chess.E4},
		{"opponent piece", chess.E7},
		{"off board low", chess.Square(-1)},
		{"off board high", chess.Square(64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateTargets(pos, tt.from); len(got) != 0 {
				t.Errorf("GenerateTargets(%d) = %v, want none", tt.from, testutil.SquareNames(got))
			}
		})
	}
}

func TestGenerateTargets_Sliders(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "lone rook",
			fen:  "8/8/8/8/3R4/8/8/8 w - - 0 1",
			from: "d4",
			want: []string{"d8", "d7", "d6", "d5", "a4", "b4", "c4", "e4", "f4", "g4", "h4", "d3", "d2", "d1"},
		},
		{
			name: "rook with friendly and enemy blockers",
			fen:  "8/8/3P4/8/3R1p2/8/8/8 w - - 0 1",
			from: "d4",
			want: []string{"d5", "a4", "b4", "c4", "e4", "f4", "d3", "d2", "d1"},
		},
		{
			name: "rook in corner",
			fen:  "8/8/8/8/8/8/8/R7 w - - 0 1",
			from: "a1",
			want: []string{"a8", "a7", "a6", "a5", "a4", "a3", "a2", "b1", "c1", "d1", "e1", "f1", "g1", "h1"},
		},
		{
			name: "bishop",
			fen:  "8/8/8/8/3B4/8/8/8 w - - 0 1",
			from: "d4",
			want: []string{"h8", "a7", "g7", "b6", "f6", "c5", "e5", "c3", "e3", "b2", "f2", "a1", "g1"},
		},
		{
			name: "bishop on h-file does not wrap",
			fen:  "8/8/8/8/7B/8/8/8 w - - 0 1",
			from: "h4",
			want: []string{"d8", "e7", "f6", "g5", "g3", "f2", "e1"},
		},
		{
			name: "queen captures and stops",
			fen:  "8/8/8/2p1p3/3Q4/2P5/8/8 w - - 0 1",
			from: "d4",
			want: []string{"d8", "d7", "d6", "d5", "c5", "e5", "a4", "b4", "c4", "e4", "f4", "g4", "h4", "d3", "d2", "d1", "e3", "f2", "g1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustDecode(t, tt.fen)
			got := GenerateTargets(pos, chess.MustParseSquare(tt.from))
			testutil.AssertEqual(t, testutil.SquareNames(got), sortedNames(tt.want))
		})
	}
}

func TestGenerateTargets_LoneRookCount(t *testing.T) {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		pos := chess.NewPosition()
		pos.Set(sq, chess.W(chess.Rook))
		if got := len(GenerateTargets(pos, sq)); got != 14 {
			t.Errorf("lone rook on %s has %d targets, want 14", sq, got)
		}
	}
}

func TestGenerateTargets_EdgeWrapping(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"knight on h-file", "8/8/8/8/7N/8/8/8 w - - 0 1", "h4", []string{"g6", "f5", "f3", "g2"}},
		{"knight on a-file", "8/8/8/8/N7/8/8/8 w - - 0 1", "a4", []string{"b6", "c5", "c3", "b2"}},
		{"knight in corner", "8/8/8/8/8/8/8/7N w - - 0 1", "h1", []string{"f2", "g3"}},
		{"king on a-file", "8/8/8/8/K7/8/8/8 w - - 0 1", "a4", []string{"a5", "b5", "b4", "a3", "b3"}},
		{"king on h-file", "8/8/8/8/7K/8/8/8 w - - 0 1", "h4", []string{"g5", "h5", "g4", "g3", "h3"}},
		{"king in corner", "k7/8/8/8/8/8/8/8 b - - 0 1", "a8", []string{"b8", "a7", "b7"}},
		{"pawn on a-file", "8/8/8/8/8/1p6/P7/8 w - - 0 1", "a2", []string{"a4", "a3", "b3"}},
		{"pawn on h-file", "8/8/8/8/8/6p1/7P/8 w - - 0 1", "h2", []string{"h4", "g3", "h3"}},
		{"pawn does not capture across edge", "8/8/8/8/8/p7/7P/8 w - - 0 1", "h2", []string{"h4", "h3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustDecode(t, tt.fen)
			got := GenerateTargets(pos, chess.MustParseSquare(tt.from))
			testutil.AssertEqual(t, testutil.SquareNames(got), sortedNames(tt.want))
		})
	}
}

func TestGenerateTargets_Pawns(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"blocked push", "8/8/8/8/8/4p3/4P3/8 w - - 0 1", "e2", nil},
		{"double push blocked on far square", "8/8/8/8/4p3/8/4P3/8 w - - 0 1", "e2", []string{"e3"}},
		{"no double push off start rank", "8/8/8/8/8/4P3/8/8 w - - 0 1", "e3", []string{"e4"}},
		{"captures both sides", "8/8/8/8/8/3p1p2/4P3/8 w - - 0 1", "e2", []string{"d3", "e3", "f3", "e4"}},
		{"no capture of own piece", "8/8/8/8/8/3P4/4P3/8 w - - 0 1", "e2", []string{"e3", "e4"}},
		{"black double push", "8/3p4/8/8/8/8/8/8 b - - 0 1", "d7", []string{"d6", "d5"}},
		{"black capture", "8/3p4/2P5/8/8/8/8/8 b - - 0 1", "d7", []string{"c6", "d6", "d5"}},
		{"white en passant", "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3", "e5", []string{"d6", "e6"}},
		{"black en passant", "rnbqkbnr/pppp1ppp/8/8/3Pp3/8/PPP2PPP/RNBQKBNR b KQkq d3 0 3", "e4", []string{"d3", "e3"}},
		{"en passant not adjacent", "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3", "b2", []string{"b4", "b3"}},
		{"en passant from wrong rank", "8/8/8/3p4/8/4P3/8/8 w - d6 0 1", "e3", []string{"e4"}},
		{"en passant target on own side", "4k3/8/8/8/8/8/3PP3/4K3 w - e3 0 1", "d2", []string{"d3", "d4"}},
		{"black en passant target on own side", "4k3/3pp3/8/8/8/8/8/4K3 b - e6 0 1", "d7", []string{"d6", "d5"}},
		{"en passant without pawn behind target", "4k3/8/8/3P4/8/8/8/4K3 w - e6 0 1", "d5", []string{"d6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustDecode(t, tt.fen)
			got := GenerateTargets(pos, chess.MustParseSquare(tt.from))
			testutil.AssertEqual(t, testutil.SquareNames(got), sortedNames(tt.want))
		})
	}
}

func TestGenerateTargets_Castling(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"white both sides", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1", "e1", []string{"c1", "d1", "f1", "g1"}},
		{"black both sides", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1", "e8", []string{"c8", "d8", "f8", "g8"}},
		{"kingside blocked", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3KB1R w KQkq - 0 1", "e1", []string{"c1", "d1"}},
		{"queenside blocked on b-file", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/RN2K2R w KQkq - 0 1", "e1", []string{"d1", "f1", "g1"}},
		{"kingside right missing", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Qkq - 0 1", "e1", []string{"c1", "d1", "f1"}},
		{"no rights", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1", "e1", []string{"d1", "f1"}},
		{"rook missing", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K3 w KQkq - 0 1", "e1", []string{"c1", "d1", "f1"}},
		{"enemy rook in corner", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2r w KQkq - 0 1", "e1", []string{"c1", "d1", "f1"}},
		{"king away from home", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R2K3R w KQkq - 0 1", "d1", []string{"c1", "e1"}},
		{"castles through attacked square", "r3kr2/ppppp1pp/8/8/8/8/PPPPP1PP/R3K2R w KQq - 0 1", "e1", []string{"c1", "d1", "f1", "g1", "f2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustDecode(t, tt.fen)
			got := GenerateTargets(pos, chess.MustParseSquare(tt.from))
			testutil.AssertEqual(t, testutil.SquareNames(got), sortedNames(tt.want))
		})
	}
}

func TestIsTarget(t *testing.T) {
	pos := NewInitialPosition()

	tests := []struct {
		from, to string
		want     bool
	}{
		{"e2", "e4", true},
		{"e2", "e3", true},
		{"e2", "e5", false},
		{"g1", "f3", true},
		{"g1", "g3", false},
		{"e7", "e5", false},
		{"e4", "e5", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+tt.to, func(t *testing.T) {
			got := IsTarget(pos, chess.MustParseSquare(tt.from), chess.MustParseSquare(tt.to))
			if got != tt.want {
				t.Errorf("IsTarget(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

// sortedNames orders square names by board index, the order GenerateTargets
// returns them in.
func sortedNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	squares := testutil.Squares(names...)
	sort.Slice(squares, func(i, j int) bool { return squares[i] < squares[j] })
	return testutil.SquareNames(squares)
}
