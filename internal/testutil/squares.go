package testutil

import (
	"testing"

	"github.com/lgbarn/fenboard/internal/chess"
)

// Squares converts algebraic square names to squares. It panics on a bad
// name, so use it only with literals.
func Squares(names ...string) []chess.Square {
	if len(names) == 0 {
		return nil
	}
	squares := make([]chess.Square, len(names))
	for i, name := range names {
		squares[i] = chess.MustParseSquare(name)
	}
	return squares
}

// SquareNames converts squares to their algebraic names.
func SquareNames(squares []chess.Square) []string {
	if len(squares) == 0 {
		return nil
	}
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return names
}

// AssertSquares fails unless got holds exactly the named squares, in order.
// Failures are reported by name rather than index.
func AssertSquares(t *testing.T, got []chess.Square, want ...string) {
	t.Helper()
	AssertEqual(t, SquareNames(got), SquareNames(Squares(want...)), "target squares")
}

// AssertPiece fails unless the named square of pos holds want.
func AssertPiece(t *testing.T, pos *chess.Position, square string, want chess.Piece) {
	t.Helper()
	if got := pos.Get(chess.MustParseSquare(square)); got != want {
		t.Errorf("piece on %s = %v, want %v", square, got, want)
	}
}
