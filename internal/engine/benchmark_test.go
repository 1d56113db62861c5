package engine

import (
	"testing"

	"github.com/lgbarn/fenboard/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewPositionFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewPositionFromFEN(fen)
			}
		})
	}
}

func BenchmarkPositionToFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			pos := mustDecode(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				PositionToFEN(pos)
			}
		})
	}
}

func BenchmarkGenerateMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			pos := mustDecode(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				GenerateMoves(pos)
			}
		})
	}
}

func BenchmarkApplyMove(b *testing.B) {
	pos := NewInitialPosition()
	for i := 0; i < b.N; i++ {
		child := pos.Copy()
		ApplyMove(child, chess.E2, chess.E4, chess.NoPieceType)
	}
}

func BenchmarkPerft3(b *testing.B) {
	pos := NewInitialPosition()
	for i := 0; i < b.N; i++ {
		Perft(pos, 3)
	}
}
