package engine

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/fenboard/internal/chess"
)

// promotionPieces lists the piece choices of a promoting pawn.
var promotionPieces = []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// GenerateMoves returns every pseudo-legal move of the side to move, one
// entry per promotion choice.
func GenerateMoves(pos *chess.Position) []Move {
	var moves []Move
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		piece := pos.Get(from)
		for _, to := range GenerateTargets(pos, from) {
			if piece.Type() == chess.Pawn && isPromotion(to, piece.Colour()) {
				for _, pt := range promotionPieces {
					moves = append(moves, Move{From: from, To: to, Promotion: pt})
				}
				continue
			}
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// Perft counts the pseudo-legal move paths of the given depth from pos.
// pos is not modified.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := GenerateMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := pos.Copy()
		if _, err := MakeMove(child, m); err != nil {
			continue
		}
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide runs Perft below each root move, spreading the root moves over
// workers goroutines (runtime.NumCPU() when workers <= 0). Entries are
// ordered by move. It returns ctx.Err() if ctx is cancelled first.
func Divide(ctx context.Context, pos *chess.Position, depth, workers int) ([]DivideEntry, uint64, error) {
	if depth < 1 {
		return nil, 1, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	moves := GenerateMoves(pos)
	entries := make([]DivideEntry, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, m := range moves {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child := pos.Copy()
			if _, err := MakeMove(child, m); err != nil {
				return err
			}
			entries[i] = DivideEntry{Move: m, Nodes: Perft(child, depth-1)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})

	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return entries, total, nil
}
