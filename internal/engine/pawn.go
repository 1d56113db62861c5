package engine

import "github.com/lgbarn/fenboard/internal/chess"

// pawnTargets returns the pushes and captures of a pawn.
func pawnTargets(pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Square {
	var targets []chess.Square
	dir := colour.Forward()

	// Forward move
	if one, ok := from.Offset(dir, 0); ok && pos.Get(one).IsEmpty() {
		targets = append(targets, one)

		// Double push from starting rank
		if from.Rank() == chess.PawnStartRank(colour) {
			if two, ok := from.Offset(2*dir, 0); ok && pos.Get(two).IsEmpty() {
				targets = append(targets, two)
			}
		}
	}

	// Captures
	for df := -1; df <= 1; df += 2 {
		to, ok := from.Offset(dir, df)
		if !ok {
			continue
		}
		target := pos.Get(to)
		if !target.IsEmpty() && target.Colour() != colour {
			targets = append(targets, to)
			continue
		}
		if isEnPassantCapture(pos, from, to, colour) {
			targets = append(targets, to)
		}
	}
	return targets
}

// isEnPassantCapture reports whether a pawn of colour on from may capture en
// passant onto to: rank 5 onto a rank 6 target for White, rank 4 onto a rank 3
// target for Black, with an opposing pawn behind the target. A target on the
// mover's own side of the board is never capturable.
func isEnPassantCapture(pos *chess.Position, from, to chess.Square, colour chess.Colour) bool {
	ep, ok := pos.EnPassantTarget()
	if !ok || to != ep || !pos.Get(to).IsEmpty() {
		return false
	}
	if ep.Rank() != chess.EnPassantRank(colour) || from.Rank() != ep.Rank()-colour.Forward() {
		return false
	}
	return pos.Get(enPassantVictim(ep, colour)) == chess.MakePiece(colour.Opposite(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn captured when a pawn of
// colour lands on the en passant target: one rank behind it.
func enPassantVictim(target chess.Square, colour chess.Colour) chess.Square {
	sq, _ := target.Offset(-colour.Forward(), 0)
	return sq
}

// isPromotion reports whether a pawn of colour arriving on to must promote.
func isPromotion(to chess.Square, colour chess.Colour) bool {
	return to.Rank() == chess.PromotionRank(colour)
}

// isDoublePush reports whether a pawn move from -> to skipped a square, and
// returns the skipped square.
func isDoublePush(from, to chess.Square) (chess.Square, bool) {
	dr := to.Rank() - from.Rank()
	if (dr != 2 && dr != -2) || to.File() != from.File() {
		return chess.NoSquare, false
	}
	return chess.SquareAt((from.Rank()+to.Rank())/2, from.File()), true
}
