package engine

import "github.com/lgbarn/fenboard/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A position without a king of that colour is never in check.
// ApplyMove does not consult this; it is offered to callers that want it.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	king, ok := pos.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(pos, king, colour.Opposite())
}

// IsSquareAttacked returns true if sq is attacked by a piece of byColour.
// Castling and en passant never attack a square.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, byColour chess.Colour) bool {
	if !sq.Valid() {
		return false
	}

	// Pawns attack from one rank behind their direction of travel
	pawn := chess.MakePiece(byColour, chess.Pawn)
	for df := -1; df <= 1; df += 2 {
		if from, ok := sq.Offset(-byColour.Forward(), df); ok && pos.Get(from) == pawn {
			return true
		}
	}

	if attackedByStep(pos, sq, chess.MakePiece(byColour, chess.Knight), knightOffsets) {
		return true
	}
	if attackedByStep(pos, sq, chess.MakePiece(byColour, chess.King), kingOffsets) {
		return true
	}

	queen := chess.MakePiece(byColour, chess.Queen)
	if attackedBySlider(pos, sq, chess.MakePiece(byColour, chess.Bishop), queen, diagonalDirs) {
		return true
	}
	return attackedBySlider(pos, sq, chess.MakePiece(byColour, chess.Rook), queen, straightDirs)
}

func attackedByStep(pos *chess.Position, sq chess.Square, attacker chess.Piece, offsets [][2]int) bool {
	for _, offset := range offsets {
		if from, ok := sq.Offset(offset[0], offset[1]); ok && pos.Get(from) == attacker {
			return true
		}
	}
	return false
}

func attackedBySlider(pos *chess.Position, sq chess.Square, slider, queen chess.Piece, dirs [][2]int) bool {
	for _, dir := range dirs {
		from, ok := sq.Offset(dir[0], dir[1])
		for ok {
			piece := pos.Get(from)
			if !piece.IsEmpty() {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			from, ok = from.Offset(dir[0], dir[1])
		}
	}
	return false
}
