package engine

import (
	"sort"

	"github.com/lgbarn/fenboard/internal/chess"
)

// Direction vectors as {rank step, file step}.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// GenerateTargets returns the pseudo-legal target squares of the piece on from,
// in ascending order. It returns nil when from is off the board, empty, or
// holds a piece of the side not to move. Moves that leave the mover's own king
// attacked are not filtered out.
func GenerateTargets(pos *chess.Position, from chess.Square) []chess.Square {
	piece := pos.Get(from)
	if piece.IsEmpty() || piece.Colour() != pos.ActiveColour {
		return nil
	}

	var targets []chess.Square
	colour := piece.Colour()

	switch piece.Type() {
	case chess.Pawn:
		targets = pawnTargets(pos, from, colour)
	case chess.Knight:
		targets = stepTargets(pos, from, colour, knightOffsets)
	case chess.Bishop:
		targets = slidingTargets(pos, from, colour, true, false)
	case chess.Rook:
		targets = slidingTargets(pos, from, colour, false, true)
	case chess.Queen:
		targets = slidingTargets(pos, from, colour, true, true)
	case chess.King:
		targets = stepTargets(pos, from, colour, kingOffsets)
		targets = append(targets, castlingTargets(pos, from, colour)...)
	}

	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
	return targets
}

// IsTarget reports whether to is among the pseudo-legal targets of from.
func IsTarget(pos *chess.Position, from, to chess.Square) bool {
	for _, sq := range GenerateTargets(pos, from) {
		if sq == to {
			return true
		}
	}
	return false
}

// canOccupy reports whether a piece of colour may move onto sq: the square
// must be empty or hold an opposing piece.
func canOccupy(pos *chess.Position, sq chess.Square, colour chess.Colour) bool {
	target := pos.Get(sq)
	return target.IsEmpty() || target.Colour() != colour
}

// stepTargets returns the single-step targets for knights and kings.
func stepTargets(pos *chess.Position, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var targets []chess.Square
	for _, offset := range offsets {
		to, ok := from.Offset(offset[0], offset[1])
		if ok && canOccupy(pos, to, colour) {
			targets = append(targets, to)
		}
	}
	return targets
}

// slidingTargets ray-casts for bishops, rooks and queens. Each ray includes
// the first opposing piece it meets and stops before a friendly one.
func slidingTargets(pos *chess.Position, from chess.Square, colour chess.Colour, diagonal, straight bool) []chess.Square {
	var dirs [][2]int
	if diagonal {
		dirs = append(dirs, diagonalDirs...)
	}
	if straight {
		dirs = append(dirs, straightDirs...)
	}

	var targets []chess.Square
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target := pos.Get(to)
			if !target.IsEmpty() {
				if target.Colour() != colour {
					targets = append(targets, to)
				}
				break // Blocked
			}
			targets = append(targets, to)
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return targets
}
