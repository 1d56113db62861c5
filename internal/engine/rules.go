package engine

import "github.com/lgbarn/fenboard/internal/chess"

// SeventyFiveMoveThreshold is the halfmove clock value of the seventy-five
// move rule.
const SeventyFiveMoveThreshold = 150

// RuleReport summarises the draw-related conditions of a position. The
// engine only reports them; it never ends a game.
type RuleReport struct {
	// FiftyMoveRule is true once 50 moves (100 half-moves) have been made
	// without a pawn move or capture.
	FiftyMoveRule bool

	// SeventyFiveMoveRule is true once 75 moves (150 half-moves) have been
	// made without a pawn move or capture.
	SeventyFiveMoveRule bool

	// InsufficientMaterial is true if neither side has mating material.
	InsufficientMaterial bool

	// MaterialOdds is true if the board does not carry the standard
	// starting material.
	MaterialOdds bool
}

// AnalyzeRules reports the draw rule conditions of a position.
func AnalyzeRules(pos *chess.Position) RuleReport {
	return RuleReport{
		FiftyMoveRule:        pos.HalfmoveClock >= FiftyMoveThreshold,
		SeventyFiveMoveRule:  pos.HalfmoveClock >= SeventyFiveMoveThreshold,
		InsufficientMaterial: HasInsufficientMaterial(pos),
		MaterialOdds:         !HasStandardMaterial(pos),
	}
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same colour bishops)
func HasInsufficientMaterial(pos *chess.Position) bool {
	var minors [2][]chess.PieceType
	var bishopOnLight [2]bool

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Get(sq)
		if piece.IsEmpty() {
			continue
		}

		switch piece.Type() {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		case chess.Bishop:
			bishopOnLight[piece.Colour()] = isLightSquare(sq)
		}
		minors[piece.Colour()] = append(minors[piece.Colour()], piece.Type())
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1:
		return true
	case len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0] == chess.Bishop && black[0] == chess.Bishop &&
			bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
// a8 and h1 are light.
func isLightSquare(sq chess.Square) bool {
	return (sq.Rank()+sq.File())%2 == 0
}

// standardMaterial is the piece count of each side in the initial position.
var standardMaterial = map[chess.PieceType]int{
	chess.Pawn:   8,
	chess.Knight: 2,
	chess.Bishop: 2,
	chess.Rook:   2,
	chess.Queen:  1,
	chess.King:   1,
}

// HasStandardMaterial checks if both sides carry exactly the starting material.
func HasStandardMaterial(pos *chess.Position) bool {
	var counts [2]map[chess.PieceType]int
	counts[chess.White] = make(map[chess.PieceType]int)
	counts[chess.Black] = make(map[chess.PieceType]int)

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if piece := pos.Get(sq); !piece.IsEmpty() {
			counts[piece.Colour()][piece.Type()]++
		}
	}

	for _, side := range counts {
		if len(side) != len(standardMaterial) {
			return false
		}
		for pt, want := range standardMaterial {
			if side[pt] != want {
				return false
			}
		}
	}
	return true
}
