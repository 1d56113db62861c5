package chess

import "fmt"

// Square is a board index 0-63. Index 0 is a8 and index 63 is h1:
// rank index = sq / 8 (0 = rank 8), file index = sq % 8 (0 = file a).
type Square int

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Named squares, in index order.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// NoSquare is returned where no valid square exists.
const NoSquare Square = -1

// SquareAt returns the square at the given rank and file indices, or NoSquare
// when either index is off the board.
func SquareAt(rank, file int) Square {
	if rank < 0 || rank >= BoardSize || file < 0 || file >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

// Rank returns the rank index, 0 for rank 8 through 7 for rank 1.
func (sq Square) Rank() int {
	return int(sq) / BoardSize
}

// File returns the file index, 0 for file a through 7 for file h.
func (sq Square) File() int {
	return int(sq) % BoardSize
}

// Offset steps dr ranks and df files away from sq. The second result is false
// when the step leaves the board, so a move can never wrap around an edge.
func (sq Square) Offset(dr, df int) (Square, bool) {
	to := SquareAt(sq.Rank()+dr, sq.File()+df)
	return to, to != NoSquare
}

// String returns the algebraic name of the square, e.g. "e4".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + sq.File()), byte(RankBase + BoardSize - 1 - sq.Rank())})
}

// ParseSquare converts an algebraic name such as "e4" to a square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	file := int(s[0]) - FileBase
	rank := BoardSize - 1 - (int(s[1]) - RankBase)
	sq := SquareAt(rank, file)
	if sq == NoSquare {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for constants and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// BackRank returns the rank index of a colour's home rank.
func BackRank(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PromotionRank returns the rank index a pawn of the colour promotes on.
func PromotionRank(colour Colour) int {
	return BackRank(colour.Opposite())
}

// PawnStartRank returns the rank index a pawn of the colour starts on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return BoardSize - 2
	}
	return 1
}

// EnPassantRank returns the rank index of the en passant targets a pawn of
// the colour may capture onto: the square the opponent's double push skipped.
func EnPassantRank(colour Colour) int {
	opp := colour.Opposite()
	return PawnStartRank(opp) + opp.Forward()
}
