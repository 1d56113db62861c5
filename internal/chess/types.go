// Package chess provides core chess types: colours, pieces, squares and positions.
package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank step a pawn of this colour advances by.
// Rank indices grow towards rank 1, so White moves towards lower indices.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// PieceType represents an uncoloured chess piece.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single upper-case letter of a piece type.
func (t PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// IsPromotable reports whether a pawn may promote to this piece type.
func (t PieceType) IsPromotable() bool {
	return t == Knight || t == Bishop || t == Rook || t == Queen
}

// ParsePieceType converts a piece letter of either case to a piece type.
func ParsePieceType(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// Piece is a coloured piece packed into a byte: the type in the upper bits and
// the colour in the lowest bit. The zero value is an empty square.
type Piece uint8

// Empty marks an unoccupied square.
const Empty Piece = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, t PieceType) Piece {
	if t == NoPieceType {
		return Empty
	}
	return Piece(uint8(t)<<PieceShift | uint8(colour))
}

// W creates a white piece.
func W(t PieceType) Piece {
	return MakePiece(White, t)
}

// B creates a black piece.
func B(t PieceType) Piece {
	return MakePiece(Black, t)
}

// Type extracts the piece type.
func (p Piece) Type() PieceType {
	return PieceType(p >> PieceShift)
}

// Colour extracts the colour. The result is meaningless for Empty.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// IsEmpty reports whether the value marks an unoccupied square.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Is reports whether p is a piece of the given colour and type.
func (p Piece) Is(colour Colour, t PieceType) bool {
	return p != Empty && p.Colour() == colour && p.Type() == t
}

// Letter returns the FEN letter: upper case for White, lower case for Black,
// '.' for an empty square.
func (p Piece) Letter() byte {
	if p == Empty {
		return '.'
	}
	letter := p.Type().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p == Empty {
		return "Empty"
	}
	return p.Colour().String() + " " + p.Type().String()
}

// PieceFromLetter converts a FEN letter to a coloured piece.
func PieceFromLetter(c byte) (Piece, bool) {
	t := ParsePieceType(c)
	if t == NoPieceType {
		return Empty, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return MakePiece(colour, t), true
}

// CastlingRights is a set of the four castling options.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// castlingOrder is the canonical FEN order of the rights.
var castlingOrder = []struct {
	right  CastlingRights
	letter byte
}{
	{WhiteKingside, 'K'},
	{WhiteQueenside, 'Q'},
	{BlackKingside, 'k'},
	{BlackQueenside, 'q'},
}

// Has reports whether every right in r is held.
func (c CastlingRights) Has(r CastlingRights) bool {
	return r != 0 && c&r == r
}

// Without returns the set with the given rights removed.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// String returns the FEN castling field in canonical KQkq order, or "-".
func (c CastlingRights) String() string {
	var buf []byte
	for _, o := range castlingOrder {
		if c.Has(o.right) {
			buf = append(buf, o.letter)
		}
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}

// CastlingRightFromLetter converts one of K, Q, k, q to its right.
func CastlingRightFromLetter(c byte) (CastlingRights, bool) {
	for _, o := range castlingOrder {
		if o.letter == c {
			return o.right, true
		}
	}
	return NoCastling, false
}

// SideRights returns both castling rights of a colour.
func SideRights(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside | WhiteQueenside
	}
	return BlackKingside | BlackQueenside
}

// CastleSide identifies the wing a castling move is made on.
type CastleSide uint8

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns the string representation of a castle side.
func (s CastleSide) String() string {
	switch s {
	case Kingside:
		return "kingside"
	case Queenside:
		return "queenside"
	default:
		return ""
	}
}

// Right returns the castling right a colour needs to castle on this side.
func (s CastleSide) Right(colour Colour) CastlingRights {
	switch {
	case s == Kingside && colour == White:
		return WhiteKingside
	case s == Queenside && colour == White:
		return WhiteQueenside
	case s == Kingside:
		return BlackKingside
	case s == Queenside:
		return BlackQueenside
	}
	return NoCastling
}
