package chess

// Position represents a chess position with all state needed to continue play.
// A Position is a plain value: copying it yields an independent position.
type Position struct {
	// The board squares, indexed a8 = 0 through h1 = 63.
	Board [NumSquares]Piece

	// Who has the next move.
	ActiveColour Colour

	// Castling options still available to either side.
	Castling CastlingRights

	// Is EnPassant capture possible? If so then EPSquare holds the square
	// the last double-pushed pawn skipped over.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The current move number, incremented after Black moves.
	FullmoveNumber int
}

// NewPosition creates an empty board with White to move.
func NewPosition() *Position {
	return &Position{
		ActiveColour:   White,
		EPSquare:       NoSquare,
		FullmoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (p *Position) SetupInitialPosition() {
	p.Board = [NumSquares]Piece{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		p.Board[SquareAt(0, file)] = B(backRank[file])
		p.Board[SquareAt(1, file)] = B(Pawn)
		p.Board[SquareAt(6, file)] = W(Pawn)
		p.Board[SquareAt(7, file)] = W(backRank[file])
	}

	p.ActiveColour = White
	p.Castling = AllCastling
	p.EnPassant = false
	p.EPSquare = NoSquare
	p.HalfmoveClock = 0
	p.FullmoveNumber = 1
}

// Get returns the piece on a square, or Empty for an off-board square.
func (p *Position) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return p.Board[sq]
}

// Set places a piece on a square. Off-board squares are ignored.
func (p *Position) Set(sq Square, piece Piece) {
	if sq.Valid() {
		p.Board[sq] = piece
	}
}

// EnPassantTarget returns the en passant target square, if any.
func (p *Position) EnPassantTarget() (Square, bool) {
	if !p.EnPassant {
		return NoSquare, false
	}
	return p.EPSquare, true
}

// SetEnPassant records sq as the en passant target.
func (p *Position) SetEnPassant(sq Square) {
	p.EnPassant = true
	p.EPSquare = sq
}

// ClearEnPassant removes the en passant target.
func (p *Position) ClearEnPassant() {
	p.EnPassant = false
	p.EPSquare = NoSquare
}

// FindKing returns the square of the given colour's king.
func (p *Position) FindKing(colour Colour) (Square, bool) {
	king := MakePiece(colour, King)
	for sq := Square(0); sq < NumSquares; sq++ {
		if p.Board[sq] == king {
			return sq, true
		}
	}
	return NoSquare, false
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := &Position{}
	*newPos = *p
	return newPos
}

// Equal reports whether two positions hold identical state.
func (p *Position) Equal(other *Position) bool {
	if p == nil || other == nil {
		return p == other
	}
	a, b := *p, *other
	if !a.EnPassant {
		a.EPSquare = NoSquare
	}
	if !b.EnPassant {
		b.EPSquare = NoSquare
	}
	return a == b
}
