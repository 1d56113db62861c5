package chess

import (
	"testing"
)

func TestPiece_Encoding(t *testing.T) {
	tests := []struct {
		letter byte
		colour Colour
		typ    PieceType
	}{
		{'P', White, Pawn},
		{'N', White, Knight},
		{'B', White, Bishop},
		{'R', White, Rook},
		{'Q', White, Queen},
		{'K', White, King},
		{'p', Black, Pawn},
		{'n', Black, Knight},
		{'b', Black, Bishop},
		{'r', Black, Rook},
		{'q', Black, Queen},
		{'k', Black, King},
	}

	for _, tt := range tests {
		t.Run(string(tt.letter), func(t *testing.T) {
			p, ok := PieceFromLetter(tt.letter)
			if !ok {
				t.Fatalf("PieceFromLetter(%q) not ok", tt.letter)
			}
			if p.Colour() != tt.colour || p.Type() != tt.typ {
				t.Errorf("PieceFromLetter(%q) = %v, want %v %v", tt.letter, p, tt.colour, tt.typ)
			}
			if got := p.Letter(); got != tt.letter {
				t.Errorf("Letter() = %q, want %q", got, tt.letter)
			}
			if p.IsEmpty() {
				t.Error("coloured piece reported as empty")
			}
		})
	}
}

func TestPieceFromLetter_Invalid(t *testing.T) {
	for _, c := range []byte{'x', '1', ' ', '/', 'E'} {
		if _, ok := PieceFromLetter(c); ok {
			t.Errorf("PieceFromLetter(%q) ok, want failure", c)
		}
	}
}

func TestMakePiece_NoType(t *testing.T) {
	if got := MakePiece(Black, NoPieceType); got != Empty {
		t.Errorf("MakePiece(Black, NoPieceType) = %v, want Empty", got)
	}
	if Empty.Letter() != '.' {
		t.Errorf("Empty.Letter() = %q, want '.'", Empty.Letter())
	}
}

func TestPieceType_IsPromotable(t *testing.T) {
	tests := []struct {
		typ  PieceType
		want bool
	}{
		{NoPieceType, false},
		{Pawn, false},
		{Knight, true},
		{Bishop, true},
		{Rook, true},
		{Queen, true},
		{King, false},
	}
	for _, tt := range tests {
		if got := tt.typ.IsPromotable(); got != tt.want {
			t.Errorf("%v.IsPromotable() = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestCastlingRights_String(t *testing.T) {
	tests := []struct {
		rights CastlingRights
		want   string
	}{
		{NoCastling, "-"},
		{AllCastling, "KQkq"},
		{BlackQueenside | WhiteKingside, "Kq"},
		{BlackKingside | BlackQueenside, "kq"},
		{WhiteQueenside, "Q"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.rights.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCastlingRights_HasWithout(t *testing.T) {
	r := AllCastling.Without(SideRights(White))
	if r.Has(WhiteKingside) || r.Has(WhiteQueenside) {
		t.Errorf("white rights still present in %v", r)
	}
	if !r.Has(BlackKingside | BlackQueenside) {
		t.Errorf("black rights missing from %v", r)
	}
	if r.Has(NoCastling) {
		t.Error("Has(NoCastling) should be false")
	}
}

func TestCastleSide_Right(t *testing.T) {
	tests := []struct {
		side   CastleSide
		colour Colour
		want   CastlingRights
	}{
		{Kingside, White, WhiteKingside},
		{Queenside, White, WhiteQueenside},
		{Kingside, Black, BlackKingside},
		{Queenside, Black, BlackQueenside},
		{NoCastle, White, NoCastling},
	}
	for _, tt := range tests {
		if got := tt.side.Right(tt.colour); got != tt.want {
			t.Errorf("%v.Right(%v) = %v, want %v", tt.side, tt.colour, got, tt.want)
		}
	}
}
