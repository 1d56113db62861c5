package engine

import "github.com/lgbarn/fenboard/internal/chess"

// castleGeometry describes the fixed squares involved in one castling move.
type castleGeometry struct {
	right    chess.CastlingRights
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
}

var castles = map[chess.CastlingRights]castleGeometry{
	chess.WhiteKingside:  {chess.WhiteKingside, chess.E1, chess.G1, chess.H1, chess.F1},
	chess.WhiteQueenside: {chess.WhiteQueenside, chess.E1, chess.C1, chess.A1, chess.D1},
	chess.BlackKingside:  {chess.BlackKingside, chess.E8, chess.G8, chess.H8, chess.F8},
	chess.BlackQueenside: {chess.BlackQueenside, chess.E8, chess.C8, chess.A8, chess.D8},
}

// castleFor returns the geometry of a colour castling on side.
func castleFor(colour chess.Colour, side chess.CastleSide) castleGeometry {
	return castles[side.Right(colour)]
}

// castlingTargets returns the king destinations of every castling move the
// king on from may make. Attacked squares are not considered.
func castlingTargets(pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Square {
	var targets []chess.Square
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		c := castleFor(colour, side)
		if from != c.kingFrom || !pos.Castling.Has(c.right) {
			continue
		}
		if pos.Get(c.rookFrom) != chess.MakePiece(colour, chess.Rook) {
			continue
		}
		if !pathClear(pos, c.kingFrom, c.rookFrom) {
			continue
		}
		targets = append(targets, c.kingTo)
	}
	return targets
}

// pathClear reports whether every square strictly between two squares on
// the same rank is empty.
func pathClear(pos *chess.Position, from, to chess.Square) bool {
	step := chess.Square(1)
	if to < from {
		step = -1
	}
	for sq := from + step; sq != to; sq += step {
		if !pos.Get(sq).IsEmpty() {
			return false
		}
	}
	return true
}

// castleSide identifies a king move of two files along its home rank as a
// castling move.
func castleSide(piece chess.Piece, from, to chess.Square) chess.CastleSide {
	if piece.Type() != chess.King || from.Rank() != to.Rank() {
		return chess.NoCastle
	}
	switch int(to) - int(from) {
	case 2:
		return chess.Kingside
	case -2:
		return chess.Queenside
	}
	return chess.NoCastle
}

// moveCastlingRook relocates the rook of a castling move.
func moveCastlingRook(pos *chess.Position, colour chess.Colour, side chess.CastleSide) {
	c := castleFor(colour, side)
	rook := pos.Get(c.rookFrom)
	pos.Set(c.rookFrom, chess.Empty)
	pos.Set(c.rookTo, rook)
}

// revokeCastlingRights removes the rights invalidated by a move from -> to:
// every right of the side whose king moved, and the right tied to any rook
// home corner that was vacated or captured on.
func revokeCastlingRights(pos *chess.Position, piece chess.Piece, from, to chess.Square) {
	if piece.Type() == chess.King {
		pos.Castling = pos.Castling.Without(chess.SideRights(piece.Colour()))
	}
	for right, c := range castles {
		if from == c.rookFrom || to == c.rookFrom {
			pos.Castling = pos.Castling.Without(right)
		}
	}
}
