package hashing

import "github.com/lgbarn/fenboard/internal/chess"

// Zobrist keys, generated once from a fixed seed so keys are stable across runs.
var (
	zobristPiece      [2][chess.King + 1][chess.NumSquares]uint64
	zobristEnPassant  [chess.BoardSize]uint64 // One per file
	zobristCastling   [chess.AllCastling + 1]uint64
	zobristSideToMove uint64 // XOR when Black is to move
)

func init() {
	rng := newPRNG(0x98F107A2BEEF1234)

	for c := chess.White; c <= chess.Black; c++ {
		for pt := chess.Pawn; pt <= chess.King; pt++ {
			for sq := 0; sq < chess.NumSquares; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// prng is an xorshift64* generator.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// Key returns the Zobrist key of a position. It covers piece placement, side
// to move, castling rights and the en passant file; the clocks are ignored.
func Key(pos *chess.Position) uint64 {
	var key uint64
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if piece := pos.Get(sq); !piece.IsEmpty() {
			key ^= zobristPiece[piece.Colour()][piece.Type()][sq]
		}
	}
	if pos.ActiveColour == chess.Black {
		key ^= zobristSideToMove
	}
	key ^= zobristCastling[pos.Castling&chess.AllCastling]
	if ep, ok := pos.EnPassantTarget(); ok {
		key ^= zobristEnPassant[ep.File()]
	}
	return key
}

// WeakHash returns a cheap placement-only checksum, used as a second check
// when two keys collide.
func WeakHash(pos *chess.Position) uint32 {
	var h uint32
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if piece := pos.Get(sq); !piece.IsEmpty() {
			h += uint32(piece) * uint32(sq+1) * uint32(sq+7)
		}
	}
	return h
}
