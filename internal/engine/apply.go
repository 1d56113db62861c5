package engine

import (
	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/errors"
)

// FiftyMoveThreshold is the halfmove clock value at which the fifty-move
// rule may be claimed.
const FiftyMoveThreshold = 100

// MoveResult describes the effects of an applied move.
type MoveResult struct {
	From      chess.Square
	To        chess.Square
	Piece     chess.Piece // The piece that moved, before any promotion
	Captured  chess.Piece // chess.Empty when nothing was captured
	Castle    chess.CastleSide
	EnPassant bool // The capture was en passant
	Promotion chess.PieceType
	// DoublePush is set when a pawn advanced two squares and created an en
	// passant target.
	DoublePush bool
	// FiftyMoveRule is set when the halfmove clock reached FiftyMoveThreshold.
	// The game is not ended by the engine.
	FiftyMoveRule bool
}

// IsCapture reports whether the move captured a piece.
func (r MoveResult) IsCapture() bool {
	return !r.Captured.IsEmpty()
}

// Move returns the move in coordinate form.
func (r MoveResult) Move() Move {
	return Move{From: r.From, To: r.To, Promotion: r.Promotion}
}

// ApplyMove moves the piece on from to to, updating every part of the
// position. The move must be one of GenerateTargets(pos, from). A pawn
// reaching the last rank needs a promotion piece; promotion is ignored for
// every other move.
//
// On error the position is left unchanged and the error is a *errors.MoveError.
func ApplyMove(pos *chess.Position, from, to chess.Square, promotion chess.PieceType) (MoveResult, error) {
	if !IsTarget(pos, from, to) {
		return MoveResult{}, &errors.MoveError{Kind: errors.IllegalTarget, From: from.String(), To: to.String()}
	}

	piece := pos.Get(from)
	colour := piece.Colour()
	isPawn := piece.Type() == chess.Pawn

	// Validate promotion before touching the position
	promoting := isPawn && isPromotion(to, colour)
	if promoting {
		if promotion == chess.NoPieceType {
			return MoveResult{}, &errors.MoveError{Kind: errors.PromotionRequired, From: from.String(), To: to.String()}
		}
		if !promotion.IsPromotable() {
			return MoveResult{}, &errors.MoveError{
				Kind:   errors.InvalidPromotion,
				From:   from.String(),
				To:     to.String(),
				Detail: promotion.String(),
			}
		}
	}

	result := MoveResult{
		From:     from,
		To:       to,
		Piece:    piece,
		Captured: pos.Get(to),
		Castle:   castleSide(piece, from, to),
	}

	if isPawn && isEnPassantCapture(pos, from, to, colour) {
		victim := enPassantVictim(to, colour)
		result.EnPassant = true
		result.Captured = pos.Get(victim)
		pos.Set(victim, chess.Empty)
	}

	placed := piece
	if promoting {
		placed = chess.MakePiece(colour, promotion)
		result.Promotion = promotion
	}
	pos.Set(from, chess.Empty)
	pos.Set(to, placed)

	if result.Castle != chess.NoCastle {
		moveCastlingRook(pos, colour, result.Castle)
	}
	revokeCastlingRights(pos, piece, from, to)

	pos.ClearEnPassant()
	if isPawn {
		if skipped, ok := isDoublePush(from, to); ok {
			pos.SetEnPassant(skipped)
			result.DoublePush = true
		}
	}

	if isPawn || result.IsCapture() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if colour == chess.Black {
		pos.FullmoveNumber++
	}
	pos.ActiveColour = colour.Opposite()

	result.FiftyMoveRule = pos.HalfmoveClock >= FiftyMoveThreshold
	return result, nil
}

// MakeMove applies a coordinate move to pos.
func MakeMove(pos *chess.Position, m Move) (MoveResult, error) {
	return ApplyMove(pos, m.From, m.To, m.Promotion)
}
