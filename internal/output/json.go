package output

import (
	"strings"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/engine"
)

// PositionJSON is the JSON view of a position.
type PositionJSON struct {
	FEN string `json:"fen"`
	// Board holds the 64 squares from a8 to h1. Empty squares are "".
	Board         []string `json:"board"`
	Side          string   `json:"side"` // "white" or "black"
	Castling      string   `json:"castling"`
	EnPassant     string   `json:"en_passant,omitempty"`
	HalfmoveClock int      `json:"halfmove_clock"`
	Fullmove      int      `json:"fullmove"`
	FiftyMoveRule bool     `json:"fifty_move_rule"`
	InCheck       bool     `json:"in_check"`

	InsufficientMaterial bool `json:"insufficient_material,omitempty"`
}

// MoveResultJSON is the JSON view of an applied move.
type MoveResultJSON struct {
	UCI           string `json:"uci"`
	From          string `json:"from"`
	To            string `json:"to"`
	Piece         string `json:"piece"`
	Captured      string `json:"captured,omitempty"`
	Castle        string `json:"castle,omitempty"`
	EnPassant     bool   `json:"en_passant,omitempty"`
	Promotion     string `json:"promotion,omitempty"`
	DoublePush    bool   `json:"double_push,omitempty"`
	FiftyMoveRule bool   `json:"fifty_move_rule,omitempty"`
}

// NewPositionJSON converts a position to its JSON view.
func NewPositionJSON(pos *chess.Position) *PositionJSON {
	pj := &PositionJSON{
		FEN:           engine.PositionToFEN(pos),
		Board:         make([]string, chess.NumSquares),
		Side:          colourName(pos.ActiveColour),
		Castling:      pos.Castling.String(),
		HalfmoveClock: pos.HalfmoveClock,
		Fullmove:      pos.FullmoveNumber,
		InCheck:       engine.IsInCheck(pos, pos.ActiveColour),
	}

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if piece := pos.Get(sq); !piece.IsEmpty() {
			pj.Board[sq] = string(piece.Letter())
		}
	}

	if ep, ok := pos.EnPassantTarget(); ok {
		pj.EnPassant = ep.String()
	}

	rules := engine.AnalyzeRules(pos)
	pj.FiftyMoveRule = rules.FiftyMoveRule
	pj.InsufficientMaterial = rules.InsufficientMaterial

	return pj
}

// NewMoveResultJSON converts a move result to its JSON view.
func NewMoveResultJSON(r engine.MoveResult) *MoveResultJSON {
	mj := &MoveResultJSON{
		UCI:           r.Move().String(),
		From:          r.From.String(),
		To:            r.To.String(),
		Piece:         pieceName(r.Piece),
		Castle:        r.Castle.String(),
		EnPassant:     r.EnPassant,
		DoublePush:    r.DoublePush,
		FiftyMoveRule: r.FiftyMoveRule,
	}
	if r.IsCapture() {
		mj.Captured = pieceName(r.Captured)
	}
	if r.Promotion != chess.NoPieceType {
		mj.Promotion = strings.ToLower(r.Promotion.String())
	}
	return mj
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// pieceName returns e.g. "white knight".
func pieceName(p chess.Piece) string {
	return strings.ToLower(p.String())
}
