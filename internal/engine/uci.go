package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fenboard/internal/chess"
)

// Move is a move in coordinate notation: source, target and an optional
// promotion piece.
type Move struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.PieceType
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != chess.NoPieceType {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// ParseMove parses a coordinate move such as "e2e4" or "e7e8q". The
// promotion letter is case-insensitive. The move is not checked against any
// position.
func ParseMove(text string) (Move, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("invalid move %q: expected 4 or 5 characters", text)
	}

	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", text, err)
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", text, err)
	}

	m := Move{From: from, To: to}
	if len(text) == 5 {
		m.Promotion = chess.ParsePieceType(text[4])
		if m.Promotion == chess.NoPieceType {
			return Move{}, fmt.Errorf("invalid move %q: unknown promotion piece %q", text, text[4])
		}
	}
	return m, nil
}
