// Package engine provides move generation, move application and FEN
// conversion for chess positions.
package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// numFENFields is the number of space separated fields in a FEN string.
const numFENFields = 6

// NewPositionFromFEN creates a position from a FEN string.
// The returned error is always a *errors.FormatError.
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != numFENFields {
		return nil, &errors.FormatError{
			Kind:   errors.FieldCount,
			Detail: "expected " + strconv.Itoa(numFENFields) + " fields, got " + strconv.Itoa(len(parts)),
		}
	}

	pos := chess.NewPosition()

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}
	if err := parseActiveColour(pos, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(pos, parts[4], parts[5]); err != nil {
		return nil, err
	}

	return pos, nil
}

// parsePiecePlacement parses the piece placement field of a FEN string.
func parsePiecePlacement(pos *chess.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.FormatError{
			Kind:   errors.BadPlacement,
			Field:  "placement",
			Value:  placement,
			Detail: "expected 8 ranks, got " + strconv.Itoa(len(ranks)),
		}
	}

	for rank, text := range ranks {
		file := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
			} else {
				piece, ok := chess.PieceFromLetter(c)
				if !ok {
					return &errors.FormatError{
						Kind:   errors.BadPlacement,
						Field:  "placement",
						Value:  text,
						Detail: "invalid piece character " + strconv.QuoteRune(rune(c)),
					}
				}
				if file < chess.BoardSize {
					pos.Set(chess.SquareAt(rank, file), piece)
				}
				file++
			}
			if file > chess.BoardSize {
				break
			}
		}
		if file != chess.BoardSize {
			return &errors.FormatError{
				Kind:   errors.BadPlacement,
				Field:  "placement",
				Value:  text,
				Detail: "rank " + strconv.Itoa(chess.BoardSize-rank) + " does not describe 8 files",
			}
		}
	}
	return nil
}

// parseActiveColour parses the side to move field.
func parseActiveColour(pos *chess.Position, field string) error {
	switch field {
	case "w":
		pos.ActiveColour = chess.White
	case "b":
		pos.ActiveColour = chess.Black
	default:
		return &errors.FormatError{Kind: errors.BadActiveColour, Field: "active colour", Value: field}
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Letters may
// appear in any order but each at most once.
func parseCastlingRights(pos *chess.Position, field string) error {
	pos.Castling = chess.NoCastling
	if field == "-" {
		return nil
	}

	for i := 0; i < len(field); i++ {
		right, ok := chess.CastlingRightFromLetter(field[i])
		if !ok {
			return &errors.FormatError{
				Kind:   errors.BadCastling,
				Field:  "castling",
				Value:  field,
				Detail: "unexpected character " + strconv.QuoteRune(rune(field[i])),
			}
		}
		if pos.Castling.Has(right) {
			return &errors.FormatError{
				Kind:   errors.BadCastling,
				Field:  "castling",
				Value:  field,
				Detail: "duplicate " + strconv.QuoteRune(rune(field[i])),
			}
		}
		pos.Castling |= right
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, field string) error {
	pos.ClearEnPassant()
	if field == "-" {
		return nil
	}

	sq, err := chess.ParseSquare(field)
	if err != nil {
		return &errors.FormatError{Kind: errors.BadSquare, Field: "en passant", Value: field}
	}
	if sq.Rank() != 2 && sq.Rank() != 5 {
		return &errors.FormatError{
			Kind:   errors.BadSquare,
			Field:  "en passant",
			Value:  field,
			Detail: "target must be on rank 3 or 6",
		}
	}
	pos.SetEnPassant(sq)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, halfmove, fullmove string) error {
	hm, err := strconv.ParseUint(halfmove, 10, 31)
	if err != nil {
		return &errors.FormatError{Kind: errors.BadNumber, Field: "halfmove", Value: halfmove}
	}
	fm, err := strconv.ParseUint(fullmove, 10, 31)
	if err != nil || fm == 0 {
		return &errors.FormatError{Kind: errors.BadNumber, Field: "fullmove", Value: fullmove}
	}
	pos.HalfmoveClock = int(hm)
	pos.FullmoveNumber = int(fm)
	return nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePlacement(&sb, pos)
	sb.WriteByte(' ')
	writeActiveColour(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullmoveNumber))

	return sb.String()
}

// writePiecePlacement writes the piece placement to the builder.
func writePiecePlacement(sb *strings.Builder, pos *chess.Position) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Get(chess.SquareAt(rank, file))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeActiveColour writes the side to move to the builder.
func writeActiveColour(sb *strings.Builder, pos *chess.Position) {
	if pos.ActiveColour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	if sq, ok := pos.EnPassantTarget(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialPosition creates a position with the standard starting layout.
func NewInitialPosition() *chess.Position {
	pos := chess.NewPosition()
	pos.SetupInitialPosition()
	return pos
}

// NormalizeFEN decodes and re-encodes a FEN string, returning its canonical form.
func NormalizeFEN(fen string) (string, error) {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		return "", err
	}
	return PositionToFEN(pos), nil
}
