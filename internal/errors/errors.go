// Package errors provides sentinel errors and error types for fenboard.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates the movement rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameNotFound indicates an unknown game session.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidSquare indicates a square name or index off the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrNoSelection indicates a second click without a selected source square.
	ErrNoSelection = errors.New("no square selected")
)

// FormatErrorKind classifies a malformed FEN string.
type FormatErrorKind int

const (
	FieldCount FormatErrorKind = iota
	BadPlacement
	BadActiveColour
	BadCastling
	BadSquare
	BadNumber
)

// String returns the string representation of a format error kind.
func (k FormatErrorKind) String() string {
	switch k {
	case FieldCount:
		return "wrong field count"
	case BadPlacement:
		return "bad piece placement"
	case BadActiveColour:
		return "bad active colour"
	case BadCastling:
		return "bad castling field"
	case BadSquare:
		return "bad en passant square"
	case BadNumber:
		return "bad number"
	default:
		return "unknown format error"
	}
}

// FormatError describes why a FEN string was rejected. It unwraps to
// ErrInvalidFEN and matches any *FormatError of the same Kind with errors.Is().
type FormatError struct {
	Kind   FormatErrorKind
	Field  string // FEN field name, e.g. "placement" or "halfmove"
	Value  string // The offending text (may be empty)
	Detail string // Extra context (may be empty)
}

// Error returns a formatted error message including all available context.
func (e *FormatError) Error() string {
	msg := e.Kind.String()
	if e.Field != "" {
		msg = fmt.Sprintf("%s in %s", msg, e.Field)
	}
	if e.Value != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Value)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return fmt.Sprintf("%s: %v", msg, ErrInvalidFEN)
}

// Unwrap returns ErrInvalidFEN.
func (e *FormatError) Unwrap() error {
	return ErrInvalidFEN
}

// Is matches another *FormatError with the same Kind.
func (e *FormatError) Is(target error) bool {
	t, ok := target.(*FormatError)
	return ok && t.Kind == e.Kind
}

// MoveErrorKind classifies a rejected move.
type MoveErrorKind int

const (
	IllegalTarget MoveErrorKind = iota
	PromotionRequired
	InvalidPromotion
)

// String returns the string representation of a move error kind.
func (k MoveErrorKind) String() string {
	switch k {
	case IllegalTarget:
		return "target not reachable"
	case PromotionRequired:
		return "promotion piece required"
	case InvalidPromotion:
		return "invalid promotion piece"
	default:
		return "unknown move error"
	}
}

// MoveError describes why a move was rejected. The position is never
// modified when a MoveError is returned. It unwraps to ErrIllegalMove.
type MoveError struct {
	Kind   MoveErrorKind
	From   string // Source square in algebraic notation
	To     string // Target square in algebraic notation
	Detail string
}

// Error returns a formatted error message.
func (e *MoveError) Error() string {
	msg := e.Kind.String()
	if e.From != "" || e.To != "" {
		msg = fmt.Sprintf("%s%s: %s", e.From, e.To, msg)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Detail)
	}
	return fmt.Sprintf("%s: %v", msg, ErrIllegalMove)
}

// Unwrap returns ErrIllegalMove.
func (e *MoveError) Unwrap() error {
	return ErrIllegalMove
}

// Is matches another *MoveError with the same Kind.
func (e *MoveError) Is(target error) bool {
	t, ok := target.(*MoveError)
	return ok && t.Kind == e.Kind
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
// It forwards to the standard library so callers need only one import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
