// Package output renders positions as text diagrams and JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/engine"
)

// PositionWriter is the interface for writing positions to output.
// Different implementations handle different output formats (diagram, JSON).
type PositionWriter interface {
	// WritePosition writes a single position, with optional highlighted
	// squares, to the output.
	WritePosition(pos *chess.Position, highlights ...chess.Square) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// DiagramWriter writes positions as text diagrams followed by their FEN.
type DiagramWriter struct {
	w io.Writer
}

// NewDiagramWriter creates a new diagram writer.
func NewDiagramWriter(w io.Writer) *DiagramWriter {
	return &DiagramWriter{w: w}
}

// WritePosition writes a diagram, the side to move and the FEN.
func (dw *DiagramWriter) WritePosition(pos *chess.Position, highlights ...chess.Square) error {
	if err := WriteDiagram(dw.w, pos, highlights...); err != nil {
		return err
	}
	_, err := fmt.Fprintf(dw.w, "\n%s to move\n%s\n", pos.ActiveColour, engine.PositionToFEN(pos))
	return err
}

// Flush is a no-op; diagrams are written immediately.
func (dw *DiagramWriter) Flush() error {
	return nil
}

// Close closes the diagram writer.
func (dw *DiagramWriter) Close() error {
	return nil
}

// JSONPosition is a position view with the squares highlighted for it.
type JSONPosition struct {
	*PositionJSON
	Highlights []string `json:"highlights,omitempty"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	positions []*JSONPosition
	single    bool // If true, write each position immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches positions and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each position immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WritePosition buffers a position for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WritePosition(pos *chess.Position, highlights ...chess.Square) error {
	jp := &JSONPosition{PositionJSON: NewPositionJSON(pos)}
	for _, sq := range highlights {
		jp.Highlights = append(jp.Highlights, sq.String())
	}

	if jw.single {
		return jw.encode(jp)
	}
	jw.positions = append(jw.positions, jp)
	return nil
}

// Flush writes all buffered positions as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.positions) == 0 {
		return nil
	}
	err := jw.encode(&JSONOutput{Positions: jw.positions})
	jw.positions = jw.positions[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v any) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
