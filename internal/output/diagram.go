package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/fenboard/internal/chess"
)

// WriteDiagram writes a text diagram of pos with rank 8 at the top.
// Highlighted squares are drawn in brackets.
//
//	8  r  n  b  q  k  b  n  r
//	...
//	1  R  N  B  Q  K  B  N  R
//	   a  b  c  d  e  f  g  h
func WriteDiagram(w io.Writer, pos *chess.Position, highlights ...chess.Square) error {
	var marked [chess.NumSquares]bool
	for _, sq := range highlights {
		if sq.Valid() {
			marked[sq] = true
		}
	}

	bw := bufio.NewWriter(w)
	var line strings.Builder
	for rank := 0; rank < chess.BoardSize; rank++ {
		line.Reset()
		fmt.Fprintf(&line, "%d ", chess.BoardSize-rank)
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.SquareAt(rank, file)
			letter := pos.Get(sq).Letter()
			if marked[sq] {
				fmt.Fprintf(&line, "[%c]", letter)
			} else {
				fmt.Fprintf(&line, " %c ", letter)
			}
		}
		fmt.Fprintln(bw, strings.TrimRight(line.String(), " "))
	}

	line.Reset()
	line.WriteString("  ")
	for file := 0; file < chess.BoardSize; file++ {
		fmt.Fprintf(&line, " %c ", 'a'+file)
	}
	fmt.Fprintln(bw, strings.TrimRight(line.String(), " "))

	return bw.Flush()
}
