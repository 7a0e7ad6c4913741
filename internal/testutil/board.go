package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/arkoted-go/internal/chess"
)

// pieceLetters maps diagram letters to piece kinds. Uppercase is White.
var pieceLetters = map[byte]chess.Piece{
	'p': chess.Pawn, 'k': chess.King, 'q': chess.Queen,
	'b': chess.Bishop, 'n': chess.Knight, 'r': chess.Rook,
}

// BoardFromDiagram builds a board from eight rows of eight characters, row 0
// first, in the format Board.String prints: uppercase White, lowercase Black,
// '.' empty. Spaces are ignored.
func BoardFromDiagram(t *testing.T, rows ...string) *chess.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}

	board := chess.NewBoard()
	for row, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != chess.BoardSize {
			t.Fatalf("diagram row %d %q has %d squares", row, line, len(line))
		}
		for col := 0; col < chess.BoardSize; col++ {
			c := line[col]
			if c == '.' {
				continue
			}
			lower := c | 0x20
			piece, ok := pieceLetters[lower]
			if !ok {
				t.Fatalf("diagram row %d: unknown piece %q", row, c)
			}
			colour := chess.Black
			if c != lower {
				colour = chess.White
			}
			board.SetPiece(chess.Coord(col, row), chess.Encode(colour, piece))
		}
	}
	return board
}

// Square parses an algebraic square name, failing the test on error.
func Square(t *testing.T, name string) chess.Coordinate {
	t.Helper()
	c, err := chess.ParseAlgebraic(name)
	if err != nil {
		t.Fatalf("Square(%q): %v", name, err)
	}
	return c
}

// Squares parses several algebraic square names.
func Squares(t *testing.T, names ...string) []chess.Coordinate {
	t.Helper()
	squares := make([]chess.Coordinate, 0, len(names))
	for _, name := range names {
		squares = append(squares, Square(t, name))
	}
	return squares
}
