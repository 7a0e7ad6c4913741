package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/arkoted-go/internal/errors"
)

// Board is the single source of truth for what stands where: a dense array of
// 64 piece codes plus a position index from piece code to the squares holding it.
// Every write goes through SetPiece so the two never diverge.
//
// Board is not safe for concurrent use.
type Board struct {
	squares [NumSquares]PieceCode

	// index[code] holds every square currently storing code. index[Empty] is unused.
	index [NumCodes]SquareSet
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewStandardBoard creates a board holding the standard starting position.
func NewStandardBoard() *Board {
	b := NewBoard()
	b.InitStandardPosition()
	return b
}

// backRank lists the back-row pieces from column 0 to column 7.
var backRank = [BoardSize]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Clear empties every square and the position index.
func (b *Board) Clear() {
	b.squares = [NumSquares]PieceCode{}
	b.index = [NumCodes]SquareSet{}
}

// InitStandardPosition resets the board to the standard chess starting array.
// Black occupies rows 0 and 1, White rows 6 and 7.
func (b *Board) InitStandardPosition() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b.SetPiece(Coord(col, BlackBackRow), B(backRank[col]))
		b.SetPiece(Coord(col, BlackPawnRow), B(Pawn))
		b.SetPiece(Coord(col, WhitePawnRow), W(Pawn))
		b.SetPiece(Coord(col, WhiteBackRow), W(backRank[col]))
	}
}

// Code returns the raw code stored at c.
func (b *Board) Code(c Coordinate) PieceCode {
	return b.squares[c.Index()]
}

// SquareAt decodes the occupant of c. A stored code that does not decode is a
// broken invariant and panics with ErrInvalidPieceCode.
func (b *Board) SquareAt(c Coordinate) Square {
	code := b.squares[c.Index()]
	if code == Empty {
		return Square{Coord: c, Empty: true}
	}
	colour, piece, err := Decode(code)
	if err != nil {
		panic(errors.Wrapf(err, "square %v", c))
	}
	return Square{Coord: c, Colour: colour, Piece: piece}
}

// IsEmpty reports whether c holds no piece.
func (b *Board) IsEmpty(c Coordinate) bool {
	return b.squares[c.Index()] == Empty
}

// SetPiece overwrites c with code, moving c out of the previous occupant's
// index bucket and into the new one.
func (b *Board) SetPiece(c Coordinate, code PieceCode) {
	i := c.Index()
	prev := b.squares[i]
	if prev != Empty {
		// Removing an absent member is a no-op.
		b.index[prev&codeMask] = b.index[prev&codeMask].Remove(i)
	}
	b.squares[i] = code
	if code != Empty {
		b.index[code&codeMask] = b.index[code&codeMask].Add(i)
	}
}

// MovePiece moves whatever stands on src to dest, overwriting dest.
// Capture semantics belong to the caller.
func (b *Board) MovePiece(src, dest Coordinate) {
	code := b.squares[src.Index()]
	b.SetPiece(src, Empty)
	b.SetPiece(dest, code)
}

// PiecesOf returns the squares holding the given colour and piece, in index order.
func (b *Board) PiecesOf(colour Colour, piece Piece) []Coordinate {
	return b.Occupied(colour, piece).Coordinates()
}

// Occupied returns the index bucket for the given colour and piece.
// It returns an empty set for an invalid colour or piece.
func (b *Board) Occupied(colour Colour, piece Piece) SquareSet {
	if !colour.Valid() || !piece.Valid() {
		return 0
	}
	return b.index[Encode(colour, piece)]
}

// KingSquare locates the king of colour through the position index.
func (b *Board) KingSquare(colour Colour) (Coordinate, error) {
	kings := b.Occupied(colour, King)
	if kings == 0 {
		return Coordinate{}, errors.Wrapf(errors.ErrNoKingFound, "%v", colour)
	}
	return kings.Coordinates()[0], nil
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for _, code := range b.squares {
		if code != Empty {
			n++
		}
	}
	return n
}

// Verify checks that the position index matches the square array exactly.
func (b *Board) Verify() error {
	var want [NumCodes]SquareSet
	for i, code := range b.squares {
		if code == Empty {
			continue
		}
		if _, _, err := Decode(code); err != nil {
			return errors.Wrapf(err, "square %v", FromIndex(i))
		}
		want[code] = want[code].Add(i)
	}
	for code := range want {
		if code == int(Empty) {
			continue
		}
		if want[code] != b.index[code] {
			return fmt.Errorf("position index for %v holds %v, board holds %v",
				PieceCode(code), b.index[code].Coordinates(), want[code].Coordinates())
		}
	}
	if b.index[Empty] != 0 {
		return fmt.Errorf("position index has entries for empty squares: %v", b.index[Empty].Coordinates())
	}
	return nil
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// String renders the board as eight lines, row 0 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.squares[Coord(col, row).Index()].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
