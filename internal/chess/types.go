// Package chess provides core chess types and the board state store.
package chess

import (
	"fmt"

	"github.com/lgbarn/arkoted-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
	NumColours
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return fmt.Sprintf("Colour(%d)", int(c))
}

// Valid reports whether c is White or Black.
func (c Colour) Valid() bool {
	return c == White || c == Black
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece kind.
type Piece int

// The numeric values are the 3-bit kind codes stored in a PieceCode.
const (
	NoPiece Piece = iota
	Pawn
	King
	Queen
	Bishop
	Knight
	Rook
)

// Pieces lists every piece kind in code order.
var Pieces = [...]Piece{Pawn, King, Queen, Bishop, Knight, Rook}

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"None", "Pawn", "King", "Queen", "Bishop", "Knight", "Rook"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'K', 'Q', 'B', 'N', 'R'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Valid reports whether p is one of the six piece kinds.
func (p Piece) Valid() bool {
	return p >= Pawn && p <= Rook
}

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// Home rows. Black starts on the low rows and White on the high rows.
const (
	BlackBackRow = 0
	BlackPawnRow = 1
	WhitePawnRow = BoardSize - 2
	WhiteBackRow = BoardSize - 1
)

// PawnHomeRow returns the row a colour's pawns start on.
func PawnHomeRow(colour Colour) int {
	if colour == White {
		return WhitePawnRow
	}
	return BlackPawnRow
}

// BackRow returns the row a colour's king and rooks start on.
func BackRow(colour Colour) int {
	if colour == White {
		return WhiteBackRow
	}
	return BlackBackRow
}

// Forward returns the row delta of a pawn advance: -1 for White, +1 for Black.
func Forward(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// Coordinate is a board square addressed by column and row, each in [0,7].
type Coordinate struct {
	Col int
	Row int
}

// Coord is shorthand for Coordinate{Col: col, Row: row}.
func Coord(col, row int) Coordinate {
	return Coordinate{Col: col, Row: row}
}

// Valid reports whether c lies on the board.
func (c Coordinate) Valid() bool {
	return c.Col >= 0 && c.Col < BoardSize && c.Row >= 0 && c.Row < BoardSize
}

// Index converts c to a linear square index: row*8 + col.
func (c Coordinate) Index() int {
	return c.Row*BoardSize + c.Col
}

// Offset returns c shifted by dc columns and dr rows. The result may be off the board.
func (c Coordinate) Offset(dc, dr int) Coordinate {
	return Coordinate{Col: c.Col + dc, Row: c.Row + dr}
}

// String returns "(col,row)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Algebraic returns the square name in algebraic notation. Row 0 is rank 8,
// so "e1" is (4,7).
func (c Coordinate) Algebraic() string {
	if !c.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + c.Col), byte('8' - c.Row)})
}

// ParseAlgebraic parses a square name such as "e4".
func ParseAlgebraic(name string) (Coordinate, error) {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return Coordinate{}, fmt.Errorf("square %q: %w", name, errors.ErrInvalidCoordinate)
	}
	return Coord(int(name[0]-'a'), int('8'-name[1])), nil
}

// FromIndex converts a linear square index back to a coordinate.
func FromIndex(i int) Coordinate {
	return Coordinate{Col: i % BoardSize, Row: i / BoardSize}
}

// PieceCode packs a colour bit and a 3-bit piece kind into one nibble.
// Empty is the sentinel for an unoccupied square.
type PieceCode uint8

const (
	Empty PieceCode = 0

	colourBit PieceCode = 0x08 // set for Black
	kindMask  PieceCode = 0x07
	codeMask  PieceCode = 0x0F

	// NumCodes is the number of distinct nibble values.
	NumCodes = 16
)

// Encode creates a piece code. It panics on an invalid colour or piece since
// callers only ever pass constants.
func Encode(colour Colour, piece Piece) PieceCode {
	if !colour.Valid() || !piece.Valid() {
		panic(errors.Wrapf(errors.ErrInvalidPieceCode, "encode %v %v", colour, piece))
	}
	code := PieceCode(piece)
	if colour == Black {
		code |= colourBit
	}
	return code
}

// W creates a white piece code.
func W(piece Piece) PieceCode {
	return Encode(White, piece)
}

// B creates a black piece code.
func B(piece Piece) PieceCode {
	return Encode(Black, piece)
}

// Decode extracts the colour and piece kind from a code.
// Decoding Empty or an out-of-range code returns ErrInvalidPieceCode.
func Decode(code PieceCode) (Colour, Piece, error) {
	piece := Piece(code & kindMask)
	if code&^codeMask != 0 || !piece.Valid() {
		return 0, NoPiece, errors.Wrapf(errors.ErrInvalidPieceCode, "code 0x%02x", uint8(code))
	}
	colour := White
	if code&colourBit != 0 {
		colour = Black
	}
	return colour, piece, nil
}

// String renders the code as a diagram letter: uppercase White, lowercase Black.
func (code PieceCode) String() string {
	if code == Empty {
		return "."
	}
	colour, piece, err := Decode(code)
	if err != nil {
		return "?"
	}
	letter := piece.Letter()
	if colour == Black {
		letter += 'a' - 'A'
	}
	return string(letter)
}

// Square is a read-only view of one board position and its occupant.
// Colour and Piece are meaningful only when Empty is false.
type Square struct {
	Coord  Coordinate
	Colour Colour
	Piece  Piece
	Empty  bool
}

// Is reports whether the square holds the given colour and piece.
func (s Square) Is(colour Colour, piece Piece) bool {
	return !s.Empty && s.Colour == colour && s.Piece == piece
}

// String returns a short description used in logs.
func (s Square) String() string {
	if s.Empty {
		return s.Coord.String() + " empty"
	}
	return fmt.Sprintf("%v %v %v", s.Coord, s.Colour, s.Piece)
}

// CastlingSide names the side of the board a king castles towards.
type CastlingSide int

const (
	NoCastling CastlingSide = iota
	LongSide                // queenside, towards column 0
	ShortSide               // kingside, towards column 7
)

// String returns the string representation of a castling side.
func (s CastlingSide) String() string {
	switch s {
	case LongSide:
		return "long"
	case ShortSide:
		return "short"
	}
	return "none"
}

// RookHomeCol returns the column the side's rook starts on.
func (s CastlingSide) RookHomeCol() int {
	if s == LongSide {
		return 0
	}
	return BoardSize - 1
}

// Step returns the column direction of the side: -1 long, +1 short.
func (s CastlingSide) Step() int {
	if s == LongSide {
		return -1
	}
	return 1
}
