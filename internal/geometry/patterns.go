package geometry

import "github.com/lgbarn/arkoted-go/internal/chess"

// MaxRay is the longest ray a slider can travel on an 8x8 board.
const MaxRay = chess.BoardSize - 1

// knightOffsets are the eight L-shaped jumps.
var knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

// Ray walks from origin in direction d for at most steps squares and returns
// every on-board square visited, nearest first. It does not stop at pieces.
func Ray(origin chess.Coordinate, d Direction, steps int) []chess.Coordinate {
	dc, dr := d.Step()
	if dc == 0 && dr == 0 {
		return nil
	}
	var squares []chess.Coordinate
	for i := 1; i <= steps; i++ {
		c := origin.Offset(i*dc, i*dr)
		if !c.Valid() {
			break
		}
		squares = append(squares, c)
	}
	return squares
}

// Rays concatenates Ray for each direction in dirs.
func Rays(origin chess.Coordinate, dirs []Direction, steps int) []chess.Coordinate {
	var squares []chess.Coordinate
	for _, d := range dirs {
		squares = append(squares, Ray(origin, d, steps)...)
	}
	return squares
}

// Between returns the squares strictly between src and dest along their shared
// line. ok is false when the two squares are not on a common line.
func Between(src, dest chess.Coordinate) (squares []chess.Coordinate, ok bool) {
	d, ok := DirectionOf(src, dest)
	if !ok {
		return nil, false
	}
	n := Distance(src, dest)
	return Ray(src, d, n-1), true
}

// PawnAdvance returns the forward direction of a colour's pawns.
func PawnAdvance(colour chess.Colour) Direction {
	if colour == chess.White {
		return Top
	}
	return Bottom
}

// PawnCaptures returns the two forward diagonals of a colour's pawns.
func PawnCaptures(colour chess.Colour) []Direction {
	v := PawnAdvance(colour)
	left, _ := Combine(Left, v)
	right, _ := Combine(Right, v)
	return []Direction{left, right}
}

// Knight returns the on-board knight jumps from origin.
func Knight(origin chess.Coordinate) []chess.Coordinate {
	var squares []chess.Coordinate
	for _, off := range knightOffsets {
		if c := origin.Offset(off[0], off[1]); c.Valid() {
			squares = append(squares, c)
		}
	}
	return squares
}

// IsKnightJump reports whether dest is a knight's jump from src.
func IsKnightJump(src, dest chess.Coordinate) bool {
	dc, dr := abs(dest.Col-src.Col), abs(dest.Row-src.Row)
	return (dc == 1 && dr == 2) || (dc == 2 && dr == 1)
}

// Reachable returns every square the movement pattern of piece reaches from
// origin on an empty board. Pawns get their single advance and both capture
// diagonals; the double step and castling are left to the rule book.
func Reachable(piece chess.Piece, colour chess.Colour, origin chess.Coordinate) []chess.Coordinate {
	switch piece {
	case chess.Rook:
		return Rays(origin, Straights, MaxRay)
	case chess.Bishop:
		return Rays(origin, Diagonals, MaxRay)
	case chess.Queen:
		return Rays(origin, All, MaxRay)
	case chess.King:
		return Rays(origin, All, 1)
	case chess.Knight:
		return Knight(origin)
	case chess.Pawn:
		dirs := append([]Direction{PawnAdvance(colour)}, PawnCaptures(colour)...)
		return Rays(origin, dirs, 1)
	}
	return nil
}
