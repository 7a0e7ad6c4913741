package engine

import (
	"github.com/lgbarn/arkoted-go/internal/chess"
	"github.com/lgbarn/arkoted-go/internal/geometry"
)

// Obstructed reports whether any square strictly between src and dest is
// occupied. It returns false when the two squares share no line, which is the
// case for knight jumps.
func Obstructed(board *chess.Board, src, dest chess.Coordinate) bool {
	between, ok := geometry.Between(src, dest)
	if !ok {
		return false
	}
	for _, c := range between {
		if !board.IsEmpty(c) {
			return true
		}
	}
	return false
}

// DestinationAdmits reports whether a piece of colour mover may end its move on
// dest: the square is empty or holds an opposing piece other than the king.
func DestinationAdmits(board *chess.Board, dest chess.Coordinate, mover chess.Colour) bool {
	sq := board.SquareAt(dest)
	return sq.Empty || (sq.Colour != mover && sq.Piece != chess.King)
}
