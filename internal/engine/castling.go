package engine

import (
	"github.com/lgbarn/arkoted-go/internal/chess"
	"github.com/lgbarn/arkoted-go/internal/geometry"
)

// kingHomeCol is the column both kings start on.
const kingHomeCol = 4

// CastlingSideOf classifies a king displacement of two columns along its row.
// A negative column delta is the long side, a positive one the short side.
func CastlingSideOf(src, dest chess.Coordinate) (chess.CastlingSide, bool) {
	if dest.Row != src.Row {
		return chess.NoCastling, false
	}
	switch dest.Col - src.Col {
	case -2:
		return chess.LongSide, true
	case 2:
		return chess.ShortSide, true
	}
	return chess.NoCastling, false
}

// CastlingRookMove returns where the rook starts and lands when the king on
// src castles towards side.
func CastlingRookMove(src chess.Coordinate, side chess.CastlingSide) (from, to chess.Coordinate) {
	from = chess.Coord(side.RookHomeCol(), src.Row)
	to = src.Offset(side.Step(), 0)
	return from, to
}

// CanCastle reports whether the king on src may castle by moving to dest.
// The king and the side's rook must both be unmoved, nothing may stand between
// them, and the king's square, its transit square and its destination must all
// be free of attack.
func CanCastle(board *chess.Board, src, dest chess.Coordinate, player *chess.PlayerState) bool {
	side, ok := CastlingSideOf(src, dest)
	if !ok || !player.CastlingAllowed(side) {
		return false
	}
	colour := player.Colour
	if src != chess.Coord(kingHomeCol, chess.BackRow(colour)) {
		return false
	}
	if !board.SquareAt(src).Is(colour, chess.King) {
		return false
	}

	rookFrom, _ := CastlingRookMove(src, side)
	if !board.SquareAt(rookFrom).Is(colour, chess.Rook) {
		return false
	}
	if Obstructed(board, src, rookFrom) {
		return false
	}

	d, _ := geometry.DirectionOf(src, dest)
	for _, c := range append([]chess.Coordinate{src}, geometry.Ray(src, d, 2)...) {
		if IsSquareAttacked(board, c, colour) {
			return false
		}
	}
	return true
}
