// Package engine provides chess move validation: the rule book deciding
// whether a proposed move is legal on a given board for a given player.
package engine

import (
	"github.com/lgbarn/arkoted-go/internal/chess"
	"github.com/lgbarn/arkoted-go/internal/geometry"
)

// IsLegalMove reports whether the piece on src may move to dest. player is the
// mover's state and must belong to the colour standing on src.
//
// The board is mutated transiently while the move is simulated for king
// safety; the caller must hold exclusive access for the duration of the call.
func IsLegalMove(board *chess.Board, src, dest chess.Square, player *chess.PlayerState) bool {
	if src.Empty || player == nil || player.Colour != src.Colour {
		return false
	}
	from, to := src.Coord, dest.Coord
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}

	switch src.Piece {
	case chess.Knight:
		return isLegalKnightMove(board, from, to, player)
	case chess.Rook:
		return isLegalLineMove(board, from, to, player, geometry.Direction.IsStraight)
	case chess.Bishop:
		return isLegalLineMove(board, from, to, player, geometry.Direction.IsDiagonal)
	case chess.Queen:
		return isLegalLineMove(board, from, to, player, geometry.Direction.Valid)
	case chess.King:
		return isLegalKingMove(board, from, to, player)
	case chess.Pawn:
		return isLegalPawnMove(board, from, to, player)
	}
	return false
}

// isLegalKnightMove checks an L-shaped jump; knights are never obstructed.
func isLegalKnightMove(board *chess.Board, from, to chess.Coordinate, player *chess.PlayerState) bool {
	return geometry.IsKnightJump(from, to) &&
		DestinationAdmits(board, to, player.Colour) &&
		LeavesOwnKingSafe(board, from, to, player)
}

// isLegalLineMove checks a rook, bishop or queen move whose direction satisfies allowed.
func isLegalLineMove(board *chess.Board, from, to chess.Coordinate, player *chess.PlayerState, allowed func(geometry.Direction) bool) bool {
	d, ok := geometry.DirectionOf(from, to)
	return ok && allowed(d) &&
		!Obstructed(board, from, to) &&
		DestinationAdmits(board, to, player.Colour) &&
		LeavesOwnKingSafe(board, from, to, player)
}

// isLegalKingMove checks a single king step or a castling move.
func isLegalKingMove(board *chess.Board, from, to chess.Coordinate, player *chess.PlayerState) bool {
	if _, ok := geometry.DirectionOf(from, to); !ok {
		return false
	}
	if geometry.Distance(from, to) == 1 {
		return DestinationAdmits(board, to, player.Colour) &&
			len(Threats(board, to, player.Colour)) == 0 &&
			LeavesOwnKingSafe(board, from, to, player)
	}
	return CanCastle(board, from, to, player)
}

// isLegalPawnMove checks a forward advance or a diagonal capture.
func isLegalPawnMove(board *chess.Board, from, to chess.Coordinate, player *chess.PlayerState) bool {
	colour := player.Colour
	d, ok := geometry.DirectionOf(from, to)
	if !ok {
		return false
	}
	advance := geometry.PawnAdvance(colour)
	steps := geometry.Distance(from, to)

	var vacate []chess.Coordinate
	switch {
	case d == advance && steps == 1:
		if !board.IsEmpty(to) {
			return false
		}
	case d == advance && steps == 2:
		if from.Row != chess.PawnHomeRow(colour) {
			return false
		}
		if !board.IsEmpty(from.Offset(0, chess.Forward(colour))) || !board.IsEmpty(to) {
			return false
		}
	case d.IsDiagonal() && d.Vertical() == advance && steps == 1:
		captured, ok := ResolveEnPassant(board, from, to, player)
		if !ok {
			return false
		}
		if captured != to {
			vacate = []chess.Coordinate{captured}
		}
	default:
		return false
	}
	return leavesKingSafe(board, from, to, vacate, colour)
}
