package engine

import (
	"github.com/lgbarn/arkoted-go/internal/chess"
	"github.com/lgbarn/arkoted-go/internal/geometry"
)

// Threats returns every opposing piece that attacks target from the point of
// view of defender. Attackers are enumerated through the position index, so the
// cost is proportional to the number of opposing pieces, not the board size.
func Threats(board *chess.Board, target chess.Coordinate, defender chess.Colour) []chess.Square {
	attacker := defender.Opposite()
	var threats []chess.Square

	add := func(c chess.Coordinate, piece chess.Piece) {
		threats = append(threats, chess.Square{Coord: c, Colour: attacker, Piece: piece})
	}

	// Sliders: line of sight with nothing in between.
	sliders := []struct {
		piece   chess.Piece
		allowed func(geometry.Direction) bool
	}{
		{chess.Queen, geometry.Direction.Valid},
		{chess.Bishop, geometry.Direction.IsDiagonal},
		{chess.Rook, geometry.Direction.IsStraight},
	}
	for _, s := range sliders {
		for _, c := range board.PiecesOf(attacker, s.piece) {
			d, ok := geometry.DirectionOf(c, target)
			if ok && s.allowed(d) && !Obstructed(board, c, target) {
				add(c, s.piece)
			}
		}
	}

	for _, c := range board.PiecesOf(attacker, chess.King) {
		if geometry.Distance(c, target) == 1 {
			add(c, chess.King)
		}
	}

	for _, c := range board.PiecesOf(attacker, chess.Knight) {
		if geometry.IsKnightJump(c, target) {
			add(c, chess.Knight)
		}
	}

	// A pawn attacks the two squares diagonally ahead of it, so it stands one
	// row behind the target in its own direction of travel.
	pawns := board.Occupied(attacker, chess.Pawn)
	for _, dc := range []int{-1, 1} {
		c := target.Offset(dc, -chess.Forward(attacker))
		if c.Valid() && pawns.Has(c.Index()) {
			add(c, chess.Pawn)
		}
	}

	return threats
}

// IsSquareAttacked reports whether any piece of the opposite colour to defender attacks target.
func IsSquareAttacked(board *chess.Board, target chess.Coordinate, defender chess.Colour) bool {
	return len(Threats(board, target, defender)) > 0
}

// KingInCheck reports whether colour's king is attacked. A side without a king
// has nothing to expose and is never in check.
func KingInCheck(board *chess.Board, colour chess.Colour) bool {
	king, err := board.KingSquare(colour)
	if err != nil {
		return false
	}
	return IsSquareAttacked(board, king, colour)
}

// LeavesOwnKingSafe simulates moving src to dest and reports whether the
// mover's king is out of check afterwards. The board is restored on every
// exit path.
func LeavesOwnKingSafe(board *chess.Board, src, dest chess.Coordinate, player *chess.PlayerState) bool {
	return leavesKingSafe(board, src, dest, nil, player.Colour)
}

// leavesKingSafe is LeavesOwnKingSafe with extra squares emptied by the move,
// such as the pawn taken en passant.
func leavesKingSafe(board *chess.Board, src, dest chess.Coordinate, vacate []chess.Coordinate, colour chess.Colour) bool {
	return board.Simulate(src, dest, vacate, func(b *chess.Board) bool {
		return !KingInCheck(b, colour)
	})
}
