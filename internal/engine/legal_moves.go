package engine

import (
	"github.com/lgbarn/arkoted-go/internal/chess"
	"github.com/lgbarn/arkoted-go/internal/geometry"
)

// candidateSquares returns every square the piece on src could conceivably
// reach: its movement pattern plus the pawn double step and castling targets.
func candidateSquares(src chess.Square) []chess.Coordinate {
	candidates := geometry.Reachable(src.Piece, src.Colour, src.Coord)
	switch src.Piece {
	case chess.Pawn:
		if src.Coord.Row == chess.PawnHomeRow(src.Colour) {
			candidates = append(candidates, src.Coord.Offset(0, 2*chess.Forward(src.Colour)))
		}
	case chess.King:
		for _, dc := range []int{-2, 2} {
			if c := src.Coord.Offset(dc, 0); c.Valid() {
				candidates = append(candidates, c)
			}
		}
	}
	return candidates
}

// LegalDestinations returns every square the piece on src may legally move to,
// in the order the movement pattern generates them.
func LegalDestinations(board *chess.Board, src chess.Square, player *chess.PlayerState) []chess.Coordinate {
	if src.Empty {
		return nil
	}
	var legal []chess.Coordinate
	for _, c := range candidateSquares(src) {
		if IsLegalMove(board, src, board.SquareAt(c), player) {
			legal = append(legal, c)
		}
	}
	return legal
}
