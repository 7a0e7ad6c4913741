package engine

import (
	"github.com/lgbarn/arkoted-go/internal/chess"
	"github.com/lgbarn/arkoted-go/internal/geometry"
)

// enPassantRow returns the row a colour's pawn lands on after a double step,
// which is the row an adjacent opposing pawn can capture it from.
func enPassantRow(colour chess.Colour) int {
	return chess.PawnHomeRow(colour) + 2*chess.Forward(colour)
}

// ResolveEnPassant resolves a pawn's forward diagonal step from src to dest
// to the square of the piece it captures.
//
// An opposing piece other than the king on dest is an ordinary capture and
// dest is returned. An empty dest is an en-passant capture when the mover's
// state is armed for the pawn beside src on dest's column; that pawn's square
// is returned, which the caller must clear since it is not dest. ok is false
// when the step captures nothing.
func ResolveEnPassant(board *chess.Board, src, dest chess.Coordinate, player *chess.PlayerState) (captured chess.Coordinate, ok bool) {
	colour := player.Colour
	d, isLine := geometry.DirectionOf(src, dest)
	if !isLine || !d.IsDiagonal() || d.Vertical() != geometry.PawnAdvance(colour) || geometry.Distance(src, dest) != 1 {
		return chess.Coordinate{}, false
	}

	target := board.SquareAt(dest)
	if !target.Empty {
		if DestinationAdmits(board, dest, colour) {
			return dest, true
		}
		return chess.Coordinate{}, false
	}

	pawn, armed := player.EnPassantSquare()
	victim := chess.Coord(dest.Col, src.Row)
	if !armed || pawn != victim {
		return chess.Coordinate{}, false
	}
	if !board.SquareAt(victim).Is(colour.Opposite(), chess.Pawn) {
		return chess.Coordinate{}, false
	}
	return victim, true
}

// ShouldEnableEnPassant is consulted after the mover's pawn double-steps onto
// dest. It returns the square of an opposing pawn directly beside dest that may
// capture it en passant on the next move.
func ShouldEnableEnPassant(board *chess.Board, dest chess.Coordinate, player *chess.PlayerState) (capturer chess.Coordinate, ok bool) {
	if dest.Row != enPassantRow(player.Colour) {
		return chess.Coordinate{}, false
	}
	opponent := player.Colour.Opposite()
	for _, c := range geometry.Rays(dest, []geometry.Direction{geometry.Left, geometry.Right}, 1) {
		if board.SquareAt(c).Is(opponent, chess.Pawn) {
			return c, true
		}
	}
	return chess.Coordinate{}, false
}

// IsDoubleStep reports whether a pawn move from src to dest is a two-square advance.
func IsDoubleStep(src, dest chess.Coordinate) bool {
	dr := dest.Row - src.Row
	return src.Col == dest.Col && (dr == 2 || dr == -2)
}
