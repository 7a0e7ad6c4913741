package engine

import (
	"testing"

	"github.com/lgbarn/arkoted-go/internal/chess"
	"github.com/lgbarn/arkoted-go/internal/testutil"
)

func TestKingInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial position", testutil.InitialFEN, chess.White, false},
		{"rook on open rank", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", chess.White, true},
		{"rook behind own piece", "4k3/8/8/8/8/8/8/r2NK3 w - - 0 1", chess.White, false},
		{"knight", "4k3/8/8/8/8/5n2/8/4K3 w - - 0 1", chess.White, true},
		{"knight not aligned", "4k3/8/8/8/8/4n3/8/4K3 w - - 0 1", chess.White, false},
		{"black pawn attacks down the board", "4k3/8/8/3p4/4K3/8/8/8 w - - 0 1", chess.White, true},
		{"black pawn behind the king", "4k3/8/8/8/4K3/3p4/8/8 w - - 0 1", chess.White, false},
		{"white pawn attacks up the board", "8/8/8/3k4/4P3/8/8/4K3 b - - 0 1", chess.Black, true},
		{"bishop blocked", "4k3/8/8/8/8/2b5/3P4/4K3 w - - 0 1", chess.White, false},
		{"bishop open diagonal", "4k3/8/8/8/8/2b5/8/4K3 w - - 0 1", chess.White, true},
		{"queen on diagonal", "4k3/8/8/q7/8/8/8/4K3 w - - 0 1", chess.White, true},
		{"queen not aligned", "4k3/8/8/8/8/q7/8/4K3 w - - 0 1", chess.White, false},
		{"own pieces never threaten", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustParseFEN(t, tt.fen)
			if got := KingInCheck(pos.Board, tt.colour); got != tt.want {
				t.Errorf("KingInCheck(%v) = %v, want %v\n%s", tt.colour, got, tt.want, pos.Board)
			}
		})
	}
}

func TestKingInCheck_NoKing(t *testing.T) {
	board := chess.NewBoard()
	board.SetPiece(chess.Coord(0, 0), chess.B(chess.Queen))
	testutil.AssertFalse(t, KingInCheck(board, chess.White))
}

func TestThreats(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		target   string
		defender chess.Colour
		want     []string
	}{
		{"two sliders on one rank", "4k3/8/8/8/8/8/8/q3K2r w - - 0 1", "e1", chess.White, []string{"a1", "h1"}},
		{"adjacent king", "8/8/8/8/8/8/3k4/4K3 w - - 0 1", "e1", chess.White, []string{"d2"}},
		{"every kind at once", "4k3/8/8/3nq3/1p6/r1K5/8/b7 w - - 0 1", "c3", chess.White, []string{"a3", "b4", "d5", "e5", "a1"}},
		{"empty square", "4k3/8/8/8/8/8/8/4K2r w - - 0 1", "f1", chess.White, []string{"h1"}},
		{"none", testutil.InitialFEN, "e4", chess.White, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustParseFEN(t, tt.fen)
			var got []chess.Coordinate
			for _, sq := range Threats(pos.Board, testutil.Square(t, tt.target), tt.defender) {
				testutil.AssertEqual(t, sq.Colour, tt.defender.Opposite(), "attacker colour")
				testutil.AssertTrue(t, pos.Board.SquareAt(sq.Coord).Is(sq.Colour, sq.Piece), "reported piece at %v", sq.Coord)
				got = append(got, sq.Coord)
			}
			testutil.AssertSameSquares(t, got, testutil.Squares(t, tt.want...))
		})
	}
}

func TestLeavesOwnKingSafe_RestoresBoard(t *testing.T) {
	pos := testutil.MustParseFEN(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	before := pos.Board.String()
	testutil.AssertFalse(t, LeavesOwnKingSafe(pos.Board, testutil.Square(t, "e2"), testutil.Square(t, "d3"), &pos.Players[chess.White]))
	testutil.AssertEqual(t, pos.Board.String(), before)
	testutil.AssertNoError(t, pos.Board.Verify())
}
