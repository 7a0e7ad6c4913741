package game

import (
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/google/uuid"

	"github.com/lgbarn/arkoted-go/internal/chess"
	"github.com/lgbarn/arkoted-go/internal/config"
	"github.com/lgbarn/arkoted-go/internal/errors"
	"github.com/lgbarn/arkoted-go/internal/testutil"
)

// quietConfig returns defaults with logging discarded.
func quietConfig() *config.Config {
	return config.NewConfigBuilder().WithLogOutput(nil).WithIndexVerification(true).Build()
}

// squares splits a move such as "e2e4" into its two coordinates.
func squares(t *testing.T, move string) (chess.Coordinate, chess.Coordinate) {
	t.Helper()
	if len(move) != 4 {
		t.Fatalf("move %q is not two squares", move)
	}
	return testutil.Square(t, move[:2]), testutil.Square(t, move[2:])
}

// play applies every move and fails the test at the first rejection.
func play(t *testing.T, g *Game, moves ...string) Outcome {
	t.Helper()
	var out Outcome
	for _, m := range moves {
		src, dest := squares(t, m)
		out = g.ApplyMove(src, dest)
		if !out.Accepted {
			t.Fatalf("%s rejected (%v) at ply %d\n%s", m, out.Reason, g.Ply(), g)
		}
	}
	return out
}

// attempt applies one move that may be rejected.
func attempt(t *testing.T, g *Game, move string) Outcome {
	t.Helper()
	src, dest := squares(t, move)
	return g.ApplyMove(src, dest)
}

// fromFEN builds a game from a fixture position.
func fromFEN(t *testing.T, fen string) *Game {
	t.Helper()
	pos := testutil.MustParseFEN(t, fen)
	g, err := NewFromBoard(quietConfig(), pos.Board, pos.ToMove)
	if err != nil {
		t.Fatalf("NewFromBoard() error = %v", err)
	}
	return g
}

func TestNew(t *testing.T) {
	g := New(quietConfig())

	testutil.AssertEqual(t, g.ToMove(), chess.White)
	testutil.AssertEqual(t, g.Ply(), 0)
	testutil.AssertEqual(t, g.Board().String(), chess.NewStandardBoard().String())
	testutil.AssertTrue(t, g.ID() != uuid.Nil, "random id")

	king, err := g.SquareAt(testutil.Square(t, "e1"))
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, king.Is(chess.White, chess.King), "e1 holds %v", king)

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		p, err := g.Player(colour)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, p.Colour, colour)
		testutil.AssertTrue(t, p.CastlingAllowed(chess.ShortSide))
		testutil.AssertTrue(t, p.CastlingAllowed(chess.LongSide))
	}
}

func TestNew_NilConfig(t *testing.T) {
	id := uuid.New()
	g := New(nil, WithID(id), WithLogger(&log.Logger{Handler: memory.New(), Level: log.InfoLevel}))
	testutil.AssertEqual(t, g.ID(), id)
	play(t, g, "e2e4")
	out := attempt(t, g, "d2d4")
	testutil.AssertEqual(t, out.Reason, ReasonNotYourTurn, "turn order is on by default")
}

func TestGame_LookupErrors(t *testing.T) {
	g := New(quietConfig())

	_, err := g.Player(chess.Colour(7))
	testutil.AssertErrorIs(t, err, errors.ErrUnknownColour)

	_, err = g.SquareAt(chess.Coord(8, 0))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidCoordinate)

	testutil.AssertFalse(t, g.IsLegalMove(chess.Coord(-1, 6), chess.Coord(0, 5)))
	testutil.AssertFalse(t, g.IsLegalMove(testutil.Square(t, "e4"), testutil.Square(t, "e5")))
	testutil.AssertEqual(t, len(g.LegalDestinations(chess.Coord(0, 9))), 0)
	testutil.AssertEqual(t, len(g.LegalDestinations(testutil.Square(t, "e4"))), 0)
}

func TestGame_IsLegalMoveIgnoresTurn(t *testing.T) {
	g := New(quietConfig())
	testutil.AssertTrue(t, g.IsLegalMove(testutil.Square(t, "e7"), testutil.Square(t, "e5")))
	testutil.AssertSameSquares(t, g.LegalDestinations(testutil.Square(t, "g8")), testutil.Squares(t, "f6", "h6"))
}

func TestApplyMove_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		src    chess.Coordinate
		dest   chess.Coordinate
		reason RejectReason
	}{
		{"source off board", chess.Coord(8, 6), chess.Coord(4, 4), ReasonOffBoard},
		{"destination off board", chess.Coord(4, 6), chess.Coord(4, -1), ReasonOffBoard},
		{"empty source", chess.Coord(4, 4), chess.Coord(4, 3), ReasonEmptySource},
		{"black first", chess.Coord(4, 1), chess.Coord(4, 3), ReasonNotYourTurn},
		{"pawn three squares", chess.Coord(4, 6), chess.Coord(4, 3), ReasonIllegal},
		{"onto own piece", chess.Coord(6, 7), chess.Coord(4, 6), ReasonIllegal},
		{"null move", chess.Coord(1, 7), chess.Coord(1, 7), ReasonIllegal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(quietConfig())
			before := g.Board().String()

			out := g.ApplyMove(tt.src, tt.dest)
			testutil.AssertFalse(t, out.Accepted)
			testutil.AssertEqual(t, out.Reason, tt.reason)
			testutil.AssertEqual(t, g.Board().String(), before, "board untouched")
			testutil.AssertEqual(t, g.Ply(), 0)
			testutil.AssertEqual(t, g.ToMove(), chess.White)
		})
	}
}

func TestApplyMove_PlainAndCapture(t *testing.T) {
	g := New(quietConfig())

	out := play(t, g, "e2e4")
	testutil.AssertEqual(t, out.Piece, chess.Pawn)
	testutil.AssertEqual(t, out.Colour, chess.White)
	testutil.AssertTrue(t, out.Captured == nil, "nothing captured")
	testutil.AssertEqual(t, g.ToMove(), chess.Black)
	testutil.AssertEqual(t, g.Ply(), 1)

	out = play(t, g, "d7d5", "e4d5")
	if out.Captured == nil {
		t.Fatal("exd5 captured nothing")
	}
	testutil.AssertEqual(t, *out.Captured, chess.Square{Coord: testutil.Square(t, "d5"), Colour: chess.Black, Piece: chess.Pawn})
	testutil.AssertFalse(t, out.EnPassant)
	testutil.AssertEqual(t, g.Board().Count(), 31)
	testutil.AssertEqual(t, out.String(), "e4xd5")
}

func TestApplyMove_EnPassantWindow(t *testing.T) {
	t.Run("immediate capture", func(t *testing.T) {
		g := New(quietConfig())
		play(t, g, "e2e4", "a7a6", "e4e5", "d7d5")

		white, _ := g.Player(chess.White)
		pawn, armed := white.EnPassantSquare()
		testutil.AssertTrue(t, armed, "white armed after d7-d5")
		testutil.AssertEqual(t, pawn, testutil.Square(t, "d5"))

		out := play(t, g, "e5d6")
		testutil.AssertTrue(t, out.EnPassant)
		if out.Captured == nil {
			t.Fatal("en passant captured nothing")
		}
		testutil.AssertEqual(t, out.Captured.Coord, testutil.Square(t, "d5"))
		testutil.AssertEqual(t, out.Captured.Piece, chess.Pawn)

		d5, _ := g.SquareAt(testutil.Square(t, "d5"))
		testutil.AssertTrue(t, d5.Empty, "victim removed")
		d6, _ := g.SquareAt(testutil.Square(t, "d6"))
		testutil.AssertTrue(t, d6.Is(chess.White, chess.Pawn), "capturer on d6")
		testutil.AssertEqual(t, g.Board().Count(), 31)
		testutil.AssertEqual(t, out.String(), "e5xd6 e.p.")

		white, _ = g.Player(chess.White)
		testutil.AssertFalse(t, white.EnPassantEnabled, "used up")
	})

	t.Run("lapses after another move", func(t *testing.T) {
		g := New(quietConfig())
		play(t, g, "e2e4", "a7a6", "e4e5", "d7d5", "g1f3", "a6a5")

		out := attempt(t, g, "e5d6")
		testutil.AssertFalse(t, out.Accepted)
		testutil.AssertEqual(t, out.Reason, ReasonIllegal)
	})

	t.Run("single step arms nothing", func(t *testing.T) {
		g := New(quietConfig())
		play(t, g, "e2e4", "d7d6", "e4e5", "d6d5")

		white, _ := g.Player(chess.White)
		testutil.AssertFalse(t, white.EnPassantEnabled)
	})

	t.Run("double step away from any pawn", func(t *testing.T) {
		g := New(quietConfig())
		play(t, g, "e2e4", "a7a5")

		white, _ := g.Player(chess.White)
		testutil.AssertFalse(t, white.EnPassantEnabled)
	})

	t.Run("black captures", func(t *testing.T) {
		g := New(quietConfig())
		play(t, g, "a2a3", "d7d5", "a3a4", "d5d4", "e2e4")

		out := play(t, g, "d4e3")
		testutil.AssertTrue(t, out.EnPassant)
		testutil.AssertEqual(t, out.Captured.Coord, testutil.Square(t, "e4"))
	})
}

func TestApplyMove_Castling(t *testing.T) {
	t.Run("short", func(t *testing.T) {
		g := New(quietConfig())
		play(t, g, "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5")

		out := play(t, g, "e1g1")
		testutil.AssertEqual(t, out.Castled, chess.ShortSide)
		testutil.AssertEqual(t, out.RookFrom, testutil.Square(t, "h1"))
		testutil.AssertEqual(t, out.RookTo, testutil.Square(t, "f1"))
		testutil.AssertEqual(t, out.String(), "e1-g1 O-O")

		board := g.Board()
		testutil.AssertTrue(t, board.SquareAt(testutil.Square(t, "g1")).Is(chess.White, chess.King))
		testutil.AssertTrue(t, board.SquareAt(testutil.Square(t, "f1")).Is(chess.White, chess.Rook))
		testutil.AssertTrue(t, board.IsEmpty(testutil.Square(t, "h1")))
		testutil.AssertTrue(t, board.IsEmpty(testutil.Square(t, "e1")))

		white, _ := g.Player(chess.White)
		testutil.AssertFalse(t, white.CastlingPossible)
	})

	t.Run("long", func(t *testing.T) {
		g := fromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")

		out := play(t, g, "e8c8")
		testutil.AssertEqual(t, out.Castled, chess.LongSide)
		testutil.AssertEqual(t, out.RookFrom, testutil.Square(t, "a8"))
		testutil.AssertEqual(t, out.RookTo, testutil.Square(t, "d8"))
		testutil.AssertEqual(t, testutil.PlacementFEN(g.Board()), "2kr3r/8/8/8/8/8/8/R3K2R")
	})

	t.Run("king move forfeits both sides", func(t *testing.T) {
		g := fromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
		play(t, g, "e1f1", "a8b8", "f1e1", "b8a8")

		for _, move := range []string{"e1g1", "e1c1"} {
			testutil.AssertEqual(t, attempt(t, g, move).Reason, ReasonIllegal, move)
		}
	})

	t.Run("rook move forfeits its side only", func(t *testing.T) {
		g := fromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
		play(t, g, "h1h2", "a8b8", "h2h1", "b8a8")

		testutil.AssertEqual(t, attempt(t, g, "e1g1").Reason, ReasonIllegal)
		out := play(t, g, "e1c1")
		testutil.AssertEqual(t, out.Castled, chess.LongSide)
	})

	t.Run("captured rook clears the owner's side", func(t *testing.T) {
		g := fromFEN(t, "r3k2r/8/8/8/8/8/6B1/4K3 w kq - 0 1")
		out := play(t, g, "g2a8")
		testutil.AssertEqual(t, out.Captured.Piece, chess.Rook)

		black, _ := g.Player(chess.Black)
		testutil.AssertFalse(t, black.CastlingAllowed(chess.LongSide))
		testutil.AssertTrue(t, black.CastlingAllowed(chess.ShortSide))
	})
}

func TestApplyMove_Check(t *testing.T) {
	g := New(quietConfig())
	out := play(t, g, "e2e4", "e7e5", "d1h5", "b8c6", "h5f7")

	testutil.AssertTrue(t, out.Check, "Qxf7+")
	testutil.AssertEqual(t, out.String(), "h5xf7+")
	black, _ := g.Player(chess.Black)
	testutil.AssertTrue(t, black.KingInCheck)

	testutil.AssertEqual(t, attempt(t, g, "a7a6").Reason, ReasonIllegal, "ignores the check")
	out = play(t, g, "e8f7")
	testutil.AssertEqual(t, out.Captured.Piece, chess.Queen)
	black, _ = g.Player(chess.Black)
	testutil.AssertFalse(t, black.KingInCheck)
}

func TestApplyMove_TurnOrderDisabled(t *testing.T) {
	cfg := config.NewConfigBuilder().WithLogOutput(nil).WithTurnOrder(false).Build()
	g := New(cfg)

	play(t, g, "e7e5", "d7d5")
	testutil.AssertEqual(t, g.Ply(), 2)
}

func TestNewFromBoard(t *testing.T) {
	g := fromFEN(t, "4k3/8/8/8/8/8/4q3/R3K3 w - - 0 1")

	testutil.AssertEqual(t, g.ToMove(), chess.White)
	white, _ := g.Player(chess.White)
	testutil.AssertTrue(t, white.KingInCheck, "queen on e2 gives check")
	testutil.AssertTrue(t, white.CastlingAllowed(chess.LongSide))
	testutil.AssertFalse(t, white.CastlingAllowed(chess.ShortSide), "no rook on h1")

	black, _ := g.Player(chess.Black)
	testutil.AssertTrue(t, black.CastlingPossible, "king on e8")
	testutil.AssertFalse(t, black.CastlingAllowed(chess.LongSide))
	testutil.AssertFalse(t, black.CastlingAllowed(chess.ShortSide))

	off := fromFEN(t, "3k4/8/8/8/8/8/8/R2K3R w - - 0 1")
	p, _ := off.Player(chess.White)
	testutil.AssertFalse(t, p.CastlingPossible, "king off e1")
}

func TestNewFromBoard_CopiesBoard(t *testing.T) {
	pos := testutil.MustParseFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	g, err := NewFromBoard(quietConfig(), pos.Board, chess.White)
	testutil.AssertNoError(t, err)

	play(t, g, "e1d1")
	testutil.AssertTrue(t, pos.Board.SquareAt(testutil.Square(t, "e1")).Is(chess.White, chess.King), "caller's board untouched")
}

func TestNewFromBoard_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		toMove  chess.Colour
		wantErr error
	}{
		{"no kings", "8/8/8/8/8/8/8/R7", chess.White, errors.ErrNoKingFound},
		{"no black king", "8/8/8/8/8/8/8/4K3", chess.White, errors.ErrNoKingFound},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3", chess.White, errors.ErrNoKingFound},
		{"bad side to move", "4k3/8/8/8/8/8/8/4K3", chess.Colour(3), errors.ErrUnknownColour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustParseFEN(t, tt.fen)
			_, err := NewFromBoard(quietConfig(), pos.Board, tt.toMove)
			testutil.AssertErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGame_Reset(t *testing.T) {
	g := New(quietConfig())
	play(t, g, "e2e4", "e7e5", "e1e2")

	g.Reset()
	testutil.AssertEqual(t, g.Board().String(), chess.NewStandardBoard().String())
	testutil.AssertEqual(t, g.Ply(), 0)
	testutil.AssertEqual(t, g.ToMove(), chess.White)
	white, _ := g.Player(chess.White)
	testutil.AssertTrue(t, white.CastlingPossible)
}

func TestGame_String(t *testing.T) {
	g := New(quietConfig())
	play(t, g, "e2e4")
	testutil.AssertContains(t, g.String(), "P . . .")
	testutil.AssertContains(t, g.String(), chess.Black.String()+" to move")
}

func TestGame_Logging(t *testing.T) {
	h := memory.New()
	g := New(quietConfig(), WithLogger(&log.Logger{Handler: h, Level: log.DebugLevel}))

	play(t, g, "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6", "e1g1")
	attempt(t, g, "a2a3")

	var castled, rejected *log.Entry
	for _, e := range h.Entries {
		switch e.Message {
		case "castled":
			castled = e
		case "move rejected":
			rejected = e
		}
		testutil.AssertEqual(t, e.Fields["game"], g.ID().String(), "game field on %q", e.Message)
	}

	if castled == nil {
		t.Fatal("no castled entry")
	}
	testutil.AssertEqual(t, castled.Level, log.InfoLevel)
	testutil.AssertEqual(t, castled.Fields["side"], "short")
	testutil.AssertEqual(t, castled.Fields["ply"], 7)

	if rejected == nil {
		t.Fatal("no rejection entry")
	}
	testutil.AssertEqual(t, rejected.Level, log.DebugLevel)
	testutil.AssertEqual(t, rejected.Fields["reason"], "not your turn")

	h.Entries = nil
	g.Reset()
	if len(h.Entries) != 1 || h.Entries[0].Message != "game reset" {
		t.Errorf("Reset entries = %v", h.Entries)
	}
}

func TestOutcome_String(t *testing.T) {
	e2, e4 := chess.Coord(4, 6), chess.Coord(4, 4)
	tests := []struct {
		name string
		out  Outcome
		want string
	}{
		{"plain", Outcome{Accepted: true, From: e2, To: e4}, "e2-e4"},
		{"rejected", Outcome{From: e2, To: chess.Coord(4, 3), Reason: ReasonIllegal}, "e2-e5 rejected: illegal"},
		{"long castle", Outcome{Accepted: true, From: chess.Coord(4, 0), To: chess.Coord(2, 0), Castled: chess.LongSide}, "e8-c8 O-O-O"},
		{"off board", Outcome{From: chess.Coord(9, 9), To: e4, Reason: ReasonOffBoard}, "--e4 rejected: off board"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.out.String(), tt.want)
		})
	}
}

func TestRejectReason_String(t *testing.T) {
	testutil.AssertEqual(t, ReasonNone.String(), "none")
	testutil.AssertEqual(t, ReasonEmptySource.String(), "empty source")
	testutil.AssertEqual(t, RejectReason(42).String(), "RejectReason(42)")
}
