package game

import (
	"github.com/apex/log"

	"github.com/lgbarn/arkoted-go/internal/chess"
	"github.com/lgbarn/arkoted-go/internal/engine"
	"github.com/lgbarn/arkoted-go/internal/errors"
)

// ApplyMove moves the piece on src to dest if the rules allow it. A rejected
// move leaves the game untouched and reports why.
//
// An accepted king move two columns sideways is castling and also moves the
// rook. A pawn's diagonal step onto an empty square is an en-passant capture
// and removes the pawn beside src. Any accepted move forfeits the mover's
// pending en-passant opportunity.
func (g *Game) ApplyMove(src, dest chess.Coordinate) Outcome {
	out := Outcome{From: src, To: dest}
	if !src.Valid() || !dest.Valid() {
		return g.reject(out, ReasonOffBoard)
	}

	from := g.board.SquareAt(src)
	if from.Empty {
		return g.reject(out, ReasonEmptySource)
	}
	out.Piece, out.Colour = from.Piece, from.Colour
	if g.rules.EnforceTurnOrder && from.Colour != g.toMove {
		return g.reject(out, ReasonNotYourTurn)
	}

	mover := &g.players[from.Colour]
	opponent := &g.players[from.Colour.Opposite()]
	to := g.board.SquareAt(dest)
	if !engine.IsLegalMove(g.board, from, to, mover) {
		return g.reject(out, ReasonIllegal)
	}

	if !to.Empty {
		captured := to
		out.Captured = &captured
	}

	switch from.Piece {
	case chess.Pawn:
		if to.Empty && src.Col != dest.Col {
			if victim, ok := engine.ResolveEnPassant(g.board, src, dest, mover); ok {
				captured := g.board.SquareAt(victim)
				out.Captured = &captured
				out.EnPassant = true
				g.board.SetPiece(victim, chess.Empty)
			}
		}
	case chess.King:
		if side, ok := engine.CastlingSideOf(src, dest); ok {
			out.Castled = side
			out.RookFrom, out.RookTo = engine.CastlingRookMove(src, side)
			g.board.MovePiece(out.RookFrom, out.RookTo)
			mover.NoteRookLeft(out.RookFrom)
		}
		mover.CastlingPossible = false
	case chess.Rook:
		mover.NoteRookLeft(src)
	}
	if out.Captured != nil && out.Captured.Piece == chess.Rook {
		opponent.NoteRookLeft(out.Captured.Coord)
	}

	mover.ClearEnPassant()
	g.board.MovePiece(src, dest)

	if from.Piece == chess.Pawn && engine.IsDoubleStep(src, dest) {
		if _, ok := engine.ShouldEnableEnPassant(g.board, dest, mover); ok {
			opponent.ArmEnPassant(dest)
		}
	}

	g.requireKings()
	mover.KingInCheck = false
	opponent.KingInCheck = engine.KingInCheck(g.board, opponent.Colour)
	out.Check = opponent.KingInCheck

	if g.rules.VerifyIndex {
		if err := g.board.Verify(); err != nil {
			panic(errors.Wrapf(err, "game %s after %v", g.id, out))
		}
	}

	g.ply++
	g.toMove = from.Colour.Opposite()
	out.Accepted = true
	g.logAccepted(out)
	return out
}

// requireKings panics when either side has lost its king. The rule book never
// allows a king capture, so this is a broken invariant.
func (g *Game) requireKings() {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if _, err := g.board.KingSquare(colour); err != nil {
			panic(errors.Wrapf(err, "game %s", g.id))
		}
	}
}

func (g *Game) reject(out Outcome, reason RejectReason) Outcome {
	out.Reason = reason
	g.entry().WithFields(log.Fields{
		"from":   out.From.Algebraic(),
		"to":     out.To.Algebraic(),
		"reason": reason.String(),
	}).Debug("move rejected")
	return out
}

func (g *Game) logAccepted(out Outcome) {
	e := g.entry().WithFields(log.Fields{
		"colour": out.Colour.String(),
		"piece":  out.Piece.String(),
		"from":   out.From.Algebraic(),
		"to":     out.To.Algebraic(),
	})
	if out.Check {
		e = e.WithField("check", true)
	}

	switch {
	case out.Castled != chess.NoCastling:
		e.WithField("side", out.Castled.String()).Info("castled")
	case out.EnPassant:
		e.WithField("captured", out.Captured.Coord.Algebraic()).Info("en passant")
	default:
		e.Debug("move applied")
	}
}
