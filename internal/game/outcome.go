package game

import (
	"fmt"
	"strings"

	"github.com/lgbarn/arkoted-go/internal/chess"
)

// RejectReason explains why ApplyMove left the game untouched.
type RejectReason int

const (
	ReasonNone RejectReason = iota
	ReasonOffBoard
	ReasonEmptySource
	ReasonNotYourTurn
	ReasonIllegal
)

// String returns the string representation of a reject reason.
func (r RejectReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonOffBoard:
		return "off board"
	case ReasonEmptySource:
		return "empty source"
	case ReasonNotYourTurn:
		return "not your turn"
	case ReasonIllegal:
		return "illegal"
	}
	return fmt.Sprintf("RejectReason(%d)", int(r))
}

// Outcome describes the result of ApplyMove in enough detail for a caller to
// update its own view of the board.
type Outcome struct {
	Accepted bool
	Reason   RejectReason // ReasonNone when Accepted

	// Piece and Colour describe the mover. Unset when the source was empty
	// or off the board.
	Piece  chess.Piece
	Colour chess.Colour

	From chess.Coordinate
	To   chess.Coordinate

	// Castled is the side castled towards, or NoCastling. RookFrom and RookTo
	// are meaningful only when Castled is set.
	Castled  chess.CastlingSide
	RookFrom chess.Coordinate
	RookTo   chess.Coordinate

	// Captured is the piece removed from the board, if any. For an en-passant
	// capture its square differs from To.
	Captured  *chess.Square
	EnPassant bool

	// Check reports that the move left the opponent's king attacked.
	Check bool
}

// String returns a one-line summary such as "e2-e4", "d1xd7+" or "e1-g1 O-O".
func (o Outcome) String() string {
	if !o.Accepted {
		return fmt.Sprintf("%s-%s rejected: %v", o.From.Algebraic(), o.To.Algebraic(), o.Reason)
	}

	var sb strings.Builder
	sb.WriteString(o.From.Algebraic())
	if o.Captured != nil {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(o.To.Algebraic())
	if o.Check {
		sb.WriteByte('+')
	}

	switch o.Castled {
	case chess.ShortSide:
		sb.WriteString(" O-O")
	case chess.LongSide:
		sb.WriteString(" O-O-O")
	}
	if o.EnPassant {
		sb.WriteString(" e.p.")
	}
	return sb.String()
}
