package chess

// PlayerState holds the per-colour flags that survive between moves.
// It is mutated only after a move has been confirmed legal.
type PlayerState struct {
	Colour Colour

	// CastlingPossible is cleared forever the first time the king moves.
	CastlingPossible bool

	// RookMoved records, per castling side, that the rook left its home
	// corner or was captured there.
	RookMoved [3]bool

	// EnPassantEnabled is set for exactly one move after an opposing pawn
	// double-steps next to one of this colour's pawns.
	EnPassantEnabled bool

	// EnPassantPawn is the square of the opposing pawn that double-stepped.
	// Meaningful only while EnPassantEnabled is set.
	EnPassantPawn Coordinate

	// KingInCheck is refreshed after every accepted move.
	KingInCheck bool
}

// NewPlayerState creates the initial state for colour.
func NewPlayerState(colour Colour) PlayerState {
	p := PlayerState{Colour: colour}
	p.Reset()
	return p
}

// Reset restores the initial flags.
func (p *PlayerState) Reset() {
	p.CastlingPossible = true
	p.RookMoved = [3]bool{}
	p.ClearEnPassant()
	p.KingInCheck = false
}

// EnPassantSquare returns the capturable pawn's square when en passant is armed.
func (p *PlayerState) EnPassantSquare() (Coordinate, bool) {
	if !p.EnPassantEnabled {
		return Coordinate{}, false
	}
	return p.EnPassantPawn, true
}

// ArmEnPassant allows the next move to capture the pawn on pawn en passant.
func (p *PlayerState) ArmEnPassant(pawn Coordinate) {
	p.EnPassantEnabled = true
	p.EnPassantPawn = pawn
}

// ClearEnPassant forfeits any pending en-passant opportunity.
func (p *PlayerState) ClearEnPassant() {
	p.EnPassantEnabled = false
	p.EnPassantPawn = Coordinate{}
}

// CastlingAllowed reports whether neither the king nor the side's rook has moved.
func (p *PlayerState) CastlingAllowed(side CastlingSide) bool {
	if side != LongSide && side != ShortSide {
		return false
	}
	return p.CastlingPossible && !p.RookMoved[side]
}

// NoteRookLeft records that the rook home square c no longer holds an unmoved
// rook of this colour. Squares other than the two home corners are ignored.
func (p *PlayerState) NoteRookLeft(c Coordinate) {
	if c.Row != BackRow(p.Colour) {
		return
	}
	for _, side := range []CastlingSide{LongSide, ShortSide} {
		if c.Col == side.RookHomeCol() {
			p.RookMoved[side] = true
		}
	}
}
