// Package geometry enumerates the squares a piece's movement pattern reaches,
// independent of what stands on them.
package geometry

import "github.com/lgbarn/arkoted-go/internal/chess"

// Direction is one of the eight ray directions. Straight directions are single
// bits; a diagonal is the union of one horizontal and one vertical bit.
// Top is towards row 0, Left towards column 0.
type Direction uint8

const (
	Left Direction = 1 << iota
	Right
	Top
	Bottom

	TopLeft     = Top | Left
	TopRight    = Top | Right
	BottomLeft  = Bottom | Left
	BottomRight = Bottom | Right
)

const (
	horizontal = Left | Right
	vertical   = Top | Bottom
)

// Straights lists the four straight directions.
var Straights = []Direction{Left, Right, Top, Bottom}

// Diagonals lists the four diagonal directions.
var Diagonals = []Direction{TopLeft, TopRight, BottomLeft, BottomRight}

// All lists the eight directions, straights first.
var All = []Direction{Left, Right, Top, Bottom, TopLeft, TopRight, BottomLeft, BottomRight}

// Valid reports whether d is one of the eight directions.
func (d Direction) Valid() bool {
	return d.IsStraight() || d.IsDiagonal()
}

// IsStraight reports whether d moves along a single axis.
func (d Direction) IsStraight() bool {
	switch d {
	case Left, Right, Top, Bottom:
		return true
	}
	return false
}

// IsDiagonal reports whether d moves along both axes.
func (d Direction) IsDiagonal() bool {
	return d&horizontal != 0 && d&horizontal != horizontal &&
		d&vertical != 0 && d&vertical != vertical &&
		d&^(horizontal|vertical) == 0
}

// Combine joins a horizontal and a vertical straight direction into a diagonal.
func Combine(h, v Direction) (Direction, bool) {
	if (h != Left && h != Right) || (v != Top && v != Bottom) {
		return 0, false
	}
	return h | v, true
}

// Horizontal returns the horizontal component of d, or 0.
func (d Direction) Horizontal() Direction { return d & horizontal }

// Vertical returns the vertical component of d, or 0.
func (d Direction) Vertical() Direction { return d & vertical }

// Step returns the unit column and row deltas of d.
func (d Direction) Step() (dc, dr int) {
	switch d.Horizontal() {
	case Left:
		dc = -1
	case Right:
		dc = 1
	}
	switch d.Vertical() {
	case Top:
		dr = -1
	case Bottom:
		dr = 1
	}
	return dc, dr
}

// String returns the direction name.
func (d Direction) String() string {
	names := map[Direction]string{
		Left: "left", Right: "right", Top: "top", Bottom: "bottom",
		TopLeft: "top-left", TopRight: "top-right",
		BottomLeft: "bottom-left", BottomRight: "bottom-right",
	}
	if name, ok := names[d]; ok {
		return name
	}
	return "none"
}

// DirectionOf classifies the displacement from src to dest. It returns a
// straight direction when exactly one axis differs and a diagonal when both
// differ by the same amount; anything else is not a line move.
func DirectionOf(src, dest chess.Coordinate) (Direction, bool) {
	dc := dest.Col - src.Col
	dr := dest.Row - src.Row

	var h, v Direction
	switch {
	case dc < 0:
		h = Left
	case dc > 0:
		h = Right
	}
	switch {
	case dr < 0:
		v = Top
	case dr > 0:
		v = Bottom
	}

	switch {
	case h != 0 && v == 0:
		return h, true
	case h == 0 && v != 0:
		return v, true
	case h != 0 && v != 0 && abs(dc) == abs(dr):
		return Combine(h, v)
	}
	return 0, false
}

// Distance returns the Chebyshev distance between two squares.
func Distance(a, b chess.Coordinate) int {
	return max(abs(a.Col-b.Col), abs(a.Row-b.Row))
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
