package chess

import "math/bits"

// SquareSet is a set of linear square indices, one bit per square.
type SquareSet uint64

// Has reports whether index i is in the set.
func (s SquareSet) Has(i int) bool { return s&(1<<uint(i)) != 0 }

// Add returns the set with index i added.
func (s SquareSet) Add(i int) SquareSet { return s | (1 << uint(i)) }

// Remove returns the set with index i removed.
func (s SquareSet) Remove(i int) SquareSet { return s &^ (1 << uint(i)) }

// Len returns the number of squares in the set.
func (s SquareSet) Len() int { return bits.OnesCount64(uint64(s)) }

// Coordinates returns the members in ascending index order.
func (s SquareSet) Coordinates() []Coordinate {
	coords := make([]Coordinate, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		coords = append(coords, FromIndex(bits.TrailingZeros64(rest)))
	}
	return coords
}
