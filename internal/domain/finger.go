package domain

import "sort"

// FingerIndex identifies one of the ten nail positions. Positions 0-4 cover
// the left hand from pinky to thumb, positions 5-9 the right hand from thumb
// to pinky.
type FingerIndex int

// NailCount is the number of nail positions in a full set.
const NailCount = 10

var (
	// LeftHandFingers lists the left-hand positions, pinky first.
	LeftHandFingers = []FingerIndex{0, 1, 2, 3, 4}
	// RightHandFingers lists the right-hand positions, thumb first.
	RightHandFingers = []FingerIndex{5, 6, 7, 8, 9}
)

// Valid reports whether the index names a real nail position.
func (f FingerIndex) Valid() bool {
	return f >= 0 && f < NailCount
}

// AllFingers returns every nail position in ascending order.
func AllFingers() []FingerIndex {
	fingers := make([]FingerIndex, 0, NailCount)
	for i := 0; i < NailCount; i++ {
		fingers = append(fingers, FingerIndex(i))
	}
	return fingers
}

// FingerSet is an unordered collection of nail positions.
type FingerSet map[FingerIndex]struct{}

// NewFingerSet builds a set from the given positions.
func NewFingerSet(fingers ...FingerIndex) FingerSet {
	set := make(FingerSet, len(fingers))
	for _, f := range fingers {
		set[f] = struct{}{}
	}
	return set
}

// FullFingerSet returns a set covering all ten positions.
func FullFingerSet() FingerSet {
	return NewFingerSet(AllFingers()...)
}

// Has reports membership.
func (s FingerSet) Has(f FingerIndex) bool {
	_, ok := s[f]
	return ok
}

// Clone returns an independent copy of the set.
func (s FingerSet) Clone() FingerSet {
	out := make(FingerSet, len(s))
	for f := range s {
		out[f] = struct{}{}
	}
	return out
}

// Sorted returns the members in ascending order. Collections cross
// persistence boundaries as sorted lists so serialized forms stay
// deterministic.
func (s FingerSet) Sorted() []FingerIndex {
	out := make([]FingerIndex, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
