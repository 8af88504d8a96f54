// Package sparse provides a sparse set over 16-bit state IDs.
//
// A sparse set supports O(1) insertion, membership testing, and clearing
// while keeping a dense list of members for iteration. It is used to
// track visited automaton states during reachability checks and
// epsilon-closure walks.
package sparse

// Set is a set of uint16 values drawn from a fixed universe
// [0, capacity). The sparse array maps values to indices in the dense
// array; a value is a member when that mapping round-trips.
type Set struct {
	sparse []uint16
	dense  []uint16
}

// NewSet creates a set able to hold values in [0, capacity).
func NewSet(capacity uint16) *Set {
	return &Set{
		sparse: make([]uint16, capacity),
		dense:  make([]uint16, 0, capacity),
	}
}

// Insert adds a value to the set. Values already present, or outside
// the capacity, are ignored.
func (s *Set) Insert(value uint16) {
	if int(value) >= len(s.sparse) || s.Contains(value) {
		return
	}
	s.sparse[value] = uint16(len(s.dense))
	s.dense = append(s.dense, value)
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint16) bool {
	if int(value) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[value]
	return int(idx) < len(s.dense) && s.dense[idx] == value
}

// Clear removes all members in O(1) time.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.dense)
}

// Values returns the members in insertion order. The slice is valid
// until the next mutation.
func (s *Set) Values() []uint16 {
	return s.dense
}
