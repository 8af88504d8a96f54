package nfa

import (
	"fmt"
	"strings"

	"github.com/coregx/tinynfa/internal/sparse"
)

// StateID uniquely identifies an NFA state.
// 16 bits address every arena size Config admits (MaxStates <= 65534).
type StateID uint16

// InvalidState represents an invalid/uninitialized state ID.
const InvalidState StateID = 0xFFFF

// Transition is a single edge out of a state. It is labeled either with
// one input symbol or with epsilon (no input consumed). Transitions are
// immutable once appended to a state.
type Transition struct {
	// Symbol is the input byte consumed by this edge. Only meaningful
	// when Epsilon is false.
	Symbol byte

	// Epsilon marks an edge traversable without consuming input.
	Epsilon bool

	// To is the target state.
	To StateID
}

// Label returns a printable form of the edge label: the literal symbol,
// or "ε" for epsilon edges.
func (t Transition) Label() string {
	if t.Epsilon {
		return "ε"
	}
	return string(t.Symbol)
}

// State holds the outgoing edges of one arena slot. The transition list
// is a fixed-capacity slice carved out of the arena's backing array; it
// never grows beyond the configured per-state limit.
type State struct {
	transitions []Transition
}

// Transitions returns the edges recorded on this state, in insertion
// order. The returned slice aliases arena storage and must not be
// mutated.
func (s *State) Transitions() []Transition {
	return s.transitions
}

// Len returns the number of edges recorded on this state.
func (s *State) Len() int {
	return len(s.transitions)
}

// NFA is a finished automaton: a fixed arena of states plus the start
// and accept indices of the compiled pattern. It is immutable and safe
// for concurrent readers.
type NFA struct {
	states []State
	start  StateID
	accept StateID
}

// Start returns the start state ID.
func (n *NFA) Start() StateID {
	return n.start
}

// Accept returns the accepting state ID.
func (n *NFA) Accept() StateID {
	return n.accept
}

// States returns the number of allocated states.
func (n *NFA) States() int {
	return len(n.states)
}

// State returns the state with the given ID, or nil if the ID is out of
// range.
func (n *NFA) State(id StateID) *State {
	if int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// Validate checks structural invariants: start and accept are in range,
// every edge targets an allocated state, and the accept state is
// reachable from the start state. Orphaned states (left behind by
// concatenation fusion) are permitted.
func (n *NFA) Validate() error {
	if int(n.start) >= len(n.states) {
		return &BuildError{Message: "start state out of bounds", StateID: n.start}
	}
	if int(n.accept) >= len(n.states) {
		return &BuildError{Message: "accept state out of bounds", StateID: n.accept}
	}
	for i := range n.states {
		for _, tr := range n.states[i].transitions {
			if int(tr.To) >= len(n.states) {
				return &BuildError{
					Message: fmt.Sprintf("transition targets unallocated state %d", tr.To),
					StateID: StateID(i),
				}
			}
		}
	}

	// BFS over all edges; epsilon and symbol edges both count for
	// reachability.
	seen := sparse.NewSet(uint16(len(n.states)))
	seen.Insert(uint16(n.start))
	queue := []StateID{n.start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, tr := range n.states[id].transitions {
			if !seen.Contains(uint16(tr.To)) {
				seen.Insert(uint16(tr.To))
				queue = append(queue, tr.To)
			}
		}
	}
	if !seen.Contains(uint16(n.accept)) {
		return &BuildError{Message: "accept state unreachable from start", StateID: n.accept}
	}
	return nil
}

// String returns a compact summary of the automaton.
func (n *NFA) String() string {
	var edges int
	for i := range n.states {
		edges += len(n.states[i].transitions)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "NFA{states: %d, edges: %d, start: %d, accept: %d}",
		len(n.states), edges, n.start, n.accept)
	return b.String()
}
