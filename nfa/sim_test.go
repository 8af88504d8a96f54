package nfa

import "github.com/coregx/tinynfa/internal/sparse"

// accepts reports whether the automaton accepts input, by stepping
// epsilon closures over the transition graph. Test-only: the shipped
// core compiles and renders automata but deliberately carries no
// execution engine.
func accepts(n *NFA, input string) bool {
	current := sparse.NewSet(uint16(n.States()))
	next := sparse.NewSet(uint16(n.States()))
	addClosure(n, current, n.Start())

	for i := 0; i < len(input); i++ {
		next.Clear()
		for _, id := range current.Values() {
			for _, tr := range n.State(StateID(id)).Transitions() {
				if !tr.Epsilon && tr.Symbol == input[i] {
					addClosure(n, next, tr.To)
				}
			}
		}
		current, next = next, current
	}
	return current.Contains(uint16(n.Accept()))
}

// addClosure inserts id and everything reachable from it over epsilon
// edges alone.
func addClosure(n *NFA, set *sparse.Set, id StateID) {
	if set.Contains(uint16(id)) {
		return
	}
	set.Insert(uint16(id))
	for _, tr := range n.State(id).Transitions() {
		if tr.Epsilon {
			addClosure(n, set, tr.To)
		}
	}
}
