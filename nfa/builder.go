package nfa

import "fmt"

// Fragment designates the start and accept states of one sub-automaton
// produced by a construction step.
type Fragment struct {
	Start  StateID
	Accept StateID
}

// Builder constructs an NFA inside a pre-allocated arena. The state
// table and every transition list are allocated once, up front, from
// the configured capacities; construction never grows them.
//
// A Builder tracks the fragment most recently produced through its
// start/accept cursors. Exactly one goroutine may use a Builder; the
// construction methods mutate it in place.
type Builder struct {
	cfg     Config
	states  []State
	backing []Transition
	start   StateID
	accept  StateID
}

// NewBuilder creates a builder whose arena holds at most
// cfg.MaxStates states with at most cfg.MaxTransitions edges each.
func NewBuilder(cfg Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Builder{
		cfg:     cfg,
		states:  make([]State, 0, cfg.MaxStates),
		backing: make([]Transition, cfg.MaxStates*cfg.MaxTransitions),
		start:   InvalidState,
		accept:  InvalidState,
	}, nil
}

// States returns the number of states allocated so far.
func (b *Builder) States() int {
	return len(b.states)
}

// Fragment returns the current fragment cursors.
func (b *Builder) Fragment() Fragment {
	return Fragment{Start: b.start, Accept: b.accept}
}

// SetFragment sets the current fragment cursors. Both states must
// already be allocated.
func (b *Builder) SetFragment(f Fragment) error {
	if int(f.Start) >= len(b.states) {
		return &BuildError{Message: "fragment start not allocated", StateID: f.Start}
	}
	if int(f.Accept) >= len(b.states) {
		return &BuildError{Message: "fragment accept not allocated", StateID: f.Accept}
	}
	b.start = f.Start
	b.accept = f.Accept
	return nil
}

// AddState allocates one state and returns its ID. Allocation is
// append-only: IDs are never reused or invalidated.
func (b *Builder) AddState() (StateID, error) {
	if len(b.states) >= b.cfg.MaxStates {
		return InvalidState, ErrStateCapacity
	}
	id := StateID(len(b.states))
	off := int(id) * b.cfg.MaxTransitions
	b.states = append(b.states, State{
		transitions: b.backing[off : off : off+b.cfg.MaxTransitions],
	})
	return id, nil
}

// AddTransition records a symbol-labeled edge from one state to another.
func (b *Builder) AddTransition(from, to StateID, symbol byte) error {
	return b.addEdge(from, Transition{Symbol: symbol, To: to})
}

// AddEpsilon records an epsilon edge from one state to another.
func (b *Builder) AddEpsilon(from, to StateID) error {
	return b.addEdge(from, Transition{Epsilon: true, To: to})
}

func (b *Builder) addEdge(from StateID, tr Transition) error {
	if int(from) >= len(b.states) {
		return &BuildError{Message: "edge source not allocated", StateID: from}
	}
	if int(tr.To) >= len(b.states) {
		return &BuildError{
			Message: fmt.Sprintf("edge target %d not allocated", tr.To),
			StateID: from,
		}
	}
	s := &b.states[from]
	if len(s.transitions) >= b.cfg.MaxTransitions {
		return ErrTransitionCapacity
	}
	s.transitions = append(s.transitions, tr)
	return nil
}

// EmptyFragment builds the empty-string fragment: two fresh states
// joined by an epsilon edge. The cursors move to the new fragment.
//
//	i --ε--> f
func (b *Builder) EmptyFragment() error {
	return b.fragment(Transition{Epsilon: true})
}

// SymbolFragment builds the single-symbol fragment: two fresh states
// joined by an edge labeled with the symbol. The cursors move to the
// new fragment.
//
//	i --sym--> f
func (b *Builder) SymbolFragment(symbol byte) error {
	return b.fragment(Transition{Symbol: symbol})
}

func (b *Builder) fragment(tr Transition) error {
	i, err := b.AddState()
	if err != nil {
		return err
	}
	f, err := b.AddState()
	if err != nil {
		return err
	}
	tr.To = f
	if err := b.addEdge(i, tr); err != nil {
		return err
	}
	b.start, b.accept = i, f
	return nil
}

// Concat fuses the fragment ending at prev.Accept with the current
// fragment: every edge on the current start state is copied onto
// prev.Accept, the current start's edge list is cleared, and the start
// cursor moves to prev.Start. Merging the two boundary states avoids an
// extra epsilon edge; the cleared state stays allocated but unreachable,
// so capacity planning must budget one such orphan per concatenation.
func (b *Builder) Concat(prev Fragment) error {
	if int(prev.Start) >= len(b.states) || int(prev.Accept) >= len(b.states) {
		return &BuildError{Message: "concat against unallocated fragment", StateID: prev.Accept}
	}
	if prev.Accept == b.start {
		return &BuildError{Message: "concat would fuse a state with itself", StateID: b.start}
	}
	src := &b.states[b.start]
	dst := &b.states[prev.Accept]
	if len(dst.transitions)+len(src.transitions) > b.cfg.MaxTransitions {
		return ErrTransitionCapacity
	}
	dst.transitions = append(dst.transitions, src.transitions...)
	src.transitions = src.transitions[:0]
	b.start = prev.Start
	return nil
}

// Alternate joins the prev fragment with the current fragment as the
// two branches of an alternation. Two fresh states are allocated; the
// new start forks by epsilon into both branch starts, and both branch
// accepts feed the new accept by epsilon.
func (b *Builder) Alternate(prev Fragment) error {
	rhs := b.Fragment()
	i, err := b.AddState()
	if err != nil {
		return err
	}
	f, err := b.AddState()
	if err != nil {
		return err
	}
	if err := b.AddEpsilon(i, prev.Start); err != nil {
		return err
	}
	if err := b.AddEpsilon(i, rhs.Start); err != nil {
		return err
	}
	if err := b.AddEpsilon(prev.Accept, f); err != nil {
		return err
	}
	if err := b.AddEpsilon(rhs.Accept, f); err != nil {
		return err
	}
	b.start, b.accept = i, f
	return nil
}

// KleeneStar wraps the current fragment so that zero or more
// repetitions are accepted. Two fresh states are allocated; epsilon
// edges bypass the fragment and loop its accept back to its start.
func (b *Builder) KleeneStar() error {
	inner := b.Fragment()
	i, err := b.AddState()
	if err != nil {
		return err
	}
	f, err := b.AddState()
	if err != nil {
		return err
	}
	if err := b.AddEpsilon(i, inner.Start); err != nil {
		return err
	}
	if err := b.AddEpsilon(i, f); err != nil {
		return err
	}
	if err := b.AddEpsilon(inner.Accept, inner.Start); err != nil {
		return err
	}
	if err := b.AddEpsilon(inner.Accept, f); err != nil {
		return err
	}
	b.start, b.accept = i, f
	return nil
}

// Build freezes the arena into an immutable NFA after validating its
// structure. The builder must not be used afterwards.
func (b *Builder) Build() (*NFA, error) {
	n := &NFA{
		states: b.states,
		start:  b.start,
		accept: b.accept,
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}
