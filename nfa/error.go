// Package nfa compiles a restricted regular-expression syntax into a
// nondeterministic finite automaton via Thompson's construction.
//
// The automaton is built inside a fixed-capacity arena: the state table
// and every per-state transition list are allocated once from the
// configured capacities, and construction fails with a typed error
// rather than grow them. States are addressed by integer IDs, so the
// cycles created by Kleene stars need no special ownership handling.
//
// Basic usage:
//
//	n, err := nfa.Compile(`(a|b)c*`)
//	if err != nil {
//		log.Fatal(err)
//	}
//	nfa.WriteDot(os.Stdout, n, "g")
package nfa

import (
	"errors"
	"fmt"
	"strings"
)

// Compilation failure kinds. Every failure is fatal for the whole
// Compile call: no partial automaton is ever returned.
var (
	// ErrTrailingInput indicates parsing stopped before consuming the
	// whole pattern.
	ErrTrailingInput = errors.New("unexpected trailing input")

	// ErrUnterminatedGroup indicates a "(" with no matching ")".
	ErrUnterminatedGroup = errors.New("unterminated group, expected ')'")

	// ErrExpectedGroup indicates the group rule was entered away from a
	// "(". This is an internal invariant violation.
	ErrExpectedGroup = errors.New("expected '('")

	// ErrUnknownEscape indicates a backslash followed by a byte outside
	// the recognized escape set.
	ErrUnknownEscape = errors.New("unknown escaped character")

	// ErrEscapeEOF indicates a backslash at the end of the pattern.
	ErrEscapeEOF = errors.New("unexpected end of input after escape")

	// ErrStateCapacity indicates the arena ran out of states.
	ErrStateCapacity = errors.New("state capacity exceeded")

	// ErrTransitionCapacity indicates a state ran out of transition
	// slots.
	ErrTransitionCapacity = errors.New("transition capacity exceeded")

	// ErrInvalidConfig indicates invalid arena capacities.
	ErrInvalidConfig = errors.New("invalid arena configuration")
)

// ParseError reports a failed compilation: which sentinel kind, and the
// byte offset in the pattern at which the failure was detected.
type ParseError struct {
	Pattern string
	Offset  int
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("compile %q: %v at offset %d", e.Pattern, e.Err, e.Offset)
}

// Unwrap returns the sentinel kind.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Indicate renders the pattern with a caret line marking the failing
// offset:
//
//	a)b
//	~^
func (e *ParseError) Indicate() string {
	var b strings.Builder
	b.WriteString(e.Pattern)
	b.WriteByte('\n')
	if e.Offset > 0 {
		b.WriteString(strings.Repeat("~", e.Offset))
	}
	b.WriteString("^\n")
	return b.String()
}

// BuildError reports a malformed use of the low-level Builder API.
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("nfa build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("nfa build error: %s", e.Message)
}
