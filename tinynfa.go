// Package tinynfa compiles a restricted regular-expression syntax into
// a fixed-capacity Thompson NFA.
//
// The heavy lifting lives in the nfa package; this package is a thin
// facade bundling a compiled automaton with its source pattern.
//
// Basic usage:
//
//	p, err := tinynfa.Compile(`(a|b)c*`)
//	if err != nil {
//		log.Fatal(err)
//	}
//	p.Dot(os.Stdout, "g")
package tinynfa

import (
	"io"

	"github.com/coregx/tinynfa/nfa"
)

// Pattern is a compiled pattern: the source text plus the finished
// automaton. It is immutable and safe for concurrent readers.
type Pattern struct {
	nfa     *nfa.NFA
	pattern string
}

// Compile compiles a pattern with the default arena capacities.
func Compile(pattern string) (*Pattern, error) {
	return CompileWithConfig(pattern, nfa.DefaultConfig())
}

// CompileWithConfig compiles a pattern inside an arena sized by cfg.
func CompileWithConfig(pattern string, cfg nfa.Config) (*Pattern, error) {
	n, err := nfa.CompileWithConfig(pattern, cfg)
	if err != nil {
		return nil, err
	}
	return &Pattern{nfa: n, pattern: pattern}, nil
}

// MustCompile is like Compile but panics on error. Intended for
// patterns fixed at program start.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// NFA returns the compiled automaton.
func (p *Pattern) NFA() *nfa.NFA {
	return p.nfa
}

// String returns the source pattern.
func (p *Pattern) String() string {
	return p.pattern
}

// Dot renders the automaton as a Graphviz subgraph on w.
func (p *Pattern) Dot(w io.Writer, name string) error {
	return nfa.WriteDot(w, p.nfa, name)
}

// Dump writes the automaton's plain-text state table on w.
func (p *Pattern) Dump(w io.Writer) error {
	return nfa.Dump(w, p.nfa)
}
