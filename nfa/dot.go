package nfa

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteDot renders the automaton as a Graphviz subgraph on w. The start
// state is drawn boxed, the accept state double-circled, and every
// transition becomes one labeled edge (ε for epsilon edges). name
// prefixes node identifiers so several automata can share a digraph.
//
// The output is a subgraph body; wrap it in "digraph { ... }" to feed
// it to dot directly.
func WriteDot(w io.Writer, n *NFA, name string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "subgraph %s {\n", name)
	fmt.Fprintf(&b, "  label = %q;\n", name)
	b.WriteString("  rankdir=\"LR\";\n")
	fmt.Fprintf(&b, "  %s%d [shape=box];\n", name, n.start)
	fmt.Fprintf(&b, "  %s%d [shape=doublecircle];\n", name, n.accept)
	for id := 0; id < len(n.states); id++ {
		for _, tr := range n.states[id].transitions {
			fmt.Fprintf(&b, "  %s%d [label=\"S%d\"];\n", name, tr.To, tr.To)
			fmt.Fprintf(&b, "  %s%d -> %s%d [label=%q];\n",
				name, id, name, tr.To, dotLabel(tr))
		}
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func dotLabel(tr Transition) string {
	if tr.Epsilon {
		return "ε"
	}
	switch tr.Symbol {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	}
	return string(tr.Symbol)
}

// Dump writes a plain-text state table on w: one line per state with a
// marker column (^ start, $ accept, - otherwise) and the state's edge
// list.
//
//	^ S0: {a→1, }
//	$ S1: {}
func Dump(w io.Writer, n *NFA) error {
	var b strings.Builder
	b.WriteString(n.String())
	b.WriteByte('\n')
	for id := 0; id < len(n.states); id++ {
		marker := "-"
		switch StateID(id) {
		case n.start:
			marker = "^"
		case n.accept:
			marker = "$"
		}
		b.WriteString("  ")
		b.WriteString(marker)
		b.WriteString(" S")
		b.WriteString(strconv.Itoa(id))
		b.WriteString(": {")
		for _, tr := range n.states[id].transitions {
			b.WriteString(tr.Label())
			b.WriteString("→")
			b.WriteString(strconv.Itoa(int(tr.To)))
			b.WriteString(", ")
		}
		b.WriteString("}\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
