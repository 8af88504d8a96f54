package gen

import (
	"strings"
	"testing"

	"github.com/coregx/tinynfa/nfa"
)

func compile(t *testing.T, pattern string) *nfa.NFA {
	t.Helper()
	n, err := nfa.Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return n
}

func TestSource(t *testing.T) {
	n := compile(t, "a")
	src, err := Source(n, "patterns", "Letter")
	if err != nil {
		t.Fatalf("Source: %v", err)
	}

	for _, want := range []string{
		"// Code generated by tinynfa. DO NOT EDIT.",
		"package patterns",
		"func NewLetter() *nfa.NFA",
		"MaxStates:",
		"b.AddTransition(2, 3, 'a')",
		"b.AddEpsilon(0, 1)",
		"b.SetFragment(nfa.Fragment{",
		"return n",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q:\n%s", want, src)
		}
	}
}

func TestSource_NonPrintableSymbol(t *testing.T) {
	n := compile(t, `\n`)
	src, err := Source(n, "patterns", "Newline")
	if err != nil {
		t.Fatalf("Source: %v", err)
	}
	if !strings.Contains(src, "b.AddTransition(2, 3, 10)") {
		t.Errorf("newline symbol should be emitted numerically:\n%s", src)
	}
}

func TestSource_InvalidIdent(t *testing.T) {
	n := compile(t, "a")
	for _, ident := range []string{"", "9lives", "no-dash"} {
		if _, err := Source(n, "patterns", ident); err == nil {
			t.Errorf("Source with ident %q should fail", ident)
		}
	}
}

// TestSource_RoundTrip replays the generated construction sequence by
// hand and checks the rebuilt automaton matches the original graph.
func TestSource_RoundTrip(t *testing.T) {
	orig := compile(t, "(a|b)c*")

	maxFanout := 1
	for id := 0; id < orig.States(); id++ {
		if l := orig.State(nfa.StateID(id)).Len(); l > maxFanout {
			maxFanout = l
		}
	}
	b, err := nfa.NewBuilder(nfa.Config{MaxStates: orig.States(), MaxTransitions: maxFanout})
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	for i := 0; i < orig.States(); i++ {
		if _, err := b.AddState(); err != nil {
			t.Fatalf("AddState: %v", err)
		}
	}
	for id := 0; id < orig.States(); id++ {
		for _, tr := range orig.State(nfa.StateID(id)).Transitions() {
			if tr.Epsilon {
				err = b.AddEpsilon(nfa.StateID(id), tr.To)
			} else {
				err = b.AddTransition(nfa.StateID(id), tr.To, tr.Symbol)
			}
			if err != nil {
				t.Fatalf("replay edge %d -> %d: %v", id, tr.To, err)
			}
		}
	}
	if err := b.SetFragment(nfa.Fragment{Start: orig.Start(), Accept: orig.Accept()}); err != nil {
		t.Fatalf("SetFragment: %v", err)
	}
	rebuilt, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if rebuilt.States() != orig.States() ||
		rebuilt.Start() != orig.Start() ||
		rebuilt.Accept() != orig.Accept() {
		t.Fatalf("rebuilt = %v, orig = %v", rebuilt, orig)
	}
	for id := 0; id < orig.States(); id++ {
		ot := orig.State(nfa.StateID(id)).Transitions()
		rt := rebuilt.State(nfa.StateID(id)).Transitions()
		if len(ot) != len(rt) {
			t.Fatalf("state %d: %d transitions, want %d", id, len(rt), len(ot))
		}
		for i := range ot {
			if ot[i] != rt[i] {
				t.Fatalf("state %d transition %d: %+v, want %+v", id, i, rt[i], ot[i])
			}
		}
	}
}
