package tinynfa

import (
	"errors"
	"strings"
	"testing"

	"github.com/coregx/tinynfa/nfa"
)

func TestCompile(t *testing.T) {
	p, err := Compile("(a|b)c")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if p.String() != "(a|b)c" {
		t.Errorf("String() = %q, want the source pattern", p.String())
	}
	if p.NFA() == nil || p.NFA().States() == 0 {
		t.Error("NFA() should expose the compiled automaton")
	}
}

func TestCompile_Error(t *testing.T) {
	p, err := Compile("(a")
	if p != nil {
		t.Fatal("Compile should not return a pattern on error")
	}
	if !errors.Is(err, nfa.ErrUnterminatedGroup) {
		t.Errorf("err = %v, want %v", err, nfa.ErrUnterminatedGroup)
	}
}

func TestCompileWithConfig(t *testing.T) {
	_, err := CompileWithConfig("aaaa", nfa.Config{MaxStates: 4, MaxTransitions: 4})
	if !errors.Is(err, nfa.ErrStateCapacity) {
		t.Errorf("err = %v, want %v", err, nfa.ErrStateCapacity)
	}
}

func TestMustCompile_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile should panic on a malformed pattern")
		}
	}()
	MustCompile(`\`)
}

func TestPattern_Dot(t *testing.T) {
	p := MustCompile("a")
	var b strings.Builder
	if err := p.Dot(&b, "m"); err != nil {
		t.Fatalf("Dot: %v", err)
	}
	if !strings.Contains(b.String(), "subgraph m {") {
		t.Errorf("Dot output missing subgraph header:\n%s", b.String())
	}
}

func TestPattern_Dump(t *testing.T) {
	p := MustCompile("a")
	var b strings.Builder
	if err := p.Dump(&b); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if !strings.Contains(b.String(), "^ S2:") {
		t.Errorf("Dump output missing start marker:\n%s", b.String())
	}
}
