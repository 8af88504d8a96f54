// Package gen emits Go source embedding a compiled automaton.
//
// The generated file declares a single constructor that replays the
// automaton through the nfa package's low-level builder API, so the
// embedded automaton is bit-identical to the one compiled at generation
// time. No matching code is generated.
package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/coregx/tinynfa/nfa"
)

const nfaPkg = "github.com/coregx/tinynfa/nfa"

// File builds the generated source file: package pkgName with one
// function New<ident> reconstructing n.
func File(n *nfa.NFA, pkgName, ident string) *jen.File {
	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by tinynfa. DO NOT EDIT.")

	maxFanout := 1
	for id := 0; id < n.States(); id++ {
		if l := n.State(nfa.StateID(id)).Len(); l > maxFanout {
			maxFanout = l
		}
	}

	stmts := []jen.Code{
		jen.List(jen.Id("b"), jen.Err()).Op(":=").Qual(nfaPkg, "NewBuilder").Call(
			jen.Qual(nfaPkg, "Config").Values(jen.Dict{
				jen.Id("MaxStates"):      jen.Lit(n.States()),
				jen.Id("MaxTransitions"): jen.Lit(maxFanout),
			}),
		),
		checkErr(),
		jen.For(
			jen.Id("i").Op(":=").Lit(0),
			jen.Id("i").Op("<").Lit(n.States()),
			jen.Id("i").Op("++"),
		).Block(
			jen.If(
				jen.List(jen.Id("_"), jen.Err()).Op(":=").Id("b").Dot("AddState").Call(),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Panic(jen.Err())),
		),
	}

	for id := 0; id < n.States(); id++ {
		for _, tr := range n.State(nfa.StateID(id)).Transitions() {
			var call *jen.Statement
			if tr.Epsilon {
				call = jen.Id("b").Dot("AddEpsilon").Call(
					jen.Lit(id), jen.Lit(int(tr.To)),
				)
			} else {
				call = jen.Id("b").Dot("AddTransition").Call(
					jen.Lit(id), jen.Lit(int(tr.To)), symbolLit(tr.Symbol),
				)
			}
			stmts = append(stmts, jen.If(
				jen.Err().Op(":=").Add(call),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Panic(jen.Err())))
		}
	}

	stmts = append(stmts,
		jen.If(
			jen.Err().Op(":=").Id("b").Dot("SetFragment").Call(
				jen.Qual(nfaPkg, "Fragment").Values(jen.Dict{
					jen.Id("Start"):  jen.Lit(int(n.Start())),
					jen.Id("Accept"): jen.Lit(int(n.Accept())),
				}),
			),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Panic(jen.Err())),
		jen.List(jen.Id("n"), jen.Err()).Op(":=").Id("b").Dot("Build").Call(),
		checkErr(),
		jen.Return(jen.Id("n")),
	)

	f.Commentf("New%s reconstructs a compiled automaton with %d states.", ident, n.States())
	f.Func().Id("New" + ident).Params().Op("*").Qual(nfaPkg, "NFA").Block(stmts...)
	return f
}

// Source renders the generated file to Go source text.
func Source(n *nfa.NFA, pkgName, ident string) (string, error) {
	if err := validIdent(ident); err != nil {
		return "", err
	}
	var b strings.Builder
	if err := File(n, pkgName, ident).Render(&b); err != nil {
		return "", fmt.Errorf("render generated source: %w", err)
	}
	return b.String(), nil
}

func checkErr() jen.Code {
	return jen.If(jen.Err().Op("!=").Nil()).Block(jen.Panic(jen.Err()))
}

// symbolLit prefers a rune literal for printable ASCII so generated
// transitions stay readable.
func symbolLit(b byte) jen.Code {
	if b < 0x80 && strconv.IsPrint(rune(b)) {
		return jen.LitRune(rune(b))
	}
	return jen.Lit(int(b))
}

func validIdent(ident string) error {
	if ident == "" {
		return fmt.Errorf("identifier must not be empty")
	}
	for i, r := range ident {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return fmt.Errorf("identifier %q starts with a digit", ident)
			}
		default:
			return fmt.Errorf("identifier %q contains %q", ident, r)
		}
	}
	return nil
}
