package nfa

import "errors"

// Compile compiles a restricted regular expression into an NFA using
// the default arena capacities.
//
// Supported syntax: literal alphabet bytes, escapes (\n, \t, and
// backslash-escaped metacharacters), grouping with parentheses,
// alternation with '|', and the Kleene star. The star binds to the
// immediately preceding term or group. There is no '+' or '?'
// quantifier.
//
// Compilation is deterministic: identical patterns always produce
// structurally identical automata, or the identical error at the
// identical byte offset.
func Compile(pattern string) (*NFA, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles pattern inside an arena sized by cfg.
// All failures, syntax and capacity alike, abort the whole call with
// a *ParseError and no partial automaton.
func CompileWithConfig(pattern string, cfg Config) (*NFA, error) {
	b, err := NewBuilder(cfg)
	if err != nil {
		return nil, err
	}
	p := &parser{input: []byte(pattern), b: b}

	// Seed an initial empty-string fragment so the cursors always
	// reference allocated states, even for an empty pattern.
	if err := b.EmptyFragment(); err != nil {
		return nil, p.fail(0, err)
	}
	pos, err := p.expr(0)
	if err != nil {
		return nil, err
	}
	if pos != len(p.input) {
		return nil, p.fail(pos, ErrTrailingInput)
	}
	return b.Build()
}

// parser is a recursive-descent parser over the pattern bytes. It has
// no state beyond the input slice and the builder it drives; every rule
// takes a byte position and returns the advanced position, so progress
// is always explicit. There is no backtracking: once a rule consumes
// bytes it never un-consumes them.
type parser struct {
	input []byte
	b     *Builder
}

// fail attaches the pattern and failing offset to a sentinel or builder
// error. Errors that already carry an offset pass through unchanged.
func (p *parser) fail(pos int, err error) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return err
	}
	return &ParseError{Pattern: string(p.input), Offset: pos, Err: err}
}

// expr parses one expression scope: a leading term, then rest steps
// until one makes no progress. No progress signals the end of the
// scope: end of input, or a ')' owned by an enclosing group.
func (p *parser) expr(pos int) (int, error) {
	if pos == len(p.input) {
		return pos, nil
	}
	pos, err := p.term(pos)
	if err != nil {
		return pos, err
	}
	for pos < len(p.input) {
		last := pos
		pos, err = p.rest(pos)
		if err != nil {
			return pos, err
		}
		if pos == last {
			return pos, nil
		}
	}
	return pos, nil
}

// rest extends the fragment built so far by one step: a parenthesized
// group, an alternation reaching to the end of the scope, or one more
// term concatenated on the right.
func (p *parser) rest(pos int) (int, error) {
	prev := p.b.Fragment()
	switch p.input[pos] {
	case '(':
		next, err := p.group(pos)
		if err != nil {
			return next, err
		}
		// A trailing star applies to the whole group, before the group
		// is joined onto the preceding fragment.
		next, err = p.postfix(next)
		if err != nil {
			return next, err
		}
		if err := p.b.Concat(prev); err != nil {
			return next, p.fail(pos, err)
		}
		return next, nil
	case '|':
		return p.alternation(pos, prev)
	default:
		next, err := p.term(pos)
		if err != nil {
			return next, err
		}
		if err := p.b.Concat(prev); err != nil {
			return next, p.fail(pos, err)
		}
		return next, nil
	}
}

// term builds one fragment: an escape sequence, a single alphabet
// symbol, or, without consuming input, the empty-string fragment.
// A trailing star binds tightly to the term just built.
func (p *parser) term(pos int) (int, error) {
	if pos == len(p.input) {
		return pos, nil
	}
	var err error
	switch c := p.input[pos]; {
	case c == '\\':
		pos, err = p.escapedTerm(pos + 1)
	case isAlphabetByte(c):
		if err = p.b.SymbolFragment(c); err != nil {
			err = p.fail(pos, err)
		}
		pos++
	default:
		if err = p.b.EmptyFragment(); err != nil {
			err = p.fail(pos, err)
		}
	}
	if err != nil {
		return pos, err
	}
	return p.postfix(pos)
}

// escapedTerm builds the fragment for the byte following a backslash.
// pos is the position after the backslash.
func (p *parser) escapedTerm(pos int) (int, error) {
	if pos == len(p.input) {
		return pos, p.fail(pos, ErrEscapeEOF)
	}
	symbol, ok := escapedByte(p.input[pos])
	if !ok {
		return pos, p.fail(pos, ErrUnknownEscape)
	}
	if err := p.b.SymbolFragment(symbol); err != nil {
		return pos, p.fail(pos, err)
	}
	return pos + 1, nil
}

// postfix applies a Kleene star to the current fragment if one follows.
func (p *parser) postfix(pos int) (int, error) {
	if pos < len(p.input) && p.input[pos] == '*' {
		if err := p.b.KleeneStar(); err != nil {
			return pos, p.fail(pos, err)
		}
		return pos + 1, nil
	}
	return pos, nil
}

// alternation parses everything right of the '|' as a full
// sub-expression, then joins it with the fragment to the left.
// Alternation is right-recursive and extends to the end of the
// enclosing scope, giving it the lowest precedence.
func (p *parser) alternation(pos int, prev Fragment) (int, error) {
	// Seed a fresh empty fragment so an empty right-hand side (scope
	// ends immediately after the '|') alternates against the empty
	// string instead of against the left fragment itself.
	if err := p.b.EmptyFragment(); err != nil {
		return pos, p.fail(pos, err)
	}
	pos, err := p.expr(pos + 1)
	if err != nil {
		return pos, err
	}
	if err := p.b.Alternate(prev); err != nil {
		return pos, p.fail(pos, err)
	}
	return pos, nil
}

// group consumes a parenthesized sub-expression, both parens included.
func (p *parser) group(pos int) (int, error) {
	if pos >= len(p.input) || p.input[pos] != '(' {
		return pos, p.fail(pos, ErrExpectedGroup)
	}
	pos, err := p.expr(pos + 1)
	if err != nil {
		return pos, err
	}
	if pos < len(p.input) && p.input[pos] == ')' {
		return pos + 1, nil
	}
	return pos, p.fail(pos, ErrUnterminatedGroup)
}
