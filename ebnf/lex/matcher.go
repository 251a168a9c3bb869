package lex

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dhamidi/parsnip/comb"
	"github.com/dhamidi/parsnip/ebnf/grammar"
)

// Matchers holds a parser for every lexical production of a grammar. Each
// parser yields the text it matched.
type Matchers struct {
	g     grammar.Grammar
	rules map[string]comb.Parser[string]
	errs  []error
}

// NewMatchers builds parsers for all lexical productions of g.
func NewMatchers(g grammar.Grammar) (*Matchers, error) {
	m := &Matchers{
		g:     g,
		rules: make(map[string]comb.Parser[string]),
	}
	if err := g.CheckLeftRecursion(g.LexicalNames()...); err != nil {
		return nil, err
	}
	for _, name := range g.LexicalNames() {
		m.rule(name)
	}
	if len(m.errs) > 0 {
		return nil, errors.Join(m.errs...)
	}
	return m, nil
}

// Get returns the parser for the lexical production name, or nil.
func (m *Matchers) Get(name string) comb.Parser[string] {
	return m.rules[name]
}

// Names returns the lexical productions in the order the lexer tries them.
func (m *Matchers) Names() []string {
	return m.g.LexicalNames()
}

func (m *Matchers) rule(name string) comb.Parser[string] {
	if p, ok := m.rules[name]; ok {
		return p
	}
	prod := m.g.Get(name)
	if prod == nil {
		m.errs = append(m.errs, fmt.Errorf("undefined production %q", name))
		return comb.Fail[string](name)
	}
	if !grammar.IsLexical(name) {
		m.errs = append(m.errs, fmt.Errorf("lexical production refers to non-lexical production %q", name))
		return comb.Fail[string](name)
	}

	// The placeholder lets recursive references resolve to the body built below.
	var body comb.Parser[string]
	m.rules[name] = comb.Lazy(func() comb.Parser[string] { return body })
	body = comb.Desc(m.expr(prod.Expr), name)
	return m.rules[name]
}

func (m *Matchers) expr(expr grammar.Expression) comb.Parser[string] {
	switch e := expr.(type) {
	case nil:
		return comb.Succeed("")

	case *grammar.Token:
		return comb.String(e.String)

	case *grammar.Range:
		lo, hi, err := rangeBounds(e)
		if err != nil {
			m.errs = append(m.errs, err)
			return comb.Fail[string](e.Begin.String + "…" + e.End.String)
		}
		return comb.Range(lo, hi)

	case grammar.Sequence:
		parts := make([]comb.Parser[string], len(e))
		for i, item := range e {
			parts[i] = m.expr(item)
		}
		return comb.Concat(comb.Seq(parts...))

	case grammar.Alternative:
		alts := make([]comb.Parser[string], len(e))
		for i, alt := range e {
			alts[i] = m.expr(alt)
		}
		return comb.Or(alts...)

	case *grammar.Repetition:
		return comb.Concat(comb.Repeat(m.expr(e.Body)))

	case *grammar.Option:
		return comb.Optional(m.expr(e.Body))

	case *grammar.Group:
		return m.expr(e.Body)

	case *grammar.Name:
		return m.rule(e.String)

	default:
		m.errs = append(m.errs, fmt.Errorf("unsupported expression %T", expr))
		return comb.Fail[string]("valid expression")
	}
}

func rangeBounds(r *grammar.Range) (rune, rune, error) {
	lo, n := utf8.DecodeRuneInString(r.Begin.String)
	if n == 0 || n != len(r.Begin.String) {
		return 0, 0, fmt.Errorf("%s: range bound %q is not a single character", r.Begin.Pos(), r.Begin.String)
	}
	hi, n := utf8.DecodeRuneInString(r.End.String)
	if n == 0 || n != len(r.End.String) {
		return 0, 0, fmt.Errorf("%s: range bound %q is not a single character", r.End.Pos(), r.End.String)
	}
	return lo, hi, nil
}
