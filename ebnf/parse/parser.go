package parse

import (
	"errors"
	"fmt"

	"github.com/dhamidi/parsnip/comb"
	"github.com/dhamidi/parsnip/ebnf/grammar"
	"github.com/dhamidi/parsnip/ebnf/lex"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("parsnip.parse")

type Option func(*Parser)

// WithSkip sets which lexical productions are skipped before every token.
// The default is WhiteSpace and Comment, where the grammar defines them.
func WithSkip(kinds ...string) Option {
	return func(p *Parser) {
		p.skipKinds = kinds
	}
}

// WithFilename sets the file name reported in positions and errors.
func WithFilename(name string) Option {
	return func(p *Parser) {
		p.filename = name
	}
}

// WithTrace logs every syntactic production as it is tried.
func WithTrace() Option {
	return func(p *Parser) {
		p.trace = true
	}
}

// Parser parses input against the productions of a grammar. Lower-case
// productions become interior nodes, upper-case (lexical) productions
// become tokens. A Parser may be used from several goroutines at once.
type Parser struct {
	grammar   grammar.Grammar
	matchers  *lex.Matchers
	skipKinds []string
	filename  string
	trace     bool

	skip  comb.Parser[struct{}]
	rules map[string]comb.Parser[*Node]
	errs  []error
}

// NewParser builds parsers for every production of g.
func NewParser(g grammar.Grammar, opts ...Option) (*Parser, error) {
	p := &Parser{
		grammar:   g,
		skipKinds: []string{"WhiteSpace", "Comment"},
		rules:     make(map[string]comb.Parser[*Node]),
	}
	for _, opt := range opts {
		opt(p)
	}

	m, err := lex.NewMatchers(g)
	if err != nil {
		return nil, err
	}
	p.matchers = m
	p.skip = p.buildSkip()

	var syntactic []string
	for _, name := range g.Names() {
		if !grammar.IsLexical(name) {
			syntactic = append(syntactic, name)
		}
	}
	if err := g.CheckLeftRecursion(syntactic...); err != nil {
		return nil, err
	}
	for _, name := range syntactic {
		p.rule(name)
	}
	if len(p.errs) > 0 {
		return nil, errors.Join(p.errs...)
	}
	return p, nil
}

// Tracing reports whether productions are logged as they are tried.
func (p *Parser) Tracing() bool {
	return p.trace
}

// Matchers returns the lexical matchers the parser was built with.
func (p *Parser) Matchers() *lex.Matchers {
	return p.matchers
}

// Rule returns the parser for a production, consuming any skipped input
// that follows it.
func (p *Parser) Rule(name string) (comb.Parser[*Node], error) {
	if !p.grammar.Has(name) {
		return nil, fmt.Errorf("production %q not found in grammar", name)
	}
	var root comb.Parser[*Node]
	if grammar.IsLexical(name) {
		m := p.matchers.Get(name)
		if m == nil {
			return nil, fmt.Errorf("production %q is empty", name)
		}
		root = comb.Map(p.terminal(name, m), func(nodes []*Node) *Node { return nodes[0] })
	} else {
		root = p.rules[name]
	}
	return comb.Skip(root, p.skip), nil
}

// Parse parses all of input starting from the given production.
// A syntax error is returned as a *comb.Error, wrapped with the file name
// when one is set.
func (p *Parser) Parse(start string, input []byte) (*Node, error) {
	root, err := p.Rule(start)
	if err != nil {
		return nil, err
	}
	report := comb.Parse(root, string(input))
	if err := report.Err(); err != nil {
		log.Debugf("parse %s from %q failed: %v", p.filename, start, err)
		if p.filename != "" {
			return nil, fmt.Errorf("%s:%w", p.filename, err)
		}
		return nil, err
	}
	return report.Value, nil
}

func (p *Parser) buildSkip() comb.Parser[struct{}] {
	var trivia []comb.Parser[string]
	for _, kind := range p.skipKinds {
		if m := p.matchers.Get(kind); m != nil {
			trivia = append(trivia, m)
		}
	}
	if len(trivia) == 0 {
		return comb.Succeed(struct{}{})
	}
	return silent(comb.Value(comb.Repeat(comb.Or(trivia...)), struct{}{}))
}

// silent runs q without reporting its failures. Skipped input is never
// what the user is expected to write next.
func silent[T any](q comb.Parser[T]) comb.Parser[T] {
	return func(in *comb.Input, t *comb.Tracker, at int) comb.Result[T] {
		return q(in, comb.NewTracker(), at)
	}
}

func (p *Parser) rule(name string) comb.Parser[*Node] {
	if r, ok := p.rules[name]; ok {
		return r
	}
	prod := p.grammar.Get(name)

	var body comb.Parser[*Node]
	p.rules[name] = comb.Lazy(func() comb.Parser[*Node] { return body })
	children := p.expr(prod.Expr)
	body = comb.Map(children, func(nodes []*Node) *Node {
		n := NewNonTerminal(name)
		for _, c := range nodes {
			n.AddChild(c)
		}
		return n
	})
	if p.trace {
		body = comb.Trace(name, body)
	}
	return p.rules[name]
}

// expr translates a syntactic expression into a parser yielding the nodes
// it contributes to the enclosing production.
func (p *Parser) expr(expr grammar.Expression) comb.Parser[[]*Node] {
	switch e := expr.(type) {
	case nil:
		return comb.Succeed[[]*Node](nil)

	case *grammar.Token:
		return p.terminal(e.String, comb.String(e.String))

	case *grammar.Range:
		kind := e.Begin.String + "…" + e.End.String
		return p.terminal(kind, p.lexical(e))

	case grammar.Sequence:
		parts := make([]comb.Parser[[]*Node], len(e))
		for i, item := range e {
			parts[i] = p.expr(item)
		}
		return flatten(comb.Seq(parts...))

	case grammar.Alternative:
		alts := make([]comb.Parser[[]*Node], len(e))
		for i, alt := range e {
			alts[i] = p.expr(alt)
		}
		return comb.Or(alts...)

	case *grammar.Repetition:
		return flatten(comb.Repeat(p.expr(e.Body)))

	case *grammar.Option:
		return comb.Optional(p.expr(e.Body))

	case *grammar.Group:
		return p.expr(e.Body)

	case *grammar.Name:
		if grammar.IsLexical(e.String) {
			m := p.matchers.Get(e.String)
			if m == nil {
				p.errs = append(p.errs, fmt.Errorf("%s: undefined production %q", e.Pos(), e.String))
				return comb.Fail[[]*Node](e.String)
			}
			return p.terminal(e.String, m)
		}
		if !p.grammar.Has(e.String) {
			p.errs = append(p.errs, fmt.Errorf("%s: undefined production %q", e.Pos(), e.String))
			return comb.Fail[[]*Node](e.String)
		}
		return comb.Map(p.rule(e.String), func(n *Node) []*Node { return []*Node{n} })

	default:
		p.errs = append(p.errs, fmt.Errorf("unsupported expression %T", expr))
		return comb.Fail[[]*Node]("valid expression")
	}
}

// lexical builds a one-character matcher for a range used outside a
// lexical production.
func (p *Parser) lexical(r *grammar.Range) comb.Parser[string] {
	lo, hi := []rune(r.Begin.String), []rune(r.End.String)
	if len(lo) != 1 || len(hi) != 1 {
		p.errs = append(p.errs, fmt.Errorf("%s: range bounds must be single characters", r.Pos()))
		return comb.Fail[string]("valid range")
	}
	return comb.Range(lo[0], hi[0])
}

// terminal skips trivia, then matches a token of the given kind.
func (p *Parser) terminal(kind string, match comb.Parser[string]) comb.Parser[[]*Node] {
	return comb.Then(p.skip, comb.Map(comb.Mark(match), func(m comb.Marked[string]) []*Node {
		tok := lex.Token{
			Kind:     kind,
			Literal:  m.Value,
			Position: lex.At(p.filename, m.Start),
		}
		return []*Node{NewTerminal(tok, lex.At(p.filename, m.End))}
	}))
}

func flatten(q comb.Parser[[][]*Node]) comb.Parser[[]*Node] {
	return comb.Map(q, func(groups [][]*Node) []*Node {
		var nodes []*Node
		for _, g := range groups {
			nodes = append(nodes, g...)
		}
		return nodes
	})
}
