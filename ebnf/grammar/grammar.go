// Package grammar loads EBNF grammars written in the notation of
// golang.org/x/exp/ebnf.
package grammar

import (
	"io"
	"os"
	"reflect"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/exp/ebnf"
)

type (
	Expression  = ebnf.Expression
	Production  = ebnf.Production
	Alternative = ebnf.Alternative
	Sequence    = ebnf.Sequence
	Name        = ebnf.Name
	Token       = ebnf.Token
	Range       = ebnf.Range
	Group       = ebnf.Group
	Option      = ebnf.Option
	Repetition  = ebnf.Repetition
)

// Grammar maps production names to productions.
type Grammar ebnf.Grammar

// Parse reads a grammar from r. filename is used in error positions.
func Parse(filename string, r io.Reader) (Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, errors.Wrap(err, "parse grammar")
	}
	return Grammar(g), nil
}

// Load reads a grammar from a file.
func Load(filename string) (Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open grammar")
	}
	defer f.Close()

	return Parse(filename, f)
}

// Verify checks that every production is defined and reachable from start
// and that lexical productions only refer to lexical productions.
func Verify(g Grammar, start string) error {
	if err := ebnf.Verify(ebnf.Grammar(g), start); err != nil {
		return errors.Wrapf(err, "verify grammar from %q", start)
	}
	return nil
}

// Get returns the production called name, or nil.
func (g Grammar) Get(name string) *Production {
	return g[name]
}

func (g Grammar) Has(name string) bool {
	_, ok := g[name]
	return ok
}

// Names returns all production names in sorted order.
func (g Grammar) Names() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LexicalNames returns the sorted names of all lexical productions.
func (g Grammar) LexicalNames() []string {
	var names []string
	for _, name := range g.Names() {
		if IsLexical(name) && g[name].Expr != nil {
			names = append(names, name)
		}
	}
	return names
}

// IsLexical reports whether name denotes a lexical production, i.e. one
// whose name starts with an upper-case letter.
func IsLexical(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// Errors unpacks the error list produced by Parse and Verify.
func Errors(err error) []error {
	if err == nil {
		return nil
	}
	v := reflect.ValueOf(errors.Cause(err))
	if v.Kind() != reflect.Slice {
		return []error{err}
	}
	errs := make([]error, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if e, ok := v.Index(i).Interface().(error); ok {
			errs = append(errs, e)
		}
	}
	return errs
}
