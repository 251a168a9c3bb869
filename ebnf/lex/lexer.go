// Package lex tokenizes input using the lexical productions of an EBNF
// grammar.
package lex

import (
	"fmt"
	"io"

	"github.com/dhamidi/parsnip/comb"
	"github.com/dhamidi/parsnip/ebnf/grammar"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("parsnip.lex")

// Position represents a location in source code.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// At converts a position within the input into a Position in filename.
func At(filename string, pos comb.Position) Position {
	return Position{
		Filename: filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

// Token represents a lexical token with its position.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

// Lexer tokenizes input based on an EBNF grammar.
type Lexer struct {
	matchers *Matchers
	input    *comb.Input
	filename string
	pos      int
	tracker  *comb.Tracker
}

// NewLexer creates a lexer for the given grammar and input.
func NewLexer(g grammar.Grammar, input []byte, filename string) (*Lexer, error) {
	m, err := NewMatchers(g)
	if err != nil {
		return nil, fmt.Errorf("build lexer: %w", err)
	}
	return NewLexerWithMatchers(m, input, filename), nil
}

// NewLexerWithMatchers creates a lexer reusing already built matchers.
func NewLexerWithMatchers(m *Matchers, input []byte, filename string) *Lexer {
	return &Lexer{
		matchers: m,
		input:    comb.NewInput(string(input)),
		filename: filename,
		tracker:  comb.NewTracker(),
	}
}

// Position returns the current position in the input.
func (l *Lexer) Position() Position {
	return At(l.filename, l.input.Position(l.pos))
}

// NextToken returns the next token from the input.
// It tries every lexical production and returns the longest match; ties go
// to the production whose name sorts first. Input no production matches is
// returned one character at a time as ERROR tokens.
func (l *Lexer) NextToken() (Token, error) {
	if l.pos >= l.input.Len() {
		return Token{Kind: "EOF", Position: l.Position()}, io.EOF
	}

	startPos := l.Position()

	var bestKind string
	bestEnd := l.pos
	for _, name := range l.matchers.Names() {
		l.tracker.Reset()
		r := l.matchers.Get(name)(l.input, l.tracker, l.pos)
		if r.OK && r.Offset > bestEnd {
			bestEnd = r.Offset
			bestKind = name
		}
	}

	if bestEnd == l.pos {
		literal := l.input.Slice(l.pos, l.pos+1)
		l.pos++
		log.Debugf("%s: no token matches %q", startPos, literal)
		return Token{
			Kind:     "ERROR",
			Literal:  literal,
			Position: startPos,
		}, nil
	}

	literal := l.input.Slice(l.pos, bestEnd)
	l.pos = bestEnd
	return Token{
		Kind:     bestKind,
		Literal:  literal,
		Position: startPos,
	}, nil
}

// Tokenize reads all tokens from input. The last token is always EOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err == io.EOF {
			tokens = append(tokens, tok)
			break
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
