package lex

import (
	"strings"
	"testing"

	"github.com/dhamidi/parsnip/ebnf/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenGrammar = `
Identifier = Letter { Letter | Digit } .
Number     = Digit { Digit } .
Plus       = "+" .
WhiteSpace = " " | "\n" .
Letter     = "a" … "z" .
Digit      = "0" … "9" .
`

func newLexer(t *testing.T, src, input string) *Lexer {
	t.Helper()
	g, err := grammar.Parse("test", strings.NewReader(src))
	require.NoError(t, err)
	l, err := NewLexer(g, []byte(input), "input.txt")
	require.NoError(t, err)
	return l
}

func TestTokenize(t *testing.T) {
	l := newLexer(t, tokenGrammar, "ab1 + 42\n?")
	tokens, err := l.Tokenize()
	require.NoError(t, err)

	type tok struct {
		kind, literal string
		line, col     int
	}
	want := []tok{
		{"Identifier", "ab1", 1, 1},
		{"WhiteSpace", " ", 1, 4},
		{"Plus", "+", 1, 5},
		{"WhiteSpace", " ", 1, 6},
		{"Number", "42", 1, 7},
		{"WhiteSpace", "\n", 1, 9},
		{"ERROR", "?", 2, 1},
		{"EOF", "", 2, 2},
	}
	var got []tok
	for _, tk := range tokens {
		got = append(got, tok{tk.Kind, tk.Literal, tk.Position.Line, tk.Position.Column})
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "input.txt", tokens[0].Position.Filename)
	assert.Equal(t, "input.txt:2:1", tokens[6].Position.String())
}

func TestNextTokenTiesGoToFirstName(t *testing.T) {
	l := newLexer(t, tokenGrammar, "x")
	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, "Identifier", tok.Kind)
}

func TestNextTokenOffsetsCountCharacters(t *testing.T) {
	l := newLexer(t, `
		Word = Letter { Letter } .
		Letter = "a" … "z" | "ä" | "ö" .
		Space = " " .
	`, "äö ab")
	tokens, err := l.Tokenize()
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, "äö", tokens[0].Literal)
	assert.Equal(t, 2, tokens[1].Position.Offset)
	assert.Equal(t, 4, tokens[2].Position.Column)
}

func TestNewLexerErrors(t *testing.T) {
	tests := []struct {
		name    string
		grammar string
		want    string
	}{
		{"non-lexical reference", `Word = letter . letter = "a" .`, "non-lexical"},
		{"undefined reference", `Word = Missing .`, "undefined"},
		{"bad range", `Pair = "ab" … "z" .`, "range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := grammar.Parse("test", strings.NewReader(tt.grammar))
			require.NoError(t, err)
			_, err = NewLexer(g, nil, "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMatchersRecursion(t *testing.T) {
	g, err := grammar.Parse("test", strings.NewReader(`
		Nested = "(" [ Nested ] ")" .
	`))
	require.NoError(t, err)
	m, err := NewMatchers(g)
	require.NoError(t, err)

	l := NewLexerWithMatchers(m, []byte("((()))"), "")
	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, "((()))", tok.Literal)
	assert.Equal(t, []string{"Nested"}, m.Names())
}

func TestTokenizeNullableRepetition(t *testing.T) {
	l := newLexer(t, `
		Word = { [ "a" ] } "b" .
		WhiteSpace = { " " } .
	`, "aab  b")
	tokens, err := l.Tokenize()
	require.NoError(t, err)

	var got []string
	for _, tok := range tokens {
		got = append(got, tok.Kind+":"+tok.Literal)
	}
	assert.Equal(t, []string{"Word:aab", "WhiteSpace:  ", "Word:b", "EOF:"}, got)
}

func TestNewLexerRejectsLeftRecursion(t *testing.T) {
	g, err := grammar.Parse("test", strings.NewReader(`A = A "x" | "x" .`))
	require.NoError(t, err)
	require.NoError(t, grammar.Verify(g, "A"))

	_, err = NewLexer(g, []byte("xx"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "left recursion: A → A")
}
