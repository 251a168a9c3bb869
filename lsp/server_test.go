package lsp

import (
	"strings"
	"testing"

	"github.com/dhamidi/parsnip/ebnf/grammar"
	"github.com/dhamidi/parsnip/ebnf/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const listGrammar = `
list   = "[" [ item { "," item } ] "]" .
item   = Word | String .
Word   = Letter { Letter } .
Letter = "a" … "z" .
String = "\"" { Char } "\"" .
Char   = " " … "!" | "#" … "~" | "😀" .
WhiteSpace = " " | "\n" .
`

func newServer(t *testing.T, start string) *Server {
	t.Helper()
	g, err := grammar.Parse("list.ebnf", strings.NewReader(listGrammar))
	require.NoError(t, err)
	p, err := parse.NewParser(g)
	require.NoError(t, err)
	return NewServer("test", p, start)
}

func TestDiagnoseValid(t *testing.T) {
	diags, err := newServer(t, "list").Diagnose("[a, \"b\",\n c]\n")
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.NotNil(t, diags, "an empty list clears the client's diagnostics")
}

func TestDiagnoseSyntaxError(t *testing.T) {
	diags, err := newServer(t, "list").Diagnose("[a,\n b c]")
	require.NoError(t, err)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 1, Character: 3},
		End:   protocol.Position{Line: 1, Character: 4},
	}, d.Range)
	assert.Equal(t, `expected one of ',', ']', got "c]"`, d.Message)
	require.NotNil(t, d.Severity)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	require.NotNil(t, d.Source)
	assert.Equal(t, "parsnip", *d.Source)
}

func TestDiagnoseCountsUTF16(t *testing.T) {
	diags, err := newServer(t, "list").Diagnose(`["😀", 1]`)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, protocol.UInteger(7), diags[0].Range.Start.Character)
}

func TestDiagnoseAtEnd(t *testing.T) {
	diags, err := newServer(t, "list").Diagnose("[a")
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, diags[0].Range.Start, diags[0].Range.End)
	assert.Contains(t, diags[0].Message, "got end of input")
}

func TestDiagnoseUnknownStart(t *testing.T) {
	_, err := newServer(t, "document").Diagnose("[]")
	assert.EqualError(t, err, `production "document" not found in grammar`)
}
