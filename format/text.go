package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/parsnip/ebnf/grammar"
	"github.com/dhamidi/parsnip/ebnf/lex"
	"github.com/dhamidi/parsnip/ebnf/parse"
)

// TextEncoder writes one line per node, indented by depth:
//
//	packageDeclaration 1:1-1:25
//	  "package" 1:1 "package"
//	  Identifier 1:9 "com"
type TextEncoder struct {
	w      io.Writer
	indent string
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w, indent: "  "}
}

func (e *TextEncoder) EncodeNode(node *parse.Node) error {
	text, err := e.MarshalNode(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalNode(node *parse.Node) ([]byte, error) {
	var sb strings.Builder
	if node != nil {
		e.writeNode(&sb, node, 0)
	}
	return []byte(sb.String()), nil
}

func (e *TextEncoder) writeNode(sb *strings.Builder, n *parse.Node, depth int) {
	sb.WriteString(strings.Repeat(e.indent, depth))
	if n.IsTerminal() {
		fmt.Fprintf(sb, "%s %d:%d %q\n", kindString(n.Kind), n.Span.Start.Line, n.Span.Start.Column, n.Token.Literal)
		return
	}
	fmt.Fprintf(sb, "%s %d:%d-%d:%d\n", n.Kind,
		n.Span.Start.Line, n.Span.Start.Column,
		n.Span.End.Line, n.Span.End.Column,
	)
	for _, c := range n.Children {
		e.writeNode(sb, c, depth+1)
	}
}

// EncodeTokens writes one tab-separated line per token.
func (e *TextEncoder) EncodeTokens(tokens []lex.Token) error {
	var sb strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&sb, "%s\t%s\t%q\n", tok.Position, tok.Kind, tok.Literal)
	}
	_, err := io.WriteString(e.w, sb.String())
	return err
}

// kindString quotes kinds taken from literal tokens so they stand apart
// from production names.
func kindString(kind string) string {
	if grammar.IsLexical(kind) {
		return kind
	}
	return fmt.Sprintf("%q", kind)
}
