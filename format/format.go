// Package format writes parse results as JSON or as indented text.
package format

import (
	"github.com/dhamidi/parsnip/ebnf/lex"
	"github.com/dhamidi/parsnip/ebnf/parse"
)

type Encoder interface {
	EncodeNode(node *parse.Node) error
	EncodeTokens(tokens []lex.Token) error
}

var (
	_ Encoder = (*JSONEncoder)(nil)
	_ Encoder = (*TextEncoder)(nil)
)
