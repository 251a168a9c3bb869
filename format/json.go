package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/parsnip/ebnf/lex"
	"github.com/dhamidi/parsnip/ebnf/parse"
)

type JSONEncoder struct {
	w      io.Writer
	indent string
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w, indent: "  "}
}

// SetIndent sets the indentation of nested values. An empty string writes
// each value on one line.
func (e *JSONEncoder) SetIndent(indent string) {
	e.indent = indent
}

// EncodeReport writes a comb.Report, or anything else that marshals
// itself, followed by a newline.
func (e *JSONEncoder) EncodeReport(report json.Marshaler) error {
	return e.write(report)
}

// EncodeNode writes a syntax tree with the span of every node.
func (e *JSONEncoder) EncodeNode(node *parse.Node) error {
	return e.write(nodeToJSON(node))
}

func (e *JSONEncoder) EncodeTokens(tokens []lex.Token) error {
	out := make([]jsonToken, len(tokens))
	for i, tok := range tokens {
		out[i] = jsonToken{
			Kind:     tok.Kind,
			Literal:  tok.Literal,
			Position: positionToJSON(tok.Position),
		}
	}
	return e.write(out)
}

func (e *JSONEncoder) MarshalNode(node *parse.Node) ([]byte, error) {
	if e.indent == "" {
		return json.Marshal(nodeToJSON(node))
	}
	return json.MarshalIndent(nodeToJSON(node), "", e.indent)
}

func (e *JSONEncoder) write(v any) error {
	enc := json.NewEncoder(e.w)
	enc.SetIndent("", e.indent)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

type jsonNode struct {
	Kind     string      `json:"kind"`
	Span     *jsonSpan   `json:"span,omitempty"`
	Token    string      `json:"token,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonSpan struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

type jsonToken struct {
	Kind     string       `json:"kind"`
	Literal  string       `json:"literal"`
	Position jsonPosition `json:"position"`
}

func positionToJSON(p lex.Position) jsonPosition {
	return jsonPosition{Offset: p.Offset, Line: p.Line, Column: p.Column}
}

func nodeToJSON(n *parse.Node) *jsonNode {
	if n == nil {
		return nil
	}
	jn := &jsonNode{Kind: n.Kind}

	if n.Span.Start.Line != 0 || n.Span.End.Line != 0 {
		jn.Span = &jsonSpan{
			Start: positionToJSON(n.Span.Start),
			End:   positionToJSON(n.Span.End),
		}
	}
	if n.Token != nil {
		jn.Token = n.Token.Literal
	}
	if len(n.Children) > 0 {
		jn.Children = make([]*jsonNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = nodeToJSON(child)
		}
	}
	return jn
}
