// Package parse parses input against an EBNF grammar, producing concrete
// syntax trees.
package parse

import (
	"strings"

	"github.com/dhamidi/parsnip/ebnf/lex"
)

// Span is the half-open range [Start, End) of input a node covers.
type Span struct {
	Start lex.Position
	End   lex.Position
}

// Node is a concrete syntax tree node. Syntactic productions become nodes
// with Children; tokens become leaves with a Token.
type Node struct {
	Kind     string
	Children []*Node
	Token    *lex.Token
	Span     Span
}

func (n *Node) IsTerminal() bool {
	return n.Token != nil
}

// Text concatenates the literals of all tokens below n. Skipped input such
// as whitespace is not part of the tree and so not included.
func (n *Node) Text() string {
	var b strings.Builder
	n.Walk(func(c *Node) bool {
		if c.Token != nil {
			b.WriteString(c.Token.Literal)
		}
		return true
	})
	return b.String()
}

// Walk calls visit for n and its descendants in source order. Returning
// false from visit skips the children of that node.
func (n *Node) Walk(visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// Find returns the first node of the given kind, n included.
func (n *Node) Find(kind string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Kind == kind {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node of the given kind that is not nested in
// another node of that kind.
func (n *Node) FindAll(kind string) []*Node {
	var nodes []*Node
	n.Walk(func(c *Node) bool {
		if c.Kind == kind {
			nodes = append(nodes, c)
			return false
		}
		return true
	})
	return nodes
}

// AddChild appends child and widens the span to cover it.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	if len(n.Children) == 0 {
		n.Span.Start = child.Span.Start
	}
	n.Children = append(n.Children, child)
	n.Span.End = child.Span.End
}

// NewTerminal wraps tok in a leaf ending at end.
func NewTerminal(tok lex.Token, end lex.Position) *Node {
	return &Node{
		Kind:  tok.Kind,
		Token: &tok,
		Span:  Span{Start: tok.Position, End: end},
	}
}

func NewNonTerminal(kind string) *Node {
	return &Node{Kind: kind, Children: []*Node{}}
}
