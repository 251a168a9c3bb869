// Package comb builds parsers by composing small parsing functions.
//
// # Parsers
//
// A Parser is a plain function from an input and an offset to a Result:
//
//	type Parser[T any] func(in *Input, t *Tracker, at int) Result[T]
//
// Primitives such as String and Regexp match text directly. Combinators
// such as Then, Or, Many and Map build bigger parsers out of smaller ones.
// Nothing is generated and there is no separate grammar step.
//
// # Errors
//
// A failing parser does not return an error value. It registers what it
// expected, and where, with the Tracker passed to it. The tracker keeps
// only the failures at the furthest offset seen so far. When Parse fails,
// the report names that offset and every label expected there:
//
//	p := Or(Then(String("abc"), String("def")), Then(String("ab"), String("cd")))
//	Parse(p, "abc") // {status: false, index: 1:4, expected: ['def']}
//
// Or returns the first alternative that succeeds, but the error of a
// failed parse is the furthest failure of the whole attempt, including
// alternatives that were abandoned and iterations of Many that ended a
// loop.
//
// # Recursion
//
// Go evaluates arguments eagerly, so a rule cannot mention itself while it
// is being built. Lazy defers construction until the first run:
//
//	var list Parser[[]any]
//	list = Many(Lazy(func() Parser[any] { return Or(atom, AsAny(Wrap(String("("), list, String(")")))) }))
//
// Language does the same for a named set of rules.
package comb
