package comb

import (
	"fmt"
	"strings"
)

// Parser is the contract every parser satisfies: run at offset at of in,
// registering any failure with t. Parsers hold no mutable state and may be
// reused freely, including from concurrent parses with distinct trackers.
type Parser[T any] func(in *Input, t *Tracker, at int) Result[T]

func mustParser[T any](combinator string, p Parser[T]) {
	if p == nil {
		panic(fmt.Sprintf("comb: %s: nil parser", combinator))
	}
}

// String matches s exactly and yields it.
func String(s string) Parser[string] {
	want := []rune(s)
	label := "'" + s + "'"
	return func(in *Input, t *Tracker, at int) Result[string] {
		end := at + len(want)
		if end > len(in.src) {
			t.Register(at, label)
			return Failure[string]()
		}
		for i, r := range want {
			if in.src[at+i] != r {
				t.Register(at, label)
				return Failure[string]()
			}
		}
		return Success(s, end)
	}
}

// Test matches one rune satisfying pred. label describes it in errors.
func Test(label string, pred func(rune) bool) Parser[string] {
	if pred == nil {
		panic("comb: Test: nil predicate")
	}
	return func(in *Input, t *Tracker, at int) Result[string] {
		if at < len(in.src) && pred(in.src[at]) {
			return Success(string(in.src[at]), at+1)
		}
		t.Register(at, label)
		return Failure[string]()
	}
}

// OneOf matches any single rune of chars.
func OneOf(chars string) Parser[string] {
	var labels []string
	for _, r := range chars {
		labels = append(labels, "'"+string(r)+"'")
	}
	return Desc(Test("", func(r rune) bool { return strings.ContainsRune(chars, r) }), labels...)
}

// NoneOf matches any single rune not in chars.
func NoneOf(chars string) Parser[string] {
	return Test("none of '"+chars+"'", func(r rune) bool { return !strings.ContainsRune(chars, r) })
}

// Range matches a single rune between lo and hi inclusive.
func Range(lo, hi rune) Parser[string] {
	return Test(string(lo)+"-"+string(hi), func(r rune) bool { return lo <= r && r <= hi })
}

// TakeWhile consumes runes while pred holds. It never fails.
func TakeWhile(pred func(rune) bool) Parser[string] {
	if pred == nil {
		panic("comb: TakeWhile: nil predicate")
	}
	return func(in *Input, t *Tracker, at int) Result[string] {
		end := at
		for end < len(in.src) && pred(in.src[end]) {
			end++
		}
		return Success(string(in.src[at:end]), end)
	}
}

// Succeed consumes nothing and yields v.
func Succeed[T any](v T) Parser[T] {
	return func(in *Input, t *Tracker, at int) Result[T] {
		return Success(v, at)
	}
}

// Fail always fails, expecting label.
func Fail[T any](label string) Parser[T] {
	return func(in *Input, t *Tracker, at int) Result[T] {
		t.Register(at, label)
		return Failure[T]()
	}
}

var (
	// EOF matches the end of the input.
	EOF Parser[struct{}] = func(in *Input, t *Tracker, at int) Result[struct{}] {
		if at < len(in.src) {
			t.Register(at, "EOF")
			return Failure[struct{}]()
		}
		return Success(struct{}{}, at)
	}

	// Any matches a single rune.
	Any Parser[string] = func(in *Input, t *Tracker, at int) Result[string] {
		if at >= len(in.src) {
			t.Register(at, "any character")
			return Failure[string]()
		}
		return Success(string(in.src[at]), at+1)
	}

	// All consumes the rest of the input.
	All Parser[string] = func(in *Input, t *Tracker, at int) Result[string] {
		return Success(string(in.src[at:]), len(in.src))
	}

	// Index yields the current position without consuming anything.
	Index Parser[Position] = func(in *Input, t *Tracker, at int) Result[Position] {
		return Success(in.Position(at), at)
	}
)
