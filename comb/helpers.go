package comb

import (
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	Whitespace    = Desc(Regexp(`\s+`), "whitespace")
	OptWhitespace = Desc(Regexp(`\s*`), "optional whitespace")
	Letter        = Desc(Regexp(`[a-z]`, regexp2.IgnoreCase), "a letter")
	Letters       = Desc(Regexp(`[a-z]*`, regexp2.IgnoreCase), "optional letters")
	Digit         = Desc(Regexp(`[0-9]`), "a digit")
	Digits        = Desc(Regexp(`[0-9]*`), "optional digits")

	CR   = String("\r")
	LF   = String("\n")
	CRLF = String("\r\n")

	// Newline matches any of the three line endings.
	Newline = Desc(Or(CRLF, LF, CR), "newline")

	// End matches a line ending or the end of input.
	End = Or(Newline, Value(EOF, ""))
)

// Optional yields the zero value of T when p fails.
func Optional[T any](p Parser[T]) Parser[T] {
	var zero T
	return Fallback(p, zero)
}

// Fallback yields v when p fails.
func Fallback[T any](p Parser[T], v T) Parser[T] {
	return Or(p, Succeed(v))
}

// SepBy1 parses one or more p separated by sep.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Seq2(p, Many(Then(sep, p)), func(first T, rest []T) []T {
		return append([]T{first}, rest...)
	})
}

// SepBy parses zero or more p separated by sep.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Or(SepBy1(p, sep), Succeed([]T{}))
}

// Wrap parses p between left and right.
func Wrap[L, T, R any](left Parser[L], p Parser[T], right Parser[R]) Parser[T] {
	return Skip(Then(left, p), right)
}

// Trim parses p surrounded by around on both sides.
func Trim[T, U any](p Parser[T], around Parser[U]) Parser[T] {
	return Wrap(around, p, around)
}

// Concat joins the strings p yields.
func Concat(p Parser[[]string]) Parser[string] {
	return Map(p, func(parts []string) string { return strings.Join(parts, "") })
}
