package comb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	p := Map(String("abc"), strings.ToUpper)

	assert.Equal(t, "ABC", Parse(p, "abc").Value)
	checkFailure(t, p, "abd", failedAt(0, 1, 1, "'abc'"))
}

func TestValue(t *testing.T) {
	p := Or(Value(String("true"), true), Value(String("false"), false))

	assert.Equal(t, true, Parse(p, "true").Value)
	assert.Equal(t, false, Parse(p, "false").Value)
}

func TestChainMatchesPreviousDelimiter(t *testing.T) {
	quoted := Chain(OneOf(`'"`), func(q string) Parser[string] {
		return Skip(TakeWhile(func(r rune) bool { return string(r) != q }), String(q))
	})

	assert.Equal(t, "hi", Parse(quoted, `"hi"`).Value)
	assert.Equal(t, `say "hi"`, Parse(quoted, `'say "hi"'`).Value)
	checkFailure(t, quoted, `'hi"`, failedAt(4, 1, 5, "'''"))
}

func TestThenDoesNotBacktrack(t *testing.T) {
	p := Then(Many(String("a")), String("a"))

	checkFailure(t, p, "aaa", failedAt(3, 1, 4, "'a'"))
}

func TestSkip(t *testing.T) {
	p := Skip(String("key"), String(";"))

	assert.Equal(t, "key", Parse(p, "key;").Value)
	checkFailure(t, p, "key", failedAt(3, 1, 4, "';'"))
}

func TestSeq(t *testing.T) {
	p := Seq(String("a"), OneOf("bc"), String("d"))

	assert.Equal(t, []string{"a", "c", "d"}, Parse(p, "acd").Value)
	checkFailure(t, p, "ax", failedAt(1, 1, 2, "'b'", "'c'"))
}

func TestSeq2AndSeq3(t *testing.T) {
	pair := Seq2(Letters, Digits, func(l, d string) string { return d + l })
	assert.Equal(t, "42ab", Parse(pair, "ab42").Value)

	assign := Seq3(Letters, String("="), number, func(name, _ string, n int) map[string]int {
		return map[string]int{name: n}
	})
	assert.Equal(t, map[string]int{"x": 7}, Parse(assign, "x=7").Value)
}

func TestSequencingRejectsNilParsers(t *testing.T) {
	assert.Panics(t, func() { Then[string, string](String("a"), nil) })
	assert.Panics(t, func() { Skip[string, string](nil, String("a")) })
	assert.Panics(t, func() { Map[string, int](nil, func(string) int { return 0 }) })
	assert.Panics(t, func() { Seq[string](String("a"), nil) })

	p := Chain(String("a"), func(string) Parser[string] { return nil })
	assert.Panics(t, func() { Parse(p, "a") })
}
