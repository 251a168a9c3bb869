package comb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequiresEndOfInput(t *testing.T) {
	checkFailure(t, String("ab"), "abc", failedAt(2, 1, 3, "EOF"))
}

func TestReportJSON(t *testing.T) {
	ok, err := json.Marshal(Parse(String("x"), "x"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status": true, "value": "x"}`, string(ok))

	p := Or(Then(String("abc"), String("def")), Then(String("abc"), String("d")))
	failed, err := json.Marshal(Parse(p, "abc"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status": false,
		"index": {"offset": 3, "line": 1, "column": 4},
		"expected": ["'d'", "'def'"]
	}`, string(failed))
}

func TestReportErr(t *testing.T) {
	assert.NoError(t, Parse(String("x"), "x").Err())

	err := Parse(Or(String("x"), String("y")), "zz").Err()
	require.Error(t, err)
	assert.Equal(t, `1:1: expected one of 'x', 'y', got "zz"`, err.Error())

	err = Parse(Then(String("abc"), String("def")), "abc").Err()
	require.Error(t, err)
	assert.Equal(t, `1:4: expected 'def', got end of input`, err.Error())

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Position.Offset)
}

func TestErrorQuotesBoundedInput(t *testing.T) {
	err := Parse(String("a"), "0123456789abcdef").Err()
	require.Error(t, err)
	assert.Equal(t, `1:1: expected 'a', got "0123456789"`, err.Error())
}

func TestErrorAtPosition(t *testing.T) {
	e := &Error{
		Position: Position{Offset: 4, Line: 2, Column: 2},
		Expected: []string{"'x'"},
		Got:      "d",
	}

	assert.Equal(t, "2:2: expected 'x', got \"d\"\n2 | cd\n     ^", e.ErrorAtPosition("ab\ncd"))
}

func TestParseWithTracker(t *testing.T) {
	tr := NewTracker()
	tr.Register(100, "stale")

	r := Parse(String("a"), "b", WithTracker(tr))
	assert.Equal(t, []string{"'a'"}, r.Expected)
	assert.Equal(t, Furthest{Offset: 0, Expected: []string{"'a'"}}, tr.Snapshot())
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue(number, "42")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = ParseValue(number, "x")
	assert.Error(t, err)
}

func TestParseIsReentrant(t *testing.T) {
	p := SepBy(number, String(","))

	first := Parse(p, "1,2")
	second := Parse(p, "3,x")
	third := Parse(p, "4")

	assert.Equal(t, []int{1, 2}, first.Value)
	assert.False(t, second.Status)
	assert.Equal(t, 2, second.Index.Offset)
	assert.Equal(t, []int{4}, third.Value)
}

func TestTrace(t *testing.T) {
	p := Trace("pair", Seq(String("a"), String("b")))

	assert.Equal(t, []string{"a", "b"}, Parse(p, "ab").Value)
	checkFailure(t, p, "ac", failedAt(1, 1, 2, "'b'"))
}
