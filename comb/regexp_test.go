package comb

import (
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"
)

func TestRegexp(t *testing.T) {
	p := Regexp(`[0-9]+`)

	assert.Equal(t, "123", Parse(p, "123").Value)
	checkFailure(t, p, "x1", failedAt(0, 1, 1, "/[0-9]+/"))
}

func TestRegexpIsAnchored(t *testing.T) {
	checkFailure(t, Regexp(`b`), "ab", failedAt(0, 1, 1, "/b/"))

	p := Then(String("x\n"), Regexp(`^y`, regexp2.Multiline))
	assert.Equal(t, "y", Parse(p, "x\ny").Value)
}

func TestRegexpGroup(t *testing.T) {
	p := RegexpGroup(`(a)(b)`, 2)

	assert.Equal(t, "b", Parse(p, "ab").Value)
}

func TestRegexpLookaround(t *testing.T) {
	p := Seq(Regexp(`foo(?=bar)`), String("bar"))

	assert.Equal(t, []string{"foo", "bar"}, Parse(p, "foobar").Value)
	checkFailure(t, p, "foobaz", failedAt(0, 1, 1, "/foo(?=bar)/"))
}

func TestRegexpFlagsInLabel(t *testing.T) {
	p := Regexp(`abc`, regexp2.IgnoreCase)

	assert.Equal(t, "AbC", Parse(p, "AbC").Value)
	checkFailure(t, p, "abd", failedAt(0, 1, 1, "/abc/i"))
}

func TestRegexpConstructionErrors(t *testing.T) {
	assert.Panics(t, func() { Regexp(`(`) })
	assert.Panics(t, func() { RegexpGroup(`a`, 1) })
	assert.Panics(t, func() { RegexpGroup(`(a)`, -1) })
}
