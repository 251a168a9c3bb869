package comb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManyCollectsValues(t *testing.T) {
	p := Many(String("ab"))

	assert.Equal(t, []string{"ab", "ab"}, Parse(p, "abab").Value)
	assert.Equal(t, []string{}, Parse(p, "").Value)
}

func TestManyTerminalFailureIsTracked(t *testing.T) {
	p := Many(Then(String("ab"), String("c")))

	checkFailure(t, p, "abcabd", failedAt(5, 1, 6, "'c'"))
}

func TestManyWithoutProgressPanics(t *testing.T) {
	p := Many(Optional(String("a")))

	assert.Panics(t, func() { Parse(p, "b") })
}

func TestTimes(t *testing.T) {
	p := Times(String("a"), 2, 3)

	assert.Equal(t, []string{"a", "a"}, Parse(p, "aa").Value)
	assert.Equal(t, []string{"a", "a", "a"}, Parse(p, "aaa").Value)
	checkFailure(t, p, "a", failedAt(1, 1, 2, "'a'"))
	checkFailure(t, p, "aaaa", failedAt(3, 1, 4, "EOF"))
}

func TestTimesExact(t *testing.T) {
	p := Times(Digit, 4, 4)

	assert.Equal(t, []string{"2", "0", "2", "6"}, Parse(p, "2026").Value)
	checkFailure(t, p, "202", failedAt(3, 1, 4, "a digit"))
}

func TestTimesInvalidBounds(t *testing.T) {
	assert.Panics(t, func() { Times(String("a"), 3, 1) })
	assert.Panics(t, func() { Times(String("a"), -1, 2) })
	assert.Panics(t, func() { Times[string](nil, 0, 1) })
}

func TestAtLeastAndAtMost(t *testing.T) {
	least := AtLeast(String("x"), 2)
	most := AtMost(String("x"), 2)

	assert.Equal(t, []string{"x", "x", "x"}, Parse(least, "xxx").Value)
	checkFailure(t, least, "x", failedAt(1, 1, 2, "'x'"))

	assert.Equal(t, []string{}, Parse(most, "").Value)
	checkFailure(t, most, "xxx", failedAt(2, 1, 3, "EOF"))
}

func TestRepeatStopsWithoutProgress(t *testing.T) {
	p := Skip(Repeat(Optional(String("a"))), String("b"))

	assert.Equal(t, []string{"a", "a"}, Parse(p, "aab").Value)
	assert.Equal(t, []string{}, Parse(p, "b").Value)
	checkFailure(t, p, "aac", failedAt(2, 1, 3, "'a'", "'b'"))
}
