package comb

import (
	"fmt"
	"sort"
	"sync"
)

// Position represents a location in the input. Offset counts runes from
// the start of the input; Line and Column are 1-based and derived from it.
type Position struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Input is the text being parsed. It is read-only for the duration of a
// parse and may be shared by concurrent parses of the same text.
type Input struct {
	src []rune

	linesOnce sync.Once
	lines     []int // offsets at which each line starts
}

func NewInput(src string) *Input {
	return &Input{src: []rune(src)}
}

// NewInputRunes wraps src without copying it.
func NewInputRunes(src []rune) *Input {
	return &Input{src: src}
}

func (in *Input) Len() int {
	return len(in.src)
}

func (in *Input) Runes() []rune {
	return in.src
}

// Slice returns the text between two offsets, clamped to the input.
func (in *Input) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(in.src) {
		to = len(in.src)
	}
	if from >= to {
		return ""
	}
	return string(in.src[from:to])
}

// Position derives line and column for offset.
func (in *Input) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(in.src) {
		offset = len(in.src)
	}
	in.linesOnce.Do(func() { in.lines = lineStarts(in.src) })
	// index of the last line starting at or before offset
	line := sort.Search(len(in.lines), func(i int) bool { return in.lines[i] > offset }) - 1
	return Position{
		Offset: offset,
		Line:   line + 1,
		Column: offset - in.lines[line] + 1,
	}
}

func lineStarts(src []rune) []int {
	starts := []int{0}
	for i, r := range src {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
