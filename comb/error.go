package comb

import (
	"fmt"
	"strings"
)

// gotLength bounds how much of the offending input an Error quotes.
const gotLength = 10

// Error describes a failed parse.
type Error struct {
	Position Position
	Expected []string
	Got      string
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: ", e.Position)
	switch len(e.Expected) {
	case 0:
		b.WriteString("unexpected input")
	case 1:
		b.WriteString("expected " + e.Expected[0])
	default:
		b.WriteString("expected one of " + strings.Join(e.Expected, ", "))
	}
	if e.Got == "" {
		b.WriteString(", got end of input")
	} else {
		fmt.Fprintf(&b, ", got %q", e.Got)
	}
	return b.String()
}

// ErrorAtPosition renders the error together with the offending line of
// input and a caret under the failing column.
func (e *Error) ErrorAtPosition(input string) string {
	lines := strings.Split(input, "\n")
	line := ""
	if e.Position.Line >= 1 && e.Position.Line <= len(lines) {
		line = strings.TrimSuffix(lines[e.Position.Line-1], "\r")
	}
	gutter := fmt.Sprintf("%d | ", e.Position.Line)
	caret := strings.Repeat(" ", len(gutter)+e.Position.Column-1) + "^"
	return fmt.Sprintf("%s\n%s%s\n%s", e.Error(), gutter, line, caret)
}
