package comb

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Regexp matches pattern at the current offset and yields the matched
// text. Patterns use regexp2 syntax, so lookaround and backreferences are
// available.
func Regexp(pattern string, opts ...regexp2.RegexOptions) Parser[string] {
	return RegexpGroup(pattern, 0, opts...)
}

// RegexpGroup is Regexp yielding the text of capture group group.
func RegexpGroup(pattern string, group int, opts ...regexp2.RegexOptions) Parser[string] {
	var flags regexp2.RegexOptions
	for _, o := range opts {
		flags |= o
	}
	re, err := regexp2.Compile(`\A(?:`+pattern+`)`, flags)
	if err != nil {
		panic(fmt.Sprintf("comb: Regexp: %v", err))
	}
	if group < 0 || group >= len(re.GetGroupNumbers()) {
		panic(fmt.Sprintf("comb: Regexp: group %d out of range for /%s/", group, pattern))
	}
	label := "/" + pattern + "/" + flagLetters(flags)
	return func(in *Input, t *Tracker, at int) Result[string] {
		m, err := re.FindRunesMatch(in.src[at:])
		if err != nil || m == nil || m.Index != 0 {
			t.Register(at, label)
			return Failure[string]()
		}
		g := m.GroupByNumber(group)
		if g == nil {
			t.Register(at, label)
			return Failure[string]()
		}
		return Success(g.String(), at+m.Length)
	}
}

func flagLetters(flags regexp2.RegexOptions) string {
	s := ""
	if flags&regexp2.IgnoreCase != 0 {
		s += "i"
	}
	if flags&regexp2.Multiline != 0 {
		s += "m"
	}
	if flags&regexp2.Singleline != 0 {
		s += "s"
	}
	return s
}
