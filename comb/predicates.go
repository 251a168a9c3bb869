package comb

// Lookahead runs p without consuming input.
func Lookahead[T any](p Parser[T]) Parser[T] {
	mustParser("Lookahead", p)
	return func(in *Input, t *Tracker, at int) Result[T] {
		r := p(in, t, at)
		if !r.OK {
			return r
		}
		return Success(r.Value, at)
	}
}

// Not succeeds without consuming input when p fails at the current offset.
// Failures inside p are not reported.
func Not[T any](p Parser[T]) Parser[struct{}] {
	mustParser("Not", p)
	return func(in *Input, t *Tracker, at int) Result[struct{}] {
		r := p(in, NewTracker(), at)
		if r.OK {
			t.Register(at, `not "`+in.Slice(at, r.Offset)+`"`)
			return Failure[struct{}]()
		}
		return Success(struct{}{}, at)
	}
}

// NotFollowedBy is Not.
func NotFollowedBy[T any](p Parser[T]) Parser[struct{}] {
	return Not(p)
}

// Desc replaces whatever p expected with labels when p fails. The labels
// are reported at the furthest offset p reached.
func Desc[T any](p Parser[T], labels ...string) Parser[T] {
	mustParser("Desc", p)
	return func(in *Input, t *Tracker, at int) Result[T] {
		inner := NewTracker()
		r := p(in, inner, at)
		if r.OK {
			t.Merge(inner.Snapshot())
			return r
		}
		offset := inner.Offset()
		if offset < 0 {
			offset = at
		}
		for _, label := range labels {
			t.Register(offset, label)
		}
		return r
	}
}

// Marked is a value together with the span of input it was parsed from.
type Marked[T any] struct {
	Name  string   `json:"name,omitempty"`
	Value T        `json:"value"`
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Mark records where p started and ended.
func Mark[T any](p Parser[T]) Parser[Marked[T]] {
	return Node("", p)
}

// Node is Mark with a name attached, handy for building syntax trees.
func Node[T any](name string, p Parser[T]) Parser[Marked[T]] {
	mustParser("Mark", p)
	return func(in *Input, t *Tracker, at int) Result[Marked[T]] {
		r := p(in, t, at)
		if !r.OK {
			return Failure[Marked[T]]()
		}
		return Success(Marked[T]{
			Name:  name,
			Value: r.Value,
			Start: in.Position(at),
			End:   in.Position(r.Offset),
		}, r.Offset)
	}
}
