package comb

// Map transforms the value of a successful p.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	mustParser("Map", p)
	if f == nil {
		panic("comb: Map: nil function")
	}
	return func(in *Input, t *Tracker, at int) Result[U] {
		r := p(in, t, at)
		if !r.OK {
			return Failure[U]()
		}
		return Success(f(r.Value), r.Offset)
	}
}

// Value replaces the value of a successful p with v.
func Value[T, U any](p Parser[T], v U) Parser[U] {
	return Map(p, func(T) U { return v })
}

// AsAny erases the value type of p, for grammars mixing value types.
func AsAny[T any](p Parser[T]) Parser[any] {
	return Map(p, func(v T) any { return v })
}

// Chain runs p, then the parser f builds from p's value.
func Chain[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	mustParser("Chain", p)
	if f == nil {
		panic("comb: Chain: nil function")
	}
	return func(in *Input, t *Tracker, at int) Result[U] {
		r := p(in, t, at)
		if !r.OK {
			return Failure[U]()
		}
		next := f(r.Value)
		mustParser("Chain", next)
		return next(in, t, r.Offset)
	}
}

// Then runs p and then q, yielding q's value.
func Then[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	mustParser("Then", p)
	mustParser("Then", q)
	return func(in *Input, t *Tracker, at int) Result[U] {
		r := p(in, t, at)
		if !r.OK {
			return Failure[U]()
		}
		return q(in, t, r.Offset)
	}
}

// Skip runs p and then q, yielding p's value.
func Skip[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	mustParser("Skip", p)
	mustParser("Skip", q)
	return func(in *Input, t *Tracker, at int) Result[T] {
		r := p(in, t, at)
		if !r.OK {
			return r
		}
		s := q(in, t, r.Offset)
		if !s.OK {
			return Failure[T]()
		}
		return Success(r.Value, s.Offset)
	}
}

// Seq runs ps one after another and collects their values.
func Seq[T any](ps ...Parser[T]) Parser[[]T] {
	for _, p := range ps {
		mustParser("Seq", p)
	}
	return func(in *Input, t *Tracker, at int) Result[[]T] {
		values := make([]T, 0, len(ps))
		for _, p := range ps {
			r := p(in, t, at)
			if !r.OK {
				return Failure[[]T]()
			}
			values = append(values, r.Value)
			at = r.Offset
		}
		return Success(values, at)
	}
}

// Seq2 runs a then b and combines their values with f.
func Seq2[A, B, R any](a Parser[A], b Parser[B], f func(A, B) R) Parser[R] {
	mustParser("Seq2", a)
	mustParser("Seq2", b)
	return func(in *Input, t *Tracker, at int) Result[R] {
		ra := a(in, t, at)
		if !ra.OK {
			return Failure[R]()
		}
		rb := b(in, t, ra.Offset)
		if !rb.OK {
			return Failure[R]()
		}
		return Success(f(ra.Value, rb.Value), rb.Offset)
	}
}

// Seq3 runs a, b and c in order and combines their values with f.
func Seq3[A, B, C, R any](a Parser[A], b Parser[B], c Parser[C], f func(A, B, C) R) Parser[R] {
	mustParser("Seq3", c)
	ab := Seq2(a, b, func(x A, y B) func(C) R {
		return func(z C) R { return f(x, y, z) }
	})
	return Seq2(ab, c, func(g func(C) R, z C) R { return g(z) })
}
