package comb

import "fmt"

// Many applies p until it fails. The failure that ends the loop is still
// registered with the tracker, since it may be the furthest of the parse.
func Many[T any](p Parser[T]) Parser[[]T] {
	return Times(p, 0, -1)
}

// AtLeast applies p n or more times.
func AtLeast[T any](p Parser[T], n int) Parser[[]T] {
	return Times(p, n, -1)
}

// AtMost applies p up to n times.
func AtMost[T any](p Parser[T], n int) Parser[[]T] {
	return Times(p, 0, n)
}

// Times applies p at least min and at most max times. A negative max
// means no upper bound.
func Times[T any](p Parser[T], min, max int) Parser[[]T] {
	mustParser("Times", p)
	if min < 0 || (max >= 0 && min > max) {
		panic(fmt.Sprintf("comb: Times: invalid bounds [%d, %d]", min, max))
	}
	return func(in *Input, t *Tracker, at int) Result[[]T] {
		var values []T
		for n := 0; max < 0 || n < max; n++ {
			r := p(in, t, at)
			if !r.OK {
				if n < min {
					return Failure[[]T]()
				}
				break
			}
			if r.Offset == at && max < 0 {
				panic(fmt.Sprintf("comb: infinite loop at offset %d: repeated parser succeeded without consuming input", at))
			}
			values = append(values, r.Value)
			at = r.Offset
		}
		if values == nil {
			values = []T{}
		}
		return Success(values, at)
	}
}

// Repeat applies p until it fails or matches without consuming input, the
// way an EBNF repetition behaves. An iteration that consumes nothing ends
// the loop and its value is dropped.
func Repeat[T any](p Parser[T]) Parser[[]T] {
	mustParser("Repeat", p)
	return func(in *Input, t *Tracker, at int) Result[[]T] {
		values := []T{}
		for {
			r := p(in, t, at)
			if !r.OK || r.Offset == at {
				return Success(values, at)
			}
			values = append(values, r.Value)
			at = r.Offset
		}
	}
}
