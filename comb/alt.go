package comb

import "fmt"

// Or tries each alternative at the same offset and returns the first
// success. When all of them fail, the error reported for the parse is
// whatever failure got furthest, inside any alternative or anywhere else.
func Or[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		panic("comb: Or: no alternatives")
	}
	for i, p := range ps {
		if p == nil {
			panic(fmt.Sprintf("comb: Or: alternative %d is nil", i))
		}
	}
	return func(in *Input, t *Tracker, at int) Result[T] {
		for _, p := range ps {
			if r := p(in, t, at); r.OK {
				return r
			}
		}
		return Failure[T]()
	}
}
