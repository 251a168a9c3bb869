package comb

// Result is the outcome of running a parser at an offset. On success Value
// holds the parsed value and Offset is where the next parser resumes. A
// failed Result carries nothing; the reason lives in the Tracker.
type Result[T any] struct {
	OK     bool
	Value  T
	Offset int
}

func Success[T any](value T, offset int) Result[T] {
	return Result[T]{OK: true, Value: value, Offset: offset}
}

func Failure[T any]() Result[T] {
	return Result[T]{}
}
