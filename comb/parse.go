package comb

import (
	"encoding/json"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("parsnip.comb")

type Option func(*options)

type options struct {
	tracker *Tracker
}

// WithTracker makes Parse use t instead of a fresh tracker. The caller
// must not use t elsewhere until Parse returns.
func WithTracker(t *Tracker) Option {
	return func(o *options) {
		o.tracker = t
	}
}

// Report is the outcome of a whole parse.
type Report[T any] struct {
	Status   bool
	Value    T
	Index    Position
	Expected []string

	input *Input
}

func (r Report[T]) MarshalJSON() ([]byte, error) {
	if r.Status {
		return json.Marshal(struct {
			Status bool `json:"status"`
			Value  T    `json:"value"`
		}{true, r.Value})
	}
	return json.Marshal(struct {
		Status   bool     `json:"status"`
		Index    Position `json:"index"`
		Expected []string `json:"expected"`
	}{false, r.Index, r.Expected})
}

// Err returns nil for a successful report and an *Error otherwise.
func (r Report[T]) Err() error {
	if r.Status {
		return nil
	}
	e := &Error{Position: r.Index, Expected: r.Expected}
	if r.input != nil {
		e.Got = r.input.Slice(r.Index.Offset, r.Index.Offset+gotLength)
	}
	return e
}

// Parse runs p over all of input. p must consume the input entirely.
// A failure reports the furthest point any parser reached.
func Parse[T any](p Parser[T], input string, opts ...Option) Report[T] {
	return Run(p, NewInput(input), opts...)
}

// Run is Parse for an Input built by the caller.
func Run[T any](p Parser[T], in *Input, opts ...Option) Report[T] {
	mustParser("Parse", p)
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	t := o.tracker
	if t == nil {
		t = NewTracker()
	}
	t.Reset()

	r := Skip(p, EOF)(in, t, 0)
	if r.OK {
		log.Debugf("parse succeeded, %d runes", in.Len())
		return Report[T]{Status: true, Value: r.Value, input: in}
	}
	furthest := t.Snapshot()
	report := Report[T]{
		Index:    in.Position(furthest.Offset),
		Expected: furthest.Expected,
		input:    in,
	}
	log.Debugf("parse failed at %s, expected %v", report.Index, report.Expected)
	return report
}

// ParseValue is Parse returning the value or the error.
func ParseValue[T any](p Parser[T], input string, opts ...Option) (T, error) {
	r := Parse(p, input, opts...)
	if err := r.Err(); err != nil {
		var zero T
		return zero, err
	}
	return r.Value, nil
}
