package comb

import "github.com/tliron/commonlog"

// Trace logs every run of p at debug level under name. When debug logging
// is disabled it costs a level check per run.
func Trace[T any](name string, p Parser[T]) Parser[T] {
	mustParser("Trace", p)
	return func(in *Input, t *Tracker, at int) Result[T] {
		if !log.AllowLevel(commonlog.Debug) {
			return p(in, t, at)
		}
		log.Debugf("%s: enter at %s", name, in.Position(at))
		r := p(in, t, at)
		if r.OK {
			log.Debugf("%s: matched %q, now at %s", name, in.Slice(at, r.Offset), in.Position(r.Offset))
		} else {
			log.Debugf("%s: failed at %s, furthest failure at offset %d", name, in.Position(at), t.Offset())
		}
		return r
	}
}
