package comb

import (
	"fmt"
	"sync"
)

// Lazy defers building a parser until it is first run, so that rules can
// refer to themselves or to rules defined later. thunk runs at most once.
func Lazy[T any](thunk func() Parser[T]) Parser[T] {
	if thunk == nil {
		panic("comb: Lazy: nil thunk")
	}
	var (
		once    sync.Once
		p       Parser[T]
		failure any
	)
	// A panicking thunk still completes the Once; its value is kept so
	// every later run fails the same way.
	resolve := func() {
		defer func() { failure = recover() }()
		p = thunk()
		if p == nil {
			panic("comb: Lazy: thunk returned a nil parser")
		}
	}
	return func(in *Input, t *Tracker, at int) Result[T] {
		once.Do(resolve)
		if p == nil {
			panic(failure)
		}
		return p(in, t, at)
	}
}

// Language is a set of named, possibly mutually recursive rules. Each rule
// is built from the Language itself, so it may use any other rule
// regardless of definition order.
type Language struct {
	defs  map[string]func(*Language) Parser[any]
	mu    sync.Mutex
	rules map[string]Parser[any]
}

func NewLanguage(defs map[string]func(*Language) Parser[any]) *Language {
	for name, def := range defs {
		if def == nil {
			panic(fmt.Sprintf("comb: NewLanguage: rule %q has no definition", name))
		}
	}
	return &Language{
		defs:  defs,
		rules: make(map[string]Parser[any]),
	}
}

// Rule returns the parser for name. The same parser is returned on every
// call; its definition is resolved on first use.
func (l *Language) Rule(name string) Parser[any] {
	l.mu.Lock()
	defer l.mu.Unlock()
	if p, ok := l.rules[name]; ok {
		return p
	}
	p := Lazy(func() Parser[any] {
		def, ok := l.defs[name]
		if !ok {
			panic(fmt.Sprintf("comb: Language: unknown rule %q", name))
		}
		return def(l)
	})
	l.rules[name] = p
	return p
}

// Has reports whether the language defines name.
func (l *Language) Has(name string) bool {
	_, ok := l.defs[name]
	return ok
}
