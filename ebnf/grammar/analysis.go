package grammar

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Nullable reports for every production whether it can match the empty
// string.
func (g Grammar) Nullable() map[string]bool {
	nullable := make(map[string]bool, len(g))
	for changed := true; changed; {
		changed = false
		for name, prod := range g {
			if !nullable[name] && nullableExpr(prod.Expr, nullable) {
				nullable[name] = true
				changed = true
			}
		}
	}
	return nullable
}

func nullableExpr(expr Expression, nullable map[string]bool) bool {
	switch e := expr.(type) {
	case nil:
		return true
	case *Token:
		return e.String == ""
	case Sequence:
		for _, item := range e {
			if !nullableExpr(item, nullable) {
				return false
			}
		}
		return true
	case Alternative:
		for _, alt := range e {
			if nullableExpr(alt, nullable) {
				return true
			}
		}
		return false
	case *Repetition, *Option:
		return true
	case *Group:
		return nullableExpr(e.Body, nullable)
	case *Name:
		return nullable[e.String]
	}
	return false
}

// leftNames appends the productions expr may call before it has consumed
// any input.
func leftNames(expr Expression, nullable map[string]bool, names []string) []string {
	switch e := expr.(type) {
	case Sequence:
		for _, item := range e {
			names = leftNames(item, nullable, names)
			if !nullableExpr(item, nullable) {
				break
			}
		}
	case Alternative:
		for _, alt := range e {
			names = leftNames(alt, nullable, names)
		}
	case *Repetition:
		names = leftNames(e.Body, nullable, names)
	case *Option:
		names = leftNames(e.Body, nullable, names)
	case *Group:
		names = leftNames(e.Body, nullable, names)
	case *Name:
		names = append(names, e.String)
	}
	return names
}

// CheckLeftRecursion returns an error for the first of names that can call
// itself again without consuming input. A recursive-descent parser never
// returns from such a production.
func (g Grammar) CheckLeftRecursion(names ...string) error {
	const (
		active = iota + 1
		done
	)
	nullable := g.Nullable()
	state := make(map[string]int)
	var path []string

	var visit func(name string) []string
	visit = func(name string) []string {
		switch state[name] {
		case active:
			i := slices.Index(path, name)
			return append(slices.Clone(path[i:]), name)
		case done:
			return nil
		}
		prod := g[name]
		if prod == nil {
			return nil
		}
		state[name] = active
		path = append(path, name)
		for _, next := range leftNames(prod.Expr, nullable, nil) {
			if cycle := visit(next); cycle != nil {
				return cycle
			}
		}
		path = path[:len(path)-1]
		state[name] = done
		return nil
	}

	for _, name := range names {
		if cycle := visit(name); cycle != nil {
			return errors.Errorf("%s: left recursion: %s", g[cycle[0]].Pos(), strings.Join(cycle, " → "))
		}
	}
	return nil
}
