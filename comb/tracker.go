package comb

import "sort"

// Furthest is a snapshot of a Tracker.
type Furthest struct {
	Offset   int
	Expected []string
}

// Tracker records the furthest offset at which any parser failed during
// one parse, together with everything that was expected there. A Tracker
// belongs to a single parse at a time.
type Tracker struct {
	offset   int
	expected map[string]struct{}
}

func NewTracker() *Tracker {
	t := &Tracker{}
	t.Reset()
	return t
}

// Reset forgets all failures so that the next Register always wins.
func (t *Tracker) Reset() {
	t.offset = -1
	t.expected = make(map[string]struct{})
}

// Register notes that label was expected at offset. Failures behind the
// current furthest offset are dropped.
func (t *Tracker) Register(offset int, label string) {
	switch {
	case offset > t.offset:
		t.offset = offset
		t.expected = map[string]struct{}{label: {}}
	case offset == t.offset:
		t.expected[label] = struct{}{}
	}
}

// Merge registers every label of f at f.Offset.
func (t *Tracker) Merge(f Furthest) {
	for _, label := range f.Expected {
		t.Register(f.Offset, label)
	}
}

// Offset returns the furthest failure offset, or -1 if nothing failed.
func (t *Tracker) Offset() int {
	return t.offset
}

// Snapshot returns the furthest offset and its labels, sorted and unique.
func (t *Tracker) Snapshot() Furthest {
	expected := make([]string, 0, len(t.expected))
	for label := range t.expected {
		expected = append(expected, label)
	}
	sort.Strings(expected)
	return Furthest{Offset: t.offset, Expected: expected}
}
