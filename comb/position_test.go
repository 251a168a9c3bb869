package comb

import "testing"

func TestInputPosition(t *testing.T) {
	in := NewInput("ab\ncd\n\nx")

	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{Offset: 0, Line: 1, Column: 1}},
		{2, Position{Offset: 2, Line: 1, Column: 3}},
		{3, Position{Offset: 3, Line: 2, Column: 1}},
		{6, Position{Offset: 6, Line: 3, Column: 1}},
		{7, Position{Offset: 7, Line: 4, Column: 1}},
		{8, Position{Offset: 8, Line: 4, Column: 2}},
		{100, Position{Offset: 8, Line: 4, Column: 2}},
		{-1, Position{Offset: 0, Line: 1, Column: 1}},
	}

	for _, tt := range tests {
		if got := in.Position(tt.offset); got != tt.want {
			t.Errorf("Position(%d) = %+v, want %+v", tt.offset, got, tt.want)
		}
	}
}

func TestInputPositionCountsRunes(t *testing.T) {
	in := NewInput("héllo")

	got := in.Position(2)
	if got.Column != 3 {
		t.Errorf("Column = %d, want %d", got.Column, 3)
	}
	if in.Len() != 5 {
		t.Errorf("Len = %d, want %d", in.Len(), 5)
	}
}

func TestInputSlice(t *testing.T) {
	in := NewInput("hello")

	if got := in.Slice(1, 3); got != "el" {
		t.Errorf("Slice(1, 3) = %q, want %q", got, "el")
	}
	if got := in.Slice(3, 99); got != "lo" {
		t.Errorf("Slice(3, 99) = %q, want %q", got, "lo")
	}
	if got := in.Slice(4, 2); got != "" {
		t.Errorf("Slice(4, 2) = %q, want empty", got)
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Offset: 10, Line: 2, Column: 4}
	if p.String() != "2:4" {
		t.Errorf("String() = %q, want %q", p.String(), "2:4")
	}
}
