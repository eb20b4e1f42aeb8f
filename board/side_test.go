package board

import "testing"

func TestNewSideFromString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		str    string
		want   Side
		wantOK bool
	}{
		{str: "1", want: Side1, wantOK: true},
		{str: "x", want: Side1, wantOK: true},
		{str: "Player 1", want: Side1, wantOK: true},
		{str: "2", want: Side2, wantOK: true},
		{str: "o", want: Side2, wantOK: true},
		{str: "white", want: Side2, wantOK: true},
		{str: "3", want: SideUnknown},
		{str: "", want: SideUnknown},
	}

	for _, tt := range tests {
		got, ok := NewSideFromString(tt.str)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("unexpected side for %q: got=%s,%v want=%s,%v", tt.str, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSideSpace(t *testing.T) {
	t.Parallel()
	for _, s := range []Side{Side1, Side2} {
		if got := s.Space().Side(); got != s {
			t.Errorf("unexpected round trip for %s: got=%s", s, got)
		}
		if got := s.Opposite().Opposite(); got != s {
			t.Errorf("unexpected double opposite for %s: got=%s", s, got)
		}
	}
	if got := SideUnknown.Space(); got != SpaceOutOfBounds {
		t.Errorf("unexpected space: got=%s want=%s", got, SpaceOutOfBounds)
	}
	if r, c := Side1.Orient(2, 3); r != 2 || c != 3 {
		t.Errorf("unexpected side1 orient: got=(%d,%d)", r, c)
	}
	if r, c := Side2.Orient(2, 3); r != 5 || c != 4 {
		t.Errorf("unexpected side2 orient: got=(%d,%d)", r, c)
	}
}
