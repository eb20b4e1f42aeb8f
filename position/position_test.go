package position

import (
	"errors"
	"testing"
)

func TestNewPosFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Pos
		wantErr  error
	}{
		{
			name:     "ok 1",
			notation: "d3",
			want:     Pos(19),
		},
		{
			name:     "ok 2",
			notation: "h8",
			want:     Pos(63),
		},
		{
			name:     "ok 3",
			notation: "a1",
			want:     Pos(0),
		},
		{
			name:     "ok uppercase",
			notation: "E5",
			want:     Pos(36),
		},
		{
			name:     "bad 1",
			notation: "",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 2",
			notation: "a",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 3",
			notation: "4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 4",
			notation: "m4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 5",
			notation: "e9",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 6",
			notation: "e0",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 7",
			notation: "e10",
			wantErr:  ErrInvalidNotation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewPosFromNotation(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
			if tt.notation[0] >= 'a' && got.Notation() != tt.notation {
				t.Errorf("unexpected notation: got=%s want=%s", got.Notation(), tt.notation)
			}
		})
	}
}

func TestMirror(t *testing.T) {
	t.Parallel()
	tests := []struct {
		row, col         int
		wantRow, wantCol int
	}{
		{row: 0, col: 0, wantRow: 7, wantCol: 7},
		{row: 7, col: 7, wantRow: 0, wantCol: 0},
		{row: 2, col: 3, wantRow: 5, wantCol: 4},
		{row: 3, col: 4, wantRow: 4, wantCol: 3},
		{row: 0, col: 7, wantRow: 7, wantCol: 0},
	}

	for _, tt := range tests {
		gotRow, gotCol := Mirror(tt.row, tt.col)
		if gotRow != tt.wantRow || gotCol != tt.wantCol {
			t.Errorf("unexpected mirror of (%d,%d): got=(%d,%d) want=(%d,%d)",
				tt.row, tt.col, gotRow, gotCol, tt.wantRow, tt.wantCol)
		}

		p, ok := NewPos(tt.row, tt.col)
		if !ok {
			t.Fatalf("unexpected out of bounds: (%d,%d)", tt.row, tt.col)
		}
		if m := p.Mirror(); m.Row() != tt.wantRow || m.Col() != tt.wantCol {
			t.Errorf("unexpected pos mirror of %s: got=(%d,%d) want=(%d,%d)",
				p, m.Row(), m.Col(), tt.wantRow, tt.wantCol)
		}
	}
}

func TestMirrorInvolution(t *testing.T) {
	t.Parallel()
	for p := Pos(0); p < TotalCells; p++ {
		if got := p.Mirror().Mirror(); got != p {
			t.Errorf("unexpected double mirror of %s: got=%s", p, got)
		}
	}
}

func TestNewPos(t *testing.T) {
	t.Parallel()
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-3, 11}} {
		if _, ok := NewPos(rc[0], rc[1]); ok {
			t.Errorf("unexpected in bounds: (%d,%d)", rc[0], rc[1])
		}
	}
	p, ok := NewPos(5, 2)
	if !ok || p.Row() != 5 || p.Col() != 2 || p.Notation() != "c6" {
		t.Errorf("unexpected pos: got=%d (%d,%d) %s", p, p.Row(), p.Col(), p.Notation())
	}
}
