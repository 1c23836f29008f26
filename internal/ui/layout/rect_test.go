package layout

import (
	"errors"
	"testing"
)

func TestRect_ContainsBoundaries(t *testing.T) {
	r := NewRect(495, 0, 10, 40)

	tests := map[string]struct {
		x, y int
		want bool
	}{
		"leading edge":  {495, 0, true},
		"inside":        {500, 20, true},
		"last cell":     {504, 39, true},
		"trailing edge": {505, 0, false},
		"bottom edge":   {500, 40, false},
		"before":        {494, 0, false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Fatalf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNewRect_ClampsNegativeSize(t *testing.T) {
	r := NewRect(1, 2, -3, -4)
	if r.Width != 0 || r.Height != 0 {
		t.Fatalf("NewRect size = %dx%d, want 0x0", r.Width, r.Height)
	}
	if !r.Empty() {
		t.Fatal("expected empty rect")
	}
}

func TestAxis_ShiftOnlyMovesAlongAxis(t *testing.T) {
	r := NewRect(10, 5, 2, 8)

	if got := Horizontal.Shift(r, 7); got != NewRect(17, 5, 2, 8) {
		t.Fatalf("Horizontal.Shift = %+v", got)
	}
	if got := Vertical.Shift(r, -3); got != NewRect(10, 2, 2, 8) {
		t.Fatalf("Vertical.Shift = %+v", got)
	}
}

func TestAxis_GrowAndCenter(t *testing.T) {
	r := NewRect(495, 0, 10, 40)

	g := Horizontal.Grow(r, 3)
	if g.X != 492 || g.Width != 16 || g.Height != 40 {
		t.Fatalf("Grow = %+v", g)
	}
	if c := Horizontal.Center(r); c != 500 {
		t.Fatalf("Center = %d, want 500", c)
	}
	if c := Vertical.Center(NewRect(0, 9, 80, 3)); c != 10 {
		t.Fatalf("Vertical.Center = %d, want 10", c)
	}
}

func TestParseAxis(t *testing.T) {
	tests := map[string]Axis{
		"":           Horizontal,
		"h":          Horizontal,
		"Horizontal": Horizontal,
		"v":          Vertical,
		" VERTICAL ": Vertical,
	}
	for in, want := range tests {
		got, err := ParseAxis(in)
		if err != nil {
			t.Fatalf("ParseAxis(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseAxis(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseAxis("diagonal"); !errors.Is(err, ErrUnknownAxis) {
		t.Fatalf("ParseAxis(diagonal) err = %v, want ErrUnknownAxis", err)
	}
}
