package layout

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCompute_HorizontalSplit(t *testing.T) {
	r := Compute(Horizontal, 1000, 40, 10, 500)

	if r.PaneA != NewRect(0, 0, 495, 40) {
		t.Errorf("PaneA = %+v, want [0,495)", r.PaneA)
	}
	if r.Divider != NewRect(495, 0, 10, 40) {
		t.Errorf("Divider = %+v, want [495,505)", r.Divider)
	}
	if r.PaneB != NewRect(505, 0, 495, 40) {
		t.Errorf("PaneB = %+v, want [505,1000)", r.PaneB)
	}
}

func TestCompute_VerticalSplit(t *testing.T) {
	r := Compute(Vertical, 80, 30, 2, 10)

	if r.PaneA != NewRect(0, 0, 80, 9) {
		t.Errorf("PaneA = %+v, want rows [0,9)", r.PaneA)
	}
	if r.Divider != NewRect(0, 9, 80, 2) {
		t.Errorf("Divider = %+v, want rows [9,11)", r.Divider)
	}
	if r.PaneB != NewRect(0, 11, 80, 19) {
		t.Errorf("PaneB = %+v, want rows [11,30)", r.PaneB)
	}
}

func TestCompute_SizesSumToExtent(t *testing.T) {
	for _, axis := range []Axis{Horizontal, Vertical} {
		for _, thickness := range []int{0, 1, 2, 3, 7, 10} {
			for _, extent := range []int{1, 2, 9, 10, 31, 100} {
				for p := 0; p <= extent; p++ {
					w, h := extent, 5
					if axis == Vertical {
						w, h = 5, extent
					}
					r := Compute(axis, w, h, thickness, p)

					if got := r.Extent(); got != extent {
						t.Fatalf("%s d=%d E=%d p=%d: sizes sum to %d", axis, thickness, extent, p, got)
					}
					if axis.Start(r.Divider) != axis.Start(r.PaneA)+axis.Size(r.PaneA) {
						t.Fatalf("%s d=%d E=%d p=%d: gap between PaneA and divider", axis, thickness, extent, p)
					}
					if axis.Start(r.PaneB) != axis.Start(r.Divider)+axis.Size(r.Divider) {
						t.Fatalf("%s d=%d E=%d p=%d: gap between divider and PaneB", axis, thickness, extent, p)
					}
					if got := axis.Size(r.Divider); got != min(thickness, extent) {
						t.Fatalf("%s d=%d E=%d p=%d: divider is %d cells", axis, thickness, extent, p, got)
					}
					for _, rect := range []Rect{r.PaneA, r.Divider, r.PaneB} {
						if rect.Width < 0 || rect.Height < 0 {
							t.Fatalf("%s d=%d E=%d p=%d: negative rect %+v", axis, thickness, extent, p, rect)
						}
					}
				}
			}
		}
	}
}

func TestCompute_OddThicknessKeepsFullDivider(t *testing.T) {
	r := Compute(Horizontal, 80, 24, 1, 40)
	if r.Divider != NewRect(40, 0, 1, 24) {
		t.Fatalf("Divider = %+v, want a single column at 40", r.Divider)
	}

	r = Compute(Horizontal, 80, 24, 3, 40)
	if r.Divider != NewRect(39, 0, 3, 24) {
		t.Fatalf("Divider = %+v, want [39,42)", r.Divider)
	}
}

func TestCompute_DividerStaysInsideAtEdges(t *testing.T) {
	tests := map[string]struct {
		thickness, offset int
		want              Rect
	}{
		"thin at end":    {1, 100, NewRect(99, 0, 1, 5)},
		"thick at start": {10, 0, NewRect(0, 0, 10, 5)},
		"thick at end":   {10, 100, NewRect(90, 0, 10, 5)},
		"thick near end": {10, 97, NewRect(90, 0, 10, 5)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := Compute(Horizontal, 100, 5, tt.thickness, tt.offset)
			if r.Divider != tt.want {
				t.Fatalf("Divider = %+v, want %+v", r.Divider, tt.want)
			}
			if r.Extent() != 100 {
				t.Fatalf("sizes sum to %d, want 100", r.Extent())
			}
		})
	}
}

func TestCompute_ThicknessLargerThanExtent(t *testing.T) {
	r := Compute(Horizontal, 4, 10, 10, 2)

	if r.PaneA.Width != 0 || r.PaneB.Width != 0 {
		t.Fatalf("panes should collapse to zero, got A=%d B=%d", r.PaneA.Width, r.PaneB.Width)
	}
	if r.Divider.Width != 4 {
		t.Fatalf("divider should fill the container, got %d", r.Divider.Width)
	}
}

func TestCalculate_FractionResolvesOffset(t *testing.T) {
	r, pos, ok := Calculate(Horizontal, 1000, 40, 10, 0, Fraction(0.5))
	if !ok {
		t.Fatal("expected a layout for a measured container")
	}
	if pos.ResolvedOffset() != 500 {
		t.Fatalf("offset = %d, want 500", pos.ResolvedOffset())
	}
	if r.Divider.X != 495 || r.Divider.Width != 10 {
		t.Fatalf("divider = %+v, want [495,505)", r.Divider)
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	pos := Fraction(0.37)
	first, pos, _ := Calculate(Vertical, 120, 77, 3, 2, pos)
	second, pos2, _ := Calculate(Vertical, 120, 77, 3, 2, pos)

	if first != second {
		t.Fatalf("layout changed between passes: %+v vs %+v", first, second)
	}
	if pos.ResolvedOffset() != pos2.ResolvedOffset() || pos.ResolvedFraction() != pos2.ResolvedFraction() {
		t.Fatal("position changed between passes")
	}
}

func TestCalculate_DegenerateExtent(t *testing.T) {
	prev, pos, _ := Calculate(Horizontal, 100, 10, 1, 0, Offset(30))

	tests := map[string]struct{ w, h int }{
		"zero width":     {0, 10},
		"zero height":    {100, 0},
		"negative width": {-5, 10},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, got, ok := Calculate(Horizontal, tt.w, tt.h, 1, 0, pos)
			if ok {
				t.Fatal("expected no layout for an unmeasured container")
			}
			if got != pos {
				t.Fatalf("position changed: %+v -> %+v", pos, got)
			}
			if prev.PaneA.Width != 30 {
				t.Fatalf("previous result should be untouched, PaneA width %d", prev.PaneA.Width)
			}
		})
	}
}

func TestCalculate_MinPaneClampsEffectiveOffset(t *testing.T) {
	r, pos, _ := Calculate(Horizontal, 100, 10, 2, 20, Offset(5))

	if pos.ResolvedOffset() != 20 {
		t.Fatalf("offset = %d, want clamped to 20", pos.ResolvedOffset())
	}
	if !pos.IsOffset() || pos.Configured() != 5 {
		t.Fatal("authoritative offset should stay at 5")
	}
	if r.PaneA.Width != 19 {
		t.Fatalf("PaneA width = %d, want 19", r.PaneA.Width)
	}
}

func TestHandleResize_ReservesStatusBar(t *testing.T) {
	f := HandleResize(tea.WindowSizeMsg{Width: 120, Height: 40})
	if f.Width != 120 || f.Height != 40 || f.ContentHeight != 39 {
		t.Errorf("frame = %+v, want 120x40 with content 39", f)
	}

	f = HandleResize(tea.WindowSizeMsg{Width: 0, Height: 0})
	if f.ContentHeight != 0 {
		t.Errorf("ContentHeight = %d, want 0 for an empty terminal", f.ContentHeight)
	}
}
