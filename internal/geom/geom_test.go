package geom

import (
	"math"
	"testing"
)

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, p3, p4 Point
		want           bool
	}{
		{"crossing", Pt(0, 0), Pt(10, 10), Pt(0, 10), Pt(10, 0), true},
		{"touching endpoint", Pt(0, 0), Pt(5, 5), Pt(5, 5), Pt(10, 0), true},
		{"disjoint", Pt(0, 0), Pt(1, 1), Pt(5, 0), Pt(6, 1), false},
		{"parallel", Pt(0, 0), Pt(10, 0), Pt(0, 1), Pt(10, 1), false},
		{"collinear overlap", Pt(0, 0), Pt(10, 0), Pt(5, 0), Pt(15, 0), false},
		{"would cross if extended", Pt(0, 0), Pt(1, 1), Pt(0, 10), Pt(10, 0), false},
	}

	for _, tt := range tests {
		if got := SegmentsIntersect(tt.p1, tt.p2, tt.p3, tt.p4); got != tt.want {
			t.Errorf("%s: SegmentsIntersect = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSegmentIntersectsRect(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 10}

	tests := []struct {
		name string
		a, b Point
		want bool
	}{
		{"through the middle", Pt(0, 15), Pt(40, 15), true},
		{"fully inside", Pt(12, 12), Pt(20, 18), true},
		{"one endpoint inside", Pt(15, 15), Pt(50, 50), true},
		{"above", Pt(0, 5), Pt(40, 5), false},
		{"beside", Pt(35, 0), Pt(35, 40), false},
		{"diagonal miss", Pt(0, 40), Pt(5, 25), false},
	}

	for _, tt := range tests {
		if got := SegmentIntersectsRect(tt.a, tt.b, r); got != tt.want {
			t.Errorf("%s: SegmentIntersectsRect = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRectContainsIsInclusive(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 5}

	for _, p := range []Point{Pt(0, 0), Pt(10, 5), Pt(10, 0), Pt(5, 2.5)} {
		if !r.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	for _, p := range []Point{Pt(-0.1, 0), Pt(10.1, 5), Pt(5, 5.01)} {
		if r.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
}

func TestRectExpandAndCenter(t *testing.T) {
	r := Rect{X: 400, Y: 300, Width: 200, Height: 150}

	e := r.Expand(4)
	if e.X != 396 || e.Y != 296 || e.Width != 208 || e.Height != 158 {
		t.Errorf("Expand(4) = %+v", e)
	}

	if c := r.Center(); c != Pt(500, 375) {
		t.Errorf("Center() = %v, want (500, 375)", c)
	}
}

func TestZeroSizeRect(t *testing.T) {
	r := Rect{X: 5, Y: 5}
	if !r.Contains(Pt(5, 5)) {
		t.Error("zero-size rect should contain its own origin")
	}
	if !SegmentIntersectsRect(Pt(0, 5), Pt(5, 5), r) {
		t.Error("segment ending at the zero-size rect should touch it")
	}
}

func TestLength(t *testing.T) {
	if got := Length([]Point{Pt(0, 0)}); got != 0 {
		t.Errorf("Length of single point = %v, want 0", got)
	}
	got := Length([]Point{Pt(0, 0), Pt(3, 4), Pt(3, 10)})
	if math.Abs(got-11) > 1e-9 {
		t.Errorf("Length = %v, want 11", got)
	}
}
