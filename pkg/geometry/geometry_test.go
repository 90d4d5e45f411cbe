package geometry

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name       string
		v, lo, hi  float64
		want       float64
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 14, 0, 10, 10},
		{"inverted bounds returns midpoint", 5, 10, 0, 5},
		{"inverted bounds ignores value", 100, 20, 10, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestDistToSegment(t *testing.T) {
	a := Point{0, 0}
	b := Point{10, 0}

	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"above middle", Point{5, 3}, 3},
		{"on segment", Point{7, 0}, 0},
		{"beyond end clamps to endpoint", Point{13, 4}, 5},
		{"before start clamps to endpoint", Point{-3, 4}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DistToSegment(tt.p, a, b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DistToSegment(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	// Degenerate segment behaves as distance to the point.
	if got := DistToSegment(Point{3, 4}, Point{0, 0}, Point{0, 0}); math.Abs(got-5) > 1e-9 {
		t.Errorf("degenerate segment: got %v, want 5", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}

	if !r.Contains(Point{10, 10}) {
		t.Error("min corner should be inside (edges inclusive)")
	}
	if !r.Contains(Point{30, 30}) {
		t.Error("max corner should be inside (edges inclusive)")
	}
	if r.Contains(Point{30.1, 20}) {
		t.Error("point past right edge should be outside")
	}
	if !r.ContainsWithTolerance(Point{32, 20}, 3) {
		t.Error("point within tolerance should hit")
	}
	if r.ContainsWithTolerance(Point{34, 20}, 3) {
		t.Error("point past tolerance should miss")
	}
}

func TestBoundingBox(t *testing.T) {
	got := BoundingBox([]Rect{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 20, Y: -5, W: 10, H: 10},
	})
	want := Rect{X: 0, Y: -5, W: 30, H: 15}
	if got != want {
		t.Errorf("BoundingBox = %+v, want %+v", got, want)
	}

	if got := BoundingBox(nil); got != (Rect{}) {
		t.Errorf("empty input should give zero rect, got %+v", got)
	}
}

func TestEdgeAt(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 200}

	tests := []struct {
		name string
		p    Point
		want Edge
	}{
		{"near left", Point{2, 100}, EdgeLeft},
		{"near right", Point{99, 100}, EdgeRight},
		{"near top", Point{50, -3}, EdgeTop},
		{"near bottom", Point{50, 202}, EdgeBottom},
		{"interior", Point{50, 100}, EdgeNone},
		{"corner prefers left over top", Point{1, 1}, EdgeLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EdgeAt(r, tt.p, 5); got != tt.want {
				t.Errorf("EdgeAt(%v) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}

func TestSegmentIntersection(t *testing.T) {
	p, ok := SegmentIntersection(Point{0, 0}, Point{10, 10}, Point{0, 10}, Point{10, 0})
	if !ok {
		t.Fatal("crossing segments should intersect")
	}
	if math.Abs(p.X-5) > 1e-9 || math.Abs(p.Y-5) > 1e-9 {
		t.Errorf("intersection = %v, want (5,5)", p)
	}

	if _, ok := SegmentIntersection(Point{0, 0}, Point{10, 0}, Point{0, 5}, Point{10, 5}); ok {
		t.Error("parallel segments should not intersect")
	}
	if _, ok := SegmentIntersection(Point{0, 0}, Point{1, 0}, Point{5, -1}, Point{5, 1}); ok {
		t.Error("non-overlapping spans should not intersect")
	}
}

func TestSnapAngle(t *testing.T) {
	step := math.Pi / 4
	if got := SnapAngle(0.8, step); math.Abs(got-step) > 1e-9 {
		t.Errorf("SnapAngle(0.8) = %v, want %v", got, step)
	}
	if got := SnapAngle(1.23, 0); got != 1.23 {
		t.Errorf("zero step should be identity, got %v", got)
	}
}
