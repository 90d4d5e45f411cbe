// Package geometry provides pure 2D helpers for the drawing surface:
// distances, angle snapping, intersections, bounding boxes, and alignment
// guides. Everything here is stateless and deterministic.
package geometry

import "math"

// Point is a 2D point in drawing-surface coordinates (mm, Y down).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle defined by min corner and size.
type Rect struct {
	X, Y, W, H float64
}

// Min returns the rectangle's minimum corner.
func (r Rect) Min() Point { return Point{r.X, r.Y} }

// Max returns the rectangle's maximum corner.
func (r Rect) Max() Point { return Point{r.X + r.W, r.Y + r.H} }

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X <= r.X+r.W && p.Y <= r.Y+r.H
}

// ContainsWithTolerance reports whether p lies inside r grown by tol on all
// sides.
func (r Rect) ContainsWithTolerance(p Point, tol float64) bool {
	return p.X >= r.X-tol && p.Y >= r.Y-tol && p.X <= r.X+r.W+tol && p.Y <= r.Y+r.H+tol
}

// Inset returns a rectangle inset by dx,dy on all sides (negative grows).
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// Union returns the minimal rect containing both.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.X+r.W, o.X+o.W)
	maxY := math.Max(r.Y+r.H, o.Y+o.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// BoundingBox returns the union of all rects. The zero Rect is returned for
// an empty input.
func BoundingBox(rects []Rect) Rect {
	if len(rects) == 0 {
		return Rect{}
	}
	out := rects[0]
	for _, r := range rects[1:] {
		out = out.Union(r)
	}
	return out
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// DistToSegment returns the distance from p to the segment a-b.
func DistToSegment(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Dist(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Dist(p, Point{a.X + t*dx, a.Y + t*dy})
}

// Angle returns the angle of the vector a->b in radians, in (-Pi, Pi].
func Angle(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// SnapAngle snaps an angle (radians) to the nearest multiple of step.
// A non-positive step returns the angle unchanged.
func SnapAngle(angle, step float64) float64 {
	if step <= 0 {
		return angle
	}
	return math.Round(angle/step) * step
}

// SegmentIntersection returns the intersection point of segments a1-a2 and
// b1-b2, and whether one exists. Collinear overlaps report no intersection.
func SegmentIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	d1x := a2.X - a1.X
	d1y := a2.Y - a1.Y
	d2x := b2.X - b1.X
	d2y := b2.Y - b1.Y

	denom := d1x*d2y - d1y*d2x
	if denom == 0 {
		return Point{}, false
	}

	t := ((b1.X-a1.X)*d2y - (b1.Y-a1.Y)*d2x) / denom
	u := ((b1.X-a1.X)*d1y - (b1.Y-a1.Y)*d1x) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return Point{a1.X + t*d1x, a1.Y + t*d1y}, true
}

// Edge names one side of a rectangle.
type Edge string

const (
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
	EdgeNone   Edge = ""
)

// EdgeAt returns which edge of r the point is nearest to, when the point is
// within tol of that edge and inside the rect's span on the other axis.
// Ties resolve in left, right, top, bottom order.
func EdgeAt(r Rect, p Point, tol float64) Edge {
	inY := p.Y >= r.Y-tol && p.Y <= r.Y+r.H+tol
	inX := p.X >= r.X-tol && p.X <= r.X+r.W+tol

	if inY && math.Abs(p.X-r.X) <= tol {
		return EdgeLeft
	}
	if inY && math.Abs(p.X-(r.X+r.W)) <= tol {
		return EdgeRight
	}
	if inX && math.Abs(p.Y-r.Y) <= tol {
		return EdgeTop
	}
	if inX && math.Abs(p.Y-(r.Y+r.H)) <= tol {
		return EdgeBottom
	}
	return EdgeNone
}

// Clamp limits v to [lo, hi]. When lo > hi the midpoint is returned, which
// keeps degenerate gesture bounds from flipping the target around.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundMm rounds to the nearest millimeter.
func RoundMm(v float64) float64 {
	return math.Round(v)
}
