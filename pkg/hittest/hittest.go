// Package hittest classifies pointer positions against the module geometry.
// Resolution works from the config (structural bands), not from pixel
// scanning, so it stays correct at any zoom level.
package hittest

import (
	"math"

	"github.com/plankworks/cabd/pkg/geometry"
	"github.com/plankworks/cabd/pkg/layout"
	"github.com/plankworks/cabd/pkg/model"
)

// TargetKind tags what a pointer interaction lands on.
type TargetKind string

const (
	TargetOutside    TargetKind = "outside"
	TargetPanel      TargetKind = "panel"
	TargetCenterPost TargetKind = "center_post"
	TargetSection    TargetKind = "section"
	TargetShelf      TargetKind = "shelf"
	TargetEmpty      TargetKind = "empty"
)

// Target identifies what a pointer interaction hit, carrying the index/ID the
// solver needs.
type Target struct {
	Kind         TargetKind
	Side         model.PanelSide // TargetPanel
	PostIndex    int             // TargetCenterPost
	SectionIndex int             // TargetSection and TargetShelf
	ShelfIndex   int             // TargetShelf
	ShapeID      string          // the shape backing the target, when one exists
}

// Resolve classifies a point against the module. A nil config resolves to
// empty rather than an error: the caller may race a regeneration and the
// pointer event is simply stale.
//
// Resolution order is fixed so corner ambiguity is deterministic: outside
// check, then the four carcass bands (left, right, top, bottom), then post
// bands, then section membership narrowed to a shelf when the point falls in
// a shelf's vertical span.
func Resolve(p geometry.Point, cfg *model.ModuleConfig, shapes []model.Shape, origin geometry.Point) Target {
	if cfg == nil {
		return Target{Kind: TargetEmpty}
	}
	c := cfg.Clamped()

	// Module-local coordinates.
	x := p.X - origin.X
	y := p.Y - origin.Y
	t := c.CarcassThicknessMm

	if x < 0 || y < 0 || x > c.WidthMm || y > c.HeightMm {
		return Target{Kind: TargetOutside}
	}

	switch {
	case x <= t:
		return Target{Kind: TargetPanel, Side: model.SideLeft, ShapeID: model.PanelID(model.SideLeft)}
	case x >= c.WidthMm-t:
		return Target{Kind: TargetPanel, Side: model.SideRight, ShapeID: model.PanelID(model.SideRight)}
	case y <= t:
		return Target{Kind: TargetPanel, Side: model.SideTop, ShapeID: model.PanelID(model.SideTop)}
	case y >= layout.InnerBottom(c):
		return Target{Kind: TargetPanel, Side: model.SideBottom, ShapeID: model.PanelID(model.SideBottom)}
	}

	for i, cx := range layout.PostCenters(c) {
		if math.Abs(x-cx) <= t/2 {
			return Target{Kind: TargetCenterPost, PostIndex: i, ShapeID: model.PostID(i)}
		}
	}

	si := layout.SectionIndexAt(c, x)
	if si < 0 {
		return Target{Kind: TargetEmpty}
	}

	// Narrow to a shelf when the point is within one's vertical span.
	for i := range shapes {
		s := &shapes[i]
		role, ok := model.ParseID(s.ID)
		if !ok || role.Kind != model.RoleShelf || role.Section != si {
			continue
		}
		if p.Y >= s.Y && p.Y <= s.Y+s.H && p.X >= s.X && p.X <= s.X+s.W {
			return Target{Kind: TargetShelf, SectionIndex: si, ShelfIndex: role.ShelfIndex, ShapeID: s.ID}
		}
	}

	return Target{Kind: TargetSection, SectionIndex: si}
}

// HitTestShapes scans shapes in reverse declaration order so the last
// declared (topmost) shape wins for overlaps. Rects and dimensions use
// containment with tolerance; lines use point-to-segment distance.
func HitTestShapes(p geometry.Point, shapes []model.Shape, tol float64) (model.Shape, bool) {
	for i := len(shapes) - 1; i >= 0; i-- {
		s := shapes[i]
		switch s.Kind {
		case model.ShapeRect:
			r := geometry.Rect{X: s.X, Y: s.Y, W: s.W, H: s.H}
			if r.ContainsWithTolerance(p, tol) {
				return s, true
			}
		case model.ShapeDimension:
			r := boundsOf(s)
			if r.ContainsWithTolerance(p, tol) {
				return s, true
			}
		case model.ShapeLine:
			reach := tol + s.Thickness/2
			if geometry.DistToSegment(p, geometry.Point{X: s.X1, Y: s.Y1}, geometry.Point{X: s.X2, Y: s.Y2}) <= reach {
				return s, true
			}
		}
	}
	return model.Shape{}, false
}

func boundsOf(s model.Shape) geometry.Rect {
	minX := math.Min(s.X1, s.X2)
	minY := math.Min(s.Y1, s.Y2)
	return geometry.Rect{X: minX, Y: minY, W: math.Abs(s.X2 - s.X1), H: math.Abs(s.Y2 - s.Y1)}
}
