package session

import (
	"fmt"
	"math"

	"github.com/plankworks/cabd/pkg/geometry"
	"github.com/plankworks/cabd/pkg/hittest"
	"github.com/plankworks/cabd/pkg/layout"
	"github.com/plankworks/cabd/pkg/model"
)

// Tunables for the interactive solver.
const (
	// MinPostHeightMm is the floor for a resized center post.
	MinPostHeightMm = 100.0
	// SnapToleranceMm is the reach of the resize snap-to-shelf-bottom.
	SnapToleranceMm = 8.0
	// ResizeGripMm is how close to a post's end the pointer must be to start
	// a resize rather than nothing.
	ResizeGripMm = 40.0
)

type gestureKind int

const (
	gestureMovePost gestureKind = iota
	gestureMoveShelf
	gestureResizePost
)

// gesture is the ephemeral drag/resize session. At most one exists at a
// time; it is created on pointer-down, advanced on pointer-move, and
// consumed on pointer-up or pointer-leave.
type gesture struct {
	kind    gestureKind
	shapeID string
	role    model.Role

	// grab is the pointer offset from the dragged feature (post center X or
	// shelf center Y) at pointer-down, so the shape doesn't jump under the
	// cursor.
	grab float64

	// snapshot is the pre-gesture geometry, restored on rollback.
	snapshot []model.Shape

	// edge is which post end a resize moves (EdgeTop or EdgeBottom).
	edge geometry.Edge

	// warned latches after the first sheet-width advisory. Once per
	// gesture.
	warned bool
}

// Active reports whether a drag/resize gesture is in flight.
func (s *Store) Active() bool { return s.gesture != nil }

// === POINTER EVENTS ===

// OnPointerDown resolves the target and, when the mode permits and the
// target is draggable, transitions Idle -> Active.
func (s *Store) OnPointerDown(p geometry.Point) {
	if s.gesture != nil {
		// A stray down while active means we lost the matching up event;
		// discard the stale gesture before considering a new one.
		s.rollback()
	}

	target := hittest.Resolve(p, &s.cfg, s.shapes, s.origin)

	switch s.mode {
	case ModeSelect:
		s.ClearSelection()
		if sh, ok := hittest.HitTestShapes(p, s.shapes, 4); ok {
			s.Select(sh.ID)
		}

	case ModeMove:
		switch target.Kind {
		case hittest.TargetCenterPost:
			sh := model.FindShape(s.shapes, target.ShapeID)
			if sh == nil {
				return
			}
			s.gesture = &gesture{
				kind:     gestureMovePost,
				shapeID:  sh.ID,
				role:     model.Role{Kind: model.RoleCenterPost, Index: target.PostIndex},
				grab:     p.X - (sh.X + sh.W/2),
				snapshot: model.CloneShapes(s.shapes),
			}
		case hittest.TargetShelf:
			sh := model.FindShape(s.shapes, target.ShapeID)
			if sh == nil {
				return
			}
			s.gesture = &gesture{
				kind:     gestureMoveShelf,
				shapeID:  sh.ID,
				role:     model.Role{Kind: model.RoleShelf, Section: target.SectionIndex, ShelfIndex: target.ShelfIndex},
				grab:     p.Y - (sh.Y + sh.H/2),
				snapshot: model.CloneShapes(s.shapes),
			}
		}

	case ModeResize:
		if target.Kind != hittest.TargetCenterPost {
			return
		}
		sh := model.FindShape(s.shapes, target.ShapeID)
		if sh == nil {
			return
		}
		var edge geometry.Edge
		switch {
		case math.Abs(p.Y-sh.Y) <= ResizeGripMm:
			edge = geometry.EdgeTop
		case math.Abs(p.Y-(sh.Y+sh.H)) <= ResizeGripMm:
			edge = geometry.EdgeBottom
		default:
			return
		}
		s.gesture = &gesture{
			kind:     gestureResizePost,
			shapeID:  sh.ID,
			role:     model.Role{Kind: model.RoleCenterPost, Index: target.PostIndex},
			edge:     edge,
			snapshot: model.CloneShapes(s.shapes),
		}
	}
}

// OnPointerMove advances the active gesture, recomputing the clamped
// candidate position. No-op while idle.
func (s *Store) OnPointerMove(p geometry.Point) {
	g := s.gesture
	if g == nil {
		return
	}
	switch g.kind {
	case gestureMovePost:
		s.movePost(g, p)
	case gestureMoveShelf:
		s.moveShelf(g, p)
	case gestureResizePost:
		s.resizePost(g, p)
	}
}

// OnPointerUp commits the active gesture: the transient mutation becomes
// permanent, structural changes are written back to the config, and one
// history entry is pushed.
func (s *Store) OnPointerUp(p geometry.Point) {
	g := s.gesture
	if g == nil {
		return
	}
	s.gesture = nil

	switch g.kind {
	case gestureMovePost:
		s.commitPostMove(g)
	case gestureMoveShelf:
		s.commitShelfMove(g)
	case gestureResizePost:
		s.commitPostResize(g)
	}
}

// OnPointerLeave cancels the active gesture, restoring the pre-gesture
// geometry. No history entry is pushed.
func (s *Store) OnPointerLeave() {
	if s.gesture == nil {
		return
	}
	s.rollback()
}

func (s *Store) rollback() {
	s.shapes = s.gesture.snapshot
	s.gesture = nil
}

// === MOVE: CENTER POST ===

// movePost applies, in order: axis restriction (horizontal only), basic
// bound clamping against the side panels, and the sheet-width invariant.
func (s *Store) movePost(g *gesture, p geometry.Point) {
	sh := model.FindShape(s.shapes, g.shapeID)
	if sh == nil {
		return
	}
	t := s.cfg.CarcassThicknessMm

	// Candidate center, module-local.
	center := p.X - g.grab - s.origin.X

	lo := t + t/2
	hi := s.cfg.WidthMm - t - t/2
	center = geometry.Clamp(center, lo, hi)

	// Sheet-width invariant: no adjacent back-panel section may exceed the
	// raw sheet width if this position were committed.
	clamped := s.clampToSheetWidth(g.role.Index, center)
	if clamped != center && !g.warned {
		g.warned = true
		s.warn(fmt.Sprintf("section would exceed %.0fmm sheet width", model.SheetWidthMm))
	}
	center = clamped

	sh.X = s.origin.X + center - sh.W/2
}

// clampToSheetWidth returns the nearest center position for post i that
// keeps both adjacent sections within the raw sheet width.
func (s *Store) clampToSheetWidth(i int, center float64) float64 {
	t := s.cfg.CarcassThicknessMm
	centers := s.currentPostCenters()
	if i < 0 || i >= len(centers) {
		return center
	}

	prev := t
	if i > 0 {
		prev = centers[i-1] + t/2
	}
	next := s.cfg.WidthMm - t
	if i < len(centers)-1 {
		next = centers[i+1] - t/2
	}

	// Left section: (center - t/2) - prev <= sheet width.
	hi := prev + model.SheetWidthMm + t/2
	// Right section: next - (center + t/2) <= sheet width.
	lo := next - model.SheetWidthMm - t/2

	return geometry.Clamp(center, lo, hi)
}

// currentPostCenters reads post centers from the live shapes (module-local),
// which reflect any in-flight transient mutation.
func (s *Store) currentPostCenters() []float64 {
	n := s.cfg.CenterPostCount
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if sh := model.FindShape(s.shapes, model.PostID(i)); sh != nil {
			out = append(out, sh.X+sh.W/2-s.origin.X)
		}
	}
	return out
}

// commitPostMove writes the explicit post positions back into the config so
// regeneration reproduces the dragged layout, then regenerates and records
// history.
func (s *Store) commitPostMove(g *gesture) {
	s.cfg.CenterPostPositions = s.currentPostCenters()
	s.regenerate()
	s.history.Push(s.shapes, s.cfg, fmt.Sprintf("move post %d", g.role.Index+1))
}

// === MOVE: SHELF ===

// moveShelf restricts the drag to the vertical axis, forces the shelf's
// horizontal extent to its enclosing section, and clamps to the section's
// top/bottom limits.
func (s *Store) moveShelf(g *gesture, p geometry.Point) {
	sh := model.FindShape(s.shapes, g.shapeID)
	if sh == nil {
		return
	}

	bounds := layout.SectionBoundaries(s.cfg)
	si := g.role.Section
	if si < 0 || si >= len(bounds) {
		return
	}
	sh.X = s.origin.X + bounds[si].Start
	sh.W = bounds[si].Width()

	center := p.Y - g.grab - s.origin.Y
	lo := layout.InnerTop(s.cfg) + sh.H/2
	hi := layout.InnerBottom(s.cfg) - sh.H/2
	center = geometry.Clamp(center, lo, hi)

	sh.Y = s.origin.Y + center - sh.H/2
}

// commitShelfMove writes the shelf's section-relative percentage position
// into the config, so subsequent regeneration reproduces the layout.
func (s *Store) commitShelfMove(g *gesture) {
	si := g.role.Section
	top := layout.InnerTop(s.cfg)
	bottom := layout.InnerBottom(s.cfg)
	if bottom <= top {
		return
	}

	// Ensure the config has a descriptor for this section.
	for len(s.cfg.Sections) <= si {
		s.cfg.Sections = append(s.cfg.Sections, model.Section{Type: model.SectionOpen})
	}

	// Record every shelf in the section, preserving index order, so one
	// drag doesn't discard sibling placements.
	var positions []float64
	for i := 0; ; i++ {
		sh := model.FindShape(s.shapes, model.ShelfID(si, i))
		if sh == nil {
			break
		}
		center := sh.Y + sh.H/2 - s.origin.Y
		positions = append(positions, (center-top)/(bottom-top)*100)
	}
	s.cfg.Sections[si].ShelfPositions = positions

	s.regenerate()
	s.history.Push(s.shapes, s.cfg, fmt.Sprintf("move shelf %d.%d", si+1, g.role.ShelfIndex+1))
}

// === RESIZE: CENTER POST ===

// resizePost recomputes the post's top or bottom edge from the pointer,
// clamped to the inner carcass with a minimum-height floor, with optional
// snap to a nearby shelf face.
func (s *Store) resizePost(g *gesture, p geometry.Point) {
	sh := model.FindShape(s.shapes, g.shapeID)
	if sh == nil {
		return
	}

	topLimit := s.origin.Y + layout.InnerTop(s.cfg)
	bottomLimit := s.origin.Y + layout.InnerBottom(s.cfg)

	switch g.edge {
	case geometry.EdgeTop:
		bottom := sh.Y + sh.H
		y := geometry.Clamp(p.Y, topLimit, bottom-MinPostHeightMm)
		y = s.snapToShelfFace(g.role.Index, y)
		sh.H = bottom - y
		sh.Y = y
	case geometry.EdgeBottom:
		y := geometry.Clamp(p.Y, sh.Y+MinPostHeightMm, bottomLimit)
		y = s.snapToShelfFace(g.role.Index, y)
		sh.H = y - sh.Y
	}
}

// snapToShelfFace pulls y to the nearest shelf top/bottom face in the two
// sections adjacent to post i, when within the snap tolerance.
func (s *Store) snapToShelfFace(i int, y float64) float64 {
	best := y
	bestDist := SnapToleranceMm
	for _, sh := range s.shapes {
		role, ok := model.ParseID(sh.ID)
		if !ok || role.Kind != model.RoleShelf {
			continue
		}
		if role.Section != i && role.Section != i+1 {
			continue
		}
		for _, face := range []float64{sh.Y, sh.Y + sh.H} {
			if d := math.Abs(face - y); d <= bestDist {
				best = face
				bestDist = d
			}
		}
	}
	return best
}

// commitPostResize makes the shape-level mutation permanent and runs the
// shelf merge/extend side effect once. The post's vertical extent is not a
// config field, so no write-back happens; the config regenerates the full
// span if the module is rebuilt from scratch.
func (s *Store) commitPostResize(g *gesture) {
	s.mergeShelvesAroundPost(g.role.Index)
	s.history.Push(s.shapes, s.cfg, fmt.Sprintf("resize post %d", g.role.Index+1))
}
