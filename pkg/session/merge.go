package session

import (
	"github.com/plankworks/cabd/pkg/layout"
	"github.com/plankworks/cabd/pkg/model"
)

// ShelfMergeToleranceMm is how far apart two shelf center lines may be and
// still merge into one continuous shelf when the post between them is
// shortened. Tunable, not derived.
const ShelfMergeToleranceMm = 30.0

// mergeShelvesAroundPost runs once, at resize commit. Shortening a post
// exposes a gap above and/or below it; shelves in the two adjacent sections
// that fall inside the gap either merge with a matching partner on the other
// side or extend alone to span both sections.
func (s *Store) mergeShelvesAroundPost(postIndex int) {
	post := model.FindShape(s.shapes, model.PostID(postIndex))
	if post == nil {
		return
	}

	bounds := layout.SectionBoundaries(s.cfg)
	left, right := postIndex, postIndex+1
	if right >= len(bounds) {
		return
	}
	spanStart := s.origin.X + bounds[left].Start
	spanEnd := s.origin.X + bounds[right].End

	innerTop := s.origin.Y + layout.InnerTop(s.cfg)
	innerBottom := s.origin.Y + layout.InnerBottom(s.cfg)

	// The exposed vertical ranges. A full-span post exposes nothing.
	type gap struct{ top, bottom float64 }
	var gaps []gap
	if post.Y > innerTop {
		gaps = append(gaps, gap{innerTop, post.Y})
	}
	if post.Y+post.H < innerBottom {
		gaps = append(gaps, gap{post.Y + post.H, innerBottom})
	}
	if len(gaps) == 0 {
		return
	}

	inGap := func(sh *model.Shape) bool {
		center := sh.Y + sh.H/2
		for _, g := range gaps {
			if center >= g.top && center <= g.bottom {
				return true
			}
		}
		return false
	}

	leftShelves := s.shelvesInSection(left)
	rightShelves := s.shelvesInSection(right)

	merged := make(map[string]bool) // right-side shelves consumed by a merge

	for _, ls := range leftShelves {
		if !inGap(ls) {
			continue
		}
		// Look for a partner on the other side within tolerance.
		var partner *model.Shape
		for _, rs := range rightShelves {
			if merged[rs.ID] || !inGap(rs) {
				continue
			}
			d := (ls.Y + ls.H/2) - (rs.Y + rs.H/2)
			if d < 0 {
				d = -d
			}
			if d <= ShelfMergeToleranceMm {
				partner = rs
				break
			}
		}

		ls.X = spanStart
		ls.W = spanEnd - spanStart
		if partner != nil {
			merged[partner.ID] = true
		}
	}

	// Unmatched right-side shelves in the gap extend alone as well.
	for _, rs := range rightShelves {
		if merged[rs.ID] || !inGap(rs) {
			continue
		}
		rs.X = spanStart
		rs.W = spanEnd - spanStart
	}

	if len(merged) > 0 {
		kept := s.shapes[:0]
		for i := range s.shapes {
			if !merged[s.shapes[i].ID] {
				kept = append(kept, s.shapes[i])
			}
		}
		s.shapes = kept
	}
}

// shelvesInSection returns pointers to the live shelf shapes of a section,
// in index order.
func (s *Store) shelvesInSection(si int) []*model.Shape {
	var out []*model.Shape
	for i := range s.shapes {
		role, ok := model.ParseID(s.shapes[i].ID)
		if ok && role.Kind == model.RoleShelf && role.Section == si {
			out = append(out, &s.shapes[i])
		}
	}
	return out
}
