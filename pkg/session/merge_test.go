package session

import (
	"math"
	"testing"

	"github.com/plankworks/cabd/pkg/geometry"
	"github.com/plankworks/cabd/pkg/model"
)

// shelfStore builds a one-post store with explicit shelf positions on both
// sides of the post.
func shelfStore(leftPct, rightPct []float64) *Store {
	cfg := model.DefaultConfig()
	cfg.Sections = []model.Section{
		{Type: model.SectionShelves, ShelfPositions: leftPct},
		{Type: model.SectionShelves, ShelfPositions: rightPct},
	}
	return New(cfg, geometry.Point{})
}

// shortenPost drags the post's bottom edge up to the given Y and commits.
func shortenPost(s *Store, toY float64) {
	s.SetMode(ModeResize)
	s.OnPointerDown(geometry.Point{X: 1200, Y: 2070})
	s.OnPointerMove(geometry.Point{X: 1200, Y: toY})
	s.OnPointerUp(geometry.Point{X: 1200, Y: toY})
}

func TestResizeMergesAlignedShelves(t *testing.T) {
	// Both sections carry a shelf at 50%: centers at 1050, well below the
	// shortened post's new bottom.
	s := shelfStore([]float64{50}, []float64{50})

	shortenPost(s, 900)

	left := model.FindShape(s.Shapes(), model.ShelfID(0, 0))
	if left == nil {
		t.Fatal("left shelf missing after merge")
	}
	// The merged shelf spans both sections, side panel to side panel.
	if math.Abs(left.X-18) > 1e-9 || math.Abs(left.W-2364) > 1e-9 {
		t.Errorf("merged shelf spans [%v, %v], want [18, 2382]", left.X, left.X+left.W)
	}
	if model.FindShape(s.Shapes(), model.ShelfID(1, 0)) != nil {
		t.Error("the partner shelf should be consumed by the merge")
	}
	if s.History().Len() != 2 {
		t.Errorf("history len = %d, want 2 (initial + resize)", s.History().Len())
	}
}

func TestResizeExtendsUnmatchedShelves(t *testing.T) {
	// Shelves far apart vertically: both in the gap, neither merges, both
	// extend to the full span.
	s := shelfStore([]float64{70}, []float64{90})

	shortenPost(s, 900)

	for _, id := range []string{model.ShelfID(0, 0), model.ShelfID(1, 0)} {
		sh := model.FindShape(s.Shapes(), id)
		if sh == nil {
			t.Fatalf("%s missing; unmatched shelves must extend, not vanish", id)
		}
		if math.Abs(sh.X-18) > 1e-9 || math.Abs(sh.W-2364) > 1e-9 {
			t.Errorf("%s spans [%v, %v], want full inner span", id, sh.X, sh.X+sh.W)
		}
	}
}

func TestResizeLeavesShelvesOutsideGapAlone(t *testing.T) {
	// Shelves at 10% sit above the shortened post's remaining body, outside
	// the exposed gap, so nothing changes.
	s := shelfStore([]float64{10}, []float64{10})

	shortenPost(s, 900)

	left := model.FindShape(s.Shapes(), model.ShelfID(0, 0))
	right := model.FindShape(s.Shapes(), model.ShelfID(1, 0))
	if left == nil || right == nil {
		t.Fatal("shelves outside the gap must survive untouched")
	}
	if math.Abs(left.W-1173) > 1e-9 {
		t.Errorf("left shelf width = %v, want original section width 1173", left.W)
	}
	if math.Abs(right.X-1209) > 1e-9 {
		t.Errorf("right shelf X = %v, want original section start 1209", right.X)
	}
}

func TestResizeNearShelfFaceSnaps(t *testing.T) {
	// A shelf at 50% has its top face at 1041. Dropping the post's bottom
	// edge within the snap tolerance pulls it onto the face.
	s := shelfStore([]float64{50}, nil)

	s.SetMode(ModeResize)
	s.OnPointerDown(geometry.Point{X: 1200, Y: 2070})
	s.OnPointerMove(geometry.Point{X: 1200, Y: 1046})

	post := model.FindShape(s.Shapes(), model.PostID(0))
	bottom := post.Y + post.H
	if math.Abs(bottom-1041) > 1e-9 {
		t.Errorf("post bottom = %v, want snapped to shelf face 1041", bottom)
	}
}

func TestFullHeightResizeDoesNotMerge(t *testing.T) {
	s := shelfStore([]float64{50}, []float64{50})

	// Gesture that barely moves: the post stays full height, no gap opens.
	s.SetMode(ModeResize)
	s.OnPointerDown(geometry.Point{X: 1200, Y: 2070})
	s.OnPointerMove(geometry.Point{X: 1200, Y: 2082})
	s.OnPointerUp(geometry.Point{X: 1200, Y: 2082})

	if model.FindShape(s.Shapes(), model.ShelfID(1, 0)) == nil {
		t.Error("full-height post must not trigger a merge")
	}
	left := model.FindShape(s.Shapes(), model.ShelfID(0, 0))
	if math.Abs(left.W-1173) > 1e-9 {
		t.Errorf("left shelf width = %v, want unchanged 1173", left.W)
	}
}
