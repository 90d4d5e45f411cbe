package hittest

import (
	"testing"

	"github.com/plankworks/cabd/pkg/geometry"
	"github.com/plankworks/cabd/pkg/layout"
	"github.com/plankworks/cabd/pkg/model"
)

func TestResolveBands(t *testing.T) {
	cfg := model.DefaultConfig() // 2400x2100, t=18, one post at 1200
	shapes := layout.Generate(cfg, geometry.Point{})

	tests := []struct {
		name string
		p    geometry.Point
		want Target
	}{
		{"outside", geometry.Point{X: -5, Y: 100}, Target{Kind: TargetOutside}},
		{"left band", geometry.Point{X: 10, Y: 1000}, Target{Kind: TargetPanel, Side: model.SideLeft, ShapeID: "panel-left"}},
		{"right band", geometry.Point{X: 2395, Y: 1000}, Target{Kind: TargetPanel, Side: model.SideRight, ShapeID: "panel-right"}},
		{"top band", geometry.Point{X: 1000, Y: 10}, Target{Kind: TargetPanel, Side: model.SideTop, ShapeID: "panel-top"}},
		{"bottom band", geometry.Point{X: 1000, Y: 2090}, Target{Kind: TargetPanel, Side: model.SideBottom, ShapeID: "panel-bottom"}},
		{"post band", geometry.Point{X: 1205, Y: 1000}, Target{Kind: TargetCenterPost, PostIndex: 0, ShapeID: "post-0"}},
		{"open section", geometry.Point{X: 600, Y: 600}, Target{Kind: TargetSection, SectionIndex: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.p, &cfg, shapes, geometry.Point{})
			if got != tt.want {
				t.Errorf("Resolve(%v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestResolveCornerPrefersSidePanel(t *testing.T) {
	cfg := model.DefaultConfig()
	shapes := layout.Generate(cfg, geometry.Point{})

	// The top-left corner lies in both the left and the top band; the fixed
	// resolution order awards it to the left side.
	got := Resolve(geometry.Point{X: 10, Y: 10}, &cfg, shapes, geometry.Point{})
	if got.Kind != TargetPanel || got.Side != model.SideLeft {
		t.Errorf("corner resolved to %+v, want left panel", got)
	}
}

func TestResolveShelf(t *testing.T) {
	cfg := model.DefaultConfig() // section 1 has 4 evenly spaced shelves
	shapes := layout.Generate(cfg, geometry.Point{})

	sh := model.FindShape(shapes, model.ShelfID(1, 0))
	if sh == nil {
		t.Fatal("expected shelf-1-0 in generated shapes")
	}
	p := geometry.Point{X: sh.X + sh.W/2, Y: sh.Y + sh.H/2}

	got := Resolve(p, &cfg, shapes, geometry.Point{})
	if got.Kind != TargetShelf || got.SectionIndex != 1 || got.ShelfIndex != 0 {
		t.Errorf("Resolve on shelf = %+v, want shelf 1.0", got)
	}
	if got.ShapeID != sh.ID {
		t.Errorf("ShapeID = %q, want %q", got.ShapeID, sh.ID)
	}
}

func TestResolveWithOrigin(t *testing.T) {
	cfg := model.DefaultConfig()
	origin := geometry.Point{X: 500, Y: 700}
	shapes := layout.Generate(cfg, origin)

	got := Resolve(geometry.Point{X: 510, Y: 1700}, &cfg, shapes, origin)
	if got.Kind != TargetPanel || got.Side != model.SideLeft {
		t.Errorf("origin-offset resolve = %+v, want left panel", got)
	}
	if got2 := Resolve(geometry.Point{X: 10, Y: 10}, &cfg, shapes, origin); got2.Kind != TargetOutside {
		t.Errorf("point before origin should be outside, got %+v", got2)
	}
}

func TestResolveNilConfig(t *testing.T) {
	got := Resolve(geometry.Point{X: 100, Y: 100}, nil, nil, geometry.Point{})
	if got.Kind != TargetEmpty {
		t.Errorf("nil config should resolve empty, got %+v", got)
	}
}

func TestHitTestShapesTopmostWins(t *testing.T) {
	shapes := []model.Shape{
		{ID: "under", Kind: model.ShapeRect, X: 0, Y: 0, W: 100, H: 100},
		{ID: "over", Kind: model.ShapeRect, X: 50, Y: 50, W: 100, H: 100},
	}

	got, ok := HitTestShapes(geometry.Point{X: 75, Y: 75}, shapes, 0)
	if !ok || got.ID != "over" {
		t.Errorf("overlap hit = %v (%v), want the later shape", got.ID, ok)
	}

	got, ok = HitTestShapes(geometry.Point{X: 10, Y: 10}, shapes, 0)
	if !ok || got.ID != "under" {
		t.Errorf("non-overlap hit = %v (%v), want the under shape", got.ID, ok)
	}

	if _, ok := HitTestShapes(geometry.Point{X: 500, Y: 500}, shapes, 0); ok {
		t.Error("miss should report no hit")
	}
}

func TestHitTestShapesLineReach(t *testing.T) {
	shapes := []model.Shape{
		{ID: "rod", Kind: model.ShapeLine, X1: 0, Y1: 100, X2: 200, Y2: 100, Thickness: 25},
	}

	// Within tolerance + half thickness.
	if _, ok := HitTestShapes(geometry.Point{X: 100, Y: 114}, shapes, 4); !ok {
		t.Error("point within the line's reach should hit")
	}
	if _, ok := HitTestShapes(geometry.Point{X: 100, Y: 120}, shapes, 4); ok {
		t.Error("point beyond the line's reach should miss")
	}
}
