package layout

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/plankworks/cabd/pkg/geometry"
	"github.com/plankworks/cabd/pkg/model"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestGenerateDeterministic(t *testing.T) {
	cfg := model.DefaultConfig()
	origin := geometry.Point{X: 40, Y: 60}

	a := Generate(cfg, origin)
	b := Generate(cfg, origin)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same config should generate identical shapes, IDs included")
	}
}

func TestPostCentersEvenSpacing(t *testing.T) {
	cfg := model.DefaultConfig() // 2400 wide, t=18, one post
	got := PostCenters(cfg)
	if len(got) != 1 {
		t.Fatalf("got %d centers, want 1", len(got))
	}
	if !almostEqual(got[0], 1200) {
		t.Errorf("center = %v, want 1200", got[0])
	}

	cfg.CenterPostCount = 2
	got = PostCenters(cfg)
	// inner = 2364, spaced at 1/3 and 2/3 from the left panel.
	want := []float64{18 + 2364.0/3, 18 + 2*2364.0/3}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("center %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPostCentersExplicitSortedAndClamped(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.CenterPostCount = 2
	cfg.CenterPostPositions = []float64{2600, 5} // out of order after clamping too

	got := PostCenters(cfg)
	if len(got) != 2 {
		t.Fatalf("got %d centers, want 2", len(got))
	}
	lo := 18.0 + 9.0
	hi := 2400.0 - 18 - 9
	if !almostEqual(got[0], lo) || !almostEqual(got[1], hi) {
		t.Errorf("centers = %v, want [%v %v]", got, lo, hi)
	}
	if got[0] > got[1] {
		t.Error("explicit centers must come back sorted")
	}
}

func TestSectionBoundaries(t *testing.T) {
	cfg := model.DefaultConfig()
	got := SectionBoundaries(cfg)
	want := []SectionBoundary{
		{Start: 18, End: 1191},
		{Start: 1209, End: 2382},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d boundaries, want %d", len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i].Start, want[i].Start) || !almostEqual(got[i].End, want[i].End) {
			t.Errorf("boundary %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	cfg.CenterPostCount = 0
	got = SectionBoundaries(cfg)
	if len(got) != 1 || !almostEqual(got[0].Start, 18) || !almostEqual(got[0].End, 2382) {
		t.Errorf("no posts: boundaries = %+v, want single inner interval", got)
	}
}

func TestInnerTopAndBottom(t *testing.T) {
	cfg := model.DefaultConfig()
	if !almostEqual(InnerTop(cfg), 18) {
		t.Errorf("InnerTop = %v, want 18", InnerTop(cfg))
	}
	if !almostEqual(InnerBottom(cfg), 2100-18) {
		t.Errorf("InnerBottom = %v, want 2082", InnerBottom(cfg))
	}

	cfg.LoftEnabled = true
	cfg.LoftHeightMm = 400
	cfg.SkirtingEnabled = true
	cfg.SkirtingHeightMm = 100
	if !almostEqual(InnerTop(cfg), 18+400+18) {
		t.Errorf("loft InnerTop = %v, want 436", InnerTop(cfg))
	}
	if !almostEqual(InnerBottom(cfg), 2100-18-100) {
		t.Errorf("skirting InnerBottom = %v, want 1982", InnerBottom(cfg))
	}
}

func TestShelfYPositionsExplicit(t *testing.T) {
	cfg := model.DefaultConfig()
	sec := model.Section{Type: model.SectionShelves, ShelfPositions: []float64{25, 50, 75}}

	top := InnerTop(cfg)
	bottom := InnerBottom(cfg)
	got := ShelfYPositions(cfg, sec)
	if len(got) != 3 {
		t.Fatalf("got %d shelves, want 3", len(got))
	}
	for i, pct := range []float64{25, 50, 75} {
		want := top + (bottom-top)*pct/100
		if !almostEqual(got[i], want) {
			t.Errorf("shelf %d at %v, want %v", i, got[i], want)
		}
	}
}

func TestGenerateShapeIDsAndFlushPanels(t *testing.T) {
	cfg := model.DefaultConfig()
	shapes := Generate(cfg, geometry.Point{})
	byID := map[string]model.Shape{}
	for _, s := range shapes {
		if _, dup := byID[s.ID]; dup {
			t.Errorf("duplicate shape ID %q", s.ID)
		}
		byID[s.ID] = s
	}

	for _, id := range []string{"panel-left", "panel-right", "panel-top", "panel-bottom", "back-0", "back-1", "post-0", "dim-width", "dim-height"} {
		if _, ok := byID[id]; !ok {
			t.Errorf("missing shape %q", id)
		}
	}

	// Panels sit flush: top spans exactly between the side panels.
	left := byID["panel-left"]
	right := byID["panel-right"]
	top := byID["panel-top"]
	if !almostEqual(top.X, left.X+left.W) {
		t.Errorf("top panel starts at %v, want flush against left panel at %v", top.X, left.X+left.W)
	}
	if !almostEqual(top.X+top.W, right.X) {
		t.Errorf("top panel ends at %v, want flush against right panel at %v", top.X+top.W, right.X)
	}

	// The long-hang section carries a rod, the shelves section its shelves.
	if _, ok := byID["rod-0"]; !ok {
		t.Error("long_hang section should have a hang rod")
	}
	for i := 0; i < 4; i++ {
		if _, ok := byID[model.ShelfID(1, i)]; !ok {
			t.Errorf("missing shelf-1-%d", i)
		}
	}
}

func TestGenerateDisabledSidesBecomeMarkers(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Panels.Left = false
	cfg.Panels.Back = false

	shapes := Generate(cfg, geometry.Point{})

	marker := model.FindShape(shapes, model.MarkerID(model.SideLeft))
	if marker == nil || !marker.Disabled {
		t.Fatal("disabled left side should produce a disabled marker")
	}
	if model.FindShape(shapes, model.PanelID(model.SideLeft)) != nil {
		t.Error("disabled left side should not produce a panel shape")
	}
	if model.FindShape(shapes, model.BackPanelID(0)) != nil {
		t.Error("disabled back should not produce back segments")
	}
	if model.FindShape(shapes, model.MarkerID(model.SideBack)) == nil {
		t.Error("disabled back should produce a marker")
	}
}

func TestGenerateOriginOffset(t *testing.T) {
	cfg := model.DefaultConfig()
	at0 := Generate(cfg, geometry.Point{})
	at1 := Generate(cfg, geometry.Point{X: 100, Y: 200})

	a := model.FindShape(at0, "panel-left")
	b := model.FindShape(at1, "panel-left")
	if !almostEqual(b.X-a.X, 100) || !almostEqual(b.Y-a.Y, 200) {
		t.Errorf("origin offset not applied: delta = (%v,%v)", b.X-a.X, b.Y-a.Y)
	}
}

func TestGenerateUnknownArchetypeFallsBack(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Archetype = "sofa"

	shapes := Generate(cfg, geometry.Point{})
	if model.FindShape(shapes, "panel-left") == nil {
		t.Error("fallback outline should still have side panels")
	}
	if model.FindShape(shapes, "dim-width") == nil {
		t.Error("fallback outline should still be dimensioned")
	}
	if model.FindShape(shapes, "post-0") != nil {
		t.Error("fallback outline should not place posts")
	}
}

func TestGenerateDrawerUnitDefaults(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Archetype = model.ArchetypeDrawerUnit
	cfg.CenterPostCount = 0
	cfg.Sections = nil

	shapes := Generate(cfg, geometry.Point{})
	for i := 0; i < 3; i++ {
		if model.FindShape(shapes, fmt.Sprintf("drawer-0-%d", i)) == nil {
			t.Errorf("drawer unit should synthesize drawer-0-%d", i)
		}
	}
}
