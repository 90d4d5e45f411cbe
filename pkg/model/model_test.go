package model

import "testing"

func TestParseID(t *testing.T) {
	tests := []struct {
		id   string
		want Role
		ok   bool
	}{
		{"panel-left", Role{Kind: RolePanel, Side: SideLeft}, true},
		{"marker-back", Role{Kind: RoleMarker, Side: SideBack}, true},
		{"back-2", Role{Kind: RoleBackPanel, Index: 2}, true},
		{"post-0", Role{Kind: RoleCenterPost, Index: 0}, true},
		{"shelf-1-3", Role{Kind: RoleShelf, Section: 1, ShelfIndex: 3}, true},
		{"dim-width", Role{Kind: RoleDimension}, true},
		{"loft", Role{Kind: RoleLoft}, true},
		{"skirting", Role{Kind: RoleSkirting}, true},
		{"rod-0", Role{}, false},
		{"post-x", Role{}, false},
		{"shelf-1", Role{}, false},
		{"", Role{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := ParseID(tt.id)
			if ok != tt.ok {
				t.Fatalf("ParseID(%q) ok = %v, want %v", tt.id, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseID(%q) = %+v, want %+v", tt.id, got, tt.want)
			}
		})
	}
}

func TestIDBuildersRoundTrip(t *testing.T) {
	ids := []string{
		PanelID(SideTop),
		MarkerID(SideRight),
		BackPanelID(4),
		PostID(1),
		ShelfID(0, 2),
		DimensionID("height"),
	}
	for _, id := range ids {
		if _, ok := ParseID(id); !ok {
			t.Errorf("builder produced unparseable ID %q", id)
		}
	}
}

func TestClampedFloorsAndTrims(t *testing.T) {
	cfg := ModuleConfig{
		Archetype:           ArchetypeWardrobe,
		WidthMm:             -50,
		HeightMm:            99999,
		DepthMm:             0,
		CarcassThicknessMm:  1,
		BackThicknessMm:     -2,
		CenterPostCount:     1,
		CenterPostPositions: []float64{500, 900, 1200},
		BackEdgeDeductionMm: -10,
		Sections: []Section{
			{Type: "garbage", ShelfCount: -2, ShelfPositions: []float64{-5, 150}},
		},
	}

	got := cfg.Clamped()

	if got.WidthMm != MinDimensionMm {
		t.Errorf("WidthMm = %v, want %v", got.WidthMm, MinDimensionMm)
	}
	if got.HeightMm != MaxDimensionMm {
		t.Errorf("HeightMm = %v, want %v", got.HeightMm, MaxDimensionMm)
	}
	if got.CarcassThicknessMm != MinThicknessMm || got.BackThicknessMm != MinThicknessMm {
		t.Errorf("thicknesses = %v/%v, want both %v", got.CarcassThicknessMm, got.BackThicknessMm, MinThicknessMm)
	}
	if len(got.CenterPostPositions) != 1 {
		t.Errorf("positions trimmed to %d, want 1 (declared count)", len(got.CenterPostPositions))
	}
	if got.BackEdgeDeductionMm != 0 {
		t.Errorf("BackEdgeDeductionMm = %v, want 0", got.BackEdgeDeductionMm)
	}
	sec := got.Sections[0]
	if sec.Type != SectionOpen {
		t.Errorf("invalid section type should degrade to open, got %q", sec.Type)
	}
	if sec.ShelfCount != 0 {
		t.Errorf("ShelfCount = %d, want 0", sec.ShelfCount)
	}
	if sec.ShelfPositions[0] != 0 || sec.ShelfPositions[1] != 100 {
		t.Errorf("ShelfPositions = %v, want clamped to [0,100]", sec.ShelfPositions)
	}

	// The receiver must be untouched.
	if cfg.WidthMm != -50 || cfg.Sections[0].ShelfPositions[0] != -5 {
		t.Error("Clamped mutated its receiver")
	}
}

func TestCloneIsDeep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CenterPostPositions = []float64{1200}
	cfg.Sections[1].ShelfPositions = []float64{25, 75}

	clone := cfg.Clone()
	clone.CenterPostPositions[0] = 999
	clone.Sections[1].ShelfPositions[0] = 1

	if cfg.CenterPostPositions[0] != 1200 {
		t.Error("Clone shares CenterPostPositions backing array")
	}
	if cfg.Sections[1].ShelfPositions[0] != 25 {
		t.Error("Clone shares ShelfPositions backing array")
	}
}

func TestFindShape(t *testing.T) {
	shapes := []Shape{{ID: "a"}, {ID: "b"}}
	if sh := FindShape(shapes, "b"); sh == nil || sh.ID != "b" {
		t.Fatalf("FindShape(b) = %v", sh)
	}
	// The pointer aliases the slice so gesture mutation sticks.
	FindShape(shapes, "a").X = 42
	if shapes[0].X != 42 {
		t.Error("FindShape should return a pointer into the slice")
	}
	if FindShape(shapes, "zzz") != nil {
		t.Error("unknown ID should return nil")
	}
}
