package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plankworks/cabd/pkg/model"
)

func TestParseFillsDefaultsAndClamps(t *testing.T) {
	data := []byte(`
archetype: bookshelf
width_mm: 900
height_mm: 1800
carcass_thickness_mm: 2
center_post_count: -3
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Archetype != model.ArchetypeBookshelf {
		t.Errorf("Archetype = %q, want bookshelf", cfg.Archetype)
	}
	if cfg.WidthMm != 900 || cfg.HeightMm != 1800 {
		t.Errorf("dims = %vx%v, want 900x1800", cfg.WidthMm, cfg.HeightMm)
	}
	// Unset fields keep the defaults; bad values clamp.
	if cfg.DepthMm != 560 {
		t.Errorf("DepthMm = %v, want default 560", cfg.DepthMm)
	}
	if cfg.CarcassThicknessMm != model.MinThicknessMm {
		t.Errorf("CarcassThicknessMm = %v, want floored at %v", cfg.CarcassThicknessMm, model.MinThicknessMm)
	}
	if cfg.CenterPostCount != 0 {
		t.Errorf("CenterPostCount = %d, want 0", cfg.CenterPostCount)
	}
}

func TestParseUnknownArchetypeFallsBack(t *testing.T) {
	cfg, err := Parse([]byte("archetype: hovercraft\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Archetype != model.ArchetypeWardrobe {
		t.Errorf("Archetype = %q, want wardrobe fallback", cfg.Archetype)
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("width_mm: [not a number")); err == nil {
		t.Fatal("malformed YAML should error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "module.yaml")

	want := model.DefaultConfig()
	want.CenterPostCount = 2
	want.CenterPostPositions = []float64{800, 1600}
	want.Sections = []model.Section{
		{Type: model.SectionShelves, ShelfPositions: []float64{25, 75}},
		{Type: model.SectionDrawers, DrawerCount: 3},
		{Type: model.SectionOpen},
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.CenterPostCount != 2 || len(got.CenterPostPositions) != 2 {
		t.Errorf("posts = %d/%v, want 2/[800 1600]", got.CenterPostCount, got.CenterPostPositions)
	}
	if len(got.Sections) != 3 || got.Sections[1].Type != model.SectionDrawers {
		t.Errorf("sections did not round-trip: %+v", got.Sections)
	}
	if got.Sections[0].ShelfPositions[1] != 75 {
		t.Errorf("shelf positions did not round-trip: %v", got.Sections[0].ShelfPositions)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back, got error: %v", err)
	}
	if cfg.Archetype != model.ArchetypeWardrobe || cfg.WidthMm != 2400 {
		t.Errorf("fallback config = %+v, want the default wardrobe", cfg)
	}

	// A present but malformed file is an error, not a silent default.
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("{{{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrDefault(bad); err == nil {
		t.Error("malformed existing file should error")
	}
}
