// Package model defines the declarative furniture specification and the
// derived data records shared by the generators, the hit resolver, and the
// interactive session.
package model

// Archetype identifies the kind of furniture unit being configured.
type Archetype string

const (
	ArchetypeWardrobe   Archetype = "wardrobe"
	ArchetypeKitchen    Archetype = "kitchen_base"
	ArchetypeDrawerUnit Archetype = "drawer_unit"
	ArchetypeBookshelf  Archetype = "bookshelf"
)

// IsValid returns true if the archetype is a recognized value.
func (a Archetype) IsValid() bool {
	switch a {
	case ArchetypeWardrobe, ArchetypeKitchen, ArchetypeDrawerUnit, ArchetypeBookshelf:
		return true
	}
	return false
}

// SectionType categorizes the interior fit-out of a section.
type SectionType string

const (
	SectionLongHang  SectionType = "long_hang"
	SectionShortHang SectionType = "short_hang"
	SectionShelves   SectionType = "shelves"
	SectionDrawers   SectionType = "drawers"
	SectionOpen      SectionType = "open"
)

// IsValid returns true if the section type is a recognized value.
func (s SectionType) IsValid() bool {
	switch s {
	case SectionLongHang, SectionShortHang, SectionShelves, SectionDrawers, SectionOpen:
		return true
	}
	return false
}

// Section describes the interior of one horizontal compartment between two
// center posts (or between a post and a carcass side).
type Section struct {
	Type        SectionType `json:"type" yaml:"type"`
	WidthMm     float64     `json:"width_mm,omitempty" yaml:"width_mm,omitempty"` // 0 = auto
	ShelfCount  int         `json:"shelf_count,omitempty" yaml:"shelf_count,omitempty"`
	DrawerCount int         `json:"drawer_count,omitempty" yaml:"drawer_count,omitempty"`
	// ShelfPositions holds explicit shelf placements as percentages (0-100)
	// of the section's inner height, top to bottom. Empty means evenly spaced.
	ShelfPositions []float64 `json:"shelf_positions,omitempty" yaml:"shelf_positions,omitempty"`
	PostsBelow     int       `json:"posts_below,omitempty" yaml:"posts_below,omitempty"`
}

// PanelsEnabled records which carcass sides are present.
type PanelsEnabled struct {
	Top    bool `json:"top" yaml:"top"`
	Bottom bool `json:"bottom" yaml:"bottom"`
	Left   bool `json:"left" yaml:"left"`
	Right  bool `json:"right" yaml:"right"`
	Back   bool `json:"back" yaml:"back"`
}

// AllPanels returns a PanelsEnabled with every side on.
func AllPanels() PanelsEnabled {
	return PanelsEnabled{Top: true, Bottom: true, Left: true, Right: true, Back: true}
}

// ModuleConfig is the declarative specification of one furniture module.
// It is owned by the session store and mutated only by whole-object replace;
// every mutation triggers regeneration of the derived shape set.
type ModuleConfig struct {
	Archetype Archetype `json:"archetype" yaml:"archetype"`

	WidthMm  float64 `json:"width_mm" yaml:"width_mm"`
	HeightMm float64 `json:"height_mm" yaml:"height_mm"`
	DepthMm  float64 `json:"depth_mm" yaml:"depth_mm"`

	CarcassThicknessMm float64 `json:"carcass_thickness_mm" yaml:"carcass_thickness_mm"`
	BackThicknessMm    float64 `json:"back_thickness_mm" yaml:"back_thickness_mm"`

	Panels PanelsEnabled `json:"panels" yaml:"panels"`

	CenterPostCount int `json:"center_post_count" yaml:"center_post_count"`
	// CenterPostPositions holds explicit post center X positions in mm from
	// the module's left outer edge. Empty means evenly spaced.
	CenterPostPositions []float64 `json:"center_post_positions,omitempty" yaml:"center_post_positions,omitempty"`

	Sections []Section `json:"sections,omitempty" yaml:"sections,omitempty"`

	LoftEnabled      bool    `json:"loft_enabled,omitempty" yaml:"loft_enabled,omitempty"`
	LoftHeightMm     float64 `json:"loft_height_mm,omitempty" yaml:"loft_height_mm,omitempty"`
	SkirtingEnabled  bool    `json:"skirting_enabled,omitempty" yaml:"skirting_enabled,omitempty"`
	SkirtingHeightMm float64 `json:"skirting_height_mm,omitempty" yaml:"skirting_height_mm,omitempty"`

	// BackEdgeDeductionMm is subtracted from the back panel once per enabled
	// adjacent side so the panel sits inside the carcass rebate.
	BackEdgeDeductionMm   float64 `json:"back_edge_deduction_mm" yaml:"back_edge_deduction_mm"`
	ShelfFrontDeductionMm float64 `json:"shelf_front_deduction_mm" yaml:"shelf_front_deduction_mm"`
	ShelfBackDeductionMm  float64 `json:"shelf_back_deduction_mm" yaml:"shelf_back_deduction_mm"`

	CarcassMaterial string `json:"carcass_material,omitempty" yaml:"carcass_material,omitempty"`
	BackMaterial    string `json:"back_material,omitempty" yaml:"back_material,omitempty"`
	ShutterMaterial string `json:"shutter_material,omitempty" yaml:"shutter_material,omitempty"`

	ShuttersEnabled bool `json:"shutters_enabled,omitempty" yaml:"shutters_enabled,omitempty"`
	ShutterCount    int  `json:"shutter_count,omitempty" yaml:"shutter_count,omitempty"`
}

// Floor values used when clamping malformed numeric input. The configuration
// panel is allowed to hand us transient garbage while the user types, so the
// generators sanitize rather than reject.
const (
	MinDimensionMm = 100.0
	MinThicknessMm = 6.0
	MaxDimensionMm = 10000.0
)

// Clamped returns a sanitized deep copy safe for the generators: dimensions
// within [MinDimensionMm, MaxDimensionMm], thicknesses floored, counts
// non-negative, deductions non-negative, explicit lists trimmed to their
// declared counts.
func (c ModuleConfig) Clamped() ModuleConfig {
	out := c.Clone()

	out.WidthMm = clampDim(out.WidthMm)
	out.HeightMm = clampDim(out.HeightMm)
	out.DepthMm = clampDim(out.DepthMm)

	if out.CarcassThicknessMm < MinThicknessMm {
		out.CarcassThicknessMm = MinThicknessMm
	}
	if out.BackThicknessMm <= 0 {
		out.BackThicknessMm = MinThicknessMm
	}

	if out.CenterPostCount < 0 {
		out.CenterPostCount = 0
	}
	if len(out.CenterPostPositions) > out.CenterPostCount {
		out.CenterPostPositions = out.CenterPostPositions[:out.CenterPostCount]
	}

	if out.BackEdgeDeductionMm < 0 {
		out.BackEdgeDeductionMm = 0
	}
	if out.ShelfFrontDeductionMm < 0 {
		out.ShelfFrontDeductionMm = 0
	}
	if out.ShelfBackDeductionMm < 0 {
		out.ShelfBackDeductionMm = 0
	}

	if out.LoftHeightMm < 0 {
		out.LoftHeightMm = 0
	}
	if out.SkirtingHeightMm < 0 {
		out.SkirtingHeightMm = 0
	}
	if out.ShutterCount < 0 {
		out.ShutterCount = 0
	}

	for i := range out.Sections {
		s := &out.Sections[i]
		if !s.Type.IsValid() {
			s.Type = SectionOpen
		}
		if s.ShelfCount < 0 {
			s.ShelfCount = 0
		}
		if s.DrawerCount < 0 {
			s.DrawerCount = 0
		}
		if s.WidthMm < 0 {
			s.WidthMm = 0
		}
		for j, p := range s.ShelfPositions {
			if p < 0 {
				s.ShelfPositions[j] = 0
			} else if p > 100 {
				s.ShelfPositions[j] = 100
			}
		}
	}

	return out
}

func clampDim(v float64) float64 {
	if v < MinDimensionMm {
		return MinDimensionMm
	}
	if v > MaxDimensionMm {
		return MaxDimensionMm
	}
	return v
}

// Clone creates a deep copy of the config.
func (c ModuleConfig) Clone() ModuleConfig {
	clone := c
	if c.CenterPostPositions != nil {
		clone.CenterPostPositions = make([]float64, len(c.CenterPostPositions))
		copy(clone.CenterPostPositions, c.CenterPostPositions)
	}
	if c.Sections != nil {
		clone.Sections = make([]Section, len(c.Sections))
		copy(clone.Sections, c.Sections)
		for i, s := range c.Sections {
			if s.ShelfPositions != nil {
				clone.Sections[i].ShelfPositions = make([]float64, len(s.ShelfPositions))
				copy(clone.Sections[i].ShelfPositions, s.ShelfPositions)
			}
		}
	}
	return clone
}

// DefaultConfig returns a two-section wardrobe carcass, the layout users see
// on first launch.
func DefaultConfig() ModuleConfig {
	return ModuleConfig{
		Archetype:             ArchetypeWardrobe,
		WidthMm:               2400,
		HeightMm:              2100,
		DepthMm:               560,
		CarcassThicknessMm:    18,
		BackThicknessMm:       6,
		Panels:                AllPanels(),
		CenterPostCount:       1,
		Sections:              []Section{{Type: SectionLongHang}, {Type: SectionShelves, ShelfCount: 4}},
		BackEdgeDeductionMm:   20,
		ShelfFrontDeductionMm: 20,
		ShelfBackDeductionMm:  10,
		CarcassMaterial:       "PLY-18-BWP",
		BackMaterial:          "MDF-6",
		ShutterMaterial:       "PLY-18-BWP",
	}
}
