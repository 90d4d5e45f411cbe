package model

// Standard raw sheet size the cutlist is validated against.
const (
	SheetWidthMm  = 1200.0
	SheetHeightMm = 2400.0
)

// PanelRole tags what a cutlist row is for.
type PanelRole string

const (
	RoleCarcass     PanelRole = "carcass"
	RoleBack        PanelRole = "back"
	RolePartition   PanelRole = "partition"
	RoleShelfPanel  PanelRole = "shelf"
	RoleShutter     PanelRole = "shutter"
	RoleDrawerPart  PanelRole = "drawer"
	RoleTrim        PanelRole = "trim"
)

// CutlistPanel is one row of the production cutting list. Rows are derived
// fresh on every request and never mutated; structurally identical panels are
// collapsed into a single row with an aggregated quantity.
type CutlistPanel struct {
	Name        string    `json:"name"`
	WidthMm     float64   `json:"width_mm"`
	HeightMm    float64   `json:"height_mm"`
	ThicknessMm float64   `json:"thickness_mm"`
	Quantity    int       `json:"quantity"`
	Role        PanelRole `json:"role"`
	Material    string    `json:"material,omitempty"`
	// Gaddi marks panels that get the padding/finish treatment. Back panels
	// default to false, everything else to true.
	Gaddi       bool `json:"gaddi"`
	FitsInSheet bool `json:"fits_in_sheet"`
}
