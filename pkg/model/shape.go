package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ShapeKind tags the variant held by a Shape.
type ShapeKind string

const (
	ShapeRect      ShapeKind = "rect"
	ShapeLine      ShapeKind = "line"
	ShapeDimension ShapeKind = "dimension"
)

// Shape is one 2D primitive on the drawing surface. It is a closed tagged
// union: rect shapes use X/Y/W/H, line and dimension shapes use the endpoint
// fields. Shapes are regenerated wholesale from the config and never patched
// in place, so holding them by value is safe.
type Shape struct {
	ID   string    `json:"id"`
	Kind ShapeKind `json:"kind"`

	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`
	W float64 `json:"w,omitempty"`
	H float64 `json:"h,omitempty"`

	X1 float64 `json:"x1,omitempty"`
	Y1 float64 `json:"y1,omitempty"`
	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`

	Thickness   float64 `json:"thickness,omitempty"`
	Label       string  `json:"label,omitempty"`
	Orientation string  `json:"orientation,omitempty"` // dimensions: "horizontal" or "vertical"
	Fill        string  `json:"fill,omitempty"`
	Disabled    bool    `json:"disabled,omitempty"` // marker for an omitted panel
}

// CloneShapes deep-copies a shape slice. Used for history snapshots and
// gesture rollback.
func CloneShapes(shapes []Shape) []Shape {
	if shapes == nil {
		return nil
	}
	out := make([]Shape, len(shapes))
	copy(out, shapes)
	return out
}

// FindShape returns a pointer into shapes for the given ID, or nil.
func FindShape(shapes []Shape, id string) *Shape {
	for i := range shapes {
		if shapes[i].ID == id {
			return &shapes[i]
		}
	}
	return nil
}

// === STRUCTURAL ROLES ===

// RoleKind classifies what a generated shape stands for structurally.
type RoleKind string

const (
	RolePanel     RoleKind = "panel"      // carcass side
	RoleBackPanel RoleKind = "back"       // one back-panel segment
	RoleCenterPost RoleKind = "post"      // vertical partition
	RoleShelf     RoleKind = "shelf"      // shelf within a section
	RoleLoft      RoleKind = "loft"       // loft divider
	RoleSkirting  RoleKind = "skirting"   // skirting band
	RoleDimension RoleKind = "dimension"  // annotation
	RoleMarker    RoleKind = "marker"     // disabled-panel affordance
	RoleNone      RoleKind = ""
)

// PanelSide names a carcass side.
type PanelSide string

const (
	SideLeft   PanelSide = "left"
	SideRight  PanelSide = "right"
	SideTop    PanelSide = "top"
	SideBottom PanelSide = "bottom"
	SideBack   PanelSide = "back"
)

// Role is the decoded structural meaning of a shape ID. The string ID is the
// externally observable contract (stable across regeneration for unchanged
// config); Role is the parsed form the solver and resolver work with, so ID
// string parsing happens in exactly one place.
type Role struct {
	Kind       RoleKind
	Side       PanelSide // RolePanel and RoleMarker
	Index      int       // post index or back segment index
	Section    int       // RoleShelf: owning section
	ShelfIndex int       // RoleShelf: index within the section
}

// ID builders. These define the observable naming convention; keep them in
// sync with ParseID.

func PanelID(side PanelSide) string       { return "panel-" + string(side) }
func MarkerID(side PanelSide) string      { return "marker-" + string(side) }
func BackPanelID(i int) string            { return fmt.Sprintf("back-%d", i) }
func PostID(i int) string                 { return fmt.Sprintf("post-%d", i) }
func ShelfID(section, i int) string       { return fmt.Sprintf("shelf-%d-%d", section, i) }
func DimensionID(name string) string      { return "dim-" + name }

// LoftID and SkirtingID are fixed singletons.
const (
	LoftID     = "loft"
	SkirtingID = "skirting"
)

// ParseID decodes a shape ID into its structural role. Unknown IDs return
// (Role{Kind: RoleNone}, false).
func ParseID(id string) (Role, bool) {
	switch {
	case id == LoftID:
		return Role{Kind: RoleLoft}, true
	case id == SkirtingID:
		return Role{Kind: RoleSkirting}, true
	case strings.HasPrefix(id, "panel-"):
		return Role{Kind: RolePanel, Side: PanelSide(id[len("panel-"):])}, true
	case strings.HasPrefix(id, "marker-"):
		return Role{Kind: RoleMarker, Side: PanelSide(id[len("marker-"):])}, true
	case strings.HasPrefix(id, "dim-"):
		return Role{Kind: RoleDimension}, true
	case strings.HasPrefix(id, "back-"):
		i, err := strconv.Atoi(id[len("back-"):])
		if err != nil {
			return Role{}, false
		}
		return Role{Kind: RoleBackPanel, Index: i}, true
	case strings.HasPrefix(id, "post-"):
		i, err := strconv.Atoi(id[len("post-"):])
		if err != nil {
			return Role{}, false
		}
		return Role{Kind: RoleCenterPost, Index: i}, true
	case strings.HasPrefix(id, "shelf-"):
		rest := strings.SplitN(id[len("shelf-"):], "-", 2)
		if len(rest) != 2 {
			return Role{}, false
		}
		sec, err1 := strconv.Atoi(rest[0])
		idx, err2 := strconv.Atoi(rest[1])
		if err1 != nil || err2 != nil {
			return Role{}, false
		}
		return Role{Kind: RoleShelf, Section: sec, ShelfIndex: idx}, true
	}
	return Role{}, false
}
