package layout

import (
	"fmt"

	"github.com/plankworks/cabd/pkg/geometry"
	"github.com/plankworks/cabd/pkg/model"
)

// Fill identifiers the renderer maps to actual colors. The generator only
// tags intent.
const (
	fillCarcass = "carcass"
	fillBack    = "back"
	fillShelf   = "shelf"
	fillDrawer  = "drawer"
	fillMarker  = "marker"
)

// Generate produces the full shape set for a config, offset by origin.
// It is deterministic and never fails: inputs are clamped via
// ModuleConfig.Clamped and structurally impossible requests degrade to a
// minimal shape set. Shape IDs for structural roles are stable across calls
// with the same config.
func Generate(cfg model.ModuleConfig, origin geometry.Point) []model.Shape {
	cfg = cfg.Clamped()

	g := &generator{cfg: cfg, origin: origin}

	switch cfg.Archetype {
	case model.ArchetypeWardrobe, model.ArchetypeKitchen, model.ArchetypeDrawerUnit, model.ArchetypeBookshelf:
		g.carcass()
		g.interior()
	default:
		g.genericOutline()
	}

	g.dimensions()
	return g.shapes
}

type generator struct {
	cfg    model.ModuleConfig
	origin geometry.Point
	shapes []model.Shape
}

func (g *generator) rect(id string, x, y, w, h float64, fill string) {
	g.shapes = append(g.shapes, model.Shape{
		ID:   id,
		Kind: model.ShapeRect,
		X:    g.origin.X + x,
		Y:    g.origin.Y + y,
		W:    w,
		H:    h,
		Fill: fill,
	})
}

func (g *generator) marker(id string, x, y, w, h float64) {
	g.shapes = append(g.shapes, model.Shape{
		ID:       id,
		Kind:     model.ShapeRect,
		X:        g.origin.X + x,
		Y:        g.origin.Y + y,
		W:        w,
		H:        h,
		Fill:     fillMarker,
		Disabled: true,
	})
}

func (g *generator) line(id string, x1, y1, x2, y2, thickness float64) {
	g.shapes = append(g.shapes, model.Shape{
		ID:        id,
		Kind:      model.ShapeLine,
		X1:        g.origin.X + x1,
		Y1:        g.origin.Y + y1,
		X2:        g.origin.X + x2,
		Y2:        g.origin.Y + y2,
		Thickness: thickness,
	})
}

// carcass places the back segments, the four sides (or their disabled
// markers), the center posts, and the loft/skirting bands. Back segments go
// first so everything else draws over them.
func (g *generator) carcass() {
	c := g.cfg
	t := c.CarcassThicknessMm
	w, h := c.WidthMm, c.HeightMm

	// Back panel, one segment per post gap.
	if c.Panels.Back {
		for i, b := range SectionBoundaries(c) {
			g.rect(model.BackPanelID(i), b.Start, t, b.Width(), InnerBottom(c)-t, fillBack)
		}
	} else {
		g.marker(model.MarkerID(model.SideBack), t, t, w-2*t, h-2*t)
	}

	bottomY := InnerBottom(c)

	if c.Panels.Left {
		g.rect(model.PanelID(model.SideLeft), 0, 0, t, h, fillCarcass)
	} else {
		g.marker(model.MarkerID(model.SideLeft), 0, 0, t, h)
	}
	if c.Panels.Right {
		g.rect(model.PanelID(model.SideRight), w-t, 0, t, h, fillCarcass)
	} else {
		g.marker(model.MarkerID(model.SideRight), w-t, 0, t, h)
	}
	if c.Panels.Top {
		g.rect(model.PanelID(model.SideTop), t, 0, w-2*t, t, fillCarcass)
	} else {
		g.marker(model.MarkerID(model.SideTop), t, 0, w-2*t, t)
	}
	if c.Panels.Bottom {
		g.rect(model.PanelID(model.SideBottom), t, bottomY, w-2*t, t, fillCarcass)
	} else {
		g.marker(model.MarkerID(model.SideBottom), t, bottomY, w-2*t, t)
	}

	if c.LoftEnabled && c.LoftHeightMm > 0 {
		g.rect(model.LoftID, t, t+c.LoftHeightMm, w-2*t, t, fillCarcass)
	}
	if c.SkirtingEnabled && c.SkirtingHeightMm > 0 {
		g.rect(model.SkirtingID, t, h-c.SkirtingHeightMm, w-2*t, c.SkirtingHeightMm, fillCarcass)
	}

	postTop := InnerTop(c)
	for i, cx := range PostCenters(c) {
		g.rect(model.PostID(i), cx-t/2, postTop, t, bottomY-postTop, fillCarcass)
	}
}

// interior fills each section according to its descriptor. Archetypes only
// differ in the default treatment of untyped sections.
func (g *generator) interior() {
	c := g.cfg
	bounds := SectionBoundaries(c)

	for si, b := range bounds {
		sec := g.sectionFor(si)
		if b.Width() <= 0 {
			continue
		}

		switch sec.Type {
		case model.SectionDrawers:
			g.drawers(si, sec, b)
		case model.SectionLongHang, model.SectionShortHang:
			g.hangRod(si, b)
			g.shelves(si, sec, b)
		default:
			g.shelves(si, sec, b)
		}
	}
}

// sectionFor returns the descriptor for section index i, synthesizing a
// default when the config declares fewer sections than post gaps.
func (g *generator) sectionFor(i int) model.Section {
	if i < len(g.cfg.Sections) {
		return g.cfg.Sections[i]
	}
	switch g.cfg.Archetype {
	case model.ArchetypeDrawerUnit:
		return model.Section{Type: model.SectionDrawers, DrawerCount: 3}
	case model.ArchetypeBookshelf:
		return model.Section{Type: model.SectionShelves, ShelfCount: 4}
	default:
		return model.Section{Type: model.SectionOpen}
	}
}

func (g *generator) shelves(si int, sec model.Section, b SectionBoundary) {
	t := g.cfg.CarcassThicknessMm
	for j, y := range ShelfYPositions(g.cfg, sec) {
		g.rect(model.ShelfID(si, j), b.Start, y-t/2, b.Width(), t, fillShelf)
	}
}

// hangRod draws the clothes rail 100mm below the section top.
func (g *generator) hangRod(si int, b SectionBoundary) {
	y := InnerTop(g.cfg) + 100
	if y >= InnerBottom(g.cfg) {
		return
	}
	g.line(fmt.Sprintf("rod-%d", si), b.Start, y, b.End, y, 25)
}

func (g *generator) drawers(si int, sec model.Section, b SectionBoundary) {
	n := sec.DrawerCount
	if n <= 0 {
		n = 3
	}
	top := InnerTop(g.cfg)
	bottom := InnerBottom(g.cfg)
	if bottom <= top {
		return
	}
	pitch := (bottom - top) / float64(n)
	for j := 0; j < n; j++ {
		g.rect(fmt.Sprintf("drawer-%d-%d", si, j), b.Start, top+float64(j)*pitch, b.Width(), pitch, fillDrawer)
	}
}

// genericOutline is the fallback for archetypes this version does not place:
// a renderable outline that still supports selection and dimensioning.
func (g *generator) genericOutline() {
	c := g.cfg
	t := c.CarcassThicknessMm
	g.rect(model.PanelID(model.SideLeft), 0, 0, t, c.HeightMm, fillCarcass)
	g.rect(model.PanelID(model.SideRight), c.WidthMm-t, 0, t, c.HeightMm, fillCarcass)
	g.rect(model.PanelID(model.SideTop), t, 0, c.WidthMm-2*t, t, fillCarcass)
	g.rect(model.PanelID(model.SideBottom), t, c.HeightMm-t, c.WidthMm-2*t, t, fillCarcass)
}

// dimensions emits the overall width and height annotations below and to the
// right of the module.
func (g *generator) dimensions() {
	c := g.cfg
	const offset = 60

	g.shapes = append(g.shapes, model.Shape{
		ID:          model.DimensionID("width"),
		Kind:        model.ShapeDimension,
		X1:          g.origin.X,
		Y1:          g.origin.Y + c.HeightMm + offset,
		X2:          g.origin.X + c.WidthMm,
		Y2:          g.origin.Y + c.HeightMm + offset,
		Label:       fmt.Sprintf("%.0f", c.WidthMm),
		Orientation: "horizontal",
	})
	g.shapes = append(g.shapes, model.Shape{
		ID:          model.DimensionID("height"),
		Kind:        model.ShapeDimension,
		X1:          g.origin.X + c.WidthMm + offset,
		Y1:          g.origin.Y,
		X2:          g.origin.X + c.WidthMm + offset,
		Y2:          g.origin.Y + c.HeightMm,
		Label:       fmt.Sprintf("%.0f", c.HeightMm),
		Orientation: "vertical",
	})
}
