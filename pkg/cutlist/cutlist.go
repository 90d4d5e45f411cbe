// Package cutlist derives the production cutting list from a ModuleConfig.
// It clamps and validates its input independently of the shape generator —
// the two transforms must agree on geometry, but cutlist logic (grouping,
// gaddi, sheet-fit) evolves separately from rendering.
package cutlist

import (
	"math"
	"sort"

	"github.com/plankworks/cabd/pkg/model"
)

// FitsInSheet reports whether a panel fits the standard raw sheet in either
// orientation. Advisory: a false value marks a row but never removes it.
func FitsInSheet(w, h float64) bool {
	return (w <= model.SheetWidthMm && h <= model.SheetHeightMm) ||
		(h <= model.SheetWidthMm && w <= model.SheetHeightMm)
}

// GeneratePanels derives the full cutting list for a config. Pure and total;
// structurally impossible requests yield fewer rows, never an error.
func GeneratePanels(cfg model.ModuleConfig) []model.CutlistPanel {
	cfg = cfg.Clamped()

	b := &builder{cfg: cfg}
	b.sides()
	b.backPanels()
	b.centerPosts()
	b.loftAndSkirting()
	b.interiors()
	b.shutters()
	return b.grouped()
}

type builder struct {
	cfg    model.ModuleConfig
	panels []model.CutlistPanel
}

func (b *builder) add(name string, w, h, t float64, qty int, role model.PanelRole, material string) {
	if qty <= 0 || w <= 0 || h <= 0 {
		return
	}
	w = math.Round(w)
	h = math.Round(h)
	b.panels = append(b.panels, model.CutlistPanel{
		Name:        name,
		WidthMm:     w,
		HeightMm:    h,
		ThicknessMm: t,
		Quantity:    qty,
		Role:        role,
		Material:    material,
		Gaddi:       role != model.RoleBack,
		FitsInSheet: FitsInSheet(w, h),
	})
}

func (b *builder) sides() {
	c := b.cfg
	t := c.CarcassThicknessMm
	if c.Panels.Left {
		b.add("Left Side", c.DepthMm, c.HeightMm, t, 1, model.RoleCarcass, c.CarcassMaterial)
	}
	if c.Panels.Right {
		b.add("Right Side", c.DepthMm, c.HeightMm, t, 1, model.RoleCarcass, c.CarcassMaterial)
	}
	if c.Panels.Top {
		b.add("Top", c.WidthMm-2*t, c.DepthMm, t, 1, model.RoleCarcass, c.CarcassMaterial)
	}
	if c.Panels.Bottom {
		b.add("Bottom", c.WidthMm-2*t, c.DepthMm, t, 1, model.RoleCarcass, c.CarcassMaterial)
	}
}

// backPanels subdivides the back into one piece per post gap. The available
// width pool is the module width minus the edge deduction on each enabled
// side; explicit post positions give the piece widths directly, otherwise the
// pool divides evenly.
func (b *builder) backPanels() {
	c := b.cfg
	if !c.Panels.Back {
		return
	}

	leftDed, rightDed := 0.0, 0.0
	if c.Panels.Left {
		leftDed = c.BackEdgeDeductionMm
	}
	if c.Panels.Right {
		rightDed = c.BackEdgeDeductionMm
	}
	topDed, bottomDed := 0.0, 0.0
	if c.Panels.Top {
		topDed = c.BackEdgeDeductionMm
	}
	if c.Panels.Bottom {
		bottomDed = c.BackEdgeDeductionMm
	}

	height := c.HeightMm - topDed - bottomDed
	pool := c.WidthMm - leftDed - rightDed
	if pool <= 0 || height <= 0 {
		return
	}

	pieces := c.CenterPostCount + 1
	if len(c.CenterPostPositions) == c.CenterPostCount && c.CenterPostCount > 0 {
		// Piece widths are the gaps between sorted positions, measured
		// within the deducted pool.
		pos := make([]float64, len(c.CenterPostPositions))
		copy(pos, c.CenterPostPositions)
		sort.Float64s(pos)

		prev := leftDed
		for _, p := range pos {
			b.add("Back Panel", p-prev, height, c.BackThicknessMm, 1, model.RoleBack, c.BackMaterial)
			prev = p
		}
		b.add("Back Panel", c.WidthMm-rightDed-prev, height, c.BackThicknessMm, 1, model.RoleBack, c.BackMaterial)
		return
	}

	each := math.Round(pool / float64(pieces))
	b.add("Back Panel", each, height, c.BackThicknessMm, pieces, model.RoleBack, c.BackMaterial)
}

func (b *builder) centerPosts() {
	c := b.cfg
	if c.CenterPostCount == 0 {
		return
	}
	h := b.innerHeight()
	b.add("Center Post", c.DepthMm, h, c.CarcassThicknessMm, c.CenterPostCount, model.RolePartition, c.CarcassMaterial)
}

// innerHeight is the vertical span of the usable interior, matching the
// shape generator's InnerTop/InnerBottom without depending on it.
func (b *builder) innerHeight() float64 {
	c := b.cfg
	h := c.HeightMm - 2*c.CarcassThicknessMm
	if c.LoftEnabled && c.LoftHeightMm > 0 {
		h -= c.LoftHeightMm + c.CarcassThicknessMm
	}
	if c.SkirtingEnabled && c.SkirtingHeightMm > 0 {
		h -= c.SkirtingHeightMm
	}
	return h
}

func (b *builder) loftAndSkirting() {
	c := b.cfg
	t := c.CarcassThicknessMm
	if c.LoftEnabled && c.LoftHeightMm > 0 {
		b.add("Loft Shelf", c.WidthMm-2*t, c.DepthMm, t, 1, model.RoleCarcass, c.CarcassMaterial)
	}
	if c.SkirtingEnabled && c.SkirtingHeightMm > 0 {
		b.add("Skirting", c.WidthMm-2*t, c.SkirtingHeightMm, t, 1, model.RoleTrim, c.CarcassMaterial)
	}
}

// sectionWidths mirrors the generator's section intervals: explicit post
// positions give the gaps, otherwise the inner width divides evenly.
func (b *builder) sectionWidths() []float64 {
	c := b.cfg
	t := c.CarcassThicknessMm
	inner := c.WidthMm - 2*t
	n := c.CenterPostCount
	if n == 0 {
		return []float64{inner}
	}

	if len(c.CenterPostPositions) == n {
		pos := make([]float64, n)
		copy(pos, c.CenterPostPositions)
		sort.Float64s(pos)

		widths := make([]float64, 0, n+1)
		prev := t
		for _, p := range pos {
			widths = append(widths, p-t/2-prev)
			prev = p + t/2
		}
		widths = append(widths, c.WidthMm-t-prev)
		return widths
	}

	widths := make([]float64, n+1)
	each := (inner - float64(n)*t) / float64(n+1)
	for i := range widths {
		widths[i] = each
	}
	return widths
}

func (b *builder) interiors() {
	c := b.cfg
	t := c.CarcassThicknessMm
	shelfDepth := c.DepthMm - c.ShelfFrontDeductionMm - c.ShelfBackDeductionMm
	innerH := b.innerHeight()

	for i, w := range b.sectionWidths() {
		if i >= len(c.Sections) || w <= 0 {
			continue
		}
		sec := c.Sections[i]

		switch sec.Type {
		case model.SectionDrawers:
			n := sec.DrawerCount
			if n <= 0 {
				n = 3
			}
			b.add("Drawer Front", w, innerH/float64(n), t, n, model.RoleDrawerPart, c.CarcassMaterial)
		default:
			count := sec.ShelfCount
			if len(sec.ShelfPositions) > 0 {
				count = len(sec.ShelfPositions)
			}
			b.add("Shelf", w, shelfDepth, t, count, model.RoleShelfPanel, c.CarcassMaterial)
		}
	}
}

func (b *builder) shutters() {
	c := b.cfg
	if !c.ShuttersEnabled {
		return
	}
	n := c.ShutterCount
	if n <= 0 {
		n = c.CenterPostCount + 1
	}
	h := c.HeightMm
	if c.SkirtingEnabled {
		h -= c.SkirtingHeightMm
	}
	b.add("Shutter", c.WidthMm/float64(n), h, c.CarcassThicknessMm, n, model.RoleShutter, c.ShutterMaterial)
}

// grouped collapses structurally identical rows into one with an aggregated
// quantity. Human-facing cutlists do not enumerate duplicates.
func (b *builder) grouped() []model.CutlistPanel {
	type key struct {
		name     string
		w, h, t  float64
		material string
	}

	order := make([]key, 0, len(b.panels))
	byKey := make(map[key]*model.CutlistPanel)

	for _, p := range b.panels {
		k := key{p.Name, p.WidthMm, p.HeightMm, p.ThicknessMm, p.Material}
		if existing, ok := byKey[k]; ok {
			existing.Quantity += p.Quantity
			continue
		}
		cp := p
		byKey[k] = &cp
		order = append(order, k)
	}

	out := make([]model.CutlistPanel, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	return out
}
