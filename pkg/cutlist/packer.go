package cutlist

import (
	"sort"

	"github.com/plankworks/cabd/pkg/model"
)

// Sheet planning: place cutlist panels onto standard raw sheets so the shop
// knows how many boards a design consumes. Uses a maximal-rectangles packer
// with a best-area-fit heuristic; rotation is always allowed because carcass
// stock has no grain restriction here.

// DefaultKerfMm is the blade width consumed by each cut.
const DefaultKerfMm = 3.0

// Placement is one panel positioned on a sheet.
type Placement struct {
	Panel   model.CutlistPanel
	X, Y    float64
	Rotated bool
}

// SheetLayout is one raw sheet with its placements.
type SheetLayout struct {
	WidthMm    float64
	HeightMm   float64
	Placements []Placement
}

// Efficiency returns the placed-area fraction of the sheet.
func (s SheetLayout) Efficiency() float64 {
	area := s.WidthMm * s.HeightMm
	if area <= 0 {
		return 0
	}
	var placed float64
	for _, p := range s.Placements {
		placed += p.Panel.WidthMm * p.Panel.HeightMm
	}
	return placed / area
}

// Plan is the result of packing a cutlist onto stock.
type Plan struct {
	Sheets   []SheetLayout
	Unplaced []model.CutlistPanel // panels that fit no sheet (oversize)
}

// PackSheets lays the panels out on standard 1200x2400 sheets. Panels are
// expanded by quantity, sorted largest-first, and packed until none remain.
// Oversize panels land in Unplaced rather than failing the plan.
func PackSheets(panels []model.CutlistPanel, kerf float64) Plan {
	if kerf < 0 {
		kerf = DefaultKerfMm
	}

	var expanded []model.CutlistPanel
	for _, p := range panels {
		for i := 0; i < p.Quantity; i++ {
			cp := p
			cp.Quantity = 1
			expanded = append(expanded, cp)
		}
	}
	sort.SliceStable(expanded, func(i, j int) bool {
		return expanded[i].WidthMm*expanded[i].HeightMm > expanded[j].WidthMm*expanded[j].HeightMm
	})

	plan := Plan{}
	remaining := expanded

	for len(remaining) > 0 {
		sheet := SheetLayout{WidthMm: model.SheetWidthMm, HeightMm: model.SheetHeightMm}
		packer := newPacker(sheet.WidthMm, sheet.HeightMm, kerf)

		var unplaced []model.CutlistPanel
		for _, p := range remaining {
			if ok, x, y, rotated := packer.insert(p.WidthMm, p.HeightMm); ok {
				sheet.Placements = append(sheet.Placements, Placement{Panel: p, X: x, Y: y, Rotated: rotated})
			} else {
				unplaced = append(unplaced, p)
			}
		}

		if len(sheet.Placements) == 0 {
			// Nothing fit an empty sheet: everything left is oversize.
			plan.Unplaced = unplaced
			break
		}
		plan.Sheets = append(plan.Sheets, sheet)
		remaining = unplaced
	}

	return plan
}

type freeRect struct {
	x, y, w, h float64
}

// packer keeps maximal free rectangles and splits all overlapping ones
// around each placement, which leaves larger free areas than guillotine
// splitting alone.
type packer struct {
	free []freeRect
	kerf float64
}

func newPacker(w, h, kerf float64) *packer {
	return &packer{free: []freeRect{{0, 0, w, h}}, kerf: kerf}
}

// insert places a w x h piece using best-area-fit, trying both orientations.
func (p *packer) insert(w, h float64) (ok bool, x, y float64, rotated bool) {
	bestIdx, bestWaste, bestRot := -1, 0.0, false

	try := func(pw, ph float64, rot bool) {
		wk, hk := pw+p.kerf, ph+p.kerf
		for i, r := range p.free {
			if wk <= r.w+0.001 && hk <= r.h+0.001 {
				waste := r.w*r.h - pw*ph
				if bestIdx < 0 || waste < bestWaste {
					bestIdx, bestWaste, bestRot = i, waste, rot
				}
			}
		}
	}
	try(w, h, false)
	if w != h {
		try(h, w, true)
	}

	if bestIdx < 0 {
		return false, 0, 0, false
	}

	chosen := p.free[bestIdx]
	pw, ph := w, h
	if bestRot {
		pw, ph = h, w
	}
	p.split(freeRect{chosen.x, chosen.y, pw + p.kerf, ph + p.kerf})
	return true, chosen.x, chosen.y, bestRot
}

func (p *packer) split(placed freeRect) {
	var next []freeRect
	for _, r := range p.free {
		if !overlaps(r, placed) {
			next = append(next, r)
			continue
		}
		if placed.x > r.x+0.001 {
			next = append(next, freeRect{r.x, r.y, placed.x - r.x, r.h})
		}
		if placed.x+placed.w < r.x+r.w-0.001 {
			next = append(next, freeRect{placed.x + placed.w, r.y, r.x + r.w - placed.x - placed.w, r.h})
		}
		if placed.y > r.y+0.001 {
			next = append(next, freeRect{r.x, r.y, r.w, placed.y - r.y})
		}
		if placed.y+placed.h < r.y+r.h-0.001 {
			next = append(next, freeRect{r.x, placed.y + placed.h, r.w, r.y + r.h - placed.y - placed.h})
		}
	}
	p.free = pruneContained(next)
}

func overlaps(a, b freeRect) bool {
	return a.x < b.x+b.w-0.001 && a.x+a.w > b.x+0.001 &&
		a.y < b.y+b.h-0.001 && a.y+a.h > b.y+0.001
}

func pruneContained(rects []freeRect) []freeRect {
	if len(rects) <= 1 {
		return rects
	}
	kept := make([]freeRect, 0, len(rects))
	for i, a := range rects {
		contained := false
		for j, b := range rects {
			if i != j && b.x <= a.x+0.001 && b.y <= a.y+0.001 &&
				b.x+b.w >= a.x+a.w-0.001 && b.y+b.h >= a.y+a.h-0.001 {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, a)
		}
	}
	return kept
}
