// Package layout turns a ModuleConfig into identified 2D primitives. The
// generator is pure and total: malformed numeric input is clamped, unknown
// archetypes degrade to a generic outline, and the same config always yields
// the same shapes with the same IDs.
package layout

import (
	"sort"

	"github.com/plankworks/cabd/pkg/geometry"
	"github.com/plankworks/cabd/pkg/model"
)

// SectionBoundary is the derived interval one section occupies along the
// inner horizontal axis, in module-local mm (0 = left outer edge).
type SectionBoundary struct {
	Start float64
	End   float64
}

// Width returns the interval width.
func (b SectionBoundary) Width() float64 { return b.End - b.Start }

// PostCenters returns the center X of every center post in module-local mm.
// Explicit positions win when present; they are sorted and clamped so a post
// can never overlap a side panel. Otherwise posts are spaced evenly across
// the inner width.
func PostCenters(cfg model.ModuleConfig) []float64 {
	cfg = cfg.Clamped()
	n := cfg.CenterPostCount
	if n == 0 {
		return nil
	}

	t := cfg.CarcassThicknessMm
	lo := t + t/2
	hi := cfg.WidthMm - t - t/2

	if len(cfg.CenterPostPositions) == n {
		out := make([]float64, n)
		copy(out, cfg.CenterPostPositions)
		sort.Float64s(out)
		for i := range out {
			out[i] = geometry.Clamp(out[i], lo, hi)
		}
		return out
	}

	inner := cfg.WidthMm - 2*t
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = t + inner*float64(i+1)/float64(n+1)
	}
	return out
}

// SectionBoundaries returns one interval per gap between consecutive posts,
// or the single full inner interval when there are no posts.
func SectionBoundaries(cfg model.ModuleConfig) []SectionBoundary {
	cfg = cfg.Clamped()
	t := cfg.CarcassThicknessMm
	left := t
	right := cfg.WidthMm - t

	centers := PostCenters(cfg)
	if len(centers) == 0 {
		return []SectionBoundary{{Start: left, End: right}}
	}

	out := make([]SectionBoundary, 0, len(centers)+1)
	start := left
	for _, c := range centers {
		out = append(out, SectionBoundary{Start: start, End: c - t/2})
		start = c + t/2
	}
	out = append(out, SectionBoundary{Start: start, End: right})
	return out
}

// InnerTop returns the Y of the usable interior's top edge in module-local
// mm. A loft compartment pushes the sections down past the loft divider.
func InnerTop(cfg model.ModuleConfig) float64 {
	cfg = cfg.Clamped()
	top := cfg.CarcassThicknessMm
	if cfg.LoftEnabled && cfg.LoftHeightMm > 0 {
		top += cfg.LoftHeightMm + cfg.CarcassThicknessMm
	}
	return top
}

// InnerBottom returns the Y of the usable interior's bottom edge. Skirting
// raises the bottom panel off the floor.
func InnerBottom(cfg model.ModuleConfig) float64 {
	cfg = cfg.Clamped()
	bottom := cfg.HeightMm - cfg.CarcassThicknessMm
	if cfg.SkirtingEnabled && cfg.SkirtingHeightMm > 0 {
		bottom -= cfg.SkirtingHeightMm
	}
	return bottom
}

// ShelfYPositions returns the center Y of every shelf in the given section,
// module-local. Explicit percentage positions are honored; otherwise shelves
// are spaced evenly between the section's top and bottom bounds.
func ShelfYPositions(cfg model.ModuleConfig, sec model.Section) []float64 {
	top := InnerTop(cfg)
	bottom := InnerBottom(cfg)
	if bottom <= top {
		return nil
	}

	if len(sec.ShelfPositions) > 0 {
		out := make([]float64, len(sec.ShelfPositions))
		for i, pct := range sec.ShelfPositions {
			out[i] = top + (bottom-top)*geometry.Clamp(pct, 0, 100)/100
		}
		return out
	}

	n := sec.ShelfCount
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = top + (bottom-top)*float64(i+1)/float64(n+1)
	}
	return out
}

// SectionIndexAt returns the index of the section whose interval contains x,
// or -1 when x falls outside every section (e.g. on a post).
func SectionIndexAt(cfg model.ModuleConfig, x float64) int {
	for i, b := range SectionBoundaries(cfg) {
		if x >= b.Start && x <= b.End {
			return i
		}
	}
	return -1
}
