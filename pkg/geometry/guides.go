package geometry

import "math"

// Alignment guide discovery for interactive dragging. The helpers are
// UI-agnostic and deterministic so they can be unit tested and reused across
// frontends.

// GuideOptions controls which guide candidates are considered.
type GuideOptions struct {
	// Threshold is the maximum distance (same units as Rect) at which a
	// guide fires.
	Threshold float64
	Edges     bool
	Centers   bool
}

// Guide describes one discovered alignment between a moving rect and an
// anchor. Orientation is "vertical" or "horizontal"; Kind is "edge" or
// "center". Position is the aligned coordinate; From/To are the guide
// extents for rendering.
type Guide struct {
	Orientation string
	Kind        string
	Position    float64
	From        Point
	To          Point
}

// FindGuides computes the snapped position of a moving rect against a set of
// anchor rects, together with the guides to render. Snapping happens
// independently per axis; the nearest candidate on each axis wins.
func FindGuides(moving Rect, anchors []Rect, opts GuideOptions) (Rect, []Guide) {
	if opts.Threshold <= 0 {
		opts.Threshold = 6
	}

	bestDX, bestDXDist := 0.0, math.Inf(1)
	bestDY, bestDYDist := 0.0, math.Inf(1)
	var bestXGuide, bestYGuide Guide

	mL, mR := moving.X, moving.X+moving.W
	mT, mB := moving.Y, moving.Y+moving.H
	mCX, mCY := moving.X+moving.W/2, moving.Y+moving.H/2

	considerX := func(delta, at float64, kind string, anchor Rect) {
		d := math.Abs(delta)
		if d > opts.Threshold || d >= bestDXDist {
			return
		}
		bestDX, bestDXDist = delta, d
		minY := math.Min(moving.Y, anchor.Y)
		maxY := math.Max(moving.Y+moving.H, anchor.Y+anchor.H)
		bestXGuide = Guide{Orientation: "vertical", Kind: kind, Position: at, From: Point{at, minY}, To: Point{at, maxY}}
	}
	considerY := func(delta, at float64, kind string, anchor Rect) {
		d := math.Abs(delta)
		if d > opts.Threshold || d >= bestDYDist {
			return
		}
		bestDY, bestDYDist = delta, d
		minX := math.Min(moving.X, anchor.X)
		maxX := math.Max(moving.X+moving.W, anchor.X+anchor.W)
		bestYGuide = Guide{Orientation: "horizontal", Kind: kind, Position: at, From: Point{minX, at}, To: Point{maxX, at}}
	}

	for _, a := range anchors {
		aL, aR := a.X, a.X+a.W
		aT, aB := a.Y, a.Y+a.H

		if opts.Edges {
			considerX(mL-aL, aL, "edge", a)
			considerX(mR-aR, aR, "edge", a)
			considerX(mL-aR, aR, "edge", a)
			considerX(mR-aL, aL, "edge", a)
			considerY(mT-aT, aT, "edge", a)
			considerY(mB-aB, aB, "edge", a)
			considerY(mT-aB, aB, "edge", a)
			considerY(mB-aT, aT, "edge", a)
		}
		if opts.Centers {
			considerX(mCX-(a.X+a.W/2), a.X+a.W/2, "center", a)
			considerY(mCY-(a.Y+a.H/2), a.Y+a.H/2, "center", a)
		}
	}

	snapped := moving
	var guides []Guide
	if bestDXDist <= opts.Threshold {
		snapped.X = moving.X - bestDX
		guides = append(guides, bestXGuide)
	}
	if bestDYDist <= opts.Threshold {
		snapped.Y = moving.Y - bestDY
		guides = append(guides, bestYGuide)
	}
	return snapped, guides
}
