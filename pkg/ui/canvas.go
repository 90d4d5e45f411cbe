package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plankworks/cabd/pkg/geometry"
	"github.com/plankworks/cabd/pkg/model"
)

// viewport maps module millimeters to canvas cells and back. Horizontal and
// vertical scales differ because terminal cells are roughly twice as tall as
// they are wide.
type viewport struct {
	bounds geometry.Rect
	sx, sy float64
}

func newViewport(shapes []model.Shape, cols, rows int) viewport {
	var rects []geometry.Rect
	for _, s := range shapes {
		if s.Kind == model.ShapeRect {
			rects = append(rects, geometry.Rect{X: s.X, Y: s.Y, W: s.W, H: s.H})
		}
	}
	b := geometry.BoundingBox(rects)
	v := viewport{bounds: b, sx: 1, sy: 1}
	if b.W > 0 && cols > 0 {
		v.sx = float64(cols) / b.W
	}
	if b.H > 0 && rows > 0 {
		v.sy = float64(rows) / b.H
	}
	return v
}

// toCell converts module mm to a canvas cell.
func (v viewport) toCell(x, y float64) (int, int) {
	return int((x - v.bounds.X) * v.sx), int((y - v.bounds.Y) * v.sy)
}

// toMm converts a canvas cell back to module mm, at the cell's center.
func (v viewport) toMm(cx, cy int) geometry.Point {
	return geometry.Point{
		X: v.bounds.X + (float64(cx)+0.5)/v.sx,
		Y: v.bounds.Y + (float64(cy)+0.5)/v.sy,
	}
}

type cell struct {
	r  rune
	fg lipgloss.Color
}

// renderCanvas draws the shape set into a cols x rows character grid.
// Shapes are painted in slice order, so later shapes win a cell, matching
// the z-order the generator establishes.
func renderCanvas(shapes []model.Shape, selected func(string) bool, cols, rows int) (string, viewport) {
	if cols < 4 || rows < 4 {
		return "", viewport{sx: 1, sy: 1}
	}
	v := newViewport(shapes, cols-1, rows-1)

	grid := make([][]cell, rows)
	for i := range grid {
		grid[i] = make([]cell, cols)
		for j := range grid[i] {
			grid[i][j] = cell{r: ' '}
		}
	}

	put := func(cx, cy int, r rune, fg lipgloss.Color) {
		if cy >= 0 && cy < rows && cx >= 0 && cx < cols {
			grid[cy][cx] = cell{r: r, fg: fg}
		}
	}

	for _, s := range shapes {
		switch s.Kind {
		case model.ShapeRect:
			x0, y0 := v.toCell(s.X, s.Y)
			x1, y1 := v.toCell(s.X+s.W, s.Y+s.H)
			r, fg := rectGlyph(s)
			if selected != nil && selected(s.ID) {
				fg = ColorPrimary
			}
			for cy := y0; cy <= y1; cy++ {
				for cx := x0; cx <= x1; cx++ {
					put(cx, cy, r, fg)
				}
			}
		case model.ShapeLine:
			drawLine(put, v, s.X1, s.Y1, s.X2, s.Y2, ColorCarcass)
		case model.ShapeDimension:
			drawLine(put, v, s.X1, s.Y1, s.X2, s.Y2, ColorMuted)
			// Center the label on the dimension line.
			mx, my := v.toCell((s.X1+s.X2)/2, (s.Y1+s.Y2)/2)
			for i, r := range s.Label {
				put(mx-len(s.Label)/2+i, my, r, ColorSubtext)
			}
		}
	}

	var b strings.Builder
	for cy := 0; cy < rows; cy++ {
		if cy > 0 {
			b.WriteByte('\n')
		}
		// Batch runs of the same color into one styled write.
		runStart := 0
		for cx := 1; cx <= cols; cx++ {
			if cx == cols || grid[cy][cx].fg != grid[cy][runStart].fg {
				var run strings.Builder
				for i := runStart; i < cx; i++ {
					run.WriteRune(grid[cy][i].r)
				}
				fg := grid[cy][runStart].fg
				if fg == "" {
					b.WriteString(run.String())
				} else {
					b.WriteString(lipgloss.NewStyle().Foreground(fg).Render(run.String()))
				}
				runStart = cx
			}
		}
	}
	return b.String(), v
}

func rectGlyph(s model.Shape) (rune, lipgloss.Color) {
	if s.Disabled {
		return '░', ColorMuted
	}
	switch s.Fill {
	case "back":
		return '·', ColorBack
	case "shelf":
		return '▒', ColorShelf
	case "drawer":
		return '▓', ColorDrawer
	default:
		return '█', ColorCarcass
	}
}

// drawLine rasterizes an mm-space segment into the grid with a DDA walk.
func drawLine(put func(int, int, rune, lipgloss.Color), v viewport, x1, y1, x2, y2 float64, fg lipgloss.Color) {
	cx1, cy1 := v.toCell(x1, y1)
	cx2, cy2 := v.toCell(x2, y2)

	dx, dy := cx2-cx1, cy2-cy1
	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	r := '─'
	if abs(dy) > abs(dx) {
		r = '│'
	}
	if steps == 0 {
		put(cx1, cy1, r, fg)
		return
	}
	for i := 0; i <= steps; i++ {
		put(cx1+dx*i/steps, cy1+dy*i/steps, r, fg)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
