// Package export renders the generated shape set to shareable artifacts:
// SVG and PNG snapshots of the drawing, and a TSV cutting list. Exporters
// only read Shape[] and CutlistPanel[]; they never reach into session state.
package export

import (
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/plankworks/cabd/pkg/geometry"
	"github.com/plankworks/cabd/pkg/model"
)

// Options controls snapshot rendering.
type Options struct {
	// Scale converts mm to output pixels. Zero means 0.25 (a 2400mm wardrobe
	// becomes a 600px image).
	Scale float64
	// Margin is the padding around the drawing in output pixels.
	Margin int
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 0.25
	}
	if o.Margin <= 0 {
		o.Margin = 20
	}
	return o
}

// Palette for the fill tags the generator emits.
var svgFills = map[string]string{
	"carcass": "#c8a165",
	"back":    "#e8dcc8",
	"shelf":   "#d9b77f",
	"drawer":  "#b98d54",
	"marker":  "none",
}

// WriteSVG renders the shapes as an SVG document.
func WriteSVG(w io.Writer, shapes []model.Shape, opts Options) error {
	opts = opts.withDefaults()

	bounds := shapeBounds(shapes)
	sc := opts.Scale
	ox := float64(opts.Margin) - bounds.X*sc
	oy := float64(opts.Margin) - bounds.Y*sc

	width := int(bounds.W*sc) + 2*opts.Margin
	height := int(bounds.H*sc) + 2*opts.Margin

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#ffffff")

	for _, s := range shapes {
		switch s.Kind {
		case model.ShapeRect:
			style := fmt.Sprintf("fill:%s;stroke:#4a3b28;stroke-width:1", fillFor(s))
			if s.Disabled {
				style = "fill:none;stroke:#b0b0b0;stroke-width:1;stroke-dasharray:6,4"
			}
			canvas.Rect(int(ox+s.X*sc), int(oy+s.Y*sc), int(s.W*sc), int(s.H*sc), style)
		case model.ShapeLine:
			canvas.Line(int(ox+s.X1*sc), int(oy+s.Y1*sc), int(ox+s.X2*sc), int(oy+s.Y2*sc),
				fmt.Sprintf("stroke:#4a3b28;stroke-width:%d", max(1, int(s.Thickness*sc))))
		case model.ShapeDimension:
			canvas.Line(int(ox+s.X1*sc), int(oy+s.Y1*sc), int(ox+s.X2*sc), int(oy+s.Y2*sc),
				"stroke:#8c6d46;stroke-width:1")
			tx := int(ox + (s.X1+s.X2)/2*sc)
			ty := int(oy + (s.Y1+s.Y2)/2*sc)
			canvas.Text(tx, ty-4, s.Label, "font-size:11px;fill:#5a4632;text-anchor:middle")
		}
	}

	canvas.End()
	return nil
}

// SaveSVG renders to a file.
func SaveSVG(path string, shapes []model.Shape, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	defer f.Close()
	if err := WriteSVG(f, shapes, opts); err != nil {
		return err
	}
	return f.Close()
}

func fillFor(s model.Shape) string {
	if c, ok := svgFills[s.Fill]; ok {
		return c
	}
	return "#cccccc"
}

// shapeBounds returns the bounding box of all shapes, dimensions included.
func shapeBounds(shapes []model.Shape) geometry.Rect {
	var rects []geometry.Rect
	for _, s := range shapes {
		switch s.Kind {
		case model.ShapeRect:
			rects = append(rects, geometry.Rect{X: s.X, Y: s.Y, W: s.W, H: s.H})
		default:
			minX, maxX := s.X1, s.X2
			if minX > maxX {
				minX, maxX = maxX, minX
			}
			minY, maxY := s.Y1, s.Y2
			if minY > maxY {
				minY, maxY = maxY, minY
			}
			rects = append(rects, geometry.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY})
		}
	}
	return geometry.BoundingBox(rects)
}
