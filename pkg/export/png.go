package export

import (
	"fmt"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/plankworks/cabd/pkg/model"
)

var pngFills = map[string][3]float64{
	"carcass": {0.78, 0.63, 0.40},
	"back":    {0.91, 0.86, 0.78},
	"shelf":   {0.85, 0.72, 0.50},
	"drawer":  {0.73, 0.55, 0.33},
}

// SavePNG renders the shapes to a PNG file.
func SavePNG(path string, shapes []model.Shape, opts Options) error {
	opts = opts.withDefaults()

	bounds := shapeBounds(shapes)
	sc := opts.Scale
	ox := float64(opts.Margin) - bounds.X*sc
	oy := float64(opts.Margin) - bounds.Y*sc

	width := int(bounds.W*sc) + 2*opts.Margin
	height := int(bounds.H*sc) + 2*opts.Margin
	if width <= 0 || height <= 0 {
		return fmt.Errorf("nothing to render")
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if face, err := labelFace(); err == nil {
		dc.SetFontFace(face)
	}

	for _, s := range shapes {
		switch s.Kind {
		case model.ShapeRect:
			dc.DrawRectangle(ox+s.X*sc, oy+s.Y*sc, s.W*sc, s.H*sc)
			if s.Disabled {
				dc.SetRGB(0.69, 0.69, 0.69)
				dc.SetLineWidth(1)
				dc.SetDash(6, 4)
				dc.Stroke()
				dc.SetDash()
				continue
			}
			c := pngFills[s.Fill]
			dc.SetRGB(c[0], c[1], c[2])
			dc.FillPreserve()
			dc.SetRGB(0.29, 0.23, 0.16)
			dc.SetLineWidth(1)
			dc.Stroke()
		case model.ShapeLine:
			dc.SetRGB(0.29, 0.23, 0.16)
			w := s.Thickness * sc
			if w < 1 {
				w = 1
			}
			dc.SetLineWidth(w)
			dc.DrawLine(ox+s.X1*sc, oy+s.Y1*sc, ox+s.X2*sc, oy+s.Y2*sc)
			dc.Stroke()
		case model.ShapeDimension:
			dc.SetRGB(0.55, 0.43, 0.27)
			dc.SetLineWidth(1)
			dc.DrawLine(ox+s.X1*sc, oy+s.Y1*sc, ox+s.X2*sc, oy+s.Y2*sc)
			dc.Stroke()
			dc.SetRGB(0.35, 0.27, 0.20)
			dc.DrawStringAnchored(s.Label, ox+(s.X1+s.X2)/2*sc, oy+(s.Y1+s.Y2)/2*sc-6, 0.5, 0.5)
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

// labelFace loads the bundled Go Regular face for dimension labels.
func labelFace() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: 12, DPI: 72})
}
