// Package render draws a smithchart scene with gonum/plot and writes it to
// an image file.
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/OpenTraceLab/OpenTraceSmith/pkg/smithchart"
)

// Options control chart output.
type Options struct {
	Title string
	Size  vg.Length // width and height of the square canvas; default 14cm
}

// Save renders the scene and writes it to path. The output format follows
// the file extension (.svg, .png, .pdf, ...).
func Save(scene []smithchart.Primitive, path string, opts Options) error {
	p, err := build(scene, opts)
	if err != nil {
		return err
	}
	size := opts.Size
	if size == 0 {
		size = 14 * vg.Centimeter
	}
	if err := p.Save(size, size, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}

func build(scene []smithchart.Primitive, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Re Γ"
	p.Y.Label.Text = "Im Γ"
	// Fixed square viewport slightly larger than the unit disk, so the
	// boundary never hugs the frame and out-of-range markers stay visible.
	p.X.Min, p.X.Max = -1.1, 1.1
	p.Y.Min, p.Y.Max = -1.1, 1.1
	p.Add(plotter.NewGrid())

	circles := 0
	for _, prim := range scene {
		switch {
		case prim.Circle != nil:
			line, err := plotter.NewLine(circleXYs(prim.Circle))
			if err != nil {
				return nil, fmt.Errorf("circle plotter: %w", err)
			}
			if circles == 0 {
				// Chart boundary
				line.LineStyle.Color = color.Gray{Y: 0x30}
				line.LineStyle.Width = vg.Points(1.5)
			} else {
				line.LineStyle.Color = color.Gray{Y: 0x80}
				line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
			}
			circles++
			p.Add(line)
		case prim.Marker != nil:
			sc, err := plotter.NewScatter(plotter.XYs{{X: prim.Marker.X, Y: prim.Marker.Y}})
			if err != nil {
				return nil, fmt.Errorf("marker plotter: %w", err)
			}
			sc.GlyphStyle = glyphFor(prim.Marker.Kind)
			p.Add(sc)
			p.Legend.Add(prim.Marker.Kind.String(), sc)
		}
	}
	p.Legend.Top = true
	return p, nil
}

func circleXYs(c *smithchart.Circle) plotter.XYs {
	xys := make(plotter.XYs, 0, len(c.Points)+1)
	for _, pt := range c.Points {
		xys = append(xys, plotter.XY{X: pt.X, Y: pt.Y})
	}
	if len(xys) > 0 {
		xys = append(xys, xys[0]) // close the loop
	}
	return xys
}

func glyphFor(kind smithchart.MarkerKind) draw.GlyphStyle {
	style := draw.GlyphStyle{
		Color:  kind.Color(),
		Radius: vg.Points(4),
	}
	switch kind {
	case smithchart.LoadImpedance:
		style.Shape = draw.CircleGlyph{}
	case smithchart.InputImpedance:
		style.Shape = draw.PyramidGlyph{}
	case smithchart.LoadAdmittance:
		style.Shape = draw.RingGlyph{}
	case smithchart.InputAdmittance:
		style.Shape = draw.TriangleGlyph{}
	default:
		style.Shape = draw.CrossGlyph{}
	}
	return style
}
