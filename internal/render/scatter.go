package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/cluster.report/internal/cluster"
	"github.com/banshee-data/cluster.report/internal/config"
)

// ScatterPNG renders col as a scatter plot with one color per cluster and
// saves it as a PNG at path. Plot dimensions come from params.
func ScatterPNG(path string, col *cluster.Collection, params *config.Params) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Clusters (%d)", col.Len())
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	colors := generateColors(col.Len())

	for i := 0; i < col.Len(); i++ {
		c := col.At(i)
		xys := make(plotter.XYs, c.Len())
		for j, pt := range c.Points() {
			xys[j] = plotter.XY{X: pt.X(), Y: pt.Y()}
		}

		s, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("cluster %d: %w", i, err)
		}
		s.GlyphStyle.Color = colors[i]
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("cluster %d (%d pts)", i, c.Len()), s)
	}

	w := vg.Length(params.GetPlotWidthCm()) * vg.Centimeter
	h := vg.Length(params.GetPlotHeightCm()) * vg.Centimeter
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}

// generateColors creates a palette of distinct colors, one per cluster.
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
