package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"gonum.org/v1/plot"

	// Liberation fonts register automatically on import
	_ "gonum.org/v1/plot/font/liberation"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/photonworks/fresnelier/zoneplate"
)

// makeProfilePlotImage plots the mask transparency along the central row,
// from the pattern center to the right edge, against physical radius in
// millimeters. The step profile makes the zone alternation (or aperture
// sampling) of the mask directly visible.
func makeProfilePlotImage(mask *zoneplate.Mask, outerDiameterM float64, title string, wPx, hPx float64) (image.Image, error) {
	p := plot.New()

	p.Y.Min = -0.2
	p.Y.Max = 1.5

	// Modify the font fields directly on existing styles
	p.Title.TextStyle.Font.Typeface = "Liberation"
	p.Title.TextStyle.Font.Variant = "Sans"
	p.Title.TextStyle.Font.Size = vg.Points(12)

	p.X.Label.TextStyle.Font.Typeface = "Liberation"
	p.X.Label.TextStyle.Font.Variant = "Sans"
	p.X.Label.TextStyle.Font.Size = vg.Points(12)

	p.Y.Label.TextStyle.Font.Typeface = "Liberation"
	p.Y.Label.TextStyle.Font.Variant = "Sans"
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	p.X.Tick.Label.Font.Typeface = "Liberation"
	p.X.Tick.Label.Font.Variant = "Sans"
	p.X.Tick.Label.Font.Size = vg.Points(10)

	p.Y.Tick.Label.Font.Typeface = "Liberation"
	p.Y.Tick.Label.Font.Variant = "Sans"
	p.Y.Tick.Label.Font.Size = vg.Points(10)

	center := mask.Center()
	span := mask.Size - 1 - center // pixels from center to the right edge
	if span < 1 {
		return nil, fmt.Errorf("mask of size %d has no profile to plot", mask.Size)
	}

	// Physical length of one pixel, derived from the grid scale that placed
	// the outer boundary one margin pixel inside the image half-width.
	mmPerPixel := outerDiameterM / 2.0 * 1000.0 / (float64(mask.Size)/2.0 - 1.0)
	spanMm := float64(span) * mmPerPixel

	p.Title.Text = title + " transmission profile"
	p.X.Label.Text = "radius (mm)"
	p.Y.Label.Text = "transmission"
	p.X.Tick.Marker = StepTicks{Step: spanMm / 20, Format: "%.3f"}
	p.Y.Tick.Marker = StepTicks{Step: 0.2, Format: "%.1f"}
	p.Add(plotter.NewGrid()) // grid + ticks

	// Data: transparency of each pixel of the central row, center outward
	pts := make(plotter.XYs, span+1)
	for i := 0; i <= span; i++ {
		pts[i].X = float64(i) * mmPerPixel
		pts[i].Y = float64(mask.At(center+i, center))
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{R: 0, G: 0, B: 255, A: 255} // blue

	p.Add(line)

	// Zero line
	hpts := plotter.XYs{
		{X: 0.0, Y: 0.0},
		{X: spanMm, Y: 0.0},
	}

	hline, err := plotter.NewLine(hpts)
	if err != nil {
		return nil, err
	}

	p.Add(hline)

	hline.Dashes = []vg.Length{
		vg.Points(6), // dash length
		vg.Points(4), // gap length
	}
	hline.Color = color.RGBA{R: 0, G: 0, B: 0, A: 255} // black

	// Render into an in-memory image
	// Choose a "virtual" size in vg units and map to pixels via DPI.
	const dpi = 96
	width := vg.Length(wPx) * vg.Inch / dpi
	height := vg.Length(hPx) * vg.Inch / dpi

	c := vgimg.New(width, height)
	dc := draw.New(c)
	p.Draw(dc)

	return c.Image(), nil
}

// SaveProfilePlot renders the transmission profile plot and writes it to a
// PNG file.
func SaveProfilePlot(filename string, mask *zoneplate.Mask, outerDiameterM float64, title string) (err error) {
	img, err := makeProfilePlotImage(mask, outerDiameterM, title, 1200, 500)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return png.Encode(f, img)
}

type StepTicks struct {
	Step   float64
	Format string
}

func (t StepTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	start := math.Ceil(min/t.Step) * t.Step
	for v := start; v <= max; v += t.Step {
		ticks = append(ticks, plot.Tick{
			Value: v,
			Label: fmt.Sprintf(t.Format, v),
		})
	}
	return ticks
}
