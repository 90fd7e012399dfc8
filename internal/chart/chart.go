// Package chart renders overlaid latency histograms to image files.
package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// fillAlpha is the 0.4 fill transparency; overlapping series stay visible.
const fillAlpha = 0x66

// Series is one primitive's samples with its legend label and color.
type Series struct {
	Label   string
	Color   color.NRGBA
	Samples []int64
}

// Render draws one metric's overlaid histogram and saves it to path,
// overwriting any existing file. Each call builds a fresh plot; no state is
// shared between renders.
func Render(metric string, edges []float64, series []Series, path string) error {
	if len(edges) < 2 {
		return fmt.Errorf("metric %s: need at least two bucket edges, got %d", metric, len(edges))
	}

	p := hplot.New()
	p.X.Label.Text = title(metric) + " time (nanoseconds)"
	p.Y.Label.Text = "Count out of 10,000"

	for _, s := range series {
		h := hbook.NewH1DFromEdges(edges)
		for _, v := range s.Samples {
			h.Fill(float64(v), 1)
		}

		hh := hplot.NewH1D(h)
		hh.LineStyle.Color = color.NRGBA{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: 0xff}
		hh.FillColor = color.NRGBA{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: fillAlpha}
		hh.Infos.Style = hplot.HInfoNone

		p.Add(hh)
		p.Plot.Legend.Add(s.Label, hh)
	}

	p.Add(plotter.NewGrid())
	p.Plot.Legend.Top = true

	if err := p.Save(20*vg.Centimeter, -1, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

var namedColors = map[string]color.NRGBA{
	"green": {G: 0x80},
	"blue":  {B: 0xff},
	"red":   {R: 0xff},
	"black": {},
}

// ParseColor resolves a configured color: one of the named colors or a
// #rrggbb hex value.
func ParseColor(name string) (color.NRGBA, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := namedColors[key]; ok {
		return c, nil
	}
	if strings.HasPrefix(key, "#") && len(key) == 7 {
		v, err := strconv.ParseUint(key[1:], 16, 32)
		if err == nil {
			return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
		}
	}
	return color.NRGBA{}, fmt.Errorf("unknown color %q", name)
}

// title uppercases the first rune, e.g. "read" -> "Read".
func title(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
