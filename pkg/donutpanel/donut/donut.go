// Package donut computes the geometry of a single annular chart: wedge
// angles, label placement, label size and label color. Angles are in degrees,
// counter-clockwise from the positive x axis; lengths are in units of the outer
// radius.
package donut

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
)

// Epsilon guards the share computation when every value is zero.
const Epsilon = 1e-12

// StartAngle is where the first wedge begins (12 o'clock).
const StartAngle = 90.0

// Range is a closed numeric interval.
type Range struct {
	Min float64 `json:"min" yaml:"min" mapstructure:"min"`
	Max float64 `json:"max" yaml:"max" mapstructure:"max"`
}

// Style holds the knobs that shape a chart.
type Style struct {
	// WedgeWidth is the ring thickness as a fraction of the outer radius.
	WedgeWidth float64
	// LabelMinPercent is the smallest share that gets a label.
	LabelMinPercent float64
	// LabelFontDomain is the share interval mapped onto LabelFontRange.
	LabelFontDomain Range
	// LabelFontRange is the label font size interval in points.
	LabelFontRange Range
	// NameFontSize is the center name font size in points.
	NameFontSize float64
	// Colors holds one fill color per band.
	Colors []string
	// ContrastColor is the light band color that needs DarkLabelColor text.
	ContrastColor   string
	DarkLabelColor  string
	LightLabelColor string
}

// Wedge is one band's slice of the ring. Theta1 <= Theta2.
type Wedge struct {
	Band   int
	Value  float64
	Share  float64
	Theta1 float64
	Theta2 float64
	Color  string
}

// Span is the angular size of the wedge.
func (w Wedge) Span() float64 { return w.Theta2 - w.Theta1 }

// Mid is the angular midpoint of the wedge.
func (w Wedge) Mid() float64 { return (w.Theta1 + w.Theta2) / 2 }

// Label is a percentage label anchored at its center.
type Label struct {
	Band     int
	Text     string
	X, Y     float64
	Rotation float64
	FontSize float64
	Color    string
}

// Chart is the full layout of one donut.
type Chart struct {
	Name         string
	NameFontSize float64
	Inner        float64
	Outer        float64
	Total        float64
	Wedges       []Wedge
	Labels       []Label
}

// Empty reports whether the chart has no nonzero wedge.
func (c Chart) Empty() bool { return c.Total <= 0 }

// Compute lays out one chart. Wedges follow the raw values clockwise from
// 12 o'clock; shares (and so labels) are percentages of the total.
func Compute(values []float64, name string, style Style) Chart {
	vals := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			v = 0
		}
		vals[i] = v
	}
	total := floats.Sum(vals)
	denom := math.Max(total, Epsilon)

	c := Chart{
		Name:         name,
		NameFontSize: style.NameFontSize,
		Inner:        1 - style.WedgeWidth,
		Outer:        1,
		Total:        total,
		Wedges:       make([]Wedge, 0, len(vals)),
	}
	midR := c.Outer - style.WedgeWidth/2

	var cum float64
	for i, v := range vals {
		start := StartAngle
		end := StartAngle
		if total > 0 {
			start = StartAngle - 360*cum/total
			end = StartAngle - 360*(cum+v)/total
		}
		cum += v

		w := Wedge{
			Band:   i,
			Value:  v,
			Share:  100 * v / denom,
			Theta1: end,
			Theta2: start,
			Color:  colorAt(style.Colors, i),
		}
		c.Wedges = append(c.Wedges, w)

		if w.Share < style.LabelMinPercent || w.Span() <= 0 {
			continue
		}
		mid := w.Mid() * math.Pi / 180
		c.Labels = append(c.Labels, Label{
			Band:     i,
			Text:     fmt.Sprintf("%.1f%%", w.Share),
			X:        midR * math.Cos(mid),
			Y:        midR * math.Sin(mid),
			Rotation: LabelRotation(w.Mid()),
			FontSize: FontSize(w.Share, style.LabelFontDomain, style.LabelFontRange),
			Color:    LabelColor(w.Color, style),
		})
	}
	return c
}

// LabelRotation returns the text rotation for a label at angle mid. Labels
// run tangent to the ring and are flipped on the left half so they read upright.
func LabelRotation(mid float64) float64 {
	m := NormalizeAngle(mid)
	rot := m - 90
	if m > 90 && m < 270 {
		rot += 180
	}
	return rot
}

// FontSize maps a share onto the font range, clamping to the domain.
func FontSize(share float64, domain, size Range) float64 {
	if domain.Max <= domain.Min {
		if share <= domain.Min {
			return size.Min
		}
		return size.Max
	}
	p := math.Min(math.Max(share, domain.Min), domain.Max)
	return size.Min + (size.Max-size.Min)*(p-domain.Min)/(domain.Max-domain.Min)
}

// LabelColor picks the label text color for a wedge of the given fill.
func LabelColor(fill string, style Style) string {
	if SameColor(fill, style.ContrastColor) {
		return style.DarkLabelColor
	}
	return style.LightLabelColor
}

// SameColor reports whether two hex colors are equal within RGB tolerance.
// Unparseable colors never match.
func SameColor(a, b string) bool {
	ca, err := colorful.Hex(a)
	if err != nil {
		return false
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return false
	}
	return ca.AlmostEqualRgb(cb)
}

// NormalizeAngle maps a into [0, 360).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func colorAt(colors []string, i int) string {
	if len(colors) == 0 {
		return ""
	}
	return colors[i%len(colors)]
}
