package render

import (
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/donut"
)

// fullCircle is the span above which a wedge is treated as a closed ring.
const fullCircle = 360 - 1e-9

// DrawOptions controls how a donut layout is turned into pixels.
type DrawOptions struct {
	// DPI scales point sizes to pixels.
	DPI float64
	// AxisLimit is the half-width of the square viewport in chart units.
	AxisLimit float64
	// EdgeColor is the wedge outline color.
	EdgeColor string
	// EdgeWidth is the wedge outline width in points.
	EdgeWidth float64
	// NameColor is the center name color.
	NameColor string
	// Font is used for all text.
	Font *truetype.Font
}

// Cell is a square drawing area in pixels.
type Cell struct {
	Left, Top, Size int
}

// viewport maps chart units into a cell.
type viewport struct {
	cx, cy float64
	scale  float64
}

func newViewport(cell Cell, axisLimit float64) viewport {
	half := float64(cell.Size) / 2
	return viewport{
		cx:    float64(cell.Left) + half,
		cy:    float64(cell.Top) + half,
		scale: half / axisLimit,
	}
}

func (v viewport) point(x, y float64) (int, int) {
	return int(math.Round(v.cx + x*v.scale)), int(math.Round(v.cy - y*v.scale))
}

// DrawDonut draws one chart layout into cell.
func DrawDonut(r chart.Renderer, c donut.Chart, cell Cell, opts DrawOptions) {
	vp := newViewport(cell, opts.AxisLimit)
	cx, cy := vp.point(0, 0)
	outer := c.Outer * vp.scale
	inner := c.Inner * vp.scale
	edge := PointsToPixels(opts.EdgeWidth, opts.DPI)

	if c.Empty() {
		r.ResetStyle()
		r.SetStrokeColor(hexColor(opts.EdgeColor))
		r.SetStrokeWidth(edge)
		ringOutline(r, cx, cy, outer, inner)
	}

	for _, w := range c.Wedges {
		span := w.Span()
		if span <= 0 {
			continue
		}
		start := -w.Theta2 * math.Pi / 180
		delta := span * math.Pi / 180

		r.ResetStyle()
		r.SetFillColor(hexColor(w.Color))
		r.SetStrokeColor(hexColor(opts.EdgeColor))
		r.SetStrokeWidth(edge)

		r.ArcTo(cx, cy, outer, outer, start, delta)
		r.ArcTo(cx, cy, inner, inner, start+delta, -delta)
		r.Close()
		if span >= fullCircle {
			// A closed ring has no radial edges.
			r.Fill()
			ringOutline(r, cx, cy, outer, inner)
			continue
		}
		r.FillStroke()
	}

	r.SetFont(opts.Font)
	for _, l := range c.Labels {
		x, y := vp.point(l.X, l.Y)
		r.SetFontSize(l.FontSize)
		r.SetFontColor(hexColor(l.Color))
		drawCenteredText(r, l.Text, x, y, l.Rotation)
	}

	r.SetFontSize(c.NameFontSize)
	r.SetFontColor(hexColor(opts.NameColor))
	drawCenteredText(r, c.Name, cx, cy, 0)
}

// ringOutline strokes the outer and inner circles with the current stroke style.
func ringOutline(r chart.Renderer, cx, cy int, outer, inner float64) {
	r.ArcTo(cx, cy, outer, outer, 0, 2*math.Pi)
	r.Stroke()
	r.ArcTo(cx, cy, inner, inner, 0, 2*math.Pi)
	r.Stroke()
}

// drawCenteredText draws body centered on (x, y), rotated counter-clockwise
// by rotation degrees.
func drawCenteredText(r chart.Renderer, body string, x, y int, rotation float64) {
	if body == "" {
		return
	}
	box := r.MeasureText(body)
	dx := -float64(box.Width()) / 2
	dy := float64(box.Height()) / 2

	if rotation == 0 {
		r.Text(body, x+int(math.Round(dx)), y+int(math.Round(dy)))
		return
	}

	// Screen y grows downwards, so a counter-clockwise rotation is negative.
	theta := -rotation * math.Pi / 180
	sin, cos := math.Sincos(theta)
	ox := dx*cos - dy*sin
	oy := dx*sin + dy*cos

	r.SetTextRotation(theta)
	r.Text(body, x+int(math.Round(ox)), y+int(math.Round(oy)))
	r.ClearTextRotation()
}
