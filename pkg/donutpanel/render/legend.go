package render

import (
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/models"
)

// Legend metrics in units of the legend font size.
const (
	swatchWidthEm  = 2.0
	swatchHeightEm = 0.7
	swatchPadEm    = 0.8
	columnSpaceEm  = 2.0
	legendHeightEm = 3.0
)

// LegendOptions controls the shared legend.
type LegendOptions struct {
	// FontSize is the entry label size in points.
	FontSize float64
	// TextColor is the entry label color.
	TextColor string
	// EdgeColor is the swatch outline color.
	EdgeColor string
	// EdgeWidth is the swatch outline width in points.
	EdgeWidth float64
}

// LegendHeight is the pixel height reserved below the grid for the legend.
func LegendHeight(opts LegendOptions, dpi float64) int {
	return int(math.Ceil(PointsToPixels(opts.FontSize, dpi) * legendHeightEm))
}

// DrawLegend draws one horizontal row of band swatches and labels, centered
// in a width x height area, without a frame.
func DrawLegend(r chart.Renderer, bands []models.Band, width, height int, font *truetype.Font, opts LegendOptions, dpi float64) {
	if len(bands) == 0 {
		return
	}
	em := PointsToPixels(opts.FontSize, dpi)
	swW := em * swatchWidthEm
	swH := em * swatchHeightEm

	r.SetFont(font)
	r.SetFontSize(opts.FontSize)
	widths := make([]float64, len(bands))
	total := columnSpaceEm * em * float64(len(bands)-1)
	for i, b := range bands {
		widths[i] = float64(r.MeasureText(b.Label).Width())
		total += swW + swatchPadEm*em + widths[i]
	}

	x := (float64(width) - total) / 2
	cy := float64(height) / 2
	for i, b := range bands {
		r.ResetStyle()
		r.SetFillColor(hexColor(b.Color))
		r.SetStrokeColor(hexColor(opts.EdgeColor))
		r.SetStrokeWidth(PointsToPixels(opts.EdgeWidth, dpi))
		x0, y0 := int(math.Round(x)), int(math.Round(cy-swH/2))
		x1, y1 := int(math.Round(x+swW)), int(math.Round(cy+swH/2))
		r.MoveTo(x0, y0)
		r.LineTo(x1, y0)
		r.LineTo(x1, y1)
		r.LineTo(x0, y1)
		r.Close()
		r.FillStroke()

		r.SetFont(font)
		r.SetFontSize(opts.FontSize)
		r.SetFontColor(hexColor(opts.TextColor))
		tx := x + swW + swatchPadEm*em
		box := r.MeasureText(b.Label)
		r.Text(b.Label, int(math.Round(tx)), int(math.Round(cy+float64(box.Height())/2)))

		x = tx + widths[i] + columnSpaceEm*em
	}
}
