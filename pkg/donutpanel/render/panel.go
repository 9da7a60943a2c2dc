package render

import (
	"context"
	"fmt"
	"image"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/donut"
	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/models"
)

// PanelSpec describes the grid, resolution and styling of a panel.
type PanelSpec struct {
	Rows       int
	Cols       int
	CellInches float64
	DPI        float64
	// Workers bounds concurrent cell renders; values < 1 mean one.
	Workers int
	// PadInches is kept around the content when trimming.
	PadInches  float64
	Background string
	Draw       DrawOptions
	Legend     LegendOptions
}

// CellPixels is the side of one grid cell in pixels.
func (s PanelSpec) CellPixels() int {
	return InchesToPixels(s.CellInches, s.DPI)
}

// CellError reports a failed cell render.
type CellError struct {
	Region string
	Cell   int
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("render error in cell %d (%s): %v", e.Cell, e.Region, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// ComposePanel renders one donut per record into a rows x cols grid in
// row-major order, adds the legend below the grid and returns the trimmed image.
// Cells without a record stay blank and the full grid is always kept; records
// beyond the grid are not drawn.
func ComposePanel(ctx context.Context, records []models.RegionRecord, bands []models.Band, style donut.Style, spec PanelSpec, logger *zap.Logger) (*image.RGBA, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if spec.Draw.Font == nil {
		font, err := chart.GetDefaultFont()
		if err != nil {
			return nil, fmt.Errorf("failed to load default font: %w", err)
		}
		spec.Draw.Font = font
	}

	capacity := spec.Rows * spec.Cols
	if len(records) > capacity {
		logger.Warn("more regions than grid cells, extra regions dropped",
			zap.Int("regions", len(records)),
			zap.Int("cells", capacity))
		records = records[:capacity]
	}

	cell := spec.CellPixels()
	legendH := LegendHeight(spec.Legend, spec.DPI)
	width, gridH := spec.Cols*cell, spec.Rows*cell
	bg := hexColor(spec.Background)

	panel := image.NewRGBA(image.Rect(0, 0, width, gridH+legendH))
	draw.Draw(panel, panel.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	workers := spec.Workers
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range records {
		i := i // per-iteration copy (go1.21 loop semantics)
		rec := records[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			img, err := renderCell(rec, style, spec, cell)
			if err != nil {
				return &CellError{Region: rec.Name, Cell: i, Err: err}
			}
			// Cells are disjoint, so concurrent draws never touch the same pixels.
			at := image.Pt((i%spec.Cols)*cell, (i/spec.Cols)*cell)
			draw.Draw(panel, image.Rectangle{Min: at, Max: at.Add(img.Bounds().Size())}, img, img.Bounds().Min, draw.Over)
			logger.Debug("rendered cell", zap.Int("cell", i), zap.String("region", rec.Name))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	legend, err := renderLegend(bands, width, legendH, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to render legend: %w", err)
	}
	at := image.Pt(0, gridH)
	draw.Draw(panel, image.Rectangle{Min: at, Max: at.Add(legend.Bounds().Size())}, legend, legend.Bounds().Min, draw.Over)

	// The grid is kept whole so blank cells stay in place and the legend
	// stays centered under it.
	pad := InchesToPixels(spec.PadInches, spec.DPI)
	return TrimToContent(panel, bg, pad, image.Rect(0, 0, width, gridH)), nil
}

// renderCell draws one chart into its own size x size surface.
func renderCell(rec models.RegionRecord, style donut.Style, spec PanelSpec, size int) (image.Image, error) {
	r, err := newRenderer(size, size, spec.DPI, spec.Draw.Font)
	if err != nil {
		return nil, err
	}
	DrawDonut(r, donut.Compute(rec.Values, rec.Name, style), Cell{Size: size}, spec.Draw)
	return snapshot(r)
}

func renderLegend(bands []models.Band, width, height int, spec PanelSpec) (image.Image, error) {
	r, err := newRenderer(width, height, spec.DPI, spec.Draw.Font)
	if err != nil {
		return nil, err
	}
	DrawLegend(r, bands, width, height, spec.Draw.Font, spec.Legend, spec.DPI)
	return snapshot(r)
}

func newRenderer(width, height int, dpi float64, font *truetype.Font) (chart.Renderer, error) {
	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	r.SetDPI(dpi)
	r.SetFont(font)
	return r, nil
}

func snapshot(r chart.Renderer) (image.Image, error) {
	iw := &chart.ImageWriter{}
	if err := r.Save(iw); err != nil {
		return nil, err
	}
	return iw.Image()
}
