package donutpanel

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"

	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/models"
	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/parser"
	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/regions"
	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/render"
)

// Generate reads inputPath, renders the donut panel and writes it to
// outputPath as PNG.
func Generate(ctx context.Context, inputPath, outputPath string, cfg Config, logger *zap.Logger) (*models.RunReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, inputPath)
	}

	table, err := Load(inputPath, cfg, logger)
	if err != nil {
		return nil, err
	}

	// Column resolution runs before any numeric work and is fatal.
	cols, err := parser.ResolveColumns(table.Headers, cfg.RegionRole(), cfg.BandRoles())
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved columns",
		zap.String("region", cols.Region.Header),
		zap.Any("bands", cols.Bands))

	records := parser.BuildRecords(table, cols, logger.Named("parser"))
	sel := Select(records, cfg, logger)

	var font *truetype.Font
	if cfg.FontPath != "" {
		if font, err = render.LoadFont(cfg.FontPath); err != nil {
			return nil, err
		}
	}

	img, err := render.ComposePanel(ctx, sel.Records, cfg.Bands, cfg.DonutStyle(), cfg.PanelSpec(font), logger.Named("render"))
	if err != nil {
		return nil, fmt.Errorf("failed to render panel: %w", err)
	}

	n, err := render.WritePNG(outputPath, img)
	if err != nil {
		return nil, err
	}
	logger.Info("saved panel",
		zap.String("path", outputPath),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
		zap.String("size", humanize.Bytes(uint64(n))))

	report := &models.RunReport{
		Source:     table.Source,
		Columns:    cols,
		Regions:    make([]string, 0, len(sel.Records)),
		Missing:    sel.Missing,
		Duplicates: sel.Duplicates,
		Output:     outputPath,
		Width:      img.Bounds().Dx(),
		Height:     img.Bounds().Dy(),
		Bytes:      n,
	}
	for _, rec := range sel.Records {
		report.Regions = append(report.Regions, rec.Name)
	}
	return report, nil
}

// Load reads the input table using the configured sheet preference and logs
// which sheet was used.
func Load(inputPath string, cfg Config, logger *zap.Logger) (*models.Table, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	table, err := parser.OpenTable(inputPath, cfg.Sheets)
	if err != nil {
		return nil, err
	}

	src := table.Source
	switch {
	case src.SheetName == "":
		logger.Info("loaded table", zap.String("book", src.BookName), zap.Int("rows", len(table.Rows)))
	case src.SheetFallback:
		logger.Warn("no preferred sheet found, using first sheet",
			zap.String("book", src.BookName),
			zap.Strings("preferred", cfg.Sheets),
			zap.String("sheet", src.SheetName),
			zap.Int("rows", len(table.Rows)))
	default:
		logger.Info("loaded table",
			zap.String("book", src.BookName),
			zap.String("sheet", src.SheetName),
			zap.Int("rows", len(table.Rows)))
	}
	return table, nil
}

// Select filters and orders records by the canonical region list and logs
// what was left out.
func Select(records []models.RegionRecord, cfg Config, logger *zap.Logger) regions.Selection {
	if logger == nil {
		logger = zap.NewNop()
	}
	sel := regions.Select(records, cfg.Regions)

	if len(sel.Missing) > 0 {
		logger.Info("canonical regions missing from input", zap.Strings("regions", sel.Missing))
	}
	if len(sel.Duplicates) > 0 {
		logger.Warn("duplicate region rows dropped, first row kept", zap.Strings("regions", sel.Duplicates))
	}
	if len(sel.Unmatched) > 0 {
		logger.Debug("input regions not in canonical list", zap.Strings("regions", sel.Unmatched))
	}
	logger.Info("selected regions", zap.Int("count", len(sel.Records)))
	return sel
}
