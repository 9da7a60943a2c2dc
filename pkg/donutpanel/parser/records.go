package parser

import (
	"strings"

	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/models"
	"go.uber.org/zap"
)

// BuildRecords converts every table row into a RegionRecord using the
// resolved columns. Malformed band cells become 0 and are logged at debug level.
func BuildRecords(t *models.Table, cols models.ResolvedColumns, logger *zap.Logger) []models.RegionRecord {
	if logger == nil {
		logger = zap.NewNop()
	}

	records := make([]models.RegionRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		rec := models.RegionRecord{
			Name:   strings.TrimSpace(row[cols.Region.Index]),
			Values: make([]float64, len(cols.Bands)),
			Row:    t.RowNumber(i),
		}
		for b, ref := range cols.Bands {
			v, ok := parsePercent(row[ref.Index])
			if !ok {
				logger.Debug("coerced malformed value to zero",
					zap.Int("row", rec.Row),
					zap.String("column", ref.Header),
					zap.String("value", row[ref.Index]))
			}
			rec.Values[b] = v
		}
		records = append(records, rec)
	}
	return records
}
