// Package output serializes run reports.
package output

import (
	"os"

	json "github.com/goccy/go-json"

	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/models"
)

// ReportToJSON converts a RunReport to JSON.
func ReportToJSON(report *models.RunReport, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// WriteReport writes the JSON form of report to path.
func WriteReport(path string, report *models.RunReport, pretty bool) error {
	data, err := ReportToJSON(report, pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
