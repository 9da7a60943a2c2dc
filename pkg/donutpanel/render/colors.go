package render

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// hexColor converts "#RRGGBB" (or "RRGGBB") into a drawing color.
func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(strings.TrimSpace(hex), "#"))
}
