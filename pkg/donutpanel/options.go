// Package donutpanel renders a panel of donut charts, one per region, from a
// spreadsheet of five-band percentage breakdowns.
package donutpanel

import (
	"errors"
	"runtime"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/donut"
	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/models"
	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/parser"
	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/regions"
	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/render"
)

// Config configures one panel. It is passed by value and never modified by
// the pipeline, so several panels can be rendered in one process.
type Config struct {
	// Grid is the panel layout.
	Grid GridConfig `mapstructure:"grid" yaml:"grid"`
	// DPI is the output resolution.
	DPI float64 `mapstructure:"dpi" yaml:"dpi"`
	// Donut styles every chart.
	Donut DonutConfig `mapstructure:"donut" yaml:"donut"`
	// Legend styles the shared legend.
	Legend LegendConfig `mapstructure:"legend" yaml:"legend"`
	// Bands is the ordered band palette.
	Bands []models.Band `mapstructure:"bands" yaml:"bands"`
	// ContrastBand is the key of the light band whose labels use the dark color.
	ContrastBand string `mapstructure:"contrast_band" yaml:"contrast_band"`
	// RegionColumn lists accepted headers of the region name column.
	RegionColumn []string `mapstructure:"region_column" yaml:"region_column"`
	// Regions is the canonical region list: membership and display order.
	Regions []string `mapstructure:"regions" yaml:"regions"`
	// Sheets is the ordered sheet preference; the first sheet is the fallback.
	Sheets []string `mapstructure:"sheets" yaml:"sheets"`
	// FontPath optionally points to a TrueType font; empty uses the built-in font.
	FontPath string `mapstructure:"font_path" yaml:"font_path"`
	// Workers bounds concurrent cell renders. Each render holds one cell
	// bitmap (about 20 MB at 800 dpi) until it is placed.
	Workers int `mapstructure:"workers" yaml:"workers"`
	// PadInches is the margin kept when trimming the image to its content.
	PadInches float64 `mapstructure:"pad_inches" yaml:"pad_inches"`
	// Background is the panel background color.
	Background string `mapstructure:"background" yaml:"background"`
}

// GridConfig is the panel grid.
type GridConfig struct {
	Rows       int     `mapstructure:"rows" yaml:"rows"`
	Cols       int     `mapstructure:"cols" yaml:"cols"`
	CellInches float64 `mapstructure:"cell_inches" yaml:"cell_inches"`
}

// DonutConfig styles a single chart. Sizes are in points.
type DonutConfig struct {
	WedgeWidth      float64     `mapstructure:"wedge_width" yaml:"wedge_width"`
	EdgeWidth       float64     `mapstructure:"edge_width" yaml:"edge_width"`
	EdgeColor       string      `mapstructure:"edge_color" yaml:"edge_color"`
	LabelMinPercent float64     `mapstructure:"label_min_percent" yaml:"label_min_percent"`
	LabelFontDomain donut.Range `mapstructure:"label_font_domain" yaml:"label_font_domain"`
	LabelFontRange  donut.Range `mapstructure:"label_font_range" yaml:"label_font_range"`
	LabelDarkColor  string      `mapstructure:"label_dark_color" yaml:"label_dark_color"`
	LabelLightColor string      `mapstructure:"label_light_color" yaml:"label_light_color"`
	NameFontSize    float64     `mapstructure:"name_font_size" yaml:"name_font_size"`
	NameColor       string      `mapstructure:"name_color" yaml:"name_color"`
	AxisLimit       float64     `mapstructure:"axis_limit" yaml:"axis_limit"`
}

// LegendConfig styles the legend row.
type LegendConfig struct {
	FontSize  float64 `mapstructure:"font_size" yaml:"font_size"`
	TextColor string  `mapstructure:"text_color" yaml:"text_color"`
	EdgeColor string  `mapstructure:"edge_color" yaml:"edge_color"`
	EdgeWidth float64 `mapstructure:"edge_width" yaml:"edge_width"`
}

// MaxDefaultWorkers caps the default worker count to bound peak memory.
const MaxDefaultWorkers = 4

// DefaultRegions is the default canonical region list.
var DefaultRegions = []string{
	"Louisa", "Black Hawk", "Des Moines", "Henry", "Muscatine",
	"Washington", "Monona", "Fremont", "Linn", "Polk",
	"Van Buren", "Greene", "Clinton", "Scott", "Jefferson",
	"Marshall", "Butler", "Bremer", "Johnson", "Jasper",
}

// DefaultBands returns the five severity bands.
func DefaultBands() []models.Band {
	return []models.Band{
		{Key: "vl", Label: "Very Low", Color: "#1F6F1F", Aliases: []string{"VL_Perc", "Very Low"}},
		{Key: "l", Label: "Low", Color: "#F2F21C", Aliases: []string{"L_Perc", "Low"}},
		{Key: "m", Label: "Moderate", Color: "#FB8C00", Aliases: []string{"M_Perc", "Moderate"}},
		{Key: "h", Label: "High", Color: "#F4511E", Aliases: []string{"H_Perc", "High"}},
		{Key: "vh", Label: "Very High", Color: "#E53935", Aliases: []string{"VH_Perc", "Very High"}},
	}
}

// DefaultConfig returns the default panel configuration.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{Rows: 5, Cols: 4, CellInches: 2.8},
		DPI:  800,
		Donut: DonutConfig{
			WedgeWidth:      0.5,
			EdgeWidth:       1.3,
			EdgeColor:       "#000000",
			LabelMinPercent: 2.5,
			LabelFontDomain: donut.Range{Min: 0, Max: 30},
			LabelFontRange:  donut.Range{Min: 7.5, Max: 11.5},
			LabelDarkColor:  "#666666",
			LabelLightColor: "#FFFFFF",
			NameFontSize:    11,
			NameColor:       "#000000",
			AxisLimit:       1.06,
		},
		Legend: LegendConfig{
			FontSize:  11,
			TextColor: "#000000",
			EdgeColor: "#000000",
			EdgeWidth: 0.8,
		},
		Bands:        DefaultBands(),
		ContrastBand: "l",
		RegionColumn: []string{"NAME_2", "County", "NAME", "Region"},
		Regions:      append([]string(nil), DefaultRegions...),
		Sheets:       []string{"LGBM_FSM"},
		Workers:      min(runtime.NumCPU(), MaxDefaultWorkers),
		PadInches:    0.1,
		Background:   "#FFFFFF",
	}
}

// Validate checks every field and returns all problems joined.
func (c Config) Validate() error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, NewConfigError(field, format, args...))
	}
	color := func(field, value string) {
		if _, err := colorful.Hex(value); err != nil {
			add(field, "%q is not a #RRGGBB color", value)
		}
	}

	if c.Grid.Rows < 1 || c.Grid.Cols < 1 {
		add("grid", "rows and cols must be positive, got %dx%d", c.Grid.Rows, c.Grid.Cols)
	}
	if c.Grid.CellInches <= 0 {
		add("grid.cell_inches", "must be positive, got %v", c.Grid.CellInches)
	}
	if c.DPI <= 0 {
		add("dpi", "must be positive, got %v", c.DPI)
	}

	d := c.Donut
	if d.WedgeWidth <= 0 || d.WedgeWidth > 1 {
		add("donut.wedge_width", "must be in (0, 1], got %v", d.WedgeWidth)
	}
	if d.EdgeWidth < 0 {
		add("donut.edge_width", "must not be negative, got %v", d.EdgeWidth)
	}
	if d.LabelFontDomain.Min > d.LabelFontDomain.Max {
		add("donut.label_font_domain", "min %v exceeds max %v", d.LabelFontDomain.Min, d.LabelFontDomain.Max)
	}
	if d.LabelFontRange.Min <= 0 || d.LabelFontRange.Min > d.LabelFontRange.Max {
		add("donut.label_font_range", "need 0 < min <= max, got %v..%v", d.LabelFontRange.Min, d.LabelFontRange.Max)
	}
	if d.NameFontSize <= 0 {
		add("donut.name_font_size", "must be positive, got %v", d.NameFontSize)
	}
	if d.AxisLimit < 1 {
		add("donut.axis_limit", "must be at least 1, got %v", d.AxisLimit)
	}
	color("donut.edge_color", d.EdgeColor)
	color("donut.label_dark_color", d.LabelDarkColor)
	color("donut.label_light_color", d.LabelLightColor)
	color("donut.name_color", d.NameColor)

	if c.Legend.FontSize <= 0 {
		add("legend.font_size", "must be positive, got %v", c.Legend.FontSize)
	}
	color("legend.text_color", c.Legend.TextColor)
	color("legend.edge_color", c.Legend.EdgeColor)
	color("background", c.Background)

	if len(c.Bands) == 0 {
		add("bands", "at least one band is required")
	}
	keys := make(map[string]bool, len(c.Bands))
	for i, b := range c.Bands {
		field := "bands[" + b.Key + "]"
		if b.Key == "" || keys[b.Key] {
			add("bands", "band %d has an empty or repeated key %q", i, b.Key)
		}
		keys[b.Key] = true
		if len(b.Aliases) == 0 {
			add(field, "no header aliases")
		}
		color(field+".color", b.Color)
	}
	if c.ContrastBand != "" && !keys[c.ContrastBand] {
		add("contrast_band", "unknown band key %q", c.ContrastBand)
	}

	if len(c.RegionColumn) == 0 {
		add("region_column", "no header aliases")
	}
	seen := make(map[string]bool, len(c.Regions))
	for _, r := range c.Regions {
		k := regions.Key(r)
		if k == "" {
			add("regions", "empty region name")
			continue
		}
		if seen[k] {
			add("regions", "duplicate region %q", r)
		}
		seen[k] = true
	}
	if c.Workers < 0 {
		add("workers", "must not be negative, got %d", c.Workers)
	}
	if c.PadInches < 0 {
		add("pad_inches", "must not be negative, got %v", c.PadInches)
	}

	return errors.Join(errs...)
}

// RegionRole is the region name column role.
func (c Config) RegionRole() parser.Role {
	return parser.Role{Name: "region_name", Aliases: c.RegionColumn}
}

// BandRoles returns one column role per band.
func (c Config) BandRoles() []parser.Role {
	roles := make([]parser.Role, len(c.Bands))
	for i, b := range c.Bands {
		roles[i] = parser.Role{Name: roleName(b), Aliases: b.Aliases}
	}
	return roles
}

func roleName(b models.Band) string {
	if b.Label == "" {
		return b.Key
	}
	return strings.ReplaceAll(strings.ToLower(b.Label), " ", "_")
}

// DonutStyle returns the per-chart layout style.
func (c Config) DonutStyle() donut.Style {
	colors := make([]string, len(c.Bands))
	var contrast string
	for i, b := range c.Bands {
		colors[i] = b.Color
		if b.Key == c.ContrastBand {
			contrast = b.Color
		}
	}
	return donut.Style{
		WedgeWidth:      c.Donut.WedgeWidth,
		LabelMinPercent: c.Donut.LabelMinPercent,
		LabelFontDomain: c.Donut.LabelFontDomain,
		LabelFontRange:  c.Donut.LabelFontRange,
		NameFontSize:    c.Donut.NameFontSize,
		Colors:          colors,
		ContrastColor:   contrast,
		DarkLabelColor:  c.Donut.LabelDarkColor,
		LightLabelColor: c.Donut.LabelLightColor,
	}
}

// PanelSpec returns the composer settings. A nil font selects the built-in font.
func (c Config) PanelSpec(font *truetype.Font) render.PanelSpec {
	return render.PanelSpec{
		Rows:       c.Grid.Rows,
		Cols:       c.Grid.Cols,
		CellInches: c.Grid.CellInches,
		DPI:        c.DPI,
		Workers:    c.Workers,
		PadInches:  c.PadInches,
		Background: c.Background,
		Draw: render.DrawOptions{
			DPI:       c.DPI,
			AxisLimit: c.Donut.AxisLimit,
			EdgeColor: c.Donut.EdgeColor,
			EdgeWidth: c.Donut.EdgeWidth,
			NameColor: c.Donut.NameColor,
			Font:      font,
		},
		Legend: render.LegendOptions{
			FontSize:  c.Legend.FontSize,
			TextColor: c.Legend.TextColor,
			EdgeColor: c.Legend.EdgeColor,
			EdgeWidth: c.Legend.EdgeWidth,
		},
	}
}
