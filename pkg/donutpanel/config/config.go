// Package config loads a donutpanel.Config from a YAML, TOML or JSON file
// with environment variable overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/donutpanel-go/pkg/donutpanel"
)

// EnvPrefix prefixes environment overrides, e.g. DONUTPANEL_GRID_ROWS.
const EnvPrefix = "DONUTPANEL"

// Load reads the configuration. An empty path yields the defaults plus
// environment overrides. Keys missing from the file keep their defaults.
func Load(path string) (donutpanel.Config, error) {
	v := viper.New()
	setDefaults(v, donutpanel.DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return donutpanel.Config{}, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	var cfg donutpanel.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return donutpanel.Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML in the layout Load accepts.
func Marshal(cfg donutpanel.Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// setDefaults registers every key so that environment overrides apply even
// without a config file.
func setDefaults(v *viper.Viper, d donutpanel.Config) {
	// Grid
	v.SetDefault("grid.rows", d.Grid.Rows)
	v.SetDefault("grid.cols", d.Grid.Cols)
	v.SetDefault("grid.cell_inches", d.Grid.CellInches)
	v.SetDefault("dpi", d.DPI)

	// Donut
	v.SetDefault("donut.wedge_width", d.Donut.WedgeWidth)
	v.SetDefault("donut.edge_width", d.Donut.EdgeWidth)
	v.SetDefault("donut.edge_color", d.Donut.EdgeColor)
	v.SetDefault("donut.label_min_percent", d.Donut.LabelMinPercent)
	v.SetDefault("donut.label_font_domain.min", d.Donut.LabelFontDomain.Min)
	v.SetDefault("donut.label_font_domain.max", d.Donut.LabelFontDomain.Max)
	v.SetDefault("donut.label_font_range.min", d.Donut.LabelFontRange.Min)
	v.SetDefault("donut.label_font_range.max", d.Donut.LabelFontRange.Max)
	v.SetDefault("donut.label_dark_color", d.Donut.LabelDarkColor)
	v.SetDefault("donut.label_light_color", d.Donut.LabelLightColor)
	v.SetDefault("donut.name_font_size", d.Donut.NameFontSize)
	v.SetDefault("donut.name_color", d.Donut.NameColor)
	v.SetDefault("donut.axis_limit", d.Donut.AxisLimit)

	// Legend
	v.SetDefault("legend.font_size", d.Legend.FontSize)
	v.SetDefault("legend.text_color", d.Legend.TextColor)
	v.SetDefault("legend.edge_color", d.Legend.EdgeColor)
	v.SetDefault("legend.edge_width", d.Legend.EdgeWidth)

	// Data
	v.SetDefault("bands", d.Bands)
	v.SetDefault("contrast_band", d.ContrastBand)
	v.SetDefault("region_column", d.RegionColumn)
	v.SetDefault("regions", d.Regions)
	v.SetDefault("sheets", d.Sheets)

	// Output
	v.SetDefault("font_path", d.FontPath)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("pad_inches", d.PadInches)
	v.SetDefault("background", d.Background)
}
