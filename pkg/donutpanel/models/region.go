package models

// Band is one severity category of the chart, shared by every donut and the legend.
type Band struct {
	// Key is the short identifier of the band (e.g. "vl").
	Key string `json:"key" yaml:"key" mapstructure:"key"`
	// Label is the legend text (e.g. "Very Low").
	Label string `json:"label" yaml:"label" mapstructure:"label"`
	// Color is the fill color as a hex string (e.g. "#1F6F1F").
	Color string `json:"color" yaml:"color" mapstructure:"color"`
	// Aliases are the accepted header variants for the band's column, in preference order.
	Aliases []string `json:"aliases" yaml:"aliases" mapstructure:"aliases"`
}

// ColumnRef identifies a resolved column.
type ColumnRef struct {
	// Index is the 0-based column index in Table.Headers.
	Index int `json:"index"`
	// Header is the actual header text.
	Header string `json:"header"`
}

// ResolvedColumns maps the semantic roles to actual table columns.
type ResolvedColumns struct {
	// Region is the column holding region names.
	Region ColumnRef `json:"region"`
	// Bands holds one column per band, in band order.
	Bands []ColumnRef `json:"bands"`
}

// RegionRecord is one region's band values.
type RegionRecord struct {
	// Name is the trimmed region name as written in the source.
	Name string `json:"name"`
	// Values holds one finite, nonnegative value per band.
	Values []float64 `json:"values"`
	// Row is the 1-based source row (0 if unknown).
	Row int `json:"row,omitempty"`
}
