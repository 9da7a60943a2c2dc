package models

// RunReport summarizes one panel generation.
type RunReport struct {
	// Source is where the data came from.
	Source Source `json:"source"`
	// Columns are the resolved columns.
	Columns ResolvedColumns `json:"columns"`
	// Regions lists the drawn regions in cell order.
	Regions []string `json:"regions"`
	// Missing lists canonical regions absent from the input.
	Missing []string `json:"missing,omitempty"`
	// Duplicates lists region names whose later rows were dropped.
	Duplicates []string `json:"duplicates,omitempty"`
	// Output is the written image path.
	Output string `json:"output"`
	// Width is the final image width in pixels.
	Width int `json:"width"`
	// Height is the final image height in pixels.
	Height int `json:"height"`
	// Bytes is the size of the written file.
	Bytes int64 `json:"bytes"`
}
