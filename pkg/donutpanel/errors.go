package donutpanel

import (
	"errors"
	"fmt"

	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/parser"
	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/render"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = parser.ErrInvalidFormat

// ErrUnsupportedInput indicates the input file extension is not readable.
var ErrUnsupportedInput = parser.ErrUnsupportedInput

// ErrNoSheets indicates the workbook contains no sheets.
var ErrNoSheets = parser.ErrNoSheets

// ErrEmptyTable indicates the input has no header row.
var ErrEmptyTable = parser.ErrEmptyTable

// MissingColumnError is returned when no accepted header variant of a role is
// present. It is fatal and raised before any rendering.
type MissingColumnError = parser.MissingColumnError

// RenderError wraps the failure of a single panel cell.
type RenderError = render.CellError

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, format string, args ...any) *ConfigError {
	return &ConfigError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}
