package serializer

import (
	"path/filepath"
	"strings"
)

// Format selects the output encoding.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// IsUnknown reports whether the format is none of the supported encodings.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatYAML, FormatJSON, FormatTable:
		return false
	}
	return true
}

// FormatFromPath guesses the output format from a file extension, defaulting
// to YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}
