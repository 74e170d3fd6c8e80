package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Writer serializes values to an output stream in a selectable format.
type Writer struct {
	format Format
	out    io.Writer
}

// NewWriter creates a writer for the given format. Unknown formats fall back
// to JSON.
func NewWriter(format Format, out io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatJSON
	}
	return &Writer{format: format, out: out}
}

// NewStdoutWriter creates a writer targeting stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// Serialize encodes data to the configured output.
func (w *Writer) Serialize(_ context.Context, data any) error {
	switch w.format {
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return w.serializeTable(data)
	default:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		return nil
	}
}

// serializeTable renders data as a flattened FIELD/VALUE table. The value is
// round-tripped through JSON so arbitrary structs flatten uniformly.
func (w *Writer) serializeTable(data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to flatten for table output: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("failed to flatten for table output: %w", err)
	}

	var rows [][2]string
	flatten("", decoded, &rows)

	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
	}
	return tw.Flush()
}

func flatten(prefix string, v any, rows *[][2]string) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flatten(joinField(prefix, k), val[k], rows)
		}
	case []any:
		for i, item := range val {
			flatten(fmt.Sprintf("%s[%d]", prefix, i), item, rows)
		}
	case nil:
		*rows = append(*rows, [2]string{prefix, ""})
	default:
		*rows = append(*rows, [2]string{prefix, fmt.Sprintf("%v", val)})
	}
}

func joinField(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
