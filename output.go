package metatext

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/metatext/internal/display"
)

// Format selects how a report is emitted.
type Format string

const (
	Markup Format = "markup" // color tags kept verbatim
	Plain  Format = "plain"  // color tags removed
	ANSI   Format = "ansi"   // color tags rendered as terminal colors
	JSON   Format = "json"   // entries as label/value objects
	YAML   Format = "yaml"   // entries as label/value mappings
)

var formats = []Format{Markup, Plain, ANSI, JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Structured reports whether f encodes entries rather than text.
func (f Format) Structured() bool { return f == JSON || f == YAML }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Convert turns report markup into text of a text format.
func Convert(f Format, markup string) (string, error) {
	switch f {
	case Markup:
		return markup, nil
	case Plain:
		return display.Strip(markup), nil
	case ANSI:
		return display.ANSI(markup), nil
	default:
		return "", fmt.Errorf("%w: %q is not a text format", ErrUnsupportedFormat, f)
	}
}

// WriteEntries writes entries to w in format f. Text formats render the
// report with opts; structured formats encode each entry with its formatted
// value, color tags removed.
func WriteEntries(w io.Writer, f Format, entries []Entry, opts Options) error {
	switch f {
	case JSON:
		return writeJSON(w, records(entries))
	case YAML:
		return writeYAML(w, records(entries))
	}
	report, err := Render(entries, opts)
	if err != nil {
		return err
	}
	out, err := Convert(f, report)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

type record struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

func records(entries []Entry) []record {
	out := make([]record, len(entries))
	for i, e := range entries {
		out[i] = record{Label: e.Label, Value: display.Strip(FormatValues(e.Values))}
	}
	return out
}

func writeJSON(w io.Writer, recs []record) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(recs)
}

func writeYAML(w io.Writer, recs []record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(recs); err != nil {
		return err
	}
	return enc.Close()
}
