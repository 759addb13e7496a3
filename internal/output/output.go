package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mj1618/tabsense/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (use yaml or json)", s)
	}
}

// TreeResult is the top-level output of the `tree` command.
type TreeResult struct {
	Window   model.Window    `yaml:"window"           json:"window"`
	Anchor   string          `yaml:"anchor,omitempty" json:"anchor,omitempty"`
	TS       int64           `yaml:"ts"               json:"ts"`
	Elements []model.Element `yaml:"elements"         json:"elements"`
}

// TreeFlatResult is the top-level output when --flat is used.
type TreeFlatResult struct {
	Window   model.Window        `yaml:"window"           json:"window"`
	Anchor   string              `yaml:"anchor,omitempty" json:"anchor,omitempty"`
	TS       int64               `yaml:"ts"               json:"ts"`
	Elements []model.FlatElement `yaml:"elements"         json:"elements"`
}

// LocateResult is the output of the `locate` command.
type LocateResult struct {
	Window  model.Window  `yaml:"window"           json:"window"`
	Anchor  string        `yaml:"anchor,omitempty" json:"anchor,omitempty"`
	Element model.Element `yaml:"element"          json:"element"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	return Fprint(os.Stdout, OutputFormat, PrettyOutput, v)
}

// Fprint serializes v to w in format f.
func Fprint(w io.Writer, f Format, pretty bool, v interface{}) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, v, pretty)
	case FormatYAML:
		return WriteYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", f)
	}
}

// WriteJSON serializes v to w as JSON, one line unless pretty.
func WriteJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// WriteYAML serializes v to w as YAML.
func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
