package metatext

import (
	"fmt"
	"unicode/utf8"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// optionsFile is the on-disk form of Options. Colors are "#rrggbb" values
// rather than markup tags.
type optionsFile struct {
	MaxLines            int    `koanf:"max_lines"`
	MinSpaceFromValue   int    `koanf:"min_space_from_value"`
	Spacer              string `koanf:"spacer"`
	SpaceBetweenColumns int    `koanf:"space_between_columns"`
	ColumnSeparator     string `koanf:"column_separator"`
}

var colorKeys = []string{"label_color", "value_color", "separator_color"}

// LoadOptions reads a TOML layout profile from path. Keys missing from the
// file keep the values of [DefaultOptions]. A color key set to "" disables
// that tag.
//
//	max_lines = 12
//	min_space_from_value = 2
//	spacer = "."
//	space_between_columns = 3
//	column_separator = "|"
//	label_color = "#98f733"
//	value_color = "#ffffff"
//	separator_color = "#444444"
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return opts, fmt.Errorf("load options %s: %w", path, err)
	}

	raw := optionsFile{
		MaxLines:            opts.MaxLines,
		MinSpaceFromValue:   opts.MinSpaceFromValue,
		Spacer:              string(opts.Spacer),
		SpaceBetweenColumns: opts.SpaceBetweenColumns,
		ColumnSeparator:     opts.ColumnSeparator,
	}
	if err := k.Unmarshal("", &raw); err != nil {
		return opts, fmt.Errorf("%w: %s: %s", ErrInvalidOptions, path, err)
	}

	if utf8.RuneCountInString(raw.Spacer) != 1 {
		return opts, fmt.Errorf("%w: spacer must be a single character, got %q", ErrInvalidOptions, raw.Spacer)
	}
	spacer, _ := utf8.DecodeRuneInString(raw.Spacer)

	opts.MaxLines = raw.MaxLines
	opts.MinSpaceFromValue = raw.MinSpaceFromValue
	opts.Spacer = spacer
	opts.SpaceBetweenColumns = raw.SpaceBetweenColumns
	opts.ColumnSeparator = raw.ColumnSeparator

	targets := []*string{&opts.LabelColor, &opts.ValueColor, &opts.SeparatorColor}
	for i, key := range colorKeys {
		if !k.Exists(key) {
			continue
		}
		hex := k.String(key)
		if hex == "" {
			*targets[i] = ""
			continue
		}
		tag, err := ParseTextColor(hex)
		if err != nil {
			return opts, err
		}
		*targets[i] = tag
	}

	return opts, opts.Validate()
}
