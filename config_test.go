package metatext_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/metatext"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadOptions(t *testing.T) {
	t.Parallel()
	path := writeProfile(t, `
max_lines = 12
min_space_from_value = 2
spacer = "-"
space_between_columns = 5
column_separator = "│"
label_color = "#006dff"
value_color = ""
`)
	opts, err := metatext.LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 12, opts.MaxLines)
	assert.Equal(t, 2, opts.MinSpaceFromValue)
	assert.Equal(t, '-', opts.Spacer)
	assert.Equal(t, 5, opts.SpaceBetweenColumns)
	assert.Equal(t, "│", opts.ColumnSeparator)
	assert.Equal(t, "<textcolor=#006dff>", opts.LabelColor)
	assert.Empty(t, opts.ValueColor)
	assert.Equal(t, metatext.DefaultSeparatorColor, opts.SeparatorColor)
}

func TestLoadOptionsKeepsDefaults(t *testing.T) {
	t.Parallel()
	path := writeProfile(t, "max_lines = 4\n")
	opts, err := metatext.LoadOptions(path)
	require.NoError(t, err)

	want := metatext.DefaultOptions()
	want.MaxLines = 4
	assert.Equal(t, want, opts)
}

func TestLoadOptionsErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		content string
		is      error
	}{
		"zero max lines":  {content: "max_lines = 0\n", is: metatext.ErrInvalidOptions},
		"long spacer":     {content: `spacer = ".."`, is: metatext.ErrInvalidOptions},
		"empty spacer":    {content: `spacer = ""`, is: metatext.ErrInvalidOptions},
		"bad color":       {content: `label_color = "teal"`, is: metatext.ErrInvalidOptions},
		"wrong type":      {content: `max_lines = "many"`, is: metatext.ErrInvalidOptions},
		"negative spaces": {content: "space_between_columns = -1\n", is: metatext.ErrInvalidOptions},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := metatext.LoadOptions(writeProfile(t, tt.content))
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	t.Parallel()
	_, err := metatext.LoadOptions(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
