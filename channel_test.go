package metatext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/metatext"
)

const (
	red    = "<textcolor=#ff1c21>"
	green  = "<textcolor=#00ff00>"
	blue   = "<textcolor=#006dff>"
	white  = "<textcolor=#ffffff>"
	orange = "<textcolor=#ff8930>"
)

func rgb(width uint8, semantics ...metatext.ChannelSemantic) []metatext.Channel {
	channels := make([]metatext.Channel, len(semantics))
	for i, s := range semantics {
		channels[i] = metatext.Channel{Semantic: s, DataType: metatext.DataTypeUnsigned, Width: width}
	}
	return channels
}

func TestFormatChannels(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		channels []metatext.Channel
		want     string
	}{
		"rgb 8 bit": {
			channels: rgb(8, metatext.SemanticRed, metatext.SemanticGreen, metatext.SemanticBlue),
			want:     red + "R:8 " + green + "G:8 " + blue + "B:8",
		},
		"rgba 16 bit": {
			channels: rgb(16, metatext.SemanticRed, metatext.SemanticGreen, metatext.SemanticBlue, metatext.SemanticOpacity),
			want:     red + "R:16 " + green + "G:16 " + blue + "B:16 " + white + "A:16",
		},
		"monochrome always annotated": {
			channels: rgb(16, metatext.SemanticMonochrome),
			want:     orange + "Monochrome:(unsigned)16",
		},
		"float channel": {
			channels: []metatext.Channel{{Semantic: metatext.SemanticFloat, DataType: metatext.DataTypeFloat, Width: 32}},
			want:     orange + "Float:32",
		},
		"empty": {
			channels: nil,
			want:     "",
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := metatext.FormatChannels(tt.channels)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Mixed semantics keep the compact form even when data types differ.
func TestFormatChannelsMixedSemanticsNotAnnotated(t *testing.T) {
	t.Parallel()
	channels := []metatext.Channel{
		{Semantic: metatext.SemanticRed, DataType: metatext.DataTypeSigned, Width: 8},
		{Semantic: metatext.SemanticOpacity, DataType: metatext.DataTypeFloat, Width: 32},
		{Semantic: metatext.SemanticMonochrome, DataType: metatext.DataTypeUnsigned, Width: 8},
	}
	got, err := metatext.FormatChannels(channels)
	require.NoError(t, err)
	assert.Equal(t, red+"R:8 "+white+"A:32 "+orange+"Monochrome:(unsigned)8", got)
}

func TestFormatChannelsRejectsNoneSemantic(t *testing.T) {
	t.Parallel()
	channels := rgb(8, metatext.SemanticRed, metatext.SemanticNone)
	got, err := metatext.FormatChannels(channels)
	assert.ErrorIs(t, err, metatext.ErrUnexpectedValue)
	assert.Empty(t, got)
}

func TestSemanticColor(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		semantic metatext.ChannelSemantic
		want     string
		wantErr  require.ErrorAssertionFunc
	}{
		"red":        {semantic: metatext.SemanticRed, want: red, wantErr: require.NoError},
		"green":      {semantic: metatext.SemanticGreen, want: green, wantErr: require.NoError},
		"blue":       {semantic: metatext.SemanticBlue, want: blue, wantErr: require.NoError},
		"opacity":    {semantic: metatext.SemanticOpacity, want: white, wantErr: require.NoError},
		"monochrome": {semantic: metatext.SemanticMonochrome, want: orange, wantErr: require.NoError},
		"float":      {semantic: metatext.SemanticFloat, want: orange, wantErr: require.NoError},
		"none":       {semantic: metatext.SemanticNone, want: "", wantErr: require.Error},
		"unknown":    {semantic: metatext.ChannelSemantic(42), want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := metatext.SemanticColor(tt.semantic)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSemanticCode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "R", metatext.SemanticCode(metatext.SemanticRed))
	assert.Equal(t, "G", metatext.SemanticCode(metatext.SemanticGreen))
	assert.Equal(t, "B", metatext.SemanticCode(metatext.SemanticBlue))
	assert.Equal(t, "A", metatext.SemanticCode(metatext.SemanticOpacity))
	assert.Equal(t, "Monochrome", metatext.SemanticCode(metatext.SemanticMonochrome))
	assert.Equal(t, "Float", metatext.SemanticCode(metatext.SemanticFloat))
	assert.Equal(t, "Undefined", metatext.SemanticCode(metatext.SemanticNone))
}

func TestChannelDataTypeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "float", metatext.DataTypeFloat.String())
	assert.Equal(t, "signed", metatext.DataTypeSigned.String())
	assert.Equal(t, "unsigned", metatext.DataTypeUnsigned.String())
	assert.Equal(t, "undefined", metatext.DataTypeNone.String())
}
