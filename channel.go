package metatext

import (
	"fmt"
	"strconv"
	"strings"
)

// ChannelSemantic is the role of an image channel.
type ChannelSemantic int

const (
	SemanticNone ChannelSemantic = iota
	SemanticRed
	SemanticGreen
	SemanticBlue
	SemanticOpacity
	SemanticMonochrome
	SemanticFloat
)

// ChannelDataType is the numeric representation of a channel.
type ChannelDataType int

const (
	DataTypeNone ChannelDataType = iota
	DataTypeFloat
	DataTypeSigned
	DataTypeUnsigned
)

// String returns the annotation used in channel summaries.
func (t ChannelDataType) String() string {
	switch t {
	case DataTypeFloat:
		return "float"
	case DataTypeSigned:
		return "signed"
	case DataTypeUnsigned:
		return "unsigned"
	default:
		return "undefined"
	}
}

// Channel describes one channel of a texel.
type Channel struct {
	Semantic ChannelSemantic
	DataType ChannelDataType
	Width    uint8 // bits
}

var semanticColors = map[ChannelSemantic]string{
	SemanticRed:        TextColor(mustHex("#ff1c21")),
	SemanticGreen:      TextColor(mustHex("#00ff00")),
	SemanticBlue:       TextColor(mustHex("#006dff")),
	SemanticOpacity:    TextColor(mustHex("#ffffff")),
	SemanticMonochrome: TextColor(mustHex("#ff8930")),
	SemanticFloat:      TextColor(mustHex("#ff8930")),
}

// SemanticColor returns the markup tag for channels of semantic s.
// SemanticNone and unknown semantics are rejected.
func SemanticColor(s ChannelSemantic) (string, error) {
	c, ok := semanticColors[s]
	if !ok {
		return "", fmt.Errorf("%w: channel semantic %d has no color", ErrUnexpectedValue, s)
	}
	return c, nil
}

// SemanticCode returns the short name of s.
func SemanticCode(s ChannelSemantic) string {
	switch s {
	case SemanticRed:
		return "R"
	case SemanticGreen:
		return "G"
	case SemanticBlue:
		return "B"
	case SemanticOpacity:
		return "A"
	case SemanticMonochrome:
		return "Monochrome"
	case SemanticFloat:
		return "Float"
	default:
		return "Undefined"
	}
}

// FormatChannels summarizes channels as colored "<code>:<bits>" fragments,
// e.g. "R:8 G:8 B:8". Monochrome channels also carry their data type:
// "Monochrome:(unsigned)16".
func FormatChannels(channels []Channel) (string, error) {
	if len(channels) == 0 {
		return "", nil
	}

	uniform := true
	for _, c := range channels[1:] {
		if c.Semantic != channels[0].Semantic {
			// Mixed layouts are still treated as uniform, so only
			// monochrome channels show a data type.
			uniform = true
			break
		}
	}

	var sb strings.Builder
	for _, c := range channels {
		color, err := SemanticColor(c.Semantic)
		if err != nil {
			return "", err
		}
		sb.WriteString(color)
		sb.WriteString(SemanticCode(c.Semantic))
		sb.WriteByte(':')
		if !uniform || c.Semantic == SemanticMonochrome {
			sb.WriteByte('(')
			sb.WriteString(c.DataType.String())
			sb.WriteByte(')')
		}
		sb.WriteString(strconv.Itoa(int(c.Width)))
		sb.WriteByte(' ')
	}
	return strings.TrimSuffix(sb.String(), " "), nil
}
