package metatext

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// floatFormat is only used for NaN and infinities.
const floatFormat = "#,###.##"

// Value is one displayed fragment of an entry. It is implemented only by
// [Int], [Float] and [Text].
type Value interface {
	value()
}

// Int is a whole number rendered with thousands separators.
type Int int64

// Float is rendered with thousands separators and two decimals.
type Float float64

// Text is rendered as is.
type Text string

func (Int) value()   {}
func (Float) value() {}
func (Text) value()  {}

// FormatValue returns the display text of v. A nil value yields "".
func FormatValue(v Value) string {
	var f valueFormatter
	f.write(v)
	return f.String()
}

// FormatValues concatenates the display text of vs without separators,
// e.g. Int(1920) followed by Text("px") gives "1,920px".
func FormatValues(vs []Value) string {
	var f valueFormatter
	for _, v := range vs {
		f.write(v)
	}
	return f.String()
}

// valueFormatter accumulates formatted values. Each call owns its own
// formatter so no scratch state is shared between goroutines.
type valueFormatter struct {
	sb strings.Builder
}

func (f *valueFormatter) write(v Value) {
	switch v := v.(type) {
	case Int:
		f.sb.WriteString(humanize.Comma(int64(v)))
	case Float:
		f.sb.WriteString(formatFloat(float64(v)))
	case Text:
		f.sb.WriteString(string(v))
	}
}

// formatFloat rounds v to two decimals and groups the whole part by
// thousands. The whole part is grouped as a big.Int so values beyond the
// int64 range keep their digits.
func formatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return humanize.FormatFloat(floatFormat, v)
	}
	digits := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)
	whole, frac, _ := strings.Cut(digits, ".")
	n, _ := new(big.Int).SetString(whole, 10)
	sign := ""
	if v < 0 && digits != "0.00" {
		sign = "-"
	}
	return sign + humanize.BigComma(n) + "." + frac
}

func (f *valueFormatter) reset() { f.sb.Reset() }

func (f *valueFormatter) String() string { return f.sb.String() }
