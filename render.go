package metatext

import (
	"bytes"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Render lays out entries in columns of opts.MaxLines rows and returns the
// color-tagged report. Lines are joined with "\n" and the result never ends
// with a newline. An empty entry list renders as "".
func Render(entries []Entry, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, entries, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders entries like [Render] and writes the report to w.
func Write(w io.Writer, entries []Entry, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	metrics, err := ComputeMetrics(entries, opts.MaxLines)
	if err != nil {
		return err
	}
	opts.Logger.V(1).Info("computed column metrics", "entries", len(entries), "columns", len(metrics), "rows", rowCount(len(entries), opts.MaxLines))

	lines := make([]strings.Builder, rowCount(len(entries), opts.MaxLines))
	var vf valueFormatter
	for i, e := range entries {
		col, row := columnRowOf(i, opts.MaxLines)
		vf.reset()
		for _, v := range e.Values {
			vf.write(v)
		}
		writeCell(&lines[row], e.Label, vf.String(), metrics[col], col < len(metrics)-1, opts)
	}

	for i := range lines {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, lines[i].String()); err != nil {
			return err
		}
	}
	return nil
}

func writeCell(sb *strings.Builder, label, value string, m ColumnMetrics, separated bool, opts Options) {
	spacer := string(opts.Spacer)

	sb.WriteString(opts.LabelColor)
	sb.WriteString(label)
	sb.WriteString(repeat(spacer, m.MaxLabelWidth-runewidth.StringWidth(label)))
	sb.WriteString(repeat(spacer, opts.MinSpaceFromValue-1))
	sb.WriteByte(' ')

	sb.WriteString(opts.ValueColor)
	sb.WriteString(value)
	if !separated {
		return
	}

	half := opts.SpaceBetweenColumns / 2
	sb.WriteString(repeat(" ", m.MaxValueWidth-runewidth.StringWidth(value)))
	sb.WriteString(repeat(" ", half))
	sb.WriteString(opts.SeparatorColor)
	sb.WriteString(opts.ColumnSeparator)
	sb.WriteString(repeat(" ", opts.SpaceBetweenColumns-1-half))
}

// repeat is strings.Repeat that treats a negative count as zero.
func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}
