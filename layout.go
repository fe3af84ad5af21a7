package metatext

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// ColumnMetrics holds the widest label and the widest formatted value of
// all entries placed in one column.
type ColumnMetrics struct {
	MaxLabelWidth int
	MaxValueWidth int
}

// ComputeMetrics assigns entries to columns of maxLines rows, filling each
// column top to bottom before moving right, and returns the widths needed to
// align every column. An empty entry list yields no columns.
func ComputeMetrics(entries []Entry, maxLines int) ([]ColumnMetrics, error) {
	if maxLines <= 0 {
		return nil, fmt.Errorf("%w: max lines must be positive, got %d", ErrInvalidOptions, maxLines)
	}
	metrics := make([]ColumnMetrics, columnCount(len(entries), maxLines))
	for i, e := range entries {
		col, _ := columnRowOf(i, maxLines)
		m := &metrics[col]
		if w := runewidth.StringWidth(e.Label); w > m.MaxLabelWidth {
			m.MaxLabelWidth = w
		}
		if w := runewidth.StringWidth(FormatValues(e.Values)); w > m.MaxValueWidth {
			m.MaxValueWidth = w
		}
	}
	return metrics, nil
}

// columnRowOf is the placement shared by measuring and rendering.
func columnRowOf(index, maxLines int) (column, row int) {
	return index / maxLines, index % maxLines
}

func columnCount(n, maxLines int) int {
	return (n + maxLines - 1) / maxLines
}

func rowCount(n, maxLines int) int {
	return min(n, maxLines)
}
