// Package metatext renders labelled values as aligned, color-tagged columns
// for on-screen info overlays such as image metadata or key-binding help.
//
// The central entry points are [Render] and [Write]. They take an ordered
// list of [Entry] values and an [Options] layout, and return one string
// with one line per row:
//
//	entries := []metatext.Entry{
//		metatext.NewEntry("Width", metatext.Int(1920), metatext.Text("px")),
//		metatext.NewEntry("Load time", metatext.Float(12.5), metatext.Text("ms")),
//	}
//	out, err := metatext.Render(entries, metatext.DefaultOptions())
//
// # Values
//
// An entry holds zero or more [Value] fragments that are concatenated
// without separators. [Int] is grouped by thousands ("1,234,567"), [Float]
// is grouped and shows two decimals ("1,234.50"), and [Text] is written
// as is. Use [FormatValue] and [FormatValues] to format values directly.
//
// # Layout
//
// Entries fill a column top to bottom, Options.MaxLines rows at a time,
// then continue in the next column. Labels in a column are padded with
// Options.Spacer to the widest label plus Options.MinSpaceFromValue.
// Every column but the last is padded to its widest value and followed by
// Options.ColumnSeparator, centered in Options.SpaceBetweenColumns.
// [ComputeMetrics] exposes the per-column widths.
//
// # Markup
//
// Options.LabelColor, Options.ValueColor and Options.SeparatorColor are
// written verbatim before every label, value and separator. The defaults
// use the "<textcolor=#rrggbb>" convention; tags are never closed. Build
// tags with [TextColor] or [ParseTextColor], and convert a report for a
// terminal with [Convert].
//
// # Overlays
//
// [FormatChannels] summarizes the channels of an image ("R:8 G:8 B:8").
// [ImageInfoEntries] and [ImageInfoMessage] build the image information
// overlay from an [ImageDescriptor]; [DescribeImageFile] fills one from a
// PNG, JPEG or GIF file. [LoadBindings], [KeyBindingEntries] and
// [KeyBindingsMessage] build the key-binding help from a YAML file.
//
// # Configuration
//
// [DefaultOptions] returns the overlay layout. [LoadOptions] reads a TOML
// profile on top of it.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidOptions]: unusable layout, e.g. MaxLines of zero
//   - [ErrUnexpectedValue]: a channel without a semantic
//   - [ErrDecode]: unreadable key-binding or image file
//   - [ErrUnsupportedFormat]: unknown output format
package metatext
