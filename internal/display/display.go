// Package display turns report markup into text for a terminal.
package display

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tagPattern matches a color tag. A color applies until the next tag or the
// end of the line.
var tagPattern = regexp.MustCompile(`<textcolor=(#[0-9a-fA-F]{6}|#[0-9a-fA-F]{3})>`)

// ANSI renders markup with the default lipgloss renderer, which drops colors
// when stdout is not a terminal.
func ANSI(markup string) string {
	return ANSIWith(lipgloss.DefaultRenderer(), markup)
}

// ANSIWith renders every colored run of markup with a foreground style from
// r. Text before the first tag of a line is left unstyled.
func ANSIWith(r *lipgloss.Renderer, markup string) string {
	lines := strings.Split(markup, "\n")
	for i, line := range lines {
		lines[i] = styleLine(r, line)
	}
	return strings.Join(lines, "\n")
}

// Strip removes all color tags from markup.
func Strip(markup string) string {
	return tagPattern.ReplaceAllString(markup, "")
}

func styleLine(r *lipgloss.Renderer, line string) string {
	var sb strings.Builder
	color := ""
	last := 0
	for _, m := range tagPattern.FindAllStringSubmatchIndex(line, -1) {
		writeRun(r, &sb, line[last:m[0]], color)
		color = line[m[2]:m[3]]
		last = m[1]
	}
	writeRun(r, &sb, line[last:], color)
	return sb.String()
}

func writeRun(r *lipgloss.Renderer, sb *strings.Builder, text, color string) {
	if text == "" {
		return
	}
	if color == "" {
		sb.WriteString(text)
		return
	}
	sb.WriteString(r.NewStyle().Foreground(lipgloss.Color(color)).Render(text))
}
