package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title  lipgloss.Style
	basque lipgloss.Style
	faint  lipgloss.Style
	warn   lipgloss.Style
	bold   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}),
		basque: r.NewStyle().Bold(true).Width(22).
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}),
		faint: r.NewStyle().Faint(true),
		warn: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"}),
		bold: r.NewStyle().Bold(true),
	}
}

// emphasis renders one explanation line: "*x*" spans become bold and a
// leading "* " becomes a bullet.
func (s styles) emphasis(line string) string {
	prefix := ""
	if rest, ok := strings.CutPrefix(line, "* "); ok {
		prefix, line = "  • ", rest
	}

	parts := strings.Split(line, "*")
	if len(parts)%2 == 0 {
		// unbalanced, print as is
		return prefix + line
	}
	var b strings.Builder
	b.WriteString(prefix)
	for i, part := range parts {
		if i%2 == 1 {
			b.WriteString(s.bold.Render(part))
			continue
		}
		b.WriteString(part)
	}
	return b.String()
}
