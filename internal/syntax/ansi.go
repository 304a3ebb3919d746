package syntax

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI renders units for a terminal. Linked units are underlined. Whitespace and
// newlines are written unstyled so that line structure survives.
func ANSI(units []Unit) string {
	var sb strings.Builder
	for _, u := range units {
		switch u.Category {
		case Whitespace, Other:
			if strings.TrimSpace(u.Text) == "" {
				sb.WriteString(u.Text)
				continue
			}
		}
		style := u.Category.Style().TabWidth(lipgloss.NoTabConversion)
		if u.Linked() {
			style = style.Underline(true)
		}
		// Multi-line tokens (comments, long strings) are styled per line.
		lines := strings.Split(u.Text, "\n")
		for i, line := range lines {
			if i > 0 {
				sb.WriteByte('\n')
			}
			if line != "" {
				sb.WriteString(style.Render(line))
			}
		}
	}
	return sb.String()
}

// HighlightANSI tokenizes text in lang and renders it for a terminal.
func (h *Highlighter) HighlightANSI(text string, lang Language) string {
	return ANSI(h.Highlight(text, lang))
}
