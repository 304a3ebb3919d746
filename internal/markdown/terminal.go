package markdown

import (
	"github.com/charmbracelet/glamour"
)

// noMarginStyle is a JSON style that removes document margins.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// TerminalRenderer renders markdown as styled terminal output. Fenced jass and
// lua blocks are highlighted by whatever Chroma lexers are registered under
// those names.
type TerminalRenderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// NewTerminal creates a renderer wrapping at width. style is a glamour style
// name such as "dark" or "light"; empty means "dark".
// A fixed style avoids glamour's terminal background query, whose reply would
// leak into bubbletea's input.
func NewTerminal(width int, style string) (*TerminalRenderer, error) {
	if style == "" {
		style = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &TerminalRenderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *TerminalRenderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output.
func (r *TerminalRenderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}
