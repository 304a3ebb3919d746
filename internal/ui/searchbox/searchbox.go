// Package searchbox provides the live type search: a text input whose results
// refresh a short while after the user stops typing.
package searchbox

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/lep/jassbot/internal/jassbot"
	"github.com/lep/jassbot/internal/log"
	"github.com/lep/jassbot/internal/syntax"
	"github.com/lep/jassbot/internal/ui/styles"
)

// DefaultDebounce is the pause after the last keystroke before a search runs.
const DefaultDebounce = 100 * time.Millisecond

// chrome is the number of lines around the result list: input, explain line,
// blank line and footer.
const chrome = 4

const footer = "↑/↓ select • enter choose • esc quit"

// Config configures the search box.
type Config struct {
	Searcher    jassbot.Searcher
	Highlighter *syntax.Highlighter
	Debounce    time.Duration
	Timeout     time.Duration
	// Query is typed into the box on start.
	Query string
}

// debounceMsg fires Debounce after a keystroke. Only the one carrying the
// current version starts a search.
type debounceMsg struct {
	version int
}

// ResultsMsg carries the answer of one search.
type ResultsMsg struct {
	Version int
	Query   string
	Result  *jassbot.Result
	Err     error
}

// Model is the search box.
type Model struct {
	input    textinput.Model
	searcher jassbot.Searcher
	hl       *syntax.Highlighter
	debounce time.Duration
	timeout  time.Duration

	// version counts edits; responses for older versions are stale.
	version int
	loading bool

	query    string
	results  []string
	explain  string
	err      error
	selected int
	chosen   string

	width  int
	height int
}

// New creates a search box.
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. takes unit returns real"
	ti.Prompt = "> "
	ti.PromptStyle = styles.SelectionIndicatorStyle
	ti.PlaceholderStyle = ti.PlaceholderStyle.Foreground(styles.TextPlaceholderColor)
	ti.SetValue(cfg.Query)
	ti.Focus()

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = jassbot.DefaultTimeout
	}
	hl := cfg.Highlighter
	if hl == nil {
		hl = syntax.NewHighlighter(nil, "")
	}
	return Model{
		input:    ti,
		searcher: cfg.Searcher,
		hl:       hl,
		debounce: debounce,
		timeout:  timeout,
		width:    80,
		height:   24,
	}
}

// Init starts the cursor blinking and searches for the initial query.
func (m Model) Init() tea.Cmd {
	if m.input.Value() == "" {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, m.scheduleSearch())
}

// Value returns the text in the box.
func (m Model) Value() string {
	return m.input.Value()
}

// Results returns the results currently shown.
func (m Model) Results() []string {
	return m.results
}

// Explain returns the explanation of the parsed query.
func (m Model) Explain() string {
	return m.explain
}

// Err returns the error of the last search, if it failed.
func (m Model) Err() error {
	return m.err
}

// Loading reports whether a search is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// Selected returns the index of the highlighted result.
func (m Model) Selected() int {
	return m.selected
}

// Chosen returns the result confirmed with enter, or "".
func (m Model) Chosen() string {
	return m.chosen
}

func (m Model) scheduleSearch() tea.Cmd {
	version := m.version
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return debounceMsg{version: version}
	})
}

func (m Model) search(version int, query string) tea.Cmd {
	searcher, timeout := m.searcher, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		res, err := searcher.Search(ctx, query)
		return ResultsMsg{Version: version, Query: query, Result: res, Err: err}
	}
}

// Update handles keys, debounce ticks and search results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if len(m.results) > 0 {
				m.chosen = m.results[m.selected]
			}
			return m, tea.Quit
		case tea.KeyUp, tea.KeyCtrlP:
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case tea.KeyDown, tea.KeyCtrlN:
			if m.selected < len(m.results)-1 {
				m.selected++
			}
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() == before {
			return m, cmd
		}
		m.version++
		return m, tea.Batch(cmd, m.scheduleSearch())

	case debounceMsg:
		if msg.version != m.version {
			return m, nil
		}
		query := strings.TrimSpace(m.input.Value())
		if query == "" {
			m.loading = false
			m.query, m.results, m.explain, m.err = "", nil, "", nil
			m.selected = 0
			return m, nil
		}
		if m.searcher == nil {
			return m, nil
		}
		m.loading = true
		return m, m.search(msg.version, query)

	case ResultsMsg:
		if msg.Version != m.version {
			log.Debug(log.CatTUI, "Dropping stale search results", "query", msg.Query, "version", msg.Version, "current", m.version)
			return m, nil
		}
		m.loading = false
		m.query = msg.Query
		m.selected = 0
		if msg.Err != nil {
			log.ErrorErr(log.CatTUI, "Search failed", msg.Err, "query", msg.Query)
			m.err, m.results, m.explain = msg.Err, nil, ""
			return m, nil
		}
		m.err = nil
		m.results = msg.Result.Results
		explain, err := msg.Result.QueryParsed.Explain()
		if err != nil {
			log.Warn(log.CatTUI, "Cannot explain parsed query", "query", msg.Query, "error", err)
		}
		m.explain = explain
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the input, the explained query and the highlighted results.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.input.View())
	sb.WriteByte('\n')

	switch {
	case m.err != nil:
		sb.WriteString(styles.ErrorStyle.Render(truncate.StringWithTail("search failed: "+m.err.Error(), uint(max(m.width, 1)), "…")))
	case m.loading:
		sb.WriteString(styles.MutedStyle.Render("searching…"))
	case m.explain != "":
		sb.WriteString(styles.MutedStyle.Render(wordwrap.String(m.explain, max(m.width, 1))))
	}
	sb.WriteString("\n\n")

	rows := max(m.height-chrome, 1)
	start := 0
	if m.selected >= rows {
		start = m.selected - rows + 1
	}
	for i := start; i < len(m.results) && i < start+rows; i++ {
		prefix := "  "
		if i == m.selected {
			prefix = styles.SelectionIndicatorStyle.Render("> ")
		}
		line := m.hl.HighlightANSI(m.results[i], syntax.Jass)
		sb.WriteString(prefix)
		sb.WriteString(truncate.StringWithTail(line, uint(max(m.width-2, 1)), "…"))
		sb.WriteByte('\n')
	}
	if m.query != "" && len(m.results) == 0 && m.err == nil && !m.loading {
		sb.WriteString(styles.MutedStyle.Render("no results"))
		sb.WriteByte('\n')
	}

	sb.WriteString(truncate.String(styles.StatusBarStyle.Render(footer), uint(max(m.width, 1))))
	return sb.String()
}
