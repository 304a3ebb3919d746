package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lep/jassbot/internal/jassbot"
	"github.com/lep/jassbot/internal/syntax"
	"github.com/lep/jassbot/internal/ui/searchbox"
)

var searchCmd = &cobra.Command{
	Use:   "search [QUERY]",
	Short: "Search natives and functions by type",
	Long: `Open a live search box: results refresh while you type. Enter prints the
selected result and exits.

With --once the query runs a single time and the results are printed.

Examples:
  jassbot search
  jassbot search "takes unit returns real"
  jassbot search --once "GetUnit"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

var searchOnce bool

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolVar(&searchOnce, "once", false, "run the query once and print the results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	client := jassbot.NewClient(cfg.API, jassbot.WithTimeout(searchTimeout()))

	if searchOnce {
		if err := initStderrLogging(); err != nil {
			return err
		}
		if err := applyTheme(); err != nil {
			return err
		}
		if strings.TrimSpace(query) == "" {
			return fmt.Errorf("--once needs a query")
		}
		h := loadHighlighter(cmd.Context(), cfg.DB, "")
		return searchOnceTo(cmd.Context(), cmd.OutOrStdout(), client, h, query)
	}

	cleanup, err := initFileLogging("jassbot-search")
	if err != nil {
		return err
	}
	defer cleanup()
	if err := applyTheme(); err != nil {
		return err
	}

	model := searchbox.New(searchbox.Config{
		Searcher:    client,
		Highlighter: loadHighlighter(context.Background(), cfg.DB, ""),
		Debounce:    cfg.Search.Debounce,
		Timeout:     searchTimeout(),
		Query:       query,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running search: %w", err)
	}
	if m, ok := final.(searchbox.Model); ok && m.Chosen() != "" {
		fmt.Fprintln(cmd.OutOrStdout(), m.Chosen())
	}
	return nil
}

// searchOnceTo prints the explanation of query followed by one highlighted
// result per line.
func searchOnceTo(ctx context.Context, w io.Writer, s jassbot.Searcher, h *syntax.Highlighter, query string) error {
	res, err := s.Search(ctx, query)
	if err != nil {
		return err
	}
	if explain, err := res.QueryParsed.Explain(); err == nil && explain != "" {
		if _, err := fmt.Fprintf(w, "# %s\n", explain); err != nil {
			return err
		}
	}
	if len(res.Results) == 0 {
		_, err := fmt.Fprintln(w, "no results")
		return err
	}
	for _, r := range res.Results {
		if _, err := fmt.Fprintln(w, h.HighlightANSI(r, syntax.Jass)); err != nil {
			return err
		}
	}
	return nil
}
