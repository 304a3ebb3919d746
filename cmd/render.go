package cmd

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lep/jassbot/internal/document"
	"github.com/lep/jassbot/internal/markdown"
	"github.com/lep/jassbot/internal/syntax"
)

var renderCmd = &cobra.Command{
	Use:   "render [FILE|-]",
	Short: "Render markdown or HTML with highlighted code blocks",
	Long: `Convert a markdown file to HTML and highlight every code element in it.
HTML input (a .html file, or --html) is only highlighted. Code already
highlighted by pandoc (class "sourceCode") is left alone.

Examples:
  jassbot render notes.md > notes.html
  pandoc -t html guide.md | jassbot render --html -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

var (
	renderHTMLInput bool
	renderDocRoot   string
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().BoolVar(&renderHTMLInput, "html", false, "input is HTML, not markdown")
	renderCmd.Flags().StringVar(&renderDocRoot, "doc-root", "/doc", "link prefix for documented names")
}

func runRender(cmd *cobra.Command, args []string) error {
	cleanup, err := initFileLogging("jassbot-render")
	if err != nil {
		return err
	}
	defer cleanup()

	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	src, err := readInput(cmd.InOrStdin(), name)
	if err != nil {
		return err
	}
	isHTML := renderHTMLInput || strings.EqualFold(filepath.Ext(name), ".html")

	h := loadHighlighter(cmd.Context(), cfg.DB, renderDocRoot)
	return renderDocument(cmd.Context(), cmd.OutOrStdout(), h, src, isHTML)
}

func renderDocument(ctx context.Context, w io.Writer, h *syntax.Highlighter, src string, isHTML bool) error {
	fragment := src
	if !isHTML {
		var err error
		if fragment, err = markdown.NewHTML().Render(ctx, src); err != nil {
			return err
		}
	}
	out, err := document.Highlight(h, fragment)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
