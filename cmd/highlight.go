package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lep/jassbot/internal/syntax"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [FILE|-]",
	Short: "Highlight JASS or Lua code",
	Long: `Highlight a JASS or Lua file (or stdin) for a terminal, as HTML spans, or
as a JSON list of tokens. Names documented in the docs database are recognised
and, in HTML, linked to their documentation page.

Examples:
  jassbot highlight war3map.j
  jassbot highlight --lang lua --format html war3map.lua
  echo 'call BJDebugMsg("hi")' | jassbot highlight --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHighlight,
}

type highlightOptions struct {
	Lang    string
	Format  string
	DocRoot string
}

var highlightOpts highlightOptions

func init() {
	rootCmd.AddCommand(highlightCmd)

	highlightCmd.Flags().StringVarP(&highlightOpts.Lang, "lang", "l", "",
		"language: jass or lua (default: from the file extension, else jass)")
	highlightCmd.Flags().StringVarP(&highlightOpts.Format, "format", "f", "ansi",
		"output format: ansi, html or json")
	highlightCmd.Flags().StringVar(&highlightOpts.DocRoot, "doc-root", "/doc",
		"link prefix for documented names in html and json output")
}

func runHighlight(cmd *cobra.Command, args []string) error {
	cleanup, err := initFileLogging("jassbot-highlight")
	if err != nil {
		return err
	}
	defer cleanup()
	if err := applyTheme(); err != nil {
		return err
	}

	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	src, err := readInput(cmd.InOrStdin(), name)
	if err != nil {
		return err
	}

	opts := highlightOpts
	if opts.Lang == "" {
		opts.Lang = languageFromFilename(name)
	}
	h := loadHighlighter(cmd.Context(), cfg.DB, opts.DocRoot)
	return writeHighlighted(cmd.OutOrStdout(), h, src, opts)
}

// languageFromFilename guesses the language from a file extension.
func languageFromFilename(name string) string {
	if strings.EqualFold(filepath.Ext(name), ".lua") {
		return "lua"
	}
	return "jass"
}

type highlightJSON struct {
	Language string        `json:"language"`
	Units    []syntax.Unit `json:"units"`
}

func writeHighlighted(w io.Writer, h *syntax.Highlighter, src string, opts highlightOptions) error {
	lang := syntax.LanguageFromTag(opts.Lang)
	units := h.Highlight(src, lang)

	switch opts.Format {
	case "ansi", "":
		_, err := io.WriteString(w, syntax.ANSI(units))
		return err
	case "html":
		_, err := io.WriteString(w, syntax.UnitsHTML(units))
		return err
	case "json":
		if units == nil {
			units = []syntax.Unit{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(highlightJSON{Language: lang.String(), Units: units})
	}
	return fmt.Errorf("unknown format %q (want ansi, html or json)", opts.Format)
}
