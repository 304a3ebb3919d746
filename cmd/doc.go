package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lep/jassbot/internal/docs"
	"github.com/lep/jassbot/internal/markdown"
	"github.com/lep/jassbot/internal/server"
	"github.com/lep/jassbot/internal/syntax"
	"github.com/lep/jassbot/internal/syntax/chromalexer"
)

var docCmd = &cobra.Command{
	Use:   "doc NAME",
	Short: "Show the documentation of a native, function, type or global",
	Args:  cobra.ExactArgs(1),
	RunE:  runDoc,
}

var docWidth int

func init() {
	rootCmd.AddCommand(docCmd)

	docCmd.Flags().IntVarP(&docWidth, "width", "w", 0, "wrap width (default: terminal width)")
}

func runDoc(cmd *cobra.Command, args []string) error {
	cleanup, err := initFileLogging("jassbot-doc")
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	store, err := docs.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("opening docs database: %w", err)
	}
	defer func() { _ = store.Close() }()

	e, err := docs.Lookup(ctx, store, args[0])
	if errors.Is(err, docs.ErrNotFound) {
		return fmt.Errorf("no documentation for %s", args[0])
	}
	if err != nil {
		return err
	}

	vocab, err := docs.Vocabulary(ctx, store)
	if err != nil {
		return err
	}
	// Fenced jass blocks in the output go through our own grammar.
	chromalexer.Register(nil, syntax.NewHighlighter(vocab, ""))

	width := docWidth
	if width <= 0 {
		width = terminalWidth()
	}
	r, err := markdown.NewTerminal(width, cfg.UI.MarkdownStyle)
	if err != nil {
		return err
	}
	return writeDoc(ctx, cmd.OutOrStdout(), r, e)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 { //nolint:gosec // G115: fd fits in int
		return w
	}
	return 80
}

func writeDoc(_ context.Context, w io.Writer, r *markdown.TerminalRenderer, e *docs.Entity) error {
	out, err := r.Render(EntityMarkdown(e))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// EntityMarkdown lays out e as a markdown document for terminal display.
func EntityMarkdown(e *docs.Entity) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s %s\n\n", e.Kind, e.Name)
	if sig := server.Signature(e); sig != "" {
		fmt.Fprintf(&sb, "```jass\n%s\n```\n\n", sig)
	}

	if len(e.Parameters) > 0 {
		sb.WriteString("## Parameters\n\n")
		for _, p := range e.Parameters {
			fmt.Fprintf(&sb, "- `%s %s`", p.Type, p.Name)
			if doc := strings.TrimSpace(p.Doc); doc != "" {
				sb.WriteString(": " + strings.ReplaceAll(doc, "\n", " "))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	for _, a := range e.Annotations {
		switch a.Name {
		case "return-type":
			continue
		case "source-code":
			fmt.Fprintf(&sb, "## Source code\n\n```jass\n%s\n```\n\n", strings.TrimRight(a.Value, "\n"))
		case "source-file":
			permalink, _, _ := server.SourceLinks(e, a.Value)
			fmt.Fprintf(&sb, "## Source\n\n%s (%s)\n\n", a.Value, permalink)
		case "async", "pure", "commonai":
			fmt.Fprintf(&sb, "## %s\n\n%s\n\n", a.Name, server.AnnotationText(a.Name))
		case "event":
			fmt.Fprintf(&sb, "## event\n\n`%s`\n\n", a.Value)
		default:
			fmt.Fprintf(&sb, "## %s\n\n%s\n\n", a.Name, strings.TrimSpace(a.Value))
		}
	}
	return sb.String()
}
