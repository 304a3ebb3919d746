package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lep/jassbot/internal/docs"
	"github.com/lep/jassbot/internal/log"
	"github.com/lep/jassbot/internal/syntax"
	"github.com/lep/jassbot/internal/ui/styles"
)

// applyColorMode forces colored or plain terminal output. "auto" leaves the
// decision to terminal detection.
func applyColorMode(mode string) error {
	switch mode {
	case "", "auto":
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		return fmt.Errorf("invalid --color %q (want auto, always or never)", mode)
	}
	return nil
}

// applyTheme applies the configured terminal colors and the --color mode.
func applyTheme() error {
	if err := applyColorMode(colorMode); err != nil {
		return err
	}
	if err := styles.ApplyTheme(cfg.Theme.Styles()); err != nil {
		return fmt.Errorf("invalid theme configuration: %w", err)
	}
	return nil
}

// loadHighlighter builds a highlighter over the vocabulary of the docs
// database at dbPath. Without a database every identifier stays plain, which
// is still useful for highlighting keywords and literals.
func loadHighlighter(ctx context.Context, dbPath, docRoot string) *syntax.Highlighter {
	store, err := docs.Open(dbPath)
	if err != nil {
		log.Warn(log.CatDB, "No docs database, highlighting without vocabulary", "path", dbPath, "error", err)
		return syntax.NewHighlighter(nil, docRoot)
	}
	defer func() { _ = store.Close() }()

	vocab, err := docs.Vocabulary(ctx, store)
	if err != nil {
		log.Warn(log.CatDB, "Reading vocabulary failed", "path", dbPath, "error", err)
		return syntax.NewHighlighter(nil, docRoot)
	}
	return syntax.NewHighlighter(vocab, docRoot)
}

// readInput reads the named file, or stdin for "" and "-".
func readInput(stdin io.Reader, name string) (string, error) {
	if name == "" || name == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(name) //nolint:gosec // G304: user-chosen input file
	if err != nil {
		return "", err
	}
	return string(b), nil
}
