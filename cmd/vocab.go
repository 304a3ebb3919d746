package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/lep/jassbot/internal/syntax"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab [natives|functions|types|bj_globals|cj_globals]",
	Short: "List the names the highlighter knows",
	Long: `Without an argument, print how many names of each class the docs database
provides. With a class, print its names, one per line.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: vocabClasses,
	RunE:      runVocab,
}

var vocabClasses = []string{"natives", "functions", "types", "bj_globals", "cj_globals"}

var vocabCategories = map[string]syntax.Category{
	"natives":    syntax.Native,
	"functions":  syntax.HelperFunction,
	"types":      syntax.Type,
	"bj_globals": syntax.GlobalHelper,
	"cj_globals": syntax.GlobalUser,
}

func init() {
	rootCmd.AddCommand(vocabCmd)
}

func runVocab(cmd *cobra.Command, args []string) error {
	cleanup, err := initFileLogging("jassbot-vocab")
	if err != nil {
		return err
	}
	defer cleanup()

	h := loadHighlighter(cmd.Context(), cfg.DB, "")
	class := ""
	if len(args) == 1 {
		class = args[0]
	}
	return writeVocabulary(cmd.OutOrStdout(), h.Vocabulary(), class)
}

func writeVocabulary(w io.Writer, vocab *syntax.Vocabulary, class string) error {
	if class != "" {
		c, ok := vocabCategories[class]
		if !ok {
			return fmt.Errorf("unknown class %q (want one of %s)", class, strings.Join(vocabClasses, ", "))
		}
		for _, name := range vocab.List(c) {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}
		return nil
	}

	width := 0
	for _, class := range vocabClasses {
		width = max(width, runewidth.StringWidth(class))
	}
	for _, class := range vocabClasses {
		count := strconv.Itoa(vocab.Len(vocabCategories[class]))
		if _, err := fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(class, width), runewidth.FillLeft(count, 6)); err != nil {
			return err
		}
	}
	return nil
}
