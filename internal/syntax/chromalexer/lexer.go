// Package chromalexer exposes the JASS and Lua grammars as Chroma lexers, so
// that glamour and anything else built on Chroma highlights code the same way
// the web pages do.
package chromalexer

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/lep/jassbot/internal/syntax"
)

// Lexer adapts a syntax.Grammar to chroma.Lexer.
type Lexer struct {
	config   *chroma.Config
	grammar  *syntax.Grammar
	registry *chroma.LexerRegistry
	analyser func(text string) float32
}

var _ chroma.Lexer = (*Lexer)(nil)

// New returns a lexer for g described by config.
func New(config *chroma.Config, g *syntax.Grammar) *Lexer {
	return &Lexer{config: config, grammar: g}
}

// Jass returns the JASS lexer of h.
func Jass(h *syntax.Highlighter) *Lexer {
	l := New(&chroma.Config{
		Name:      "JASS",
		Aliases:   []string{"jass"},
		Filenames: []string{"*.j", "*.ai"},
		MimeTypes: []string{"text/x-jass"},
	}, h.Grammar(syntax.Jass))
	l.analyser = analyseJass
	return l
}

// Lua returns the Lua lexer of h. It takes the name of Chroma's builtin Lua
// lexer so that registering it replaces the builtin one.
func Lua(h *syntax.Highlighter) *Lexer {
	return New(&chroma.Config{
		Name:      "Lua",
		Aliases:   []string{"lua", "language-lua"},
		Filenames: []string{"*.lua"},
		MimeTypes: []string{"text/x-lua", "application/x-lua"},
	}, h.Grammar(syntax.Lua))
}

// Register adds the JASS and Lua lexers of h to registry, or to the global
// Chroma registry when registry is nil. Registering again replaces the lexers,
// which is how a vocabulary reload reaches Chroma.
func Register(registry *chroma.LexerRegistry, h *syntax.Highlighter) {
	if registry == nil {
		registry = lexers.GlobalLexerRegistry
	}
	registry.Register(Jass(h))
	registry.Register(Lua(h))
}

func (l *Lexer) Config() *chroma.Config {
	return l.config
}

func (l *Lexer) Tokenise(options *chroma.TokeniseOptions, text string) (chroma.Iterator, error) {
	if options != nil && options.EnsureLF {
		text = strings.ReplaceAll(text, "\r\n", "\n")
		text = strings.ReplaceAll(text, "\r", "\n")
	}
	toks := l.grammar.Tokenize(text)
	out := make([]chroma.Token, len(toks))
	for i, tok := range toks {
		out[i] = chroma.Token{Type: TokenType(tok.Category), Value: tok.Text}
	}
	return chroma.Literator(out...), nil
}

func (l *Lexer) SetRegistry(registry *chroma.LexerRegistry) chroma.Lexer {
	l.registry = registry
	return l
}

func (l *Lexer) SetAnalyser(analyser func(text string) float32) chroma.Lexer {
	l.analyser = analyser
	return l
}

func (l *Lexer) AnalyseText(text string) float32 {
	if l.analyser == nil {
		return 0
	}
	return l.analyser(text)
}

func analyseJass(text string) float32 {
	switch {
	case strings.Contains(text, "endfunction"):
		return 0.9
	case strings.Contains(text, "takes nothing returns"):
		return 0.8
	case strings.Contains(text, "endglobals"):
		return 0.5
	}
	return 0
}

// TokenType maps a category onto Chroma's token taxonomy.
func TokenType(c syntax.Category) chroma.TokenType {
	switch c {
	case syntax.Keyword:
		return chroma.Keyword
	case syntax.HelperFunction:
		return chroma.NameFunction
	case syntax.Native:
		return chroma.NameBuiltin
	case syntax.Type:
		return chroma.KeywordType
	case syntax.GlobalHelper:
		return chroma.NameVariableGlobal
	case syntax.GlobalUser:
		return chroma.NameConstant
	case syntax.Comment:
		return chroma.CommentSingle
	case syntax.Number:
		return chroma.LiteralNumber
	case syntax.Boolean, syntax.NullLiteral:
		return chroma.KeywordConstant
	case syntax.LooseType:
		return chroma.KeywordPseudo
	case syntax.String:
		return chroma.LiteralString
	case syntax.Rawcode:
		return chroma.LiteralStringChar
	case syntax.Operator:
		return chroma.Operator
	case syntax.Identifier:
		return chroma.Name
	case syntax.Whitespace:
		return chroma.TextWhitespace
	default:
		return chroma.Text
	}
}
