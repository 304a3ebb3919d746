package syntax

import "strings"

// Language selects a grammar.
type Language int

const (
	Jass Language = iota
	Lua
)

func (l Language) String() string {
	if l == Lua {
		return "lua"
	}
	return "jass"
}

// LanguageFromTag maps a code block language tag to a Language. Only "lua" and
// "language-lua" select Lua; every other tag, including none, selects JASS.
func LanguageFromTag(tag string) Language {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "lua", "language-lua":
		return Lua
	}
	return Jass
}

// Block is a code block found in a document.
type Block struct {
	Text     string
	Language string // tag as written in the document, may be empty
	// Prerendered marks blocks that an earlier formatter already highlighted.
	Prerendered bool
}

// RenderedBlock is the result of highlighting one Block.
type RenderedBlock struct {
	Language Language
	Source   string
	Units    []Unit
	Skipped  bool // the block was prerendered and left alone
}

// HTML returns the highlighted markup. Skipped blocks have none; callers keep
// the prerendered markup they already have.
func (b RenderedBlock) HTML() string {
	if b.Skipped {
		return ""
	}
	return UnitsHTML(b.Units)
}

// Highlighter ties the grammars of both languages to a renderer. It holds no
// mutable state and may be shared by any number of goroutines.
type Highlighter struct {
	jass     *Grammar
	lua      *Grammar
	vocab    *Vocabulary
	renderer Renderer
}

// NewHighlighter builds the JASS and Lua grammars over v and links into docRoot.
func NewHighlighter(v *Vocabulary, docRoot string) *Highlighter {
	if v == nil {
		v = EmptyVocabulary()
	}
	return &Highlighter{
		jass:     NewJass(v),
		lua:      NewLua(v),
		vocab:    v,
		renderer: Renderer{DocRoot: docRoot},
	}
}

// Grammar returns the grammar for lang.
func (h *Highlighter) Grammar(lang Language) *Grammar {
	if lang == Lua {
		return h.lua
	}
	return h.jass
}

// Vocabulary returns the vocabulary the grammars were built from.
func (h *Highlighter) Vocabulary() *Vocabulary {
	return h.vocab
}

// Renderer returns the renderer used for links.
func (h *Highlighter) Renderer() Renderer {
	return h.renderer
}

// Tokenize tokenizes text in lang.
func (h *Highlighter) Tokenize(text string, lang Language) []Token {
	return Tokenize(text, h.Grammar(lang))
}

// Highlight tokenizes and renders text in lang.
func (h *Highlighter) Highlight(text string, lang Language) []Unit {
	return h.renderer.RenderAll(h.Tokenize(text, lang))
}

// HighlightAll highlights blocks in order, one result per block. Prerendered
// blocks come back with Skipped set and their source untouched.
func (h *Highlighter) HighlightAll(blocks []Block) []RenderedBlock {
	if len(blocks) == 0 {
		return nil
	}
	out := make([]RenderedBlock, len(blocks))
	for i, b := range blocks {
		lang := LanguageFromTag(b.Language)
		out[i] = RenderedBlock{Language: lang, Source: b.Text}
		if b.Prerendered {
			out[i].Skipped = true
			continue
		}
		out[i].Units = h.Highlight(b.Text, lang)
	}
	return out
}
