package syntax

import "unicode/utf8"

// Token is a classified, contiguous piece of the input.
type Token struct {
	Text     string
	Category Category
	Pos      int // byte offset of Text in the input
}

// Tokenize splits text into tokens using g. The tokens cover text exactly and
// in order; joining their Text fields yields text again. Empty input yields no
// tokens. Tokenize never fails: input no rule recognises ends up as Other.
func Tokenize(text string, g *Grammar) []Token {
	if text == "" {
		return nil
	}

	tokens := make([]Token, 0, len(text)/4+1)
	pos := 0
	for pos < len(text) {
		rest := text[pos:]
		n, cat := g.next(rest)
		tokens = append(tokens, Token{Text: rest[:n], Category: cat, Pos: pos})
		pos += n
	}
	return tokens
}

// Tokenize is shorthand for Tokenize(text, g).
func (g *Grammar) Tokenize(text string) []Token {
	return Tokenize(text, g)
}

// next returns the length and category of the token at the start of rest, which
// must be non-empty. The returned length is always at least one byte.
func (g *Grammar) next(rest string) (int, Category) {
	for _, r := range g.rules {
		if n, ok := r.Matcher.Match(rest); ok && n > 0 && n <= len(rest) {
			return n, r.Category
		}
	}
	_, w := utf8.DecodeRuneInString(rest)
	return w, Other
}
