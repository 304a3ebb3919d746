package syntax

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Matcher reports how many bytes at the start of s form a token.
// ok is false when the matcher does not apply to s.
//
// The set of matchers is closed: every implementation lives in this package, so
// a validated Grammar can rely on the progress guarantees of its catch-alls.
type Matcher interface {
	Match(s string) (n int, ok bool)
	sealed()
}

// wordLen returns the length of the leading run of [A-Za-z0-9_].
func wordLen(s string) int {
	i := 0
	for i < len(s) && isWordByte(s[i]) {
		i++
	}
	return i
}

// identLen is wordLen restricted to runs that start with a letter or underscore.
func identLen(s string) int {
	if s == "" || isDigit(s[0]) {
		return 0
	}
	return wordLen(s)
}

func isWordByte(c byte) bool {
	return isLetter(c) || isDigit(c)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Words matches a whole word from a fixed set, such as the keywords of a language.
type Words struct {
	set map[string]struct{}
}

// NewWords returns a matcher for the given words.
func NewWords(words ...string) Words {
	return Words{set: toSet(words)}
}

func (w Words) Match(s string) (int, bool) {
	n := wordLen(s)
	if n == 0 {
		return 0, false
	}
	_, ok := w.set[s[:n]]
	return n, ok
}

func (Words) sealed() {}

// VocabularyClass matches a whole identifier listed in one vocabulary table.
type VocabularyClass struct {
	vocab    *Vocabulary
	category Category
}

// NewVocabularyClass returns a matcher for the names v lists under category c.
func NewVocabularyClass(v *Vocabulary, c Category) VocabularyClass {
	return VocabularyClass{vocab: v, category: c}
}

func (m VocabularyClass) Match(s string) (int, bool) {
	n := identLen(s)
	if n == 0 {
		return 0, false
	}
	return n, m.vocab.Contains(m.category, s[:n])
}

func (VocabularyClass) sealed() {}

// Pattern matches a regular expression anchored at the start of the input.
// Patterns use RE2 syntax and therefore run in time linear in the input.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern compiles expr anchored at the start of the input. It panics if expr
// does not compile; grammars are built from constant expressions.
func NewPattern(expr string) Pattern {
	return Pattern{re: regexp.MustCompile(`^(?:` + expr + `)`)}
}

func (p Pattern) Match(s string) (int, bool) {
	loc := p.re.FindStringIndex(s)
	if loc == nil {
		return 0, false
	}
	return loc[1], true
}

func (Pattern) sealed() {}

// String returns the anchored expression.
func (p Pattern) String() string {
	return p.re.String()
}

// Quoted matches a string literal delimited by quote. A backslash escapes the
// following character. The literal ends at the first unescaped quote or, when
// there is none, at the end of the input.
type Quoted struct {
	quote byte
}

// NewQuoted returns a matcher for literals delimited by quote.
func NewQuoted(quote byte) Quoted {
	return Quoted{quote: quote}
}

func (q Quoted) Match(s string) (int, bool) {
	if s == "" || s[0] != q.quote {
		return 0, false
	}
	i := 1
	for i < len(s) {
		switch s[i] {
		case q.quote:
			return i + 1, true
		case '\\':
			i++
			if i < len(s) {
				_, w := utf8.DecodeRuneInString(s[i:])
				i += w
			}
		default:
			i++
		}
	}
	return len(s), true
}

func (Quoted) sealed() {}

// LineComment matches prefix up to and including the next newline, or to the end
// of the input.
type LineComment struct {
	prefix string
}

// NewLineComment returns a matcher for comments introduced by prefix.
func NewLineComment(prefix string) LineComment {
	return LineComment{prefix: prefix}
}

func (c LineComment) Match(s string) (int, bool) {
	if !strings.HasPrefix(s, c.prefix) {
		return 0, false
	}
	if i := strings.IndexByte(s[len(c.prefix):], '\n'); i >= 0 {
		return len(c.prefix) + i + 1, true
	}
	return len(s), true
}

func (LineComment) sealed() {}

// LongBracket matches a Lua long bracket such as [[...]] or [==[...]==], optionally
// introduced by prefix ("--" for long comments). The closing bracket must carry
// the same number of '=' as the opening one. An unclosed bracket runs to the end
// of the input.
type LongBracket struct {
	prefix string
}

// NewLongBracket returns a long bracket matcher introduced by prefix.
func NewLongBracket(prefix string) LongBracket {
	return LongBracket{prefix: prefix}
}

func (b LongBracket) Match(s string) (int, bool) {
	if !strings.HasPrefix(s, b.prefix) {
		return 0, false
	}
	open := s[len(b.prefix):]
	level, ok := openLevel(open)
	if !ok {
		return 0, false
	}
	start := len(b.prefix) + level + 2
	closer := "]" + strings.Repeat("=", level) + "]"
	if i := strings.Index(s[start:], closer); i >= 0 {
		return start + i + len(closer), true
	}
	return len(s), true
}

func (LongBracket) sealed() {}

// openLevel parses an opening long bracket "[" "="* "[" and returns the number
// of '=' signs in it.
func openLevel(s string) (int, bool) {
	if s == "" || s[0] != '[' {
		return 0, false
	}
	level := 0
	for 1+level < len(s) && s[1+level] == '=' {
		level++
	}
	if 1+level >= len(s) || s[1+level] != '[' {
		return 0, false
	}
	return level, true
}

// AnyChar matches any single character except a newline. Invalid UTF-8 is
// consumed one byte at a time.
type AnyChar struct{}

func (AnyChar) Match(s string) (int, bool) {
	if s == "" || s[0] == '\n' {
		return 0, false
	}
	_, w := utf8.DecodeRuneInString(s)
	return w, true
}

func (AnyChar) sealed() {}

// Newline matches a single '\n'.
type Newline struct{}

func (Newline) Match(s string) (int, bool) {
	if s != "" && s[0] == '\n' {
		return 1, true
	}
	return 0, false
}

func (Newline) sealed() {}

// EndOfInput matches only the empty input.
type EndOfInput struct{}

func (EndOfInput) Match(s string) (int, bool) {
	return 0, s == ""
}

func (EndOfInput) sealed() {}
