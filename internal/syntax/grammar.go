package syntax

import (
	"errors"
	"fmt"
)

// ErrInvalidGrammar is returned when a rule table cannot guarantee that the
// tokenizer makes progress on every input.
var ErrInvalidGrammar = errors.New("invalid grammar")

// Rule pairs a matcher with the category of the tokens it produces.
type Rule struct {
	Matcher  Matcher
	Category Category
}

// Grammar is the ordered rule table of one language. Rules are tried in order
// and the first one that consumes input wins, so earlier rules take priority.
type Grammar struct {
	name  string
	rules []Rule
}

// NewGrammar validates rules and returns the grammar. The table must contain the
// AnyChar, Newline and EndOfInput catch-alls, each mapped to Other.
func NewGrammar(name string, rules ...Rule) (*Grammar, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: %s has no rules", ErrInvalidGrammar, name)
	}

	var anyChar, newline, end bool
	for i, r := range rules {
		if r.Matcher == nil {
			return nil, fmt.Errorf("%w: %s rule %d has no matcher", ErrInvalidGrammar, name, i)
		}
		if !r.Category.Valid() {
			return nil, fmt.Errorf("%w: %s rule %d has unknown category %d", ErrInvalidGrammar, name, i, int(r.Category))
		}

		var catchAll bool
		switch r.Matcher.(type) {
		case AnyChar:
			anyChar, catchAll = true, true
		case Newline:
			newline, catchAll = true, true
		case EndOfInput:
			end, catchAll = true, true
		}
		if catchAll && r.Category != Other {
			return nil, fmt.Errorf("%w: %s catch-all rule %d must be %s, got %s", ErrInvalidGrammar, name, i, Other, r.Category)
		}
	}

	switch {
	case !anyChar:
		return nil, fmt.Errorf("%w: %s is missing the any-character catch-all", ErrInvalidGrammar, name)
	case !newline:
		return nil, fmt.Errorf("%w: %s is missing the newline catch-all", ErrInvalidGrammar, name)
	case !end:
		return nil, fmt.Errorf("%w: %s is missing the end-of-input catch-all", ErrInvalidGrammar, name)
	}

	return &Grammar{name: name, rules: append([]Rule(nil), rules...)}, nil
}

// MustGrammar is like NewGrammar but panics on an invalid table.
func MustGrammar(name string, rules ...Rule) *Grammar {
	g, err := NewGrammar(name, rules...)
	if err != nil {
		panic(err)
	}
	return g
}

// Name returns the language name of the grammar.
func (g *Grammar) Name() string {
	return g.name
}

// Rules returns a copy of the rule table.
func (g *Grammar) Rules() []Rule {
	return append([]Rule(nil), g.rules...)
}

// catchAll is the tail shared by every grammar.
func catchAll() []Rule {
	return []Rule{
		{AnyChar{}, Other},
		{Newline{}, Other},
		{EndOfInput{}, Other},
	}
}

// vocabularyRules returns one rule per vocabulary table.
func vocabularyRules(v *Vocabulary) []Rule {
	rules := make([]Rule, 0, len(vocabularyCategories))
	for _, c := range vocabularyCategories {
		rules = append(rules, Rule{NewVocabularyClass(v, c), c})
	}
	return rules
}
