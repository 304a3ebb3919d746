// Package trie compacts a list of names into a short regular expression
// alternation by sharing common prefixes.
package trie

import (
	"regexp"
	"sort"
	"strings"
)

// Never matches anything; used for an empty name list.
const neverMatch = `(?!)`

// Trie is a prefix tree over runes.
type Trie struct {
	children map[rune]*Trie
	done     bool
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{children: make(map[rune]*Trie)}
}

// Insert adds name to the trie.
func (t *Trie) Insert(name string) {
	n := t
	for _, r := range name {
		child, ok := n.children[r]
		if !ok {
			child = New()
			n.children[r] = child
		}
		n = child
	}
	n.done = true
}

// Regexp returns an alternation matching exactly the inserted names. Children
// are emitted in rune order so the output is deterministic.
func (t *Trie) Regexp() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t *Trie) write(sb *strings.Builder) {
	keys := make([]rune, 0, len(t.children))
	for r := range t.children {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	group := len(keys) > 1 || (t.done && len(keys) > 0)
	if group {
		sb.WriteString("(?:")
	}
	for i, r := range keys {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(regexp.QuoteMeta(string(r)))
		t.children[r].write(sb)
	}
	if group {
		sb.WriteByte(')')
		if t.done {
			sb.WriteByte('?')
		}
	}
}

// Plain returns the names joined as a flat non-capturing alternation.
func Plain(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = regexp.QuoteMeta(name)
	}
	return "(?:" + strings.Join(quoted, "|") + ")"
}

// Compact returns whichever of the plain alternation and the trie form of names
// is shorter. Both match the same set of strings.
func Compact(names []string) string {
	if len(names) == 0 {
		return neverMatch
	}
	t := New()
	for _, name := range names {
		t.Insert(name)
	}
	fancy := t.Regexp()
	plain := Plain(names)
	if len(fancy) < len(plain) {
		return fancy
	}
	return plain
}
