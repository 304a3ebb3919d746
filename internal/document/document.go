// Package document finds the code elements of an HTML fragment and replaces
// their contents with highlighted markup.
package document

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/lep/jassbot/internal/syntax"
)

// PrerenderedClass marks code that an external formatter (pandoc) already highlighted.
const PrerenderedClass = "sourceCode"

// Document is a parsed HTML fragment.
type Document struct {
	nodes []*html.Node
	codes []*html.Node
}

// Parse parses r as the body of an HTML document.
func Parse(r io.Reader) (*Document, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return nil, fmt.Errorf("parsing html fragment: %w", err)
	}

	d := &Document{nodes: nodes}
	for _, n := range nodes {
		d.collect(n)
	}
	return d, nil
}

// collect records code elements in document order. Code nested inside code is
// part of its parent's text and is not collected separately.
func (d *Document) collect(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Code {
		d.codes = append(d.codes, n)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.collect(c)
	}
}

// Blocks returns one block per code element, in document order.
func (d *Document) Blocks() []syntax.Block {
	blocks := make([]syntax.Block, len(d.codes))
	for i, n := range d.codes {
		classes := classList(n)
		blocks[i] = syntax.Block{
			Text:        textContent(n),
			Language:    languageTag(classes),
			Prerendered: slices.Contains(classes, PrerenderedClass),
		}
	}
	return blocks
}

// Apply replaces the contents of each code element with the matching rendered
// block. Skipped blocks keep their contents.
func (d *Document) Apply(rendered []syntax.RenderedBlock) error {
	if len(rendered) != len(d.codes) {
		return fmt.Errorf("got %d rendered blocks for %d code elements", len(rendered), len(d.codes))
	}
	for i, b := range rendered {
		if b.Skipped {
			continue
		}
		n := d.codes[i]
		for c := n.FirstChild; c != nil; c = n.FirstChild {
			n.RemoveChild(c)
		}
		for _, u := range b.Units {
			n.AppendChild(unitNode(u))
		}
	}
	return nil
}

// Render writes the fragment to w.
func (d *Document) Render(w io.Writer) error {
	for _, n := range d.nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("rendering html: %w", err)
		}
	}
	return nil
}

// String renders the fragment.
func (d *Document) String() string {
	var sb strings.Builder
	_ = d.Render(&sb)
	return sb.String()
}

// Highlight highlights every code element of the fragment src with h.
func Highlight(h *syntax.Highlighter, src string) (string, error) {
	d, err := Parse(strings.NewReader(src))
	if err != nil {
		return "", err
	}
	if err := d.Apply(h.HighlightAll(d.Blocks())); err != nil {
		return "", err
	}
	return d.String(), nil
}

func unitNode(u syntax.Unit) *html.Node {
	span := &html.Node{
		Type:     html.ElementNode,
		Data:     "span",
		DataAtom: atom.Span,
		Attr:     []html.Attribute{{Key: "class", Val: u.Category.Class()}},
	}
	text := &html.Node{Type: html.TextNode, Data: u.Text}
	if !u.Linked() {
		span.AppendChild(text)
		return span
	}
	a := &html.Node{
		Type:     html.ElementNode,
		Data:     "a",
		DataAtom: atom.A,
		Attr:     []html.Attribute{{Key: "href", Val: u.Target}},
	}
	a.AppendChild(text)
	span.AppendChild(a)
	return span
}

func classList(n *html.Node) []string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "class" {
			return strings.Fields(a.Val)
		}
	}
	return nil
}

// languageTag returns the class that selects Lua if there is one, otherwise the
// first class.
func languageTag(classes []string) string {
	for _, c := range classes {
		if syntax.LanguageFromTag(c) == syntax.Lua {
			return c
		}
	}
	if len(classes) > 0 {
		return classes[0]
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
