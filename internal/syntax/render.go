package syntax

import (
	"html"
	"io"
	"strings"
)

// Unit is the rendered form of one token: its text, the category used for
// styling and, for linkable categories, the documentation page it links to.
type Unit struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
	Target   string   `json:"target,omitempty"`
}

// Linked reports whether the unit navigates somewhere.
func (u Unit) Linked() bool {
	return u.Target != ""
}

// HTML returns the unit as markup. Text and target are always escaped.
func (u Unit) HTML() string {
	var sb strings.Builder
	_ = u.writeHTML(&sb)
	return sb.String()
}

func (u Unit) writeHTML(w io.StringWriter) error {
	if _, err := w.WriteString(`<span class="` + u.Category.Class() + `">`); err != nil {
		return err
	}
	text := html.EscapeString(u.Text)
	if u.Linked() {
		text = `<a href="` + html.EscapeString(u.Target) + `">` + text + `</a>`
	}
	if _, err := w.WriteString(text); err != nil {
		return err
	}
	_, err := w.WriteString(`</span>`)
	return err
}

// Renderer turns tokens into units. DocRoot is the prefix of every link target,
// for example "/doc" or "https://lep.duckdns.org/app/jassbot/doc".
type Renderer struct {
	DocRoot string
}

// Render maps tok to a unit. Linkable tokens target DocRoot + "/" + tok.Text.
func (r Renderer) Render(tok Token) Unit {
	u := Unit{Text: tok.Text, Category: tok.Category}
	if tok.Category.Linkable() {
		u.Target = strings.TrimSuffix(r.DocRoot, "/") + "/" + tok.Text
	}
	return u
}

// RenderAll renders every token in order.
func (r Renderer) RenderAll(tokens []Token) []Unit {
	if len(tokens) == 0 {
		return nil
	}
	units := make([]Unit, len(tokens))
	for i, tok := range tokens {
		units[i] = r.Render(tok)
	}
	return units
}

// WriteHTML writes units as consecutive spans.
func WriteHTML(w io.StringWriter, units []Unit) error {
	for _, u := range units {
		if err := u.writeHTML(w); err != nil {
			return err
		}
	}
	return nil
}

// UnitsHTML returns the concatenated markup of units.
func UnitsHTML(units []Unit) string {
	var sb strings.Builder
	_ = WriteHTML(&sb, units)
	return sb.String()
}
