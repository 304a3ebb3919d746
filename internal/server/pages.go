package server

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lep/jassbot/internal/docs"
	"github.com/lep/jassbot/internal/document"
	"github.com/lep/jassbot/internal/log"
	"github.com/lep/jassbot/internal/syntax"
)

const (
	jassdocRepo = "https://github.com/lep/jassdoc"

	asyncText    = "This function is asynchronous. The values it returns are not guaranteed to be the same for each player. If you attempt to use it in an synchronous manner it may cause a desync."
	pureText     = "This function is pure. For the same values passed to it, it will always return the same value."
	commonAIText = "To use this native you have to declare it in your script."
)

// jassdocBirthday is the day of the first jassdoc commit.
var jassdocBirthday = time.Date(2016, time.February, 8, 0, 0, 0, 0, time.UTC)

// page is one HTML page. Its content template is rendered first, then every
// code element in it is highlighted, then the result is placed in the layout.
type page struct {
	Template string
	Title    string
	Query    string
	Data     any
	// ETag is sent only when the page rendered.
	ETag string

	hl *syntax.Highlighter
}

type layoutData struct {
	Title    string
	Prefix   string
	Query    string
	Birthday string
	Body     template.HTML
}

type contentData struct {
	Prefix string
	Data   any
}

type docData struct {
	Entity      string
	Kind        string
	Signature   string
	Parameters  []paramData
	Annotations []annotationData
}

type paramData struct {
	Name string
	Type string
	HTML template.HTML
}

type annotationData struct {
	Name string
	HTML template.HTML
}

type searchPage struct {
	Results []string
	Explain string
}

type errorData struct {
	Status  string
	Message string
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, p page) {
	body, err := h.renderContent(p)
	if err != nil {
		log.ErrorErr(log.CatHTTP, "Rendering page failed", err, "template", p.Template, "path", r.URL.Path)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	err = pages.ExecuteTemplate(&buf, "layout", layoutData{
		Title:    p.Title,
		Prefix:   h.prefix,
		Query:    p.Query,
		Birthday: Birthday(h.now()),
		Body:     template.HTML(body), //nolint:gosec // produced by our own templates
	})
	if err != nil {
		log.ErrorErr(log.CatHTTP, "Rendering layout failed", err, "path", r.URL.Path)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if p.ETag != "" {
		w.Header().Set("ETag", p.ETag)
	}
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderContent executes the page template and highlights its code elements.
func (h *Handler) renderContent(p page) (string, error) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, p.Template, contentData{Prefix: h.prefix, Data: p.Data}); err != nil {
		return "", fmt.Errorf("executing %s: %w", p.Template, err)
	}
	hl := p.hl
	if hl == nil {
		hl = h.Highlighter()
	}
	return document.Highlight(hl, buf.String())
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.renderPage(w, r, status, page{
		Template: "error",
		Title:    http.StatusText(status),
		Data:     errorData{Status: fmt.Sprintf("%d %s", status, http.StatusText(status)), Message: message},
	})
}

// docPage turns an entity into template data. Parameter docs and free-form
// annotations are markdown; the well-known annotations get fixed texts.
func (h *Handler) docPage(ctx context.Context, e *docs.Entity) (docData, error) {
	data := docData{
		Entity:    e.Name,
		Kind:      e.Kind,
		Signature: Signature(e),
	}
	for _, p := range e.Parameters {
		out, err := h.md.Render(ctx, p.Doc)
		if err != nil {
			return data, err
		}
		data.Parameters = append(data.Parameters, paramData{
			Name: p.Name,
			Type: p.Type,
			HTML: template.HTML(out), //nolint:gosec // sanitized by the markdown renderer
		})
	}
	for _, a := range e.Annotations {
		ann, err := h.annotation(ctx, e, a)
		if err != nil {
			return data, err
		}
		data.Annotations = append(data.Annotations, ann)
	}
	return data, nil
}

func (h *Handler) annotation(ctx context.Context, e *docs.Entity, a docs.Annotation) (annotationData, error) {
	switch a.Name {
	case "async":
		return annotationData{Name: "async", HTML: asyncText}, nil
	case "pure":
		return annotationData{Name: "pure", HTML: pureText}, nil
	case "source-file":
		return annotationData{Name: "Source", HTML: template.HTML(sourceLinks(e, a.Value))}, nil //nolint:gosec // all parts escaped
	case "source-code":
		return annotationData{Name: "Source code", HTML: template.HTML("<pre><code>" + html.EscapeString(a.Value) + "</code></pre>")}, nil //nolint:gosec // escaped
	case "return-type":
		return annotationData{Name: "return type", HTML: template.HTML("<code>" + html.EscapeString(a.Value) + "</code>")}, nil //nolint:gosec // escaped
	case "commonai":
		return annotationData{Name: "common.ai native", HTML: commonAIText}, nil
	case "event":
		return annotationData{Name: "event", HTML: template.HTML("<code>" + html.EscapeString(a.Value) + "</code>")}, nil //nolint:gosec // escaped
	}
	out, err := h.md.Render(ctx, a.Value)
	if err != nil {
		return annotationData{}, err
	}
	return annotationData{Name: a.Name, HTML: template.HTML(out)}, nil //nolint:gosec // sanitized by the markdown renderer
}

// AnnotationText returns the fixed explanation of the async, pure and
// commonai annotations, or "" for any other name.
func AnnotationText(name string) string {
	switch name {
	case "async":
		return asyncText
	case "pure":
		return pureText
	case "commonai":
		return commonAIText
	}
	return ""
}

// SourceLinks returns the permalink, edit and new-issue links of a source file.
func SourceLinks(e *docs.Entity, file string) (permalink, edit, issue string) {
	permalink = fmt.Sprintf("%s/blob/%s/%s#L%s", jassdocRepo, e.Commit, file, e.LineNumber)
	edit = fmt.Sprintf("%s/edit/master/%s#L%s", jassdocRepo, file, e.LineNumber)
	issue = jassdocRepo + "/issues/new?" + url.Values{
		"title": {fmt.Sprintf("[web] %s: %s - ", file, e.Name)},
		"body":  {permalink + "\n\nPlease change to a good descriptive title and tell us what should be improved."},
	}.Encode()
	return permalink, edit, issue
}

func sourceLinks(e *docs.Entity, file string) string {
	permalink, edit, issue := SourceLinks(e, file)
	esc := html.EscapeString
	return fmt.Sprintf(`<a href="%s" rel="nofollow">%s</a> (<a href="%s" rel="nofollow">suggest an edit</a> or <a href="%s">discuss on Github</a>)`,
		esc(permalink), esc(file), esc(edit), esc(issue))
}

// Signature returns the declaration line of natives and functions, or "" for
// every other kind.
func Signature(e *docs.Entity) string {
	if e.Kind != "native" && e.Kind != "function" {
		return ""
	}
	takes := "nothing"
	if len(e.Parameters) > 0 {
		params := make([]string, len(e.Parameters))
		for i, p := range e.Parameters {
			params[i] = p.Type + " " + p.Name
		}
		takes = strings.Join(params, ", ")
	}
	returns := "nothing"
	for _, a := range e.Annotations {
		if a.Name == "return-type" && a.Value != "" {
			returns = a.Value
			break
		}
	}
	return fmt.Sprintf("%s %s takes %s returns %s", e.Kind, e.Name, takes, returns)
}

// Birthday returns jassdoc's age as an ordinal such as "10th" when now is its
// birthday, and "" on every other day.
func Birthday(now time.Time) string {
	if now.Month() != time.February || now.Day() != 8 {
		return ""
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	years := int(today.Sub(jassdocBirthday).Hours()/24) / 365
	return fmt.Sprintf("%d%s", years, ordinalSuffix(years))
}

func ordinalSuffix(n int) string {
	units, tens := n%10, n%100
	switch {
	case units == 1 && tens != 11:
		return "st"
	case units == 2 && tens != 12:
		return "nd"
	case units == 3 && tens != 13:
		return "rd"
	}
	return "th"
}
