package server

import (
	"embed"
	htmltemplate "html/template"
	"io/fs"
	texttemplate "text/template"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var (
	pages = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html"))

	openSearch = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/opensearch.xml"))
)

// StaticFS returns the stylesheet and other static assets.
func StaticFS() fs.FS {
	sub, _ := fs.Sub(staticFS, "static")
	return sub
}
