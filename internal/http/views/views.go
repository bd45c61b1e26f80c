// Package views holds the embedded page templates.
package views

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

// Layout wraps every page.
const Layout = "layouts/main"

//go:embed templates
var files embed.FS

// New returns a template engine over the embedded templates. Template
// names are paths relative to the templates directory without extension,
// e.g. "view" or "layouts/main".
func New() *html.Engine {
	sub, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
