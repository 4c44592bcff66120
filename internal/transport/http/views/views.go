// Package views embeds the html templates rendered by the web handlers.
package views

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

// Layout is the default page layout template name.
const Layout = "layouts/main"

//go:embed templates
var templates embed.FS

//go:embed static
var static embed.FS

// NewEngine returns a fiber view engine over the embedded templates.
func NewEngine() (*html.Engine, error) {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		return nil, fmt.Errorf("templates dir: %w", err)
	}
	return html.NewFileSystem(http.FS(sub), ".html"), nil
}

// Static returns the embedded stylesheet directory as an http.FileSystem.
func Static() http.FileSystem {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
