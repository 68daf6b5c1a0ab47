// Package views embeds the HTML templates and static assets.
package views

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

// DefaultAvatar is served when a candidate uploaded no picture.
const DefaultAvatar = "/static/default-avatar.svg"

// NewEngine returns the fiber template engine over the embedded templates.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("join", strings.Join)
	engine.AddFunc("year", func(t time.Time) int { return t.Year() })
	return engine
}

// Static returns the embedded static assets rooted at the static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
