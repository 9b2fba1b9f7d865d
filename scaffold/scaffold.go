// Package scaffold provides the embedded templates used by `bottega new-post`.
package scaffold

import (
	"embed"
	"fmt"
	"io"
	"text/template"
	"time"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

// PostData holds the template variables of a new post.
type PostData struct {
	Title       string
	Description string
	Date        time.Time
	Locale      string
	Slug        string
}

var postTemplate = template.Must(template.New("post.md.tmpl").Funcs(template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}).ParseFS(Templates, "templates/post.md.tmpl"))

// WritePost renders a new Markdown post with a complete frontmatter header.
func WritePost(w io.Writer, data PostData) error {
	return postTemplate.Execute(w, data)
}
