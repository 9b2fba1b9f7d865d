package views

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"upper": strings.ToUpper,
	"tel": func(phone string) template.URL {
		return template.URL("tel:" + strings.ReplaceAll(phone, " ", ""))
	},
}

var pages = map[string]*template.Template{}

func init() {
	for _, name := range []string{"home", "blog", "post", "legal", "error"} {
		pages[name] = template.Must(template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/"+name+".html"))
	}
}

func page(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return pages[name].ExecuteTemplate(w, "layout", data)
	})
}

// Home renders the landing page.
func Home(p HomePage) templ.Component { return page("home", p) }

// BlogList renders the localized blog index.
func BlogList(p BlogPage) templ.Component { return page("blog", p) }

// Legal renders the privacy, terms and cookie pages.
func Legal(p LegalPage) templ.Component { return page("legal", p) }

func NotFound(p ErrorPage) templ.Component    { return page("error", p) }
func ServerError(p ErrorPage) templ.Component { return page("error", p) }

// Post renders one article. Body is rendered first so its HTML can be placed
// inside the layout.
func Post(p PostPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var body bytes.Buffer
		if p.Body != nil {
			if err := p.Body.Render(ctx, &body); err != nil {
				return err
			}
		}
		return pages["post"].ExecuteTemplate(w, "layout", struct {
			PostPage
			HTML template.HTML
		}{p, template.HTML(body.String())})
	})
}
