package bottega

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ivoiuliano/bottega/content"
	"github.com/ivoiuliano/bottega/seo"
	"github.com/ivoiuliano/bottega/views"
)

// legalKinds are the static legal pages, each served at /{locale}/{kind}.
var legalKinds = []string{"privacy", "terms", "cookies"}

// requestLocale validates the :locale path parameter. Unknown locales are
// reported as 404.
func (a *App) requestLocale(c echo.Context) (string, error) {
	locale := c.Param("locale")
	if err := a.Site.Locales.Validate(locale); err != nil {
		return "", echo.NewHTTPError(http.StatusNotFound).SetInternal(err)
	}
	return locale, nil
}

func (a *App) summaries(posts []content.Post, locale string) []views.PostSummary {
	out := make([]views.PostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, a.summary(p, locale))
	}
	return out
}

func (a *App) summary(p content.Post, locale string) views.PostSummary {
	return views.PostSummary{
		Slug:        p.Slug,
		Title:       p.Frontmatter.Title,
		Description: p.Frontmatter.Description,
		Date:        p.Frontmatter.Date.Format(content.DateLayout),
		DisplayDate: a.Bundle.FormatDate(p.Frontmatter.Date, locale),
		Link:        p.Link(),
		Image:       p.Frontmatter.Image,
	}
}

// faqs collects the translated faq.N entries in order.
func (a *App) faqs(locale string) []seo.FAQ {
	var out []seo.FAQ
	for i := 0; ; i++ {
		prefix := "faq." + strconv.Itoa(i)
		if !a.Bundle.Has(locale, prefix+".question") {
			return out
		}
		out = append(out, seo.FAQ{
			Question: a.Bundle.T(locale, prefix+".question"),
			Answer:   a.Bundle.T(locale, prefix+".answer"),
		})
	}
}

func (a *App) serviceSchemas() []seo.Object {
	out := make([]seo.Object, 0, len(a.Site.Meta.Services))
	for _, svc := range a.Site.Meta.Services {
		if o, ok := seo.Service(a.Site.Meta, svc.Key); ok {
			out = append(out, o)
		}
	}
	return out
}
