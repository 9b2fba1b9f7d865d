package bottega

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/ivoiuliano/bottega/seo"
	"github.com/ivoiuliano/bottega/views"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// page assembles the data shared by every localized template.
func (a *App) page(locale string, params seo.PageParams, jsonLD ...seo.Object) views.Page {
	params.Locale = locale
	return views.Page{
		Meta:    seo.BuildMeta(a.Site, params),
		JSONLD:  jsonLD,
		Site:    a.Site.Meta,
		Locale:  locale,
		Locales: a.Site.Locales.Codes,
		Path:    params.Path,
		Year:    a.now().Year(),
		T: func(key string) string {
			return a.Bundle.T(locale, key)
		},
	}
}

// errorLocale returns the locale prefix of the request path. Paths outside
// the localized tree fall back to the visitor's Accept-Language.
func (a *App) errorLocale(r *http.Request) string {
	first, _, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")
	if a.Site.Locales.Supports(first) {
		return first
	}
	return a.Bundle.Negotiate(r.Header.Get("Accept-Language"))
}

func (a *App) errorPage(c echo.Context, code int, key string) views.ErrorPage {
	locale := a.errorLocale(c.Request())
	return views.ErrorPage{
		Page:    a.page(locale, seo.PageParams{Title: a.Bundle.T(locale, key)}),
		Status:  code,
		Message: a.Bundle.T(locale, key),
	}
}
