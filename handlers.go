package bottega

import (
	"errors"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ivoiuliano/bottega/markdown"
	"github.com/ivoiuliano/bottega/seo"
	"github.com/ivoiuliano/bottega/views"
)

// handleRoot sends visitors to the locale their browser prefers.
func (a *App) handleRoot(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/"+a.Site.Locales.Default)
}

func (a *App) handleHome(c echo.Context) error {
	locale, err := a.requestLocale(c)
	if err != nil {
		return err
	}
	posts, err := a.Catalog.ListAll(locale)
	if err != nil {
		return err
	}
	if len(posts) > a.Config.LatestPosts {
		posts = posts[:a.Config.LatestPosts]
	}
	faqs := a.faqs(locale)

	m := a.Site.Meta
	jsonLD := []seo.Object{
		seo.Organization(m),
		seo.Person(m),
		seo.WebSite(m),
		seo.WebPage(m, m.LocalizedURL(locale, ""), m.Title, m.Description),
	}
	jsonLD = append(jsonLD, a.serviceSchemas()...)
	if len(faqs) > 0 {
		jsonLD = append(jsonLD, seo.FAQPage(faqs))
	}

	return Render(c, a.Views.Home(views.HomePage{
		Page:     a.page(locale, seo.PageParams{}, jsonLD...),
		Services: m.Services,
		Latest:   a.summaries(posts, locale),
		FAQs:     faqs,
	}))
}

func (a *App) handleBlog(c echo.Context) error {
	locale, err := a.requestLocale(c)
	if err != nil {
		return err
	}
	posts, err := a.Catalog.ListAll(locale)
	if err != nil {
		return err
	}

	m := a.Site.Meta
	title := a.Bundle.T(locale, "blog.title")
	description := a.Bundle.T(locale, "blog.description")
	params := seo.PageParams{Title: title, Description: description, Path: "/blog"}
	return Render(c, a.Views.Blog(views.BlogPage{
		Page: a.page(locale, params,
			seo.Organization(m),
			seo.Breadcrumbs(m, locale, a.Bundle.T(locale, "nav.home"), []seo.Crumb{{Name: title, Path: "/blog"}}),
			seo.WebPage(m, m.LocalizedURL(locale, "/blog"), title, description),
		),
		Posts: a.summaries(posts, locale),
	}))
}

func (a *App) handlePost(c echo.Context) error {
	locale, err := a.requestLocale(c)
	if err != nil {
		return err
	}
	slug := c.Param("slug")
	post, ok, err := a.Catalog.GetBySlug(slug, locale)
	if err != nil {
		return err
	}
	if !ok {
		return echo.ErrNotFound
	}

	m := a.Site.Meta
	fm := post.Frontmatter
	postPath := "/blog/" + slug
	params := seo.PageParams{
		Title:       fm.Title,
		Description: fm.Description,
		Path:        postPath,
		Article:     true,
		Image:       fm.Image,
	}
	crumbs := []seo.Crumb{
		{Name: a.Bundle.T(locale, "blog.title"), Path: "/blog"},
		{Name: fm.Title, Path: postPath},
	}
	return Render(c, a.Views.Post(views.PostPage{
		Page: a.page(locale, params,
			seo.Organization(m),
			seo.Breadcrumbs(m, locale, a.Bundle.T(locale, "nav.home"), crumbs),
			seo.BlogPosting(m, seo.Article{
				URL:         m.LocalizedURL(locale, postPath),
				Title:       fm.Title,
				Description: fm.Description,
				Published:   fm.Date.Format("2006-01-02"),
				Image:       fm.Image,
			}),
		),
		Post: a.summary(post, locale),
		Body: markdown.Markdown(post.Content),
	}))
}

func (a *App) handleLegal(kind string) echo.HandlerFunc {
	return func(c echo.Context) error {
		locale, err := a.requestLocale(c)
		if err != nil {
			return err
		}
		m := a.Site.Meta
		title := a.Bundle.T(locale, "pages."+kind)
		p := "/" + kind
		return Render(c, a.Views.Legal(views.LegalPage{
			Page:  a.page(locale, seo.PageParams{Title: title, Path: p}, seo.WebPage(m, m.LocalizedURL(locale, p), title, m.Description)),
			Kind:  kind,
			Title: title,
		}))
	}
}

func (a *App) handleFeed(c echo.Context) error {
	locale, err := a.requestLocale(c)
	if err != nil {
		return err
	}
	posts, err := a.Catalog.ListAll(locale)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return a.writeFeed(c.Response(), locale, posts)
}

// handleStatic serves StaticDir first and falls back to the embedded assets.
func (a *App) handleStatic(c echo.Context) error {
	name := path.Clean("/" + c.Param("*"))[1:]
	if name == "" {
		return echo.ErrNotFound
	}
	local := filepath.Join(a.Config.StaticDir, filepath.FromSlash(name))
	if info, err := os.Stat(local); err == nil && !info.IsDir() {
		return c.File(local)
	}
	return echo.StaticFileHandler(name, embeddedAssets())(c)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	code := http.StatusInternalServerError
	if errors.As(err, &he) {
		code = he.Code
	}
	switch {
	case code == http.StatusNotFound:
		_ = RenderStatus(c, code, a.Views.NotFound(a.errorPage(c, code, "errors.notFound")))
	case code >= 500:
		a.Logger.Error("server error", zap.Error(err), zap.String("uri", c.Request().RequestURI))
		_ = RenderStatus(c, code, a.Views.ServerError(a.errorPage(c, code, "errors.serverError")))
	default:
		a.Echo.DefaultHTTPErrorHandler(err, c)
	}
}
