// Package bottega serves the localized website of a violin-making workshop with
// Go, Echo, and templ: landing page, blog, legal pages, RSS, sitemap, robots.txt
// and llms.txt, all derived from the site registries and the Markdown catalog.
//
// Callers may provide their own templ components via the ViewFuncs struct;
// bottega handles routing, locale negotiation, middleware and content loading.
package bottega

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ivoiuliano/bottega/content"
	"github.com/ivoiuliano/bottega/i18n"
	"github.com/ivoiuliano/bottega/site"
	"github.com/ivoiuliano/bottega/views"
)

// ViewFuncs holds the templ components the handlers render. Nil fields fall
// back to the views package defaults.
type ViewFuncs struct {
	Home        func(p views.HomePage) templ.Component
	Blog        func(p views.BlogPage) templ.Component
	Post        func(p views.PostPage) templ.Component
	Legal       func(p views.LegalPage) templ.Component
	NotFound    func(p views.ErrorPage) templ.Component
	ServerError func(p views.ErrorPage) templ.Component
}

// DefaultViews returns the built-in components.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:        views.Home,
		Blog:        views.BlogList,
		Post:        views.Post,
		Legal:       views.Legal,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}

func (v *ViewFuncs) fillDefaults() {
	d := DefaultViews()
	if v.Home == nil {
		v.Home = d.Home
	}
	if v.Blog == nil {
		v.Blog = d.Blog
	}
	if v.Post == nil {
		v.Post = d.Post
	}
	if v.Legal == nil {
		v.Legal = d.Legal
	}
	if v.NotFound == nil {
		v.NotFound = d.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = d.ServerError
	}
}

// App is the central bottega application. It wires together the site
// registries, the content catalog, translations, handlers and middleware.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Site    site.Site
	Catalog *content.Catalog
	Bundle  *i18n.Bundle
	Views   ViewFuncs
	Logger  *zap.Logger

	limiter      *RequestLimiter
	store        content.Store
	customRoutes []func(*App)
	now          func() time.Time
}

// New builds an App ready to serve or export. Site registries default to
// site.Default() and content is read from cfg.ContentDir.
func New(cfg SiteConfig, vf ViewFuncs, opts ...Option) (*App, error) {
	cfg.setDefaults()
	vf.fillDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Site:   site.Default(),
		Views:  vf,
		Logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := a.Site.Validate(); err != nil {
		return nil, fmt.Errorf("bottega: %w", err)
	}
	if a.store == nil {
		a.store = content.DirStore(a.Config.ContentDir)
	}
	a.Catalog = content.NewCatalog(a.store, a.Site.Locales)

	if a.Bundle == nil {
		bundle, err := i18n.Default(a.Site.Locales)
		if err != nil {
			return nil, fmt.Errorf("bottega: load messages: %w", err)
		}
		a.Bundle = bundle
	}

	a.Echo.HideBanner = true
	a.Echo.HidePort = true
	a.limiter = NewRequestLimiter(a.Config.RequestsPerMinute, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a, nil
}

// Start listens on Config.Addr and blocks until the server stops.
func (a *App) Start() error {
	a.Logger.Info("listening", zap.String("addr", a.Config.Addr), zap.String("content", a.Config.ContentDir))
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully and releases background resources.
func (a *App) Shutdown(ctx context.Context) error {
	a.Close()
	return a.Echo.Shutdown(ctx)
}

// Close stops background resources. Call it when the App is not started,
// e.g. after an export.
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/static/*", a.handleStatic)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/llms.txt", a.handleLLMs)
	e.GET("/llms.json", a.handleLLMsJSON)

	e.GET("/", a.handleRoot)
	e.GET("/:locale", a.handleHome)
	e.GET("/:locale/blog", a.handleBlog)
	e.GET("/:locale/blog/:slug", a.handlePost)
	e.GET("/:locale/feed.xml", a.handleFeed)
	for _, kind := range legalKinds {
		e.GET("/:locale/"+kind, a.handleLegal(kind))
	}
}
