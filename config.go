package bottega

import (
	"time"

	"go.uber.org/zap"

	"github.com/ivoiuliano/bottega/content"
	"github.com/ivoiuliano/bottega/i18n"
	"github.com/ivoiuliano/bottega/site"
)

// SiteConfig holds the runtime configuration of a bottega server.
type SiteConfig struct {
	Addr       string // Listen address (default ":3000")
	ContentDir string // Root of <locale>/<slug>.md files (default "content/blog")
	StaticDir  string // User static assets served under /static (default "public")

	RequestsPerMinute int // Per-IP request budget (default 300)
	LatestPosts       int // Posts shown on the home page (default 3)
}

func (c *SiteConfig) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content/blog"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.RequestsPerMinute <= 0 {
		c.RequestsPerMinute = 300
	}
	if c.LatestPosts <= 0 {
		c.LatestPosts = 3
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithSite replaces the compiled-in site registries.
func WithSite(s site.Site) Option {
	return func(a *App) {
		a.Site = s
	}
}

// WithStore reads content from store instead of Config.ContentDir.
func WithStore(store content.Store) Option {
	return func(a *App) {
		a.store = store
	}
}

// WithBundle replaces the embedded translations.
func WithBundle(b *i18n.Bundle) Option {
	return func(a *App) {
		a.Bundle = b
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithClock overrides the time source used for build timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}
