// Package sitemap projects the route registry and the blog catalog into
// locale-aware sitemap entries and renders them as sitemaps.org XML.
package sitemap

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/ivoiuliano/bottega/content"
	"github.com/ivoiuliano/bottega/site"
)

// Fixed ranking for blog posts.
const (
	PostChangeFrequency = site.Monthly
	PostPriority        = 0.6
)

// Entry is one <url> of the sitemap.
type Entry struct {
	URL             string
	LastModified    time.Time
	ChangeFrequency site.ChangeFrequency
	Priority        float64
	Alternates      map[string]string // locale -> absolute URL
}

// AlternateLocales returns the keys of Alternates in lexical order.
func (e Entry) AlternateLocales() []string {
	return slices.Sorted(maps.Keys(e.Alternates))
}

// Catalog is the part of content.Catalog the projector needs.
type Catalog interface {
	ListAllSlugsAcrossLocales() ([]string, error)
	LocalesHavingSlug(slug string) ([]string, error)
	GetBySlug(slug, locale string) (content.Post, bool, error)
}

// Project builds the sitemap entries: one per static route, with an alternate
// for every locale, followed by one per blog slug with alternates only for the
// locales that actually carry the post. now stamps the static routes.
func Project(s site.Site, catalog Catalog, now time.Time) ([]Entry, error) {
	entries := make([]Entry, 0, len(s.Routes))
	for _, r := range s.Routes {
		alternates := make(map[string]string, len(s.Locales.Codes))
		for _, locale := range s.Locales.Codes {
			alternates[locale] = s.Meta.LocalizedURL(locale, r.Path)
		}
		entries = append(entries, Entry{
			URL:             s.Meta.URLFor(r.Path),
			LastModified:    now,
			ChangeFrequency: r.ChangeFrequency,
			Priority:        r.Priority,
			Alternates:      alternates,
		})
	}

	slugs, err := catalog.ListAllSlugsAcrossLocales()
	if err != nil {
		return nil, fmt.Errorf("sitemap: %w", err)
	}
	for _, slug := range slugs {
		locales, err := catalog.LocalesHavingSlug(slug)
		if err != nil {
			return nil, fmt.Errorf("sitemap: %w", err)
		}
		if len(locales) == 0 {
			continue
		}
		first, ok, err := catalog.GetBySlug(slug, locales[0])
		if err != nil {
			return nil, fmt.Errorf("sitemap: %w", err)
		}
		if !ok {
			continue
		}
		path := "/blog/" + slug
		alternates := make(map[string]string, len(locales))
		for _, locale := range locales {
			alternates[locale] = s.Meta.LocalizedURL(locale, path)
		}
		entries = append(entries, Entry{
			URL:             s.Meta.LocalizedURL(s.Locales.Default, path),
			LastModified:    first.Frontmatter.Date,
			ChangeFrequency: PostChangeFrequency,
			Priority:        PostPriority,
			Alternates:      alternates,
		})
	}
	return entries, nil
}
