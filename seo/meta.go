// Package seo builds per-page head metadata and schema.org JSON-LD blocks from
// the site registries.
package seo

import (
	"strings"

	"github.com/ivoiuliano/bottega/site"
)

// OG image dimensions advertised in the head.
const (
	OGImageWidth  = 1200
	OGImageHeight = 630
)

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Locale      string
	SiteName    string
	Image       string // absolute
	ImageAlt    string
	Twitter     string // creator handle
	Manifest    string
	Alternates  []Alternate
}

// Alternate is one hreflang link. Lang "x-default" points at the default locale.
type Alternate struct {
	Lang string
	URL  string
}

// PageParams selects the page being described. Path is root-relative without
// the locale prefix ("" for home).
type PageParams struct {
	Title       string
	Description string
	Locale      string
	Path        string
	Article     bool
	Image       string
}

// BuildMeta resolves the head metadata for one localized page. An empty title
// falls back to the site title, otherwise it is suffixed with the site name.
func BuildMeta(s site.Site, p PageParams) PageMeta {
	m := s.Meta
	title := m.Title
	if p.Title != "" {
		title = p.Title + " | " + m.SiteName
	}
	description := p.Description
	if description == "" {
		description = m.Description
	}
	ogType := "website"
	if p.Article {
		ogType = "article"
	}
	image := p.Image
	if image == "" {
		image = m.OGImage
	}

	alternates := make([]Alternate, 0, len(s.Locales.Codes)+1)
	for _, code := range s.Locales.Codes {
		alternates = append(alternates, Alternate{Lang: code, URL: m.LocalizedURL(code, p.Path)})
	}
	alternates = append(alternates, Alternate{
		Lang: "x-default",
		URL:  m.LocalizedURL(s.Locales.Default, p.Path),
	})

	return PageMeta{
		Title:       title,
		Description: description,
		URL:         m.LocalizedURL(p.Locale, p.Path),
		OGType:      ogType,
		Locale:      p.Locale,
		SiteName:    m.SiteName,
		Image:       AbsoluteURL(m.URL, image),
		ImageAlt:    title,
		Twitter:     m.TwitterHandle,
		Manifest:    m.Manifest,
		Alternates:  alternates,
	}
}

// AbsoluteURL prefixes root-relative references with base and leaves absolute
// ones alone.
func AbsoluteURL(base, ref string) string {
	switch {
	case ref == "":
		return ""
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return ref
	default:
		return base + ref
	}
}
