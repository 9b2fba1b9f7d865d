package views

import (
	"github.com/a-h/templ"

	"github.com/ivoiuliano/bottega/seo"
	"github.com/ivoiuliano/bottega/site"
)

// Page is the data every page template receives.
type Page struct {
	Meta    seo.PageMeta
	JSONLD  []seo.Object
	Site    site.Metadata
	Locale  string
	Locales []string
	Path    string // route path without locale prefix, for the language switcher
	Year    int
	T       func(key string) string
}

// PostSummary is a post as listed on the blog index and the home page.
type PostSummary struct {
	Slug        string
	Title       string
	Description string
	Date        string // ISO, for <time datetime>
	DisplayDate string // localized
	Link        string
	Image       string
}

type HomePage struct {
	Page
	Services []site.Service
	Latest   []PostSummary
	FAQs     []seo.FAQ
}

type BlogPage struct {
	Page
	Posts []PostSummary
}

type PostPage struct {
	Page
	Post PostSummary
	Body templ.Component
}

// LegalPage is one of the privacy, terms and cookie pages.
type LegalPage struct {
	Page
	Kind  string
	Title string
}

type ErrorPage struct {
	Page
	Status  int
	Message string
}
