package content

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"sort"
	"strings"

	"github.com/ivoiuliano/bottega/site"
)

// Catalog answers locale-scoped and cross-locale questions about blog posts.
// It keeps no state besides its collaborators: every call reads the store
// again, so edits to the content tree show up on the next request.
type Catalog struct {
	store   Store
	locales site.Locales
}

// NewCatalog returns a Catalog over store for the given locales.
func NewCatalog(store Store, locales site.Locales) *Catalog {
	return &Catalog{store: store, locales: locales}
}

// Locales returns the locale registry the catalog was built with.
func (c *Catalog) Locales() site.Locales {
	return c.locales
}

// ListSlugs returns the sorted identifiers published in locale. Drafts
// (names starting with "_") are skipped. A locale with no content
// directory yields an empty list.
func (c *Catalog) ListSlugs(locale string) ([]string, error) {
	if err := c.locales.Validate(locale); err != nil {
		return nil, err
	}
	ids, err := c.store.List(locale)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("content: list %s: %w", locale, err)
	}
	slugs := make([]string, 0, len(ids))
	for _, id := range ids {
		if validSlug(id) {
			slugs = append(slugs, id)
		}
	}
	sort.Strings(slugs)
	return slugs, nil
}

// GetBySlug parses one post. The boolean is false when the post does not
// exist in that locale; that is not an error.
func (c *Catalog) GetBySlug(slug, locale string) (Post, bool, error) {
	if err := c.locales.Validate(locale); err != nil {
		return Post{}, false, err
	}
	if !validSlug(slug) {
		return Post{}, false, nil
	}
	raw, err := c.store.Read(locale, slug)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Post{}, false, nil
		}
		return Post{}, false, fmt.Errorf("content: read %s/%s: %w", locale, slug, err)
	}
	post, err := parsePost(locale, slug, raw)
	if err != nil {
		return Post{}, false, err
	}
	return post, true, nil
}

// ListAll returns every post of locale, newest first. Posts sharing a date
// are ordered by slug.
func (c *Catalog) ListAll(locale string) ([]Post, error) {
	slugs, err := c.ListSlugs(locale)
	if err != nil {
		return nil, err
	}
	posts := make([]Post, 0, len(slugs))
	for _, slug := range slugs {
		p, ok, err := c.GetBySlug(slug, locale)
		if err != nil {
			return nil, err
		}
		if ok {
			posts = append(posts, p)
		}
	}
	SortNewestFirst(posts)
	return posts, nil
}

// ListAllSlugsAcrossLocales returns the sorted union of ListSlugs over every locale.
func (c *Catalog) ListAllSlugsAcrossLocales() ([]string, error) {
	set := make(map[string]struct{})
	for _, locale := range c.locales.Codes {
		slugs, err := c.ListSlugs(locale)
		if err != nil {
			return nil, err
		}
		for _, s := range slugs {
			set[s] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out, nil
}

// LocalesHavingSlug lists, in registry order, the locales where slug exists.
func (c *Catalog) LocalesHavingSlug(slug string) ([]string, error) {
	var out []string
	for _, locale := range c.locales.Codes {
		_, ok, err := c.GetBySlug(slug, locale)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, locale)
		}
	}
	return out, nil
}

// Validate parses every post in every locale and collects all header
// problems instead of stopping at the first one. Other errors abort.
func (c *Catalog) Validate() ([]*HeaderError, error) {
	var problems []*HeaderError
	for _, locale := range c.locales.Codes {
		slugs, err := c.ListSlugs(locale)
		if err != nil {
			return nil, err
		}
		for _, slug := range slugs {
			_, _, err := c.GetBySlug(slug, locale)
			var he *HeaderError
			switch {
			case err == nil:
			case errors.As(err, &he):
				problems = append(problems, he)
			default:
				return nil, err
			}
		}
	}
	return problems, nil
}

// SortNewestFirst orders posts by date descending, then slug ascending.
func SortNewestFirst(posts []Post) {
	slices.SortStableFunc(posts, func(a, b Post) int {
		if c := b.Frontmatter.Date.Compare(a.Frontmatter.Date); c != 0 {
			return c
		}
		return strings.Compare(a.Slug, b.Slug)
	})
}

func validSlug(slug string) bool {
	if slug == "" || strings.HasPrefix(slug, "_") {
		return false
	}
	return slug != ".." && !strings.ContainsAny(slug, `/\`)
}
