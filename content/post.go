// Package content discovers and parses the localized blog posts kept as
// Markdown files under content/blog/<locale>/<slug>.md.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// DateLayout is the layout of the frontmatter date field.
const DateLayout = "2006-01-02"

// ErrMalformedHeader marks a document whose frontmatter cannot be trusted.
var ErrMalformedHeader = errors.New("malformed frontmatter")

// Post is one article in one locale.
type Post struct {
	Slug        string
	Locale      string
	Frontmatter Frontmatter
	Content     string // raw Markdown body
}

// Frontmatter is the structured header of a post.
type Frontmatter struct {
	Title       string
	Description string
	Date        time.Time
	RawDate     string // as written, normally YYYY-MM-DD
	Image       string
}

// Link returns the locale-prefixed path of the post, e.g. /it/blog/liuteria.
func (p Post) Link() string {
	return "/" + p.Locale + "/blog/" + p.Slug
}

// HeaderError reports a document that could not be parsed.
type HeaderError struct {
	Locale string
	Slug   string
	Err    error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("content: %s/%s%s: %v", e.Locale, e.Slug, fileExt, e.Err)
}

// Unwrap lets errors.Is match both ErrMalformedHeader and the underlying cause.
func (e *HeaderError) Unwrap() []error {
	return []error{ErrMalformedHeader, e.Err}
}

type frontmatterYAML struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        scalar `yaml:"date"`
	Image       string `yaml:"image"`
}

// scalar keeps the literal text of a YAML scalar so dates are not reinterpreted
// by the decoder's timestamp resolution.
type scalar string

func (s *scalar) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", n.Line)
	}
	*s = scalar(n.Value)
	return nil
}

var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

var dateLayouts = []string{DateLayout, time.RFC3339}

// parsePost splits raw into header and body. Any problem with the header is a
// HeaderError; a post is never returned with a zero date or empty title.
func parsePost(locale, slug string, raw []byte) (Post, error) {
	fail := func(err error) (Post, error) {
		return Post{}, &HeaderError{Locale: locale, Slug: slug, Err: err}
	}

	raw = bytes.TrimPrefix(raw, []byte("\ufeff"))
	var fm frontmatterYAML
	body, err := frontmatter.MustParse(bytes.NewReader(raw), &fm, yamlFormat)
	if err != nil {
		return fail(err)
	}

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		return fail(errors.New("title is required"))
	}
	rawDate := strings.TrimSpace(string(fm.Date))
	if rawDate == "" {
		return fail(errors.New("date is required"))
	}
	date, ok := parseDate(rawDate)
	if !ok {
		return fail(fmt.Errorf("date %q is not YYYY-MM-DD", rawDate))
	}

	return Post{
		Slug:   slug,
		Locale: locale,
		Frontmatter: Frontmatter{
			Title:       title,
			Description: strings.TrimSpace(fm.Description),
			Date:        date,
			RawDate:     rawDate,
			Image:       strings.TrimSpace(fm.Image),
		},
		Content: strings.TrimLeft(string(body), "\r\n"),
	}, nil
}

func parseDate(v string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
