package content

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivoiuliano/bottega/site"
)

func doc(title, date string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte("---\ntitle: " + title + "\ndescription: about " + title + "\ndate: " + date + "\n---\n\nBody of " + title + ".\n")}
}

func newTestCatalog(files fstest.MapFS, codes ...string) *Catalog {
	if len(codes) == 0 {
		codes = []string{"en", "it", "fr"}
	}
	return NewCatalog(NewFSStore(files), site.Locales{Codes: codes, Default: codes[0]})
}

func TestListSlugsMissingLocaleDirectory(t *testing.T) {
	c := newTestCatalog(fstest.MapFS{
		"en/a.md": doc("A", "2024-01-01"),
	})

	slugs, err := c.ListSlugs("fr")
	require.NoError(t, err)
	assert.Empty(t, slugs)

	posts, err := c.ListAll("fr")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestListSlugsSkipsDraftsAndNonMarkdown(t *testing.T) {
	c := newTestCatalog(fstest.MapFS{
		"en/b.md":        doc("B", "2024-01-01"),
		"en/a.md":        doc("A", "2024-01-02"),
		"en/_draft.md":   doc("Draft", "2024-01-03"),
		"en/notes.txt":   {Data: []byte("x")},
		"en/sub/deep.md": doc("Deep", "2024-01-04"),
	})

	slugs, err := c.ListSlugs("en")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, slugs)
}

func TestGetBySlugPresentIffListed(t *testing.T) {
	c := newTestCatalog(fstest.MapFS{
		"en/a.md":      doc("A", "2024-01-01"),
		"en/_draft.md": doc("Draft", "2024-01-03"),
	})

	listed, err := c.ListSlugs("en")
	require.NoError(t, err)

	for _, slug := range []string{"a", "_draft", "missing", "../en/a", "en/a"} {
		_, ok, err := c.GetBySlug(slug, "en")
		require.NoError(t, err, slug)
		assert.Equal(t, contains(listed, slug), ok, slug)
	}
}

func TestDotsInsideSlugAreKept(t *testing.T) {
	c := newTestCatalog(fstest.MapFS{
		"en/a..b.md": doc("Dots", "2024-01-01"),
	})

	slugs, err := c.ListSlugs("en")
	require.NoError(t, err)
	assert.Equal(t, []string{"a..b"}, slugs)

	p, ok, err := c.GetBySlug("a..b", "en")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Dots", p.Frontmatter.Title)

	_, ok, err = c.GetBySlug("..", "en")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetBySlugParsesFrontmatter(t *testing.T) {
	c := newTestCatalog(fstest.MapFS{
		"it/liuteria.md": {Data: []byte("---\ntitle: \"Liuteria: l'arte\"\ndescription: Un mestiere antico\ndate: 2024-03-01\nimage: /images/blog/bench.jpg\n---\n# Titolo\n\nTesto.\n")},
	})

	p, ok, err := c.GetBySlug("liuteria", "it")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "liuteria", p.Slug)
	assert.Equal(t, "it", p.Locale)
	assert.Equal(t, "Liuteria: l'arte", p.Frontmatter.Title)
	assert.Equal(t, "Un mestiere antico", p.Frontmatter.Description)
	assert.Equal(t, "2024-03-01", p.Frontmatter.RawDate)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), p.Frontmatter.Date)
	assert.Equal(t, "/images/blog/bench.jpg", p.Frontmatter.Image)
	assert.Contains(t, p.Content, "# Titolo")
	assert.Equal(t, "/it/blog/liuteria", p.Link())
}

func TestListAllNewestFirst(t *testing.T) {
	c := newTestCatalog(fstest.MapFS{
		"en/old.md":    doc("Old", "2023-05-01"),
		"en/new.md":    doc("New", "2024-06-01"),
		"en/mid-b.md":  doc("Mid B", "2024-01-01"),
		"en/mid-a.md":  doc("Mid A", "2024-01-01"),
		"en/_draft.md": doc("Draft", "2030-01-01"),
	})

	posts, err := c.ListAll("en")
	require.NoError(t, err)

	var slugs []string
	for _, p := range posts {
		slugs = append(slugs, p.Slug)
	}
	assert.Equal(t, []string{"new", "mid-a", "mid-b", "old"}, slugs)
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].Frontmatter.Date.After(posts[i-1].Frontmatter.Date))
	}
}

func TestListAllSlugsAcrossLocales(t *testing.T) {
	c := newTestCatalog(fstest.MapFS{
		"en/a.md": doc("A", "2024-01-01"),
		"en/b.md": doc("B", "2024-01-01"),
		"it/b.md": doc("B", "2024-01-01"),
		"it/c.md": doc("C", "2024-01-01"),
	})

	slugs, err := c.ListAllSlugsAcrossLocales()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, slugs)
}

func TestLocalesHavingSlugKeepsRegistryOrder(t *testing.T) {
	c := newTestCatalog(fstest.MapFS{
		"fr/a.md": doc("A", "2024-01-01"),
		"it/a.md": doc("A", "2024-02-01"),
	})

	locales, err := c.LocalesHavingSlug("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"it", "fr"}, locales)

	locales, err = c.LocalesHavingSlug("zzz")
	require.NoError(t, err)
	assert.Empty(t, locales)
}

func TestUnknownLocaleFailsFast(t *testing.T) {
	c := newTestCatalog(fstest.MapFS{})

	_, err := c.ListSlugs("de")
	assert.ErrorIs(t, err, site.ErrUnknownLocale)

	_, _, err = c.GetBySlug("a", "de")
	assert.ErrorIs(t, err, site.ErrUnknownLocale)

	_, err = c.ListAll("de")
	assert.ErrorIs(t, err, site.ErrUnknownLocale)
}

func TestMalformedHeader(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad date", "---\ntitle: X\ndate: first of March\n---\nbody"},
		{"impossible date", "---\ntitle: X\ndate: 2024-02-31\n---\nbody"},
		{"missing date", "---\ntitle: X\n---\nbody"},
		{"missing title", "---\ndate: 2024-01-01\n---\nbody"},
		{"no header", "just a body"},
		{"broken yaml", "---\ntitle: [unclosed\ndate: 2024-01-01\n---\nbody"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCatalog(fstest.MapFS{
				"en/good.md":   doc("Good", "2024-01-01"),
				"en/broken.md": {Data: []byte(tt.data)},
			})

			_, ok, err := c.GetBySlug("broken", "en")
			require.Error(t, err)
			assert.False(t, ok)
			assert.True(t, errors.Is(err, ErrMalformedHeader))

			var he *HeaderError
			require.True(t, errors.As(err, &he))
			assert.Equal(t, "en", he.Locale)
			assert.Equal(t, "broken", he.Slug)

			// the whole listing fails rather than silently dropping the post
			_, err = c.ListAll("en")
			assert.ErrorIs(t, err, ErrMalformedHeader)
		})
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	c := newTestCatalog(fstest.MapFS{
		"en/good.md": doc("Good", "2024-01-01"),
		"en/bad.md":  {Data: []byte("---\ntitle: X\ndate: soon\n---\n")},
		"it/bad.md":  {Data: []byte("no header")},
	})

	problems, err := c.Validate()
	require.NoError(t, err)
	require.Len(t, problems, 2)
	assert.Equal(t, "en", problems[0].Locale)
	assert.Equal(t, "it", problems[1].Locale)
}

type failingStore struct{}

func (failingStore) List(string) ([]string, error)       { return []string{"a"}, nil }
func (failingStore) Read(string, string) ([]byte, error) { return nil, fs.ErrPermission }

func TestStoreFaultIsNotNotFound(t *testing.T) {
	c := NewCatalog(failingStore{}, site.Locales{Codes: []string{"en"}, Default: "en"})
	_, ok, err := c.GetBySlug("a", "en")
	assert.False(t, ok)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
