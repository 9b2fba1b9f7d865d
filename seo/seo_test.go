package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivoiuliano/bottega/site"
)

func TestBuildMetaDefaults(t *testing.T) {
	s := site.Default()
	got := BuildMeta(s, PageParams{Locale: "en"})

	assert.Equal(t, s.Meta.Title, got.Title)
	assert.Equal(t, s.Meta.Description, got.Description)
	assert.Equal(t, "https://www.ivoiuliano.it/en", got.URL)
	assert.Equal(t, "website", got.OGType)
	assert.Equal(t, "https://www.ivoiuliano.it/images/og-image.jpg", got.Image)
	assert.Equal(t, []Alternate{
		{Lang: "it", URL: "https://www.ivoiuliano.it/it"},
		{Lang: "en", URL: "https://www.ivoiuliano.it/en"},
		{Lang: "x-default", URL: "https://www.ivoiuliano.it/it"},
	}, got.Alternates)
}

func TestBuildMetaArticle(t *testing.T) {
	s := site.Default()
	got := BuildMeta(s, PageParams{
		Title:   "Varnish",
		Locale:  "it",
		Path:    "/blog/varnish",
		Article: true,
		Image:   "https://cdn.example/v.jpg",
	})

	assert.Equal(t, "Varnish | Ivo Iuliano", got.Title)
	assert.Equal(t, "article", got.OGType)
	assert.Equal(t, "https://www.ivoiuliano.it/it/blog/varnish", got.URL)
	assert.Equal(t, "https://cdn.example/v.jpg", got.Image)
	assert.Equal(t, "https://www.ivoiuliano.it/en/blog/varnish", got.Alternates[1].URL)
}

func decode(t *testing.T, o Object) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(o.String()), &out))
	return out
}

func TestOrganizationAndPerson(t *testing.T) {
	m := site.Default().Meta
	org := decode(t, Organization(m))
	assert.Equal(t, "ProfessionalService", org["@type"])
	assert.Equal(t, "https://www.ivoiuliano.it/#organization", org["@id"])
	assert.Equal(t, "38068", org["address"].(map[string]interface{})["postalCode"])

	person := decode(t, Person(m))
	assert.Equal(t, "https://www.ivoiuliano.it/#organization", person["worksFor"].(map[string]interface{})["@id"])
	assert.Len(t, person["knowsAbout"], len(m.Luthier.Specializations))
}

func TestService(t *testing.T) {
	m := site.Default().Meta
	svc, ok := Service(m, "restoration")
	require.True(t, ok)
	assert.Equal(t, "https://www.ivoiuliano.it/#restoration-service", svc["@id"])
	assert.Equal(t, "Restoration", svc["serviceType"])

	_, ok = Service(m, "tuning")
	assert.False(t, ok)
}

func TestBlogPosting(t *testing.T) {
	m := site.Default().Meta
	got := decode(t, BlogPosting(m, Article{
		URL:       "https://www.ivoiuliano.it/en/blog/a",
		Title:     "A",
		Published: "2024-03-01",
		Image:     "/images/a.jpg",
	}))
	assert.Equal(t, "2024-03-01", got["dateModified"])
	assert.Equal(t, "https://www.ivoiuliano.it/images/a.jpg", got["image"])
	assert.Equal(t, "https://www.ivoiuliano.it/#luthier", got["author"].(map[string]interface{})["@id"])

	noImage := BlogPosting(m, Article{URL: "u", Published: "2024-03-01"})
	assert.NotContains(t, noImage, "image")
}

func TestBreadcrumbs(t *testing.T) {
	m := site.Default().Meta
	got := decode(t, Breadcrumbs(m, "en", "Home", []Crumb{
		{Name: "Blog", Path: "/blog"},
		{Name: "A", Path: "/blog/a"},
	}))
	items := got["itemListElement"].([]interface{})
	require.Len(t, items, 3)
	last := items[2].(map[string]interface{})
	assert.Equal(t, float64(3), last["position"])
	assert.Equal(t, "https://www.ivoiuliano.it/en/blog/a", last["item"])
}

func TestFAQPage(t *testing.T) {
	got := decode(t, FAQPage([]FAQ{{Question: "Q?", Answer: "A."}}))
	entities := got["mainEntity"].([]interface{})
	require.Len(t, entities, 1)
	q := entities[0].(map[string]interface{})
	assert.Equal(t, "Q?", q["name"])
	assert.Equal(t, "A.", q["acceptedAnswer"].(map[string]interface{})["text"])
}
