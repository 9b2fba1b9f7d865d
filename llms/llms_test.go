package llms

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivoiuliano/bottega/site"
)

var now = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

func TestBuildSections(t *testing.T) {
	doc := Build(site.Default(), now)
	sections := strings.Split(doc, Separator)
	require.Len(t, sections, 6)

	assert.True(t, strings.HasPrefix(sections[0], "# Ivo Iuliano\n\n"))
	assert.Contains(t, sections[0], "Primary URL: https://www.ivoiuliano.it")
	assert.Contains(t, sections[0], "Last Updated: 2025-01-15")
	assert.True(t, strings.HasPrefix(sections[1], "## Business Information"))
	assert.True(t, strings.HasPrefix(sections[2], "## Services Offered"))
	assert.True(t, strings.HasPrefix(sections[3], "## Site Structure"))
	assert.True(t, strings.HasPrefix(sections[4], "## Contact Information"))
	assert.True(t, strings.HasPrefix(sections[5], "## Technical Information"))
}

func TestBuildBusinessAndServices(t *testing.T) {
	doc := Build(site.Default(), now)

	assert.Contains(t, doc, "**VAT Number:** IT 01866260225")
	assert.Contains(t, doc, "**Specializations:** Violin, Viola, Cello, Viola da Gamba, Baroque Instruments, Historical Settings")
	assert.Contains(t, doc, "### New Instruments\n\n**Type:** Lutherie\n")
	assert.Less(t, strings.Index(doc, "### New Instruments"), strings.Index(doc, "### Restoration & Setup"))
}

func TestBuildRoutes(t *testing.T) {
	s := site.Default()
	s.Routes = site.Routes{
		{Path: "", Title: "Home", Description: "front", Priority: 1, ChangeFrequency: site.Weekly},
		{Path: "/blog", Description: "posts", Priority: 0.8, ChangeFrequency: site.Weekly},
	}
	doc := Build(s, now)

	assert.Contains(t, doc, "- **Home** (/): front\n- **Page** (/blog): posts")
	assert.Contains(t, doc, "**Available Languages:** it, en")
	assert.Contains(t, doc, "**Default Language:** it")
	assert.Contains(t, doc, "- Sitemap: https://www.ivoiuliano.it/sitemap.xml")
	assert.Contains(t, doc, "- Other locales: `https://www.ivoiuliano.it/{locale}{route}`")
}

func TestBuildDeterministic(t *testing.T) {
	s := site.Default()
	assert.Equal(t, Build(s, now), Build(s, now))
	assert.NotEqual(t, Build(s, now), Build(s, now.AddDate(0, 0, 1)))
}

func TestBuildJSON(t *testing.T) {
	doc := BuildJSON(site.Default(), now)
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, "Ivo Iuliano", back["site"].(map[string]any)["name"])
	assert.Equal(t, "2025-01-15T09:00:00Z", doc.Site.LastUpdated)
	assert.Len(t, doc.Services, 3)
	assert.Len(t, doc.Routes, len(site.Default().Routes))
	assert.Equal(t, "it", doc.Technical.DefaultLocale)

	luthier := back["business"].(map[string]any)["luthier"].(map[string]any)
	assert.Equal(t, "1970", luthier["birthYear"])
	assert.Contains(t, luthier, "specializations")
	assert.NotContains(t, luthier, "BirthYear")
	svc := back["services"].([]any)[0].(map[string]any)
	assert.Contains(t, svc, "name")
	assert.Contains(t, svc, "category")
}
