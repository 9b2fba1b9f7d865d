// Package llms renders the llms.txt description of the site (https://llmstxt.org/)
// from the static site registries.
package llms

import (
	"fmt"
	"strings"
	"time"

	"github.com/ivoiuliano/bottega/site"
)

// Separator joins the sections of the document.
const Separator = "\n\n---\n\n"

// Build returns the llms.txt document. now only feeds the "Last Updated" line.
func Build(s site.Site, now time.Time) string {
	sections := []string{
		header(s.Meta, now),
		businessInfo(s.Meta),
		services(s.Meta),
		siteStructure(s),
		contactInfo(s.Meta),
		technicalInfo(),
	}
	return strings.Join(sections, Separator)
}

func header(m site.Metadata, now time.Time) string {
	return fmt.Sprintf("# %s\n\n%s\n\nPrimary URL: %s\nLast Updated: %s",
		m.SiteName, m.Description, m.URL, now.UTC().Format("2006-01-02"))
}

func businessInfo(m site.Metadata) string {
	b, p := m.Business, m.Luthier
	var sb strings.Builder
	sb.WriteString("## Business Information\n\n")
	fmt.Fprintf(&sb, "**Legal Name:** %s\n", b.Name)
	fmt.Fprintf(&sb, "**VAT Number:** %s\n", b.VAT)
	fmt.Fprintf(&sb, "**Address:** %s\n", b.Address)
	fmt.Fprintf(&sb, "**Phone:** %s\n", b.Phone)
	fmt.Fprintf(&sb, "**Email:** %s\n\n", b.Email)
	fmt.Fprintf(&sb, "**Luthier:** %s\n", p.Name)
	fmt.Fprintf(&sb, "**Birth Year:** %s\n", p.BirthYear)
	fmt.Fprintf(&sb, "**Birth Place:** %s\n", p.BirthPlace)
	fmt.Fprintf(&sb, "**Training:** %s\n", p.Training)
	fmt.Fprintf(&sb, "**Diploma Year:** %s\n", p.DiplomaYear)
	fmt.Fprintf(&sb, "**Teacher:** %s\n", p.Teacher)
	fmt.Fprintf(&sb, "**Workshop Location:** %s\n", p.Workshop)
	fmt.Fprintf(&sb, "**Specializations:** %s", strings.Join(p.Specializations, ", "))
	return sb.String()
}

func services(m site.Metadata) string {
	blocks := make([]string, 0, len(m.Services))
	for _, svc := range m.Services {
		blocks = append(blocks, fmt.Sprintf("### %s\n\n**Type:** %s\n**Description:** %s",
			svc.Name, svc.Category, svc.Description))
	}
	return "## Services Offered\n\n" + strings.Join(blocks, "\n\n")
}

func siteStructure(s site.Site) string {
	base := s.Meta.URL
	lines := make([]string, 0, len(s.Routes))
	for _, r := range s.Routes {
		path := r.Path
		if path == "" {
			path = "/"
		}
		title := r.Title
		if title == "" {
			title = "Page"
		}
		lines = append(lines, fmt.Sprintf("- **%s** (%s): %s", title, path, r.Description))
	}

	var sb strings.Builder
	sb.WriteString("## Site Structure\n\n")
	fmt.Fprintf(&sb, "**Available Languages:** %s\n", strings.Join(s.Locales.Codes, ", "))
	fmt.Fprintf(&sb, "**Default Language:** %s\n\n", s.Locales.Default)
	sb.WriteString("**Main Routes:**\n")
	sb.WriteString(strings.Join(lines, "\n"))
	sb.WriteString("\n\n**System Routes:**\n")
	fmt.Fprintf(&sb, "- Sitemap: %s/sitemap.xml\n", base)
	fmt.Fprintf(&sb, "- Robots: %s/robots.txt\n", base)
	fmt.Fprintf(&sb, "- LLMs: %s/llms.txt\n\n", base)
	sb.WriteString("**URL Pattern:**\n")
	fmt.Fprintf(&sb, "- Default locale: `%s{route}`\n", base)
	fmt.Fprintf(&sb, "- Other locales: `%s/{locale}{route}`", base)
	return sb.String()
}

func contactInfo(m site.Metadata) string {
	return fmt.Sprintf("## Contact Information\n\n**Email:** %s\n**Phone:** %s\n**Booking/Appointments:** %s",
		m.Social.Email, m.Social.Phone, m.Booking)
}

func technicalInfo() string {
	return `## Technical Information

**Server:** Go (Echo)
**Templates:** templ
**Content:** Markdown files with YAML frontmatter, one file per article and language
**Internationalization:** locale-prefixed URLs with hreflang alternates

**SEO Features:**
- Per-page metadata with canonical and alternate language links
- JSON-LD structured data
- Multilingual sitemap
- Open Graph and Twitter tags

**Performance:**
- Gzip-compressed responses with long-lived caching of static assets
- Pre-generated sitemap, robots.txt and llms.txt
- Mobile-first responsive design`
}
