package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"time"
)

const (
	sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xhtmlNS   = "http://www.w3.org/1999/xhtml"
)

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	XHTML   string   `xml:"xmlns:xhtml,attr"`
	URLs    []url    `xml:"url"`
}

type url struct {
	Loc        string      `xml:"loc"`
	LastMod    string      `xml:"lastmod,omitempty"`
	ChangeFreq string      `xml:"changefreq,omitempty"`
	Priority   string      `xml:"priority,omitempty"`
	Links      []xhtmlLink `xml:"xhtml:link"`
}

type xhtmlLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// Encode writes entries as a sitemaps.org urlset, with hreflang alternates as
// xhtml:link children.
func Encode(w io.Writer, entries []Entry) error {
	set := urlSet{
		XMLNS: sitemapNS,
		XHTML: xhtmlNS,
		URLs:  make([]url, 0, len(entries)),
	}
	for _, e := range entries {
		u := url{
			Loc:        e.URL,
			LastMod:    formatLastMod(e.LastModified),
			ChangeFreq: string(e.ChangeFrequency),
			Priority:   strconv.FormatFloat(e.Priority, 'f', -1, 64),
		}
		for _, locale := range e.AlternateLocales() {
			u.Links = append(u.Links, xhtmlLink{
				Rel:      "alternate",
				Hreflang: locale,
				Href:     e.Alternates[locale],
			})
		}
		set.URLs = append(set.URLs, u)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("sitemap: encode: %w", err)
	}
	return nil
}

// formatLastMod uses the short W3C date form for whole days.
func formatLastMod(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.UTC()
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}

// Robots renders robots.txt: everything allowed, sitemap advertised.
func Robots(siteURL string) string {
	return "User-agent: *\nAllow: /\n\nSitemap: " + siteURL + "/sitemap.xml\n"
}
