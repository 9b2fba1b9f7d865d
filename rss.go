package bottega

import (
	"encoding/xml"
	"io"
	"time"

	"github.com/ivoiuliano/bottega/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// writeFeed encodes the RSS 2.0 feed of one locale's posts, newest first.
func (a *App) writeFeed(w io.Writer, locale string, posts []content.Post) error {
	m := a.Site.Meta
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		postURL := m.URLFor(p.Link())
		items = append(items, rssItem{
			Title:       p.Frontmatter.Title,
			Link:        postURL,
			Description: p.Frontmatter.Description,
			PubDate:     p.Frontmatter.Date.Format(time.RFC1123Z),
			GUID:        postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Bundle.T(locale, "blog.title") + " | " + m.SiteName,
			Link:        m.LocalizedURL(locale, "/blog"),
			Description: a.Bundle.T(locale, "blog.description"),
			Language:    locale,
			Items:       items,
		},
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(feed)
}
