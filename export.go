package bottega

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ivoiuliano/bottega/llms"
	"github.com/ivoiuliano/bottega/sitemap"
)

// Export writes the discovery files (sitemap.xml, robots.txt, llms.txt,
// llms.json and one feed.xml per locale) into dir and returns the paths
// written. Nothing is written if the catalog holds a malformed post.
func (a *App) Export(dir string) ([]string, error) {
	now := a.now()
	files := map[string][]byte{}

	entries, err := sitemap.Project(a.Site, a.Catalog, now)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := sitemap.Encode(&buf, entries); err != nil {
		return nil, err
	}
	files["sitemap.xml"] = bytes.Clone(buf.Bytes())

	files["robots.txt"] = []byte(sitemap.Robots(a.Site.Meta.URL))
	files["llms.txt"] = []byte(llms.Build(a.Site, now))

	doc, err := json.MarshalIndent(llms.BuildJSON(a.Site, now), "", "  ")
	if err != nil {
		return nil, err
	}
	files["llms.json"] = doc

	for _, locale := range a.Site.Locales.Codes {
		posts, err := a.Catalog.ListAll(locale)
		if err != nil {
			return nil, err
		}
		buf.Reset()
		if err := a.writeFeed(&buf, locale, posts); err != nil {
			return nil, fmt.Errorf("feed %s: %w", locale, err)
		}
		files[filepath.Join(locale, "feed.xml")] = bytes.Clone(buf.Bytes())
	}

	written := make([]string, 0, len(files))
	for _, name := range exportOrder(a.Site.Locales.Codes) {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return written, err
		}
		if err := os.WriteFile(p, files[name], 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", name, err)
		}
		a.Logger.Debug("exported", zap.String("path", p), zap.Int("bytes", len(files[name])))
		written = append(written, p)
	}
	a.Logger.Info("export complete", zap.String("dir", dir), zap.Int("files", len(written)), zap.Int("sitemap_entries", len(entries)))
	return written, nil
}

func exportOrder(locales []string) []string {
	names := []string{"sitemap.xml", "robots.txt", "llms.txt", "llms.json"}
	for _, l := range locales {
		names = append(names, filepath.Join(l, "feed.xml"))
	}
	return names
}
