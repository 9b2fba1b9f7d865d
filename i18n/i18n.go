// Package i18n holds the translated interface strings and picks a locale for a
// visitor from the Accept-Language header.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"golang.org/x/text/language"

	"github.com/ivoiuliano/bottega/site"
)

//go:embed messages/*.json
var defaultMessages embed.FS

// Bundle maps locale -> flattened key ("blog.readMore", "faq.0.question") -> text.
type Bundle struct {
	locales  site.Locales
	messages map[string]map[string]string
	matcher  language.Matcher
	order    []string // locale codes in matcher order, default first
}

// Default loads the messages compiled into the binary.
func Default(locales site.Locales) (*Bundle, error) {
	sub, err := fs.Sub(defaultMessages, "messages")
	if err != nil {
		return nil, err
	}
	return Load(sub, locales)
}

// Load reads <locale>.json from fsys for every registered locale.
func Load(fsys fs.FS, locales site.Locales) (*Bundle, error) {
	if err := locales.Check(); err != nil {
		return nil, err
	}
	b := &Bundle{
		locales:  locales,
		messages: make(map[string]map[string]string, len(locales.Codes)),
	}
	for _, code := range locales.Codes {
		raw, err := fs.ReadFile(fsys, code+".json")
		if err != nil {
			return nil, fmt.Errorf("i18n: %s: %w", code, err)
		}
		var tree map[string]interface{}
		if err := json.Unmarshal(raw, &tree); err != nil {
			return nil, fmt.Errorf("i18n: %s: %w", code, err)
		}
		flat := make(map[string]string)
		flatten("", tree, flat)
		b.messages[code] = flat
	}

	b.order = append(b.order, locales.Default)
	for _, code := range locales.Codes {
		if code != locales.Default {
			b.order = append(b.order, code)
		}
	}
	tags := make([]language.Tag, 0, len(b.order))
	for _, code := range b.order {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("i18n: locale %q: %w", code, err)
		}
		tags = append(tags, tag)
	}
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

func flatten(prefix string, v interface{}, out map[string]string) {
	key := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}
	switch t := v.(type) {
	case map[string]interface{}:
		for k, child := range t {
			flatten(key(k), child, out)
		}
	case []interface{}:
		for i, child := range t {
			flatten(key(strconv.Itoa(i)), child, out)
		}
	case string:
		out[prefix] = t
	case nil:
	default:
		out[prefix] = fmt.Sprint(t)
	}
}

// T returns the text for key in locale, falling back to the default locale
// and finally to the key itself.
func (b *Bundle) T(locale, key string) string {
	if s, ok := b.messages[locale][key]; ok {
		return s
	}
	if s, ok := b.messages[b.locales.Default][key]; ok {
		return s
	}
	return key
}

// Has reports whether locale defines key.
func (b *Bundle) Has(locale, key string) bool {
	_, ok := b.messages[locale][key]
	return ok
}

// Negotiate picks the best registered locale for an Accept-Language header.
// Unparseable or unmatched headers get the default locale.
func (b *Bundle) Negotiate(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return b.locales.Default
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return b.locales.Default
	}
	return b.order[idx]
}

// FormatDate renders t as "day month year" with the locale's month names,
// the form used by both it-IT and en-GB.
func (b *Bundle) FormatDate(t time.Time, locale string) string {
	month := b.T(locale, "months."+strconv.Itoa(int(t.Month())-1))
	return fmt.Sprintf("%d %s %d", t.Day(), month, t.Year())
}
