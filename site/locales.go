package site

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownLocale is returned when a caller asks for a locale the site does not publish.
var ErrUnknownLocale = errors.New("unknown locale")

var errMissingURL = errors.New("site: metadata url is required")

// Locales is the ordered set of published languages.
type Locales struct {
	Codes   []string `yaml:"codes"`
	Default string   `yaml:"default"`
}

// Check verifies the registry itself: at least one code, no duplicates, default included.
func (l Locales) Check() error {
	if len(l.Codes) == 0 {
		return errors.New("site: no locales configured")
	}
	seen := make(map[string]struct{}, len(l.Codes))
	for _, c := range l.Codes {
		if c == "" {
			return errors.New("site: empty locale code")
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("site: duplicate locale %q", c)
		}
		seen[c] = struct{}{}
	}
	if !l.Supports(l.Default) {
		return fmt.Errorf("site: default locale %q is not in %v", l.Default, l.Codes)
	}
	return nil
}

// Supports reports whether code is a published locale.
func (l Locales) Supports(code string) bool {
	return slices.Contains(l.Codes, code)
}

// Validate returns ErrUnknownLocale (wrapped with the code) if code is not published.
func (l Locales) Validate(code string) error {
	if !l.Supports(code) {
		return fmt.Errorf("%w: %q", ErrUnknownLocale, code)
	}
	return nil
}
