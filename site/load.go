package site

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML site file and overlays it on Default. Sections absent from
// the file keep their compiled-in values; present sections replace them whole.
func Load(path string) (Site, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Site{}, fmt.Errorf("site: read %s: %w", path, err)
	}
	s, err := Parse(raw)
	if err != nil {
		return Site{}, fmt.Errorf("site: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML site data on top of Default and validates the result.
func Parse(raw []byte) (Site, error) {
	var overlay struct {
		Meta    *Metadata `yaml:"meta"`
		Routes  Routes    `yaml:"routes"`
		Locales *Locales  `yaml:"locales"`
	}
	if len(bytes.TrimSpace(raw)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&overlay); err != nil {
			return Site{}, fmt.Errorf("decode: %w", err)
		}
	}

	s := Default()
	if overlay.Meta != nil {
		s.Meta = *overlay.Meta
	}
	if overlay.Routes != nil {
		s.Routes = overlay.Routes
	}
	if overlay.Locales != nil {
		s.Locales = *overlay.Locales
	}
	s.Meta.URL = strings.TrimRight(s.Meta.URL, "/")
	if err := s.Validate(); err != nil {
		return Site{}, err
	}
	return s, nil
}
