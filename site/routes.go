package site

import (
	"fmt"
)

// ChangeFrequency is the sitemaps.org changefreq value for a page.
type ChangeFrequency string

const (
	Always  ChangeFrequency = "always"
	Hourly  ChangeFrequency = "hourly"
	Daily   ChangeFrequency = "daily"
	Weekly  ChangeFrequency = "weekly"
	Monthly ChangeFrequency = "monthly"
	Yearly  ChangeFrequency = "yearly"
	Never   ChangeFrequency = "never"
)

// Valid reports whether f is one of the sitemaps.org values.
func (f ChangeFrequency) Valid() bool {
	switch f {
	case Always, Hourly, Daily, Weekly, Monthly, Yearly, Never:
		return true
	}
	return false
}

// Route is a logical page, independent of locale.
type Route struct {
	Path            string          `yaml:"path"` // "" is home; never carries a locale prefix
	Priority        float64         `yaml:"priority"`
	ChangeFrequency ChangeFrequency `yaml:"change_frequency"`
	Title           string          `yaml:"title"`
	Description     string          `yaml:"description"`
}

// Routes is the ordered route registry. Order is preserved in every listing.
type Routes []Route

// Validate enforces unique paths, priorities in [0,1] and known frequencies.
func (rs Routes) Validate() error {
	seen := make(map[string]struct{}, len(rs))
	for _, r := range rs {
		if _, dup := seen[r.Path]; dup {
			return fmt.Errorf("site: duplicate route path %q", r.Path)
		}
		seen[r.Path] = struct{}{}
		if r.Priority < 0 || r.Priority > 1 {
			return fmt.Errorf("site: route %q priority %v outside [0,1]", r.Path, r.Priority)
		}
		if !r.ChangeFrequency.Valid() {
			return fmt.Errorf("site: route %q has unknown change frequency %q", r.Path, r.ChangeFrequency)
		}
	}
	return nil
}

// ByPath returns the route registered for path.
func (rs Routes) ByPath(path string) (Route, bool) {
	for _, r := range rs {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Paths lists every route path in registry order.
func (rs Routes) Paths() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Path)
	}
	return out
}

// ByPriority returns the routes whose priority is at least min, in registry order.
func (rs Routes) ByPriority(min float64) Routes {
	var out Routes
	for _, r := range rs {
		if r.Priority >= min {
			out = append(out, r)
		}
	}
	return out
}
