// Package site holds the static description of the business: who it is, which
// pages exist and which languages they are published in. Values are built once
// at startup and handed to every consumer; nothing in here is mutated after that.
package site

// Metadata describes the business behind the site.
type Metadata struct {
	SiteName      string    `yaml:"site_name"`
	Title         string    `yaml:"title"`
	Description   string    `yaml:"description"`
	URL           string    `yaml:"url"` // canonical origin, no trailing slash
	Booking       string    `yaml:"booking"`
	OGImage       string    `yaml:"og_image"`
	TwitterHandle string    `yaml:"twitter_handle"`
	Manifest      string    `yaml:"manifest"`
	Social        Social    `yaml:"social"`
	Business      Business  `yaml:"business"`
	Luthier       Person    `yaml:"luthier"`
	Services      []Service `yaml:"services"`
}

// Social holds the public contact channels.
type Social struct {
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

// Business is the legal identity of the workshop.
type Business struct {
	Name    string        `yaml:"name"`
	VAT     string        `yaml:"vat"`
	Address string        `yaml:"address"`
	Postal  PostalAddress `yaml:"postal"`
	Phone   string        `yaml:"phone"`
	Email   string        `yaml:"email"`
}

// PostalAddress is the structured form of Business.Address used in JSON-LD.
type PostalAddress struct {
	Street   string `yaml:"street"`
	Locality string `yaml:"locality"`
	Region   string `yaml:"region"`
	Postcode string `yaml:"postcode"`
	Country  string `yaml:"country"`
}

// Person is the maker.
type Person struct {
	Name            string   `yaml:"name" json:"name"`
	BirthYear       string   `yaml:"birth_year" json:"birthYear"`
	BirthPlace      string   `yaml:"birth_place" json:"birthPlace"`
	Training        string   `yaml:"training" json:"training"`
	DiplomaYear     string   `yaml:"diploma_year" json:"diplomaYear"`
	Teacher         string   `yaml:"teacher" json:"teacher"`
	Workshop        string   `yaml:"workshop" json:"workshop"`
	Specializations []string `yaml:"specializations" json:"specializations"`
}

// Service is one offering. Key is stable and used in JSON-LD identifiers.
type Service struct {
	Key         string `yaml:"key" json:"key"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Category    string `yaml:"category" json:"category"`
}

// Service returns the service with the given key.
func (m Metadata) Service(key string) (Service, bool) {
	for _, s := range m.Services {
		if s.Key == key {
			return s, true
		}
	}
	return Service{}, false
}

// Site bundles the three static registries consumed across the code base.
type Site struct {
	Meta    Metadata `yaml:"meta"`
	Routes  Routes   `yaml:"routes"`
	Locales Locales  `yaml:"locales"`
}

// Validate checks the cross-field invariants of all registries.
func (s Site) Validate() error {
	if err := s.Locales.Check(); err != nil {
		return err
	}
	if err := s.Routes.Validate(); err != nil {
		return err
	}
	if s.Meta.URL == "" {
		return errMissingURL
	}
	return nil
}

// URLFor returns the absolute, unprefixed URL of a root-relative path.
// The home path "" maps to the bare origin.
func (m Metadata) URLFor(path string) string {
	return m.URL + path
}

// LocalizedURL returns the absolute URL of path under the locale prefix.
func (m Metadata) LocalizedURL(locale, path string) string {
	return m.URL + "/" + locale + path
}
