package llms

import (
	"time"

	"github.com/ivoiuliano/bottega/site"
)

// Document is the JSON counterpart of the llms.txt text.
type Document struct {
	Site      SiteInfo       `json:"site"`
	Business  BusinessInfo   `json:"business"`
	Services  []site.Service `json:"services"`
	Routes    []RouteInfo    `json:"routes"`
	Contact   ContactInfo    `json:"contact"`
	Technical TechnicalInfo  `json:"technical"`
}

type SiteInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	LastUpdated string `json:"lastUpdated"`
}

type BusinessInfo struct {
	Name    string      `json:"name"`
	VAT     string      `json:"vat"`
	Address string      `json:"address"`
	Phone   string      `json:"phone"`
	Email   string      `json:"email"`
	Luthier site.Person `json:"luthier"`
}

type RouteInfo struct {
	Path        string  `json:"path"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Priority    float64 `json:"priority"`
}

type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Booking string `json:"booking"`
}

type TechnicalInfo struct {
	Server        string   `json:"server"`
	Locales       []string `json:"locales"`
	DefaultLocale string   `json:"defaultLocale"`
}

// BuildJSON returns the structured form served at /llms.json.
func BuildJSON(s site.Site, now time.Time) Document {
	m := s.Meta
	routes := make([]RouteInfo, 0, len(s.Routes))
	for _, r := range s.Routes {
		routes = append(routes, RouteInfo{
			Path:        r.Path,
			Title:       r.Title,
			Description: r.Description,
			Priority:    r.Priority,
		})
	}
	return Document{
		Site: SiteInfo{
			Name:        m.SiteName,
			Description: m.Description,
			URL:         m.URL,
			LastUpdated: now.UTC().Format(time.RFC3339),
		},
		Business: BusinessInfo{
			Name:    m.Business.Name,
			VAT:     m.Business.VAT,
			Address: m.Business.Address,
			Phone:   m.Business.Phone,
			Email:   m.Business.Email,
			Luthier: m.Luthier,
		},
		Services: m.Services,
		Routes:   routes,
		Contact: ContactInfo{
			Email:   m.Social.Email,
			Phone:   m.Social.Phone,
			Booking: m.Booking,
		},
		Technical: TechnicalInfo{
			Server:        "Go (Echo)",
			Locales:       s.Locales.Codes,
			DefaultLocale: s.Locales.Default,
		},
	}
}
