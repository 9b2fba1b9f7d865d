package seo

import (
	"encoding/json"

	"github.com/ivoiuliano/bottega/site"
)

const schemaContext = "https://schema.org"

// Object is one JSON-LD node.
type Object map[string]interface{}

// MarshalJSON lets html/template emit the node as a JSON object inside
// script blocks.
func (o Object) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}(o))
}

// String marshals the node for a <script type="application/ld+json"> block.
func (o Object) String() string {
	b, err := json.Marshal(o)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func ref(id string) map[string]string {
	return map[string]string{"@id": id}
}

// OrganizationID and friends are the stable node identifiers cross-referenced
// between blocks.
func OrganizationID(m site.Metadata) string { return m.URL + "/#organization" }
func LuthierID(m site.Metadata) string      { return m.URL + "/#luthier" }
func WebSiteID(m site.Metadata) string      { return m.URL + "/#website" }

// Organization describes the workshop as a ProfessionalService.
func Organization(m site.Metadata) Object {
	p := m.Business.Postal
	return Object{
		"@context":    schemaContext,
		"@type":       "ProfessionalService",
		"@id":         OrganizationID(m),
		"name":        m.SiteName,
		"url":         m.URL,
		"logo":        m.URL + "/logo.png",
		"description": m.Description,
		"founder": map[string]string{
			"@type": "Person",
			"name":  m.Luthier.Name,
			"url":   LuthierID(m),
		},
		"address": map[string]string{
			"@type":           "PostalAddress",
			"streetAddress":   p.Street,
			"addressLocality": p.Locality,
			"addressRegion":   p.Region,
			"postalCode":      p.Postcode,
			"addressCountry":  p.Country,
		},
		"telephone":  m.Business.Phone,
		"email":      m.Business.Email,
		"vatID":      m.Business.VAT,
		"areaServed": "Worldwide",
	}
}

// Person describes the maker.
func Person(m site.Metadata) Object {
	return Object{
		"@context":   schemaContext,
		"@type":      "Person",
		"@id":        LuthierID(m),
		"name":       m.Luthier.Name,
		"jobTitle":   "Master Luthier",
		"url":        m.URL,
		"worksFor":   ref(OrganizationID(m)),
		"birthPlace": m.Luthier.BirthPlace,
		"alumniOf":   m.Luthier.Training,
		"knowsAbout": m.Luthier.Specializations,
	}
}

func WebSite(m site.Metadata) Object {
	return Object{
		"@context":  schemaContext,
		"@type":     "WebSite",
		"@id":       WebSiteID(m),
		"url":       m.URL,
		"name":      m.SiteName,
		"publisher": ref(OrganizationID(m)),
	}
}

// WebPage describes a generic page at the absolute url.
func WebPage(m site.Metadata, url, title, description string) Object {
	return Object{
		"@context":    schemaContext,
		"@type":       "WebPage",
		"@id":         url + "/#webpage",
		"url":         url,
		"name":        title,
		"description": description,
		"isPartOf":    ref(WebSiteID(m)),
		"about":       ref(OrganizationID(m)),
	}
}

// Service returns the node for the service with the given key, or false if
// the key is not registered.
func Service(m site.Metadata, key string) (Object, bool) {
	svc, ok := m.Service(key)
	if !ok {
		return nil, false
	}
	return Object{
		"@context":    schemaContext,
		"@type":       "Service",
		"@id":         m.URL + "/#" + svc.Key + "-service",
		"name":        svc.Name,
		"provider":    ref(OrganizationID(m)),
		"areaServed":  "Worldwide",
		"description": svc.Description,
		"serviceType": svc.Category,
	}, true
}

// Article holds what BlogPosting needs about a post.
type Article struct {
	URL         string
	Title       string
	Description string
	Published   string
	Modified    string
	Image       string
}

// BlogPosting describes a post. Modified defaults to Published.
func BlogPosting(m site.Metadata, a Article) Object {
	modified := a.Modified
	if modified == "" {
		modified = a.Published
	}
	o := Object{
		"@context":    schemaContext,
		"@type":       "BlogPosting",
		"@id":         a.URL + "/#article",
		"headline":    a.Title,
		"description": a.Description,
		"author":      ref(LuthierID(m)),
		"publisher":   ref(OrganizationID(m)),
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   a.URL,
		},
		"datePublished": a.Published,
		"dateModified":  modified,
	}
	if a.Image != "" {
		o["image"] = AbsoluteURL(m.URL, a.Image)
	}
	return o
}

// Crumb is one breadcrumb step; Path is root-relative without locale.
type Crumb struct {
	Name string
	Path string
}

// Breadcrumbs builds a BreadcrumbList rooted at the localized home page.
func Breadcrumbs(m site.Metadata, locale, homeName string, crumbs []Crumb) Object {
	items := make([]map[string]interface{}, 0, len(crumbs)+1)
	items = append(items, map[string]interface{}{
		"@type":    "ListItem",
		"position": 1,
		"name":     homeName,
		"item":     m.LocalizedURL(locale, ""),
	})
	for i, c := range crumbs {
		items = append(items, map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 2,
			"name":     c.Name,
			"item":     m.LocalizedURL(locale, c.Path),
		})
	}
	return Object{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

// FAQ is a question with its answer.
type FAQ struct {
	Question string
	Answer   string
}

func FAQPage(faqs []FAQ) Object {
	entities := make([]map[string]interface{}, 0, len(faqs))
	for _, f := range faqs {
		entities = append(entities, map[string]interface{}{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": map[string]string{
				"@type": "Answer",
				"text":  f.Answer,
			},
		})
	}
	return Object{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}
