package site

// Default returns the compiled-in description of the workshop.
func Default() Site {
	return Site{
		Meta:    defaultMetadata(),
		Routes:  defaultRoutes(),
		Locales: Locales{Codes: []string{"it", "en"}, Default: "it"},
	}
}

func defaultMetadata() Metadata {
	return Metadata{
		SiteName:      "Ivo Iuliano",
		Title:         "Ivo Iuliano - Luthier | Violin, Viola, Cello Maker",
		Description:   "Ivo Iuliano, master luthier in Rovereto, Italy. Handcrafted violins, violas, cellos, and baroque instruments. Trained at IPIALL Cremona under Maestro Ernesto Vaia.",
		URL:           "https://www.ivoiuliano.it",
		Booking:       "mailto:info@ivoiuliano.it",
		OGImage:       "/images/og-image.jpg",
		TwitterHandle: "@ivoiuliano",
		Manifest:      "/site.webmanifest",
		Social: Social{
			Email: "info@ivoiuliano.it",
			Phone: "+39 3496739825",
		},
		Business: Business{
			Name:    "Ivo Iuliano",
			VAT:     "IT 01866260225",
			Address: "Via Prato, 50 - 38068 - Rovereto (TN) - Italy",
			Postal: PostalAddress{
				Street:   "Via Prato, 50",
				Locality: "Rovereto",
				Region:   "Trento",
				Postcode: "38068",
				Country:  "IT",
			},
			Phone: "+39 3496739825",
			Email: "info@ivoiuliano.it",
		},
		Luthier: Person{
			Name:        "Ivo Iuliano",
			BirthYear:   "1970",
			BirthPlace:  "Duisburg, Germany",
			Training:    "Scuola Internazionale di Liuteria (IPIALL) - Cremona",
			DiplomaYear: "1998",
			Teacher:     "Maestro Ernesto Vaia",
			Workshop:    "Rovereto, Trento (Italy)",
			Specializations: []string{
				"Violin",
				"Viola",
				"Cello",
				"Viola da Gamba",
				"Baroque Instruments",
				"Historical Settings",
			},
		},
		Services: []Service{
			{
				Key:         "newInstruments",
				Name:        "New Instruments",
				Description: "Handcrafted violins, violas, and cellos in modern setting, using traditional methods and finest materials.",
				Category:    "Lutherie",
			},
			{
				Key:         "baroqueInstruments",
				Name:        "Baroque Instruments",
				Description: "Historical instruments including viola da gamba and instruments of the violin family in baroque setting.",
				Category:    "Historical Lutherie",
			},
			{
				Key:         "restoration",
				Name:        "Restoration & Setup",
				Description: "Professional restoration, setup, and maintenance of string instruments.",
				Category:    "Restoration",
			},
		},
	}
}

func defaultRoutes() Routes {
	return Routes{
		{
			Path:            "",
			Priority:        1.0,
			ChangeFrequency: Weekly,
			Title:           "Home",
			Description:     "Ivo Iuliano - Master Luthier - Handcrafted violins, violas, cellos and baroque instruments",
		},
		{
			Path:            "/blog",
			Priority:        0.8,
			ChangeFrequency: Weekly,
			Title:           "Blog",
			Description:     "Articles and news from the workshop",
		},
		{
			Path:            "/privacy",
			Priority:        0.5,
			ChangeFrequency: Yearly,
			Title:           "Privacy Policy",
			Description:     "Privacy policy and personal data processing",
		},
		{
			Path:            "/terms",
			Priority:        0.5,
			ChangeFrequency: Yearly,
			Title:           "Terms of Service",
			Description:     "Terms and conditions of use of the website",
		},
		{
			Path:            "/cookies",
			Priority:        0.5,
			ChangeFrequency: Yearly,
			Title:           "Cookie Policy",
			Description:     "Information on the use of cookies",
		},
	}
}
