package render

import (
	"github.com/ziadkadry99/folio/internal/content"
)

// Profile renders the hero and about sections from the site config.
// Missing optional fields (images, social entries) omit their markup.
func Profile(cfg *content.SiteConfig) []*Node {
	hero := El("section").WithClass("hero").WithAttr("id", "home")

	if cfg.Images.Profile != "" {
		hero.Append(El("img").
			WithClass("hero-image").
			WithAttr("src", cfg.Images.Profile).
			WithAttr("alt", cfg.Name).
			WithAttr("loading", "lazy"))
	}
	hero.Append(
		El("h1", Text(cfg.Name)).WithClass("hero-name"),
		El("p", Text(cfg.Tagline)).WithClass("hero-tagline"),
	)
	if cfg.Description != "" {
		hero.Append(El("p", Text(cfg.Description)).WithClass("hero-description"))
	}
	if len(cfg.Social) > 0 {
		social := El("ul").WithClass("social-links")
		for _, s := range cfg.Social {
			link := El("a", Text(s.Name)).
				WithAttr("href", s.URL).
				WithAttr("rel", "noopener").
				WithAttr("target", "_blank")
			if s.Icon != "" {
				link.WithAttr("data-icon", s.Icon)
			}
			social.Append(El("li", link))
		}
		hero.Append(social)
	}

	about := El("section").WithClass("about").WithAttr("id", "about")
	about.Append(El("h2", Text("About")))
	if cfg.Images.About != "" {
		about.Append(El("img").
			WithClass("about-image").
			WithAttr("src", cfg.Images.About).
			WithAttr("alt", "About "+cfg.Name).
			WithAttr("loading", "lazy"))
	}
	for _, para := range cfg.About.Bio {
		about.Append(El("p", Text(para)).WithClass("about-bio"))
	}

	contact := El("ul").WithClass("contact-details")
	for _, item := range []struct{ label, value string }{
		{"Email", cfg.Email},
		{"Location", cfg.Location},
		{"Phone", cfg.Phone},
		{"Response time", cfg.ResponseTime},
	} {
		if item.value == "" {
			continue
		}
		contact.Append(El("li",
			El("span", Text(item.label)).WithClass("contact-label"),
			Text(" "),
			El("span", Text(item.value)).WithClass("contact-value"),
		))
	}
	if len(contact.Children) > 0 {
		about.Append(contact)
	}

	return []*Node{hero, about}
}
