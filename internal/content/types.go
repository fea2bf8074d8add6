// Package content defines the portfolio content model and loads the fixed
// set of JSON documents that make up a site.
package content

// SocialLink is one entry in the ordered social-profile list.
type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// Images holds optional profile imagery URLs.
type Images struct {
	Profile string `json:"profile,omitempty"`
	About   string `json:"about,omitempty"`
}

// About holds the biography paragraphs shown in the about section.
type About struct {
	Bio []string `json:"bio"`
}

// SiteConfig is the profile document (config.json). It is loaded once and
// immutable for the session.
type SiteConfig struct {
	Name         string       `json:"name"`
	Tagline      string       `json:"tagline"`
	Description  string       `json:"description"`
	Email        string       `json:"email"`
	Location     string       `json:"location"`
	Phone        string       `json:"phone"`
	ResponseTime string       `json:"responseTime"`
	Social       []SocialLink `json:"social"`
	Images       Images       `json:"images"`
	About        About        `json:"about"`
}

// TimelineEntry is one education or experience item.
type TimelineEntry struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Date     string   `json:"date"`
	Overview []string `json:"overview"`
	Details  []string `json:"details"`
}

// ProjectLinks holds the optional demo and source links of a project.
type ProjectLinks struct {
	Demo string `json:"demo,omitempty"`
	Code string `json:"code,omitempty"`
}

// Project is one portfolio project card.
type Project struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Image        string       `json:"image,omitempty"`
	Technologies []string     `json:"technologies"`
	Links        ProjectLinks `json:"links"`
}

// Publication is one publication item. Links maps a link kind ("pdf",
// "doi", ...) to a URL. The filterable year is derived from Date, see Year.
type Publication struct {
	Title    string            `json:"title"`
	Authors  string            `json:"authors"`
	Venue    string            `json:"venue"`
	Date     string            `json:"date"`
	Category string            `json:"category"`
	Links    map[string]string `json:"links,omitempty"`
}

// BlogPost is one blog-post document. Its identity is the source file path
// it was loaded from. Content may carry HTML or markdown; when absent a
// placeholder body is rendered instead.
type BlogPost struct {
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Date     string   `json:"date"`
	Category string   `json:"category"`
	Image    string   `json:"image,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Content  string   `json:"content,omitempty"`
}

// Bundle is the result of one all-or-nothing load of the five fixed
// documents.
type Bundle struct {
	Config       *SiteConfig
	Education    []TimelineEntry
	Experience   []TimelineEntry
	Projects     []Project
	Publications []Publication
}
