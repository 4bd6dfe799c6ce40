package models

type LinkResponse struct {
	Label       string `json:"label"`
	Path        string `json:"path"`
	Description string `json:"description,omitempty"`
}

type NavigationResponse struct {
	Brand   string         `json:"brand"`
	Links   []LinkResponse `json:"links"`
	Learn   []LinkResponse `json:"learn"`
	Actions []LinkResponse `json:"actions"`
	Footer  []FooterColumn `json:"footer"`
	Notice  string         `json:"notice"`
}

type FooterColumn struct {
	Title string         `json:"title"`
	Links []LinkResponse `json:"links"`
}

type StatResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FeatureResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type TeamMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Bio  string `json:"bio"`
}

type FAQResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type HomeResponse struct {
	Headline        string            `json:"headline"`
	Tagline         string            `json:"tagline"`
	FeaturedCourses []Course          `json:"featured_courses"`
	Features        []FeatureResponse `json:"features"`
	Stats           []StatResponse    `json:"stats"`
}

type AboutResponse struct {
	Story   []string          `json:"story"`
	Stats   []StatResponse    `json:"stats"`
	Mission string            `json:"mission"`
	Values  []FeatureResponse `json:"values"`
	Team    []TeamMember      `json:"team"`
	FAQ     []FAQResponse     `json:"faq"`
	Contact string            `json:"contact"`
}

// SiteContent is the static copy behind the navigation shell and the
// home/about pages.
type SiteContent struct {
	Navigation NavigationResponse `json:"navigation"`
	Home       HomeResponse       `json:"home"`
	About      AboutResponse      `json:"about"`
	Reviews    []ReviewResponse   `json:"reviews"`
}
