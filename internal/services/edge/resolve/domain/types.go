// Package domain defines the resolve API payloads
package domain

// PreviewInput is the dry-run resolution request body
type PreviewInput struct {
	Host          string `json:"host" validate:"required" example:"example.com"`
	Path          string `json:"path" validate:"required" example:"/fr/about"`
	Query         string `json:"query" example:"page=2"`
	HTTPS         bool   `json:"https" example:"true"`
	CookieCulture string `json:"cookie_culture" validate:"omitempty,culture" example:"fr-FR"`
}

// DomainEntry mirrors one domain table row on the wire
type DomainEntry struct {
	Name      string `json:"name" example:"example.com/fr"`
	Culture   string `json:"culture,omitempty" example:"fr-FR"`
	ContentID int    `json:"content_id" example:"100"`
}

// Resolution is the dry-run resolution result
type Resolution struct {
	CorrelationID  string       `json:"correlation_id,omitempty" example:"8d8ac610-566d-4ef0-9c22-186b2a5ed793"`
	Outcome        string       `json:"outcome" example:"set_culture_and_redirect"`
	Culture        string       `json:"culture,omitempty" example:"fr-FR"`
	Domain         *DomainEntry `json:"domain,omitempty"`
	RedirectTarget string       `json:"redirect_target,omitempty" example:"https://example.com/fr/about"`
	HomeNodeID     int          `json:"home_node_id,omitempty" example:"1090"`
	ErrorPageID    int          `json:"error_page_id,omitempty" example:"1091"`
}

// DomainsResponse wraps the domain table listing
type DomainsResponse struct {
	Domains []DomainEntry `json:"domains"`
}

// URLResponse carries a culture-prefixed URL
type URLResponse struct {
	URL string `json:"url" example:"/fr/about"`
}
