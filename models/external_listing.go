package models

// ExternalListing is the payload shape for bulk-imported space listings.
// Everything beyond externalId, source, title, and description is optional;
// free-form fields like propertyType and amenities are mapped onto the
// structured attribute vocabulary at import time.
type ExternalListing struct {
	ExternalID  string `json:"externalId"`
	Source      string `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ExternalURL string `json:"externalUrl,omitempty"`

	Images []string `json:"images,omitempty"`

	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`

	Sqft         int    `json:"sqft,omitempty"`
	PropertyType string `json:"propertyType,omitempty"`

	Price       int    `json:"price,omitempty"`
	PricePeriod string `json:"pricePeriod,omitempty"`

	Amenities []string `json:"amenities,omitempty"`
	LeaseTerm string   `json:"leaseTerm,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}
