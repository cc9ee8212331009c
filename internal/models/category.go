package models

// Category groups products. The slug is always derived from the name
// (lowercased, spaces to hyphens) and is never edited independently.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// Badge is a jersey customization option (league patch, cup badge).
type Badge struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	IconURL     string `json:"iconUrl"`
	Description string `json:"description,omitempty"`
}
