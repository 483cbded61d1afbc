package domain

type Project struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	// Category is a free-text label, not a reference to a Category entity.
	Category     string   `json:"category"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
}
