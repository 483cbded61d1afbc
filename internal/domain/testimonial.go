package domain

type Testimonial struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Content  string `json:"content"`
	Image    string `json:"image,omitempty"`
}
