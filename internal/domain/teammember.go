package domain

type TeamMember struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Bio      string `json:"bio"`
	Image    string `json:"image,omitempty"`
	LinkedIn string `json:"linkedIn,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
}
