package domain

import "time"

type BlogPost struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Published   bool      `json:"published"`
	AuthorName  string    `json:"authorName"`
	AuthorImage string    `json:"authorImage,omitempty"`
	CoverImage  string    `json:"coverImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	// CategoryID is a weak reference: it may point at a category that no
	// longer exists, and readers must tolerate that.
	CategoryID *int `json:"categoryId"`
}
