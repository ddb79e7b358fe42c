package models

// Post is a stored blog entry. ImageURL is nil for text-only posts.
type Post struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url"`
}
