package models

import "time"

// Post represents a blog post with image attachments and a like counter.
type Post struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Likes       int       `json:"likes"`
	Author      string    `json:"author"`
	Date        time.Time `json:"date"`
}

// CreatePost carries the client-supplied fields of a new post. Images
// are already base64-encoded by the ingestion layer.
type CreatePost struct {
	Title       string   `validate:"required"`
	Description string   `validate:"required"`
	Author      string   `validate:"required"`
	Images      []string `validate:"required"`
}

// UpdatePost carries the replaceable fields of an existing post.
// Images and likes are never updated through this path.
type UpdatePost struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Author      string `json:"author" validate:"required"`
}

// LikeRequest selects the direction of a like counter adjustment.
type LikeRequest struct {
	Action string `json:"action"`
}
