package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the client-supplied fields of a new post. The
// lenient schema variant accepts any combination of missing fields.
func (c *CreatePost) Validate(lenient bool) error {
	if lenient {
		return nil
	}
	return validate.Struct(c)
}

// Validate checks the replaceable fields of a post update.
func (u *UpdatePost) Validate(lenient bool) error {
	if lenient {
		return nil
	}
	return validate.Struct(u)
}

// NewPost builds a stored post from validated input. The store assigns
// the ID; likes always start at zero and the date is server time.
func (c *CreatePost) NewPost() *Post {
	return &Post{
		Title:       c.Title,
		Description: c.Description,
		Author:      c.Author,
		Images:      c.Images,
		Likes:       0,
		Date:        time.Now(),
	}
}

// Apply replaces the mutable fields of an existing post, leaving ID,
// images, likes and the creation date untouched.
func (u *UpdatePost) Apply(p *Post) {
	p.Title = u.Title
	p.Description = u.Description
	p.Author = u.Author
}
