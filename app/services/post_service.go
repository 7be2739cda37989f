package services

import (
	"errors"
	"fmt"

	"blogpress/app/models"
	"blogpress/app/repositories"
)

var (
	// ErrInvalidInput marks validation failures on client-supplied
	// post fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidAction marks a like request whose action is neither
	// "like" nor "unlike".
	ErrInvalidAction = errors.New("invalid action")
)

// PostService handles business logic for blog posts
type PostService struct {
	repo    repositories.PostRepository
	lenient bool
}

// NewPostService creates a new PostService. The lenient flag selects
// the relaxed schema variant in which all fields are optional.
func NewPostService(repo repositories.PostRepository, lenient bool) *PostService {
	return &PostService{
		repo:    repo,
		lenient: lenient,
	}
}

// CreatePost validates the input and stores a new post. Likes start
// at zero and the creation date is set here, never client-supplied.
func (s *PostService) CreatePost(c *models.CreatePost) (*models.Post, error) {
	if err := c.Validate(s.lenient); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	post := c.NewPost()
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.repo.GetByID(id)
}

// ListPosts retrieves every stored post
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.repo.List()
}

// UpdatePost replaces the mutable fields of an existing post. The ID,
// images, like count and creation date are preserved.
func (s *PostService) UpdatePost(id int, u *models.UpdatePost) (*models.Post, error) {
	if err := u.Validate(s.lenient); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	u.Apply(post)
	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost deletes a post by ID
func (s *PostService) DeletePost(id int) error {
	return s.repo.Delete(id)
}

// Like adjusts the like counter for the given action and returns the
// new count. The adjustment is atomic in the store and never drives
// the counter below zero.
func (s *PostService) Like(id int, action string) (int, error) {
	switch action {
	case "like":
		return s.repo.AdjustLikes(id, 1)
	case "unlike":
		return s.repo.AdjustLikes(id, -1)
	default:
		return 0, ErrInvalidAction
	}
}
