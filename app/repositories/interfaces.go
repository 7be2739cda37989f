package repositories

import "blogpress/app/models"

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
	// AdjustLikes atomically adds delta to the like counter of the
	// post with the given id, flooring the result at zero, and
	// returns the new count.
	AdjustLikes(id, delta int) (int, error)
}
