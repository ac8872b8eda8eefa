package repositories

import "yatube/app/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Delete(id int) error
}

// GroupRepository defines the interface for group data access
type GroupRepository interface {
	Create(group *models.Group) error
	GetByID(id int) (*models.Group, error)
	GetBySlug(slug string) (*models.Group, error)
	List() ([]*models.Group, error)
	Delete(id int) error
}

// PostRepository defines the interface for post data access.
// All listing methods return posts ordered newest-first by publication date.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List(limit, offset int) ([]*models.Post, error)
	ListByGroup(groupID, limit, offset int) ([]*models.Post, error)
	ListByAuthor(authorID, limit, offset int) ([]*models.Post, error)
	Count() (int, error)
	CountByGroup(groupID int) (int, error)
	CountByAuthor(authorID int) (int, error)
	Update(post *models.Post) error
	Delete(id int) error
	DeleteByAuthor(authorID int) error
	ClearGroup(groupID int) error
}
