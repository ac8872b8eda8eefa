package services

import (
	"errors"
	"fmt"
	"strings"

	"yatube/app/models"
	"yatube/app/repositories"
)

// ErrInvalidCredentials is returned on a failed login attempt. It does not
// distinguish an unknown username from a wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserService handles account registration and authentication
type UserService struct {
	userRepo repositories.UserRepository
	postRepo repositories.PostRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, postRepo repositories.PostRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

// Register creates a new account with a bcrypt-hashed password
func (s *UserService) Register(username, fullName, password string) (*models.User, error) {
	user := &models.User{
		Username: strings.TrimSpace(username),
		FullName: strings.TrimSpace(fullName),
	}
	if err := user.SetPassword(password); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	if err := user.Validate(); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid user: %v", err)}
	}
	if err := s.userRepo.Create(user); err != nil {
		if err == repositories.ErrUsernameTaken {
			return nil, &ValidationError{Message: "username already taken"}
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies a username/password pair and returns the account
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	ok, err := user.PasswordMatches(password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID retrieves an account by ID
func (s *UserService) GetByID(id int) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// GetByUsername retrieves an account by username
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	return s.userRepo.GetByUsername(username)
}

// DeleteUser removes an account together with every post it authored
func (s *UserService) DeleteUser(id int) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.postRepo.DeleteByAuthor(id); err != nil {
		return fmt.Errorf("failed to delete posts: %v", err)
	}
	return s.userRepo.Delete(id)
}
