package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User represents a registered author account.
type User struct {
	ID           int       `json:"id" validate:"gte=0"`
	Username     string    `json:"username" validate:"required,min=2,max=50"`
	FullName     string    `json:"full_name" validate:"max=100"`
	PasswordHash []byte    `json:"password_hash" validate:"-"`
	Joined       time.Time `json:"joined"`
}

// Group represents a named community that posts can be assigned to.
type Group struct {
	ID          int    `json:"id" validate:"gte=0"`
	Title       string `json:"title" validate:"required,max=200"`
	Slug        string `json:"slug" validate:"required,max=100"`
	Description string `json:"description" validate:"max=2000"`
}

// Post represents a user-authored text post, optionally assigned to a group.
// GroupID of zero means the post belongs to no group.
type Post struct {
	ID       int       `json:"id" validate:"gte=0"`
	Text     string    `json:"text" validate:"required"`
	PubDate  time.Time `json:"pub_date"`
	AuthorID int       `json:"author_id" validate:"required,gt=0"`
	GroupID  int       `json:"group_id" validate:"gte=0"`

	// Populated by the service layer for rendering, never persisted.
	Author *User  `json:"-" validate:"-"`
	Group  *Group `json:"-" validate:"-"`
}
