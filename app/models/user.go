package models

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	if err := validate.Struct(u); err != nil {
		return err
	}

	if !slugPattern.MatchString(u.Username) {
		return errors.New("username may only contain letters, numbers, hyphens and underscores")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (u *User) BeforeCreate() {
	if u.Joined.IsZero() {
		u.Joined = time.Now()
	}
}

// SetPassword hashes the plaintext password and stores the hash.
func (u *User) SetPassword(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// PasswordMatches reports whether the plaintext password matches the stored hash.
func (u *User) PasswordMatches(password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DisplayName returns the full name if set, otherwise the username.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
