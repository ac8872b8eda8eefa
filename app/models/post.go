package models

import (
	"errors"
	"time"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.PubDate.IsZero() {
		return errors.New("pub_date cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.PubDate.IsZero() {
		p.PubDate = time.Now()
	}
}

// Preview returns the leading runes of the post text for listings.
func (p *Post) Preview() string {
	const max = 15
	runes := []rune(p.Text)
	if len(runes) <= max {
		return p.Text
	}
	return string(runes[:max])
}
