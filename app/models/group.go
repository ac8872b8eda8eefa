package models

import (
	"errors"
	"regexp"
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// Validate checks if the group meets all validation requirements
func (g *Group) Validate() error {
	if err := validate.Struct(g); err != nil {
		return err
	}

	if !slugPattern.MatchString(g.Slug) {
		return errors.New("slug may only contain letters, numbers, hyphens and underscores")
	}

	return nil
}

func (g *Group) String() string {
	return g.Title
}
