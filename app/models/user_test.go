package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserValidation(t *testing.T) {
	tests := []struct {
		name    string
		user    *User
		wantErr bool
	}{
		{
			name:    "valid user",
			user:    &User{ID: 1, Username: "leo-tolstoy", FullName: "Leo Tolstoy", Joined: time.Now()},
			wantErr: false,
		},
		{
			name:    "empty username",
			user:    &User{ID: 1, Username: ""},
			wantErr: true,
		},
		{
			name:    "username too short",
			user:    &User{ID: 1, Username: "x"},
			wantErr: true,
		},
		{
			name:    "username with spaces",
			user:    &User{ID: 1, Username: "leo tolstoy"},
			wantErr: true,
		},
		{
			name:    "username with slash",
			user:    &User{ID: 1, Username: "leo/tolstoy"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserPassword(t *testing.T) {
	user := &User{Username: "tester"}

	require.NoError(t, user.SetPassword("s3cret-pass"))
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, string(user.PasswordHash), "s3cret-pass")

	ok, err := user.PasswordMatches("s3cret-pass")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = user.PasswordMatches("wrong-pass")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.Error(t, user.SetPassword(""))
}

func TestUserDisplayName(t *testing.T) {
	user := &User{Username: "plain"}
	assert.Equal(t, "plain", user.DisplayName())

	user.FullName = "Full Name"
	assert.Equal(t, "Full Name", user.DisplayName())
}

func TestGroupValidation(t *testing.T) {
	valid := &Group{ID: 1, Title: "Books", Slug: "books", Description: "About books"}
	assert.NoError(t, valid.Validate())

	noTitle := &Group{ID: 1, Slug: "books"}
	assert.Error(t, noTitle.Validate())

	badSlug := &Group{ID: 1, Title: "Books", Slug: "not a slug!"}
	assert.Error(t, badSlug.Validate())
}
