package repositories

import (
	"testing"

	"yatube/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerGroupRepository(db)

	t.Run("create and get group", func(t *testing.T) {
		group := &models.Group{
			Title:       "Test Group",
			Slug:        "test-slug",
			Description: "Test group description",
		}

		err := repo.Create(group)
		assert.NoError(t, err)
		assert.Greater(t, group.ID, 0)

		byID, err := repo.GetByID(group.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Test Group", byID.Title)

		bySlug, err := repo.GetBySlug("test-slug")
		assert.NoError(t, err)
		assert.Equal(t, group.ID, bySlug.ID)
	})

	t.Run("slug must be unique", func(t *testing.T) {
		dup := &models.Group{Title: "Another", Slug: "test-slug"}
		err := repo.Create(dup)
		assert.Equal(t, ErrSlugTaken, err)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, err := repo.GetBySlug("no-such-slug")
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("list groups", func(t *testing.T) {
		other := &models.Group{Title: "Second", Slug: "second-slug"}
		require.NoError(t, repo.Create(other))

		groups, err := repo.List()
		assert.NoError(t, err)
		assert.Len(t, groups, 2)
	})

	t.Run("delete group", func(t *testing.T) {
		group, err := repo.GetBySlug("second-slug")
		require.NoError(t, err)

		assert.NoError(t, repo.Delete(group.ID))
		_, err = repo.GetBySlug("second-slug")
		assert.Equal(t, ErrNotFound, err)

		assert.Equal(t, ErrNotFound, repo.Delete(group.ID))
	})
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerUserRepository(db)

	t.Run("create and get user", func(t *testing.T) {
		user := &models.User{Username: "test_user", FullName: "Name Surname"}

		err := repo.Create(user)
		assert.NoError(t, err)
		assert.Greater(t, user.ID, 0)
		assert.False(t, user.Joined.IsZero())

		byName, err := repo.GetByUsername("test_user")
		assert.NoError(t, err)
		assert.Equal(t, user.ID, byName.ID)
		assert.Equal(t, "Name Surname", byName.FullName)
	})

	t.Run("username must be unique", func(t *testing.T) {
		dup := &models.User{Username: "test_user"}
		err := repo.Create(dup)
		assert.Equal(t, ErrUsernameTaken, err)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := repo.GetByUsername("nobody")
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("delete user", func(t *testing.T) {
		user, err := repo.GetByUsername("test_user")
		require.NoError(t, err)

		assert.NoError(t, repo.Delete(user.ID))
		_, err = repo.GetByID(user.ID)
		assert.Equal(t, ErrNotFound, err)
	})
}
