package repositories

import (
	"fmt"
	"testing"
	"time"

	"yatube/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPosts(t *testing.T, repo *BadgerPostRepository, count, authorID, groupID int) []*models.Post {
	base := time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)
	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		post := &models.Post{
			Text:     fmt.Sprintf("Post number %d", i),
			AuthorID: authorID,
			GroupID:  groupID,
			PubDate:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(post))
		posts = append(posts, post)
	}
	return posts
}

func TestPostRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	t.Run("create and get post", func(t *testing.T) {
		post := &models.Post{
			Text:     "Test text",
			AuthorID: 1,
			GroupID:  2,
		}

		err := repo.Create(post)
		assert.NoError(t, err)
		assert.Greater(t, post.ID, 0)
		assert.False(t, post.PubDate.IsZero())

		retrieved, err := repo.GetByID(post.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Test text", retrieved.Text)
		assert.Equal(t, 1, retrieved.AuthorID)
		assert.Equal(t, 2, retrieved.GroupID)
	})

	t.Run("get missing post", func(t *testing.T) {
		_, err := repo.GetByID(9999)
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("update post", func(t *testing.T) {
		post := &models.Post{Text: "Before edit", AuthorID: 1}
		require.NoError(t, repo.Create(post))

		post.Text = "After edit"
		post.GroupID = 3
		assert.NoError(t, repo.Update(post))

		updated, err := repo.GetByID(post.ID)
		assert.NoError(t, err)
		assert.Equal(t, "After edit", updated.Text)
		assert.Equal(t, 3, updated.GroupID)
	})

	t.Run("update missing post", func(t *testing.T) {
		err := repo.Update(&models.Post{ID: 9999, Text: "Ghost", AuthorID: 1})
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("delete post", func(t *testing.T) {
		post := &models.Post{Text: "Doomed", AuthorID: 1}
		require.NoError(t, repo.Create(post))

		assert.NoError(t, repo.Delete(post.ID))
		_, err := repo.GetByID(post.ID)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestPostRepositoryListing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	// Author 1 posts in group 1, author 2 posts without a group.
	createTestPosts(t, repo, 8, 1, 1)
	createTestPosts(t, repo, 7, 2, 0)

	t.Run("list is newest first", func(t *testing.T) {
		posts, err := repo.List(100, 0)
		assert.NoError(t, err)
		assert.Len(t, posts, 15)
		for i := 1; i < len(posts); i++ {
			assert.False(t, posts[i].PubDate.After(posts[i-1].PubDate),
				"post %d is newer than post %d", i, i-1)
		}
	})

	t.Run("list pagination", func(t *testing.T) {
		first, err := repo.List(10, 0)
		assert.NoError(t, err)
		assert.Len(t, first, 10)

		second, err := repo.List(10, 10)
		assert.NoError(t, err)
		assert.Len(t, second, 5)

		beyond, err := repo.List(10, 20)
		assert.NoError(t, err)
		assert.Empty(t, beyond)
	})

	t.Run("list by group only has that group's posts", func(t *testing.T) {
		posts, err := repo.ListByGroup(1, 100, 0)
		assert.NoError(t, err)
		assert.Len(t, posts, 8)
		for _, post := range posts {
			assert.Equal(t, 1, post.GroupID)
		}

		none, err := repo.ListByGroup(42, 100, 0)
		assert.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("list by author", func(t *testing.T) {
		posts, err := repo.ListByAuthor(2, 100, 0)
		assert.NoError(t, err)
		assert.Len(t, posts, 7)
		for _, post := range posts {
			assert.Equal(t, 2, post.AuthorID)
		}
	})

	t.Run("counts", func(t *testing.T) {
		total, err := repo.Count()
		assert.NoError(t, err)
		assert.Equal(t, 15, total)

		byGroup, err := repo.CountByGroup(1)
		assert.NoError(t, err)
		assert.Equal(t, 8, byGroup)

		byAuthor, err := repo.CountByAuthor(2)
		assert.NoError(t, err)
		assert.Equal(t, 7, byAuthor)
	})
}

func TestPostRepositoryReferentialActions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	createTestPosts(t, repo, 3, 1, 1)
	createTestPosts(t, repo, 2, 2, 1)

	t.Run("delete by author removes only that author's posts", func(t *testing.T) {
		assert.NoError(t, repo.DeleteByAuthor(1))

		remaining, err := repo.List(100, 0)
		assert.NoError(t, err)
		assert.Len(t, remaining, 2)
		for _, post := range remaining {
			assert.Equal(t, 2, post.AuthorID)
		}
	})

	t.Run("clear group detaches posts without deleting them", func(t *testing.T) {
		assert.NoError(t, repo.ClearGroup(1))

		remaining, err := repo.List(100, 0)
		assert.NoError(t, err)
		assert.Len(t, remaining, 2)
		for _, post := range remaining {
			assert.Equal(t, 0, post.GroupID)
		}
	})
}
