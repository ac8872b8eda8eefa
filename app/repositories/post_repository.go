package repositories

import (
	"fmt"
	"sort"

	"yatube/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create creates a new post
func (r *BadgerPostRepository) Create(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		// Get next ID
		id, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		post.ID = id
		post.BeforeCreate()

		// Marshal post
		data, err := marshalEntity(post)
		if err != nil {
			return err
		}

		// Save post
		key := []byte(fmt.Sprintf("%s%d", PostKeyPrefix, post.ID))
		return txn.Set(key, data)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", PostKeyPrefix, id))
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves a paginated list of posts, newest first
func (r *BadgerPostRepository) List(limit, offset int) ([]*models.Post, error) {
	return r.listWhere(nil, limit, offset)
}

// ListByGroup retrieves a paginated list of a group's posts, newest first
func (r *BadgerPostRepository) ListByGroup(groupID, limit, offset int) ([]*models.Post, error) {
	return r.listWhere(func(p *models.Post) bool { return p.GroupID == groupID }, limit, offset)
}

// ListByAuthor retrieves a paginated list of an author's posts, newest first
func (r *BadgerPostRepository) ListByAuthor(authorID, limit, offset int) ([]*models.Post, error) {
	return r.listWhere(func(p *models.Post) bool { return p.AuthorID == authorID }, limit, offset)
}

// Count returns the total number of posts
func (r *BadgerPostRepository) Count() (int, error) {
	return r.countWhere(nil)
}

// CountByGroup returns the number of posts assigned to a group
func (r *BadgerPostRepository) CountByGroup(groupID int) (int, error) {
	return r.countWhere(func(p *models.Post) bool { return p.GroupID == groupID })
}

// CountByAuthor returns the number of posts written by an author
func (r *BadgerPostRepository) CountByAuthor(authorID int) (int, error) {
	return r.countWhere(func(p *models.Post) bool { return p.AuthorID == authorID })
}

// Update updates an existing post
func (r *BadgerPostRepository) Update(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", PostKeyPrefix, post.ID))

		// Verify post exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		// Marshal and save updated post
		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a post by ID
func (r *BadgerPostRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", PostKeyPrefix, id))

		// Verify post exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}

// DeleteByAuthor deletes every post written by the given author
func (r *BadgerPostRepository) DeleteByAuthor(authorID int) error {
	posts, err := r.listWhere(func(p *models.Post) bool { return p.AuthorID == authorID }, -1, 0)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		for _, post := range posts {
			key := []byte(fmt.Sprintf("%s%d", PostKeyPrefix, post.ID))
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// ClearGroup detaches every post assigned to the given group
func (r *BadgerPostRepository) ClearGroup(groupID int) error {
	posts, err := r.listWhere(func(p *models.Post) bool { return p.GroupID == groupID }, -1, 0)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		for _, post := range posts {
			post.GroupID = 0
			data, err := marshalEntity(post)
			if err != nil {
				return err
			}
			key := []byte(fmt.Sprintf("%s%d", PostKeyPrefix, post.ID))
			if err := txn.Set(key, data); err != nil {
				return err
			}
		}
		return nil
	})
}

// listWhere collects posts matching the filter (nil matches all), sorts them
// newest-first and applies limit/offset. A negative limit returns everything.
func (r *BadgerPostRepository) listWhere(match func(*models.Post) bool, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %v", err)
			}
			if match == nil || match(&post) {
				posts = append(posts, &post)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(posts, func(i, j int) bool {
		if posts[i].PubDate.Equal(posts[j].PubDate) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].PubDate.After(posts[j].PubDate)
	})

	if limit < 0 {
		return posts, nil
	}
	if offset >= len(posts) {
		return []*models.Post{}, nil
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end], nil
}

func (r *BadgerPostRepository) countWhere(match func(*models.Post) bool) (int, error) {
	posts, err := r.listWhere(match, -1, 0)
	if err != nil {
		return 0, err
	}
	return len(posts), nil
}
