package repositories

import (
	"fmt"

	"yatube/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerGroupRepository implements GroupRepository using BadgerDB
type BadgerGroupRepository struct {
	db *badger.DB
}

// NewBadgerGroupRepository creates a new BadgerGroupRepository
func NewBadgerGroupRepository(db *badger.DB) *BadgerGroupRepository {
	return &BadgerGroupRepository{db: db}
}

// Create creates a new group. The slug must not already be in use.
func (r *BadgerGroupRepository) Create(group *models.Group) error {
	existing, err := r.GetBySlug(group.Slug)
	if err != nil && err != ErrNotFound {
		return err
	}
	if existing != nil {
		return ErrSlugTaken
	}

	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, GroupSeqKey)
		if err != nil {
			return err
		}
		group.ID = id

		data, err := marshalEntity(group)
		if err != nil {
			return err
		}

		key := []byte(fmt.Sprintf("%s%d", GroupKeyPrefix, group.ID))
		return txn.Set(key, data)
	})
}

// GetByID retrieves a group by ID
func (r *BadgerGroupRepository) GetByID(id int) (*models.Group, error) {
	var group models.Group

	err := r.db.View(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", GroupKeyPrefix, id))
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &group)
		})
	})

	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetBySlug retrieves a group by its unique slug
func (r *BadgerGroupRepository) GetBySlug(slug string) (*models.Group, error) {
	groups, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, group := range groups {
		if group.Slug == slug {
			return group, nil
		}
	}
	return nil, ErrNotFound
}

// List retrieves all groups
func (r *BadgerGroupRepository) List() ([]*models.Group, error) {
	var groups []*models.Group

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(GroupKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var group models.Group
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &group)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal group: %v", err)
			}
			groups = append(groups, &group)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return groups, nil
}

// Delete deletes a group by ID
func (r *BadgerGroupRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", GroupKeyPrefix, id))

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
