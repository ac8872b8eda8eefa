package repositories

import (
	"fmt"

	"yatube/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerUserRepository implements UserRepository using BadgerDB
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Create creates a new user. The username must not already be in use.
func (r *BadgerUserRepository) Create(user *models.User) error {
	existing, err := r.GetByUsername(user.Username)
	if err != nil && err != ErrNotFound {
		return err
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, UserSeqKey)
		if err != nil {
			return err
		}
		user.ID = id
		user.BeforeCreate()

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}

		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, user.ID))
		return txn.Set(key, data)
	})
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(id int) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, id))
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by their unique username
func (r *BadgerUserRepository) GetByUsername(username string) (*models.User, error) {
	var found *models.User

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(UserKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var user models.User
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &user)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal user: %v", err)
			}
			if user.Username == username {
				found = &user
				return nil
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// Delete deletes a user by ID
func (r *BadgerUserRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, id))

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
