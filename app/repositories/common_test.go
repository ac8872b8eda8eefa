package repositories

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetNextID(t *testing.T) {
	db := setupTestDB(t)

	var first, second int
	err := db.Update(func(txn *badger.Txn) error {
		var err error
		first, err = getNextID(txn, PostSeqKey)
		return err
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, first)

	err = db.Update(func(txn *badger.Txn) error {
		var err error
		second, err = getNextID(txn, PostSeqKey)
		return err
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, second)

	// Sequences are independent per entity.
	var groupID int
	err = db.Update(func(txn *badger.Txn) error {
		var err error
		groupID, err = getNextID(txn, GroupSeqKey)
		return err
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, groupID)
}
