package inmem

import (
	"context"
	"github.com/hashicorp/go-memdb"
	"github.com/skybi/asset-manager/internal/storage"
)

type entry struct {
	Key   string
	Value string
}

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		"entries": {
			Name: "entries",
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:         "id",
					Unique:       true,
					AllowMissing: false,
					Indexer:      &memdb.StringFieldIndex{Field: "Key"},
				},
			},
		},
	},
}

// Driver represents the in-memory storage driver built using hashicorp/go-memdb.
// It is used whenever no durable storage is available; its contents are lost on process exit.
type Driver struct {
	db *memdb.MemDB
}

var _ storage.Driver = (*Driver)(nil)

// New creates a new empty in-memory storage driver
func New() *Driver {
	return &Driver{}
}

// Initialize creates the in-memory database
func (driver *Driver) Initialize(_ context.Context) error {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return err
	}
	driver.db = db
	return nil
}

// Available returns whether the in-memory database exists
func (driver *Driver) Available() bool {
	return driver.db != nil
}

// Get retrieves the value stored under key
func (driver *Driver) Get(_ context.Context, key string) (string, bool, error) {
	if driver.db == nil {
		return "", false, storage.ErrUnavailable
	}
	txn := driver.db.Txn(false)
	obj, err := txn.First("entries", "id", key)
	if err != nil {
		return "", false, err
	}
	if obj == nil {
		return "", false, nil
	}
	return obj.(*entry).Value, true, nil
}

// Set stores value under key
func (driver *Driver) Set(_ context.Context, key, value string) error {
	if driver.db == nil {
		return storage.ErrUnavailable
	}
	txn := driver.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert("entries", &entry{Key: key, Value: value}); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// Delete deletes the value stored under key
func (driver *Driver) Delete(_ context.Context, key string) error {
	if driver.db == nil {
		return storage.ErrUnavailable
	}
	txn := driver.db.Txn(true)
	defer txn.Abort()
	if _, err := txn.DeleteAll("entries", "id", key); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// Close discards the in-memory database
func (driver *Driver) Close() {
	driver.db = nil
}
