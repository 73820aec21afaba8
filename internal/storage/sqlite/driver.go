package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/skybi/asset-manager/internal/storage"
	"os"
	"path/filepath"
	"time"
)

//go:embed migrations/*.sql
var migrations embed.FS

const tableEntries = "entries"

// Driver represents the SQLite storage driver implementation.
// It keeps the key-value pairs in a single database file on the local device.
type Driver struct {
	path string
	db   *sql.DB
}

var _ storage.Driver = (*Driver)(nil)

// New creates a new SQLite storage driver using the database file at path.
// Use Initialize to open the database file.
func New(path string) *Driver {
	return &Driver{
		path: path,
	}
}

// Initialize creates the database file if needed, migrates it and opens it
func (driver *Driver) Initialize(ctx context.Context) error {
	path, err := filepath.Abs(driver.path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	// Perform SQL migrations
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	migrator, err := migrate.NewWithSourceInstance("iofs", source, "sqlite3://"+path)
	if err != nil {
		return err
	}
	defer migrator.Close()
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return err
	}
	driver.db = db
	return nil
}

// Available returns whether the database file is open
func (driver *Driver) Available() bool {
	return driver.db != nil
}

// Get retrieves the value stored under key
func (driver *Driver) Get(ctx context.Context, key string) (string, bool, error) {
	if driver.db == nil {
		return "", false, storage.ErrUnavailable
	}
	query, args, err := squirrel.Select("value").From(tableEntries).Where(squirrel.Eq{"key": key}).ToSql()
	if err != nil {
		return "", false, err
	}

	var value string
	if err := driver.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key
func (driver *Driver) Set(ctx context.Context, key, value string) error {
	if driver.db == nil {
		return storage.ErrUnavailable
	}
	query, args, err := squirrel.Insert(tableEntries).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().Unix()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return err
	}
	_, err = driver.db.ExecContext(ctx, query, args...)
	return err
}

// Delete deletes the value stored under key
func (driver *Driver) Delete(ctx context.Context, key string) error {
	if driver.db == nil {
		return storage.ErrUnavailable
	}
	query, args, err := squirrel.Delete(tableEntries).Where(squirrel.Eq{"key": key}).ToSql()
	if err != nil {
		return err
	}
	_, err = driver.db.ExecContext(ctx, query, args...)
	return err
}

// Close closes the database file
func (driver *Driver) Close() {
	if driver.db == nil {
		return
	}
	driver.db.Close()
	driver.db = nil
}
