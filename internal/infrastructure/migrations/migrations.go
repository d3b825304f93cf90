// Package migrations applies the embedded schema to the history database.
//
// golang-migrate's own sqlite3 driver pulls in mattn/go-sqlite3, which
// registers under the same driver name as ncruces/go-sqlite3. Driver in this
// package talks to an already opened *sql.DB instead.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var schemaFS embed.FS

// FS returns the embedded migration files.
func FS() fs.FS {
	return schemaFS
}

// New returns a migrator over db using the embedded files.
func New(db *sql.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(schemaFS, ".")
	if err != nil {
		return nil, fmt.Errorf("loading migrations: %w", err)
	}
	drv, err := WithInstance(db, &Config{})
	if err != nil {
		return nil, fmt.Errorf("creating migration driver: %w", err)
	}
	return migrate.NewWithInstance("iofs", src, "sqlite3", drv)
}

// Run brings db up to the latest schema. An up-to-date database is not an
// error.
func Run(db *sql.DB) error {
	m, err := New(db)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
