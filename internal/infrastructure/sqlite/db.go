// Package sqlite stores the viewing history in a local SQLite file using the
// CGO-free ncruces driver.
package sqlite

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zjrosen/valentine/internal/infrastructure/migrations"
	"github.com/zjrosen/valentine/internal/log"
	"github.com/zjrosen/valentine/internal/viewings/domain"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB is an open, migrated history database.
type DB struct {
	conn *sql.DB
	path string
}

// NewDB opens (creating if needed) the database at path and migrates it.
// An existing file is copied to {path}.bak first.
func NewDB(path string) (*DB, error) {
	log.Debug(log.CatDB, "Opening database", "path", path)

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := copyFile(path, path+".bak"); err != nil {
			log.ErrorErr(log.CatDB, "Failed to back up database", err, "path", path)
			return nil, fmt.Errorf("backing up database: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if err := migrations.Run(conn); err != nil {
		_ = conn.Close()
		log.ErrorErr(log.CatDB, "Failed to run migrations", err)
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	log.Info(log.CatDB, "Database ready", "path", path)
	return &DB{conn: conn, path: path}, nil
}

// Close releases the connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// Viewings returns the repository backed by this connection.
func (db *DB) Viewings() domain.Repository {
	return &viewingRepository{db: db.conn}
}

// Connection exposes the raw handle for tests.
func (db *DB) Connection() *sql.DB {
	return db.conn
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src) //nolint:gosec // src is the configured database path
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_RDWR|os.O_CREATE|os.O_TRUNC, info.Mode()) //nolint:gosec // dst is derived from src
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing backup: %w", cerr)
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
