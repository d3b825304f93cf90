package migrations

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/golang-migrate/migrate/v4/database"
)

// DefaultMigrationsTable tracks the applied version.
const DefaultMigrationsTable = "schema_migrations"

// ErrNilConfig is returned by WithInstance when config is nil.
var ErrNilConfig = errors.New("no config")

// Config configures Driver.
type Config struct {
	MigrationsTable string
}

// Driver implements database.Driver over a *sql.DB opened with
// ncruces/go-sqlite3. Every migration runs in its own transaction.
type Driver struct {
	db     *sql.DB
	table  string
	locked atomic.Bool
}

var _ database.Driver = (*Driver)(nil)

// WithInstance wraps an open connection and creates the version table.
func WithInstance(db *sql.DB, cfg *Config) (database.Driver, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	table := cfg.MigrationsTable
	if table == "" {
		table = DefaultMigrationsTable
	}
	d := &Driver{db: db, table: table}

	stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %[1]s (version uint64, dirty bool);
CREATE UNIQUE INDEX IF NOT EXISTS %[1]s_version ON %[1]s (version);`, table)
	if _, err := db.Exec(stmt); err != nil {
		return nil, fmt.Errorf("creating %s: %w", table, err)
	}
	return d, nil
}

// Open is unsupported; the connection always comes from WithInstance.
func (d *Driver) Open(string) (database.Driver, error) {
	return nil, errors.New("open by URL is not supported, use WithInstance")
}

func (d *Driver) Close() error {
	return d.db.Close()
}

func (d *Driver) Lock() error {
	if !d.locked.CompareAndSwap(false, true) {
		return database.ErrLocked
	}
	return nil
}

func (d *Driver) Unlock() error {
	if !d.locked.CompareAndSwap(true, false) {
		return database.ErrNotLocked
	}
	return nil
}

func (d *Driver) Run(r io.Reader) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return d.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(string(body)); err != nil {
			return &database.Error{OrigErr: err, Query: body}
		}
		return nil
	})
}

// SetVersion replaces the stored version. A nil version is still written
// when dirty so a failed first down migration is visible.
func (d *Driver) SetVersion(version int, dirty bool) error {
	return d.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM " + d.table); err != nil { //nolint:gosec // table name comes from config
			return &database.Error{OrigErr: err, Err: "clearing version"}
		}
		if version < 0 && !(version == database.NilVersion && dirty) {
			return nil
		}
		insert := "INSERT INTO " + d.table + " (version, dirty) VALUES (?, ?)" //nolint:gosec // table name comes from config
		if _, err := tx.Exec(insert, version, dirty); err != nil {
			return &database.Error{OrigErr: err, Query: []byte(insert)}
		}
		return nil
	})
}

func (d *Driver) Version() (int, bool, error) {
	var (
		version int
		dirty   bool
	)
	err := d.db.QueryRow("SELECT version, dirty FROM "+d.table+" LIMIT 1").Scan(&version, &dirty) //nolint:gosec // table name comes from config
	if errors.Is(err, sql.ErrNoRows) {
		return database.NilVersion, false, nil
	}
	if err != nil {
		return 0, false, &database.Error{OrigErr: err, Err: "reading version"}
	}
	return version, dirty, nil
}

// Drop removes every table, the version table included.
func (d *Driver) Drop() error {
	rows, err := d.db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`)
	if err != nil {
		return err
	}
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			_ = rows.Close()
			return err
		}
		tables = append(tables, name)
	}
	if err := errors.Join(rows.Err(), rows.Close()); err != nil {
		return err
	}

	for _, name := range tables {
		if _, err := d.db.Exec("DROP TABLE " + name); err != nil { //nolint:gosec // names come from sqlite_master
			return &database.Error{OrigErr: err, Err: "dropping " + name}
		}
	}
	if len(tables) > 0 {
		if _, err := d.db.Exec("VACUUM"); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) inTx(fn func(*sql.Tx) error) error {
	tx, err := d.db.Begin()
	if err != nil {
		return &database.Error{OrigErr: err, Err: "transaction start failed"}
	}
	if err := fn(tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	if err := tx.Commit(); err != nil {
		return &database.Error{OrigErr: err, Err: "transaction commit failed"}
	}
	return nil
}
