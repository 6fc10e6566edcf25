// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/council-vote/db"
	"github.com/danielhkuo/council-vote/ledger"
	"github.com/danielhkuo/council-vote/models"
)

// Store implements ledger.Store on top of database/sql.
type Store struct {
	db      *sql.DB
	reader  *sql.DB // Runs View; same as db unless a read pool was opened
	dialect string
}

// New wraps an open connection. dialect is models.DatabasePostgres or
// models.DatabaseSQLite.
func New(conn *sql.DB, dialect string) *Store {
	return &Store{db: conn, reader: conn, dialect: dialect}
}

// Open connects to the database, verifies the connection and creates the
// schema.
func Open(ctx context.Context, dialect, url string) (*Store, error) {
	rawURL := url
	driver := ""
	switch dialect {
	case models.DatabasePostgres:
		driver = "postgres"
	case models.DatabaseSQLite:
		driver = "sqlite"
		if err := ensureDir(url); err != nil {
			return nil, err
		}
		url = SQLiteDSN(url)
	default:
		return nil, fmt.Errorf("unsupported sql dialect %q", dialect)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	store := New(conn, dialect)
	if dialect == models.DatabaseSQLite && !inMemory(rawURL) {
		// Views get their own pool of deferred, query-only connections so
		// readers never queue on the write lock. WAL gives each one a
		// consistent snapshot.
		reader, err := sql.Open(driver, SQLiteReaderDSN(rawURL))
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to open read pool: %w", err)
		}
		if err := reader.PingContext(ctx); err != nil {
			reader.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to ping read pool: %w", err)
		}
		store.reader = reader
	}

	return store, nil
}

// SQLiteDSN adds the pragmas the store relies on to a SQLite path or file:
// URL. Writers take the database lock when their transaction begins and wait
// up to five seconds for it.
func SQLiteDSN(path string) string {
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	var params []string
	if !strings.Contains(path, "_txlock=") {
		params = append(params, "_txlock=immediate")
	}
	if !strings.Contains(path, "busy_timeout") {
		params = append(params, "_pragma=busy_timeout(5000)")
	}
	if !strings.Contains(path, "journal_mode") {
		params = append(params, "_pragma=journal_mode(WAL)")
	}
	if len(params) == 0 {
		return path
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(params, "&")
}

// SQLiteReaderDSN is SQLiteDSN for the read pool: transactions begin
// deferred and connections refuse writes.
func SQLiteReaderDSN(path string) string {
	if !strings.Contains(path, "_txlock=") {
		path = addParam(path, "_txlock=deferred")
	}
	return addParam(SQLiteDSN(path), "_pragma=query_only(1)")
}

// inMemory reports whether path names a private in-memory database, which
// a second pool could not share.
func inMemory(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

func addParam(path, param string) string {
	if strings.Contains(path, "?") {
		return path + "&" + param
	}
	return path + "?" + param
}

// ensureDir creates the parent directory of a plain SQLite path.
func ensureDir(path string) error {
	if strings.HasPrefix(path, "file:") || inMemory(path) {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	return nil
}

// DB exposes the underlying connection, mainly for tests.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	if s.reader != s.db {
		s.reader.Close()
	}
	return s.db.Close()
}

func (s *Store) View(ctx context.Context, fn func(ledger.Tx) error) error {
	var opts *sql.TxOptions
	if s.dialect == models.DatabasePostgres {
		// One snapshot for every statement in the transaction
		opts = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	}
	return s.run(ctx, s.reader, opts, fn)
}

func (s *Store) Update(ctx context.Context, fn func(ledger.Tx) error) error {
	return s.run(ctx, s.db, nil, fn)
}

func (s *Store) run(ctx context.Context, conn *sql.DB, opts *sql.TxOptions, fn func(ledger.Tx) error) error {
	sqlTx, err := conn.BeginTx(ctx, opts)
	if err != nil {
		return mapError(err)
	}
	defer sqlTx.Rollback()

	if err := fn(&tx{ctx: ctx, tx: sqlTx}); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return mapError(err)
	}
	return nil
}

// mapError translates driver errors into the ledger's store errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ledger.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w: %s", ledger.ErrDuplicate, pqErr.Message)
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return fmt.Errorf("%w: %s", ledger.ErrConflict, pqErr.Message)
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %s", ledger.ErrDuplicate, liteErr.Error())
		}
		switch liteErr.Code() & 0xff {
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			return fmt.Errorf("%w: %s", ledger.ErrConflict, liteErr.Error())
		}
	}

	return err
}
