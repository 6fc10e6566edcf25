// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sqlstore implements ledger.Store for PostgreSQL (lib/pq) and SQLite
(modernc.org/sqlite).

	store, err := sqlstore.Open(ctx, models.DatabaseSQLite, "data/council.db")

Updates are compare-and-set on the version column:

	UPDATE voter SET ..., version = version + 1
	WHERE id = $1 AND version = $2

Zero affected rows means another transaction got there first, reported as
ledger.ErrConflict. Driver errors are mapped the same way: unique
violations become ledger.ErrDuplicate, PostgreSQL serialization failures
and SQLite busy errors become ledger.ErrConflict.

SQLite write connections open with _txlock=immediate, a five second busy
timeout and WAL journaling, so concurrent writers queue on the database
lock instead of failing on upgrade. View runs on a second pool of deferred,
query_only connections (SQLiteReaderDSN): under WAL readers see the last
commit and never wait for a writer. In-memory databases use one pool.
*/
package sqlstore
