// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the council-vote API server.

council-vote runs a student council election: admins register candidate
tickets and voters, each student casts exactly one vote, and anyone can
follow the live results.

# Starting the Server

The server reads a .env file if present, then environment variables or CLI
flags:

	ADMIN_KEY_SALT=... ADMIN_ACCOUNTS=admin:admin123:Admin go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -admin-salt ... -admins ...

# Configuration

Required settings:

  - ADMIN_KEY_SALT (-admin-salt): Secret for admin keys and voter tokens
  - ADMIN_ACCOUNTS (-admins): Comma-separated id:code:name[:role] entries
  - DATABASE_URL (-d): Required for postgres only

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or bolt (default: sqlite)
  - SEED_DATA (-seed): Load demo candidates and voters into an empty store
  - TX_MAX_ATTEMPTS (-max-attempts): Conflict retries per write (default: 8)

# Architecture

  - ledger: Vote casting, record management and tallies
  - sqlstore, boltstore: Store implementations
  - handlers: HTTP request handlers (auth, candidates, voters, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Key derivation and validation
  - db: SQL schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
