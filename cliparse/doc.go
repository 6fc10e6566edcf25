// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	if err := cliparse.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

LoadEnv reads a .env file from the working directory when one exists.
Variables already present in the environment are not overwritten.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: PostgreSQL connection string, or a file path for sqlite and bolt
    (default for files: data/council.db)
  - DatabaseType: sqlite (default), postgres or bolt
  - AdminKeySalt: Secret for admin key and voter token HMAC (required)
  - Admins: Admin accounts allowed to log in (required)
  - SeedData: Insert default candidates and voters into an empty store
  - MaxAttempts: Attempts per write transaction before a conflict is reported (default: 8)

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	--admin-salt    Admin key salt
	--admins        Admin accounts
	--seed          Seed default data
	--max-attempts  Transaction attempts

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	ADMIN_KEY_SALT  → --admin-salt
	ADMIN_ACCOUNTS  → --admins
	SEED_DATA       → --seed
	TX_MAX_ATTEMPTS → --max-attempts

CLI flags take precedence over environment variables.

# Admin Accounts

Accounts are a comma separated list of id:code:name entries with an optional
fourth role field:

	ADMIN_ACCOUNTS=admin:admin123:Admin Utama,kepsek:rahasia:Kepala Sekolah:Kepala Sekolah

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided for postgres
  - ADMIN_KEY_SALT must be provided
  - ADMIN_ACCOUNTS must hold at least one well-formed account
*/
package cliparse
