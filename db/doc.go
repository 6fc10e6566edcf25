// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same statements run on PostgreSQL and SQLite.

# Tables

  - candidate: President/vice-president ticket, vision, mission and tally
  - voter: Student identity (nis), class, avatar and voting status

Candidates and voters are independent: deleting one never touches the other.

# Constraints

  - voter.nis is UNIQUE, which is what rejects duplicate registrations
  - candidate.votes has CHECK (votes >= 0)
  - both tables carry a version column used for compare-and-update

# Indexes

  - voter.nis (unique)
  - voter.has_voted
*/
package db
