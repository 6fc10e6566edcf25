// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the council-vote API.

# Handler Types

Each handler is a struct with ledger and config dependencies:

  - AuthHandler: Admin and student login
  - CandidateHandler: Candidate ticket listing and management
  - VoterHandler: Voter roll management
  - VotingHandler: Vote casting
  - ResultsHandler: Tallies, turnout and the live results stream

Handlers are created via constructor functions that accept *ledger.Ledger and Config:

	votingHandler := handlers.NewVotingHandler(l, cfg)

# Authentication

Admins log in with the ID and code from ADMIN_ACCOUNTS and receive an admin
key. Admin operations require the X-Admin-ID and X-Admin-Key headers.

Students log in with their NIS and receive a voter token. Casting a vote
requires the X-Voter-NIS and X-Voter-Token headers.

Both credentials are HMACs keyed by ADMIN_KEY_SALT, so no session state is
stored.

# Voting Flow

	POST /auth/student → StudentLogin (returns voter and voter_token)
	POST /votes        → CastVote

CastVote either records the vote and increments the candidate tally together
or changes nothing. A second vote by the same student returns 409 with code
already_voted.

# Errors

Ledger errors map to coded JSON responses:

	voter_not_found      404
	candidate_not_found  404
	already_voted        409
	duplicate_voter      409
	invalid_input        400
	transient_conflict   503
	store_unavailable    500

# Live Results

GET /results/stream is a Server-Sent Events stream. It sends a "results"
event on connect and after every committed change, and a comment line when
idle.
*/
package handlers
