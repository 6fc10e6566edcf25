// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AdminLoginRequest: admin_id, admin_code
  - StudentLoginRequest: nis
  - CastVoteRequest: candidate_id
  - NewCandidate / CandidatePatch: ticket fields (no votes)
  - NewVoter: nis, name, class, avatar_url
  - VoterPatch: name, class, avatar_url

# Response Types

Types for JSON responses:

  - AdminLoginResponse: admin_id, name, role, admin_key
  - StudentLoginResponse: voter, voter_token
  - AddCandidateResponse: candidate_id
  - AddVoterResponse: voter_id
  - CastVoteResponse: candidate_id, message
  - DeleteResponse: deleted
  - ErrorResponse: error, message, code

# Domain Types

  - Candidate: president/vice-president ticket and its vote counter
  - Voter: registered student and whether they have voted
  - Results / CandidateResult: ranked tally snapshot
  - Admin: configured administrator account

Candidate and Voter carry a Version used for optimistic concurrency. It is
never serialized.

# Constants

Database types:

	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseBolt     = "bolt"

Error codes, sent in ErrorResponse.Code:

	CodeVoterNotFound     = "voter_not_found"
	CodeCandidateNotFound = "candidate_not_found"
	CodeAlreadyVoted      = "already_voted"
	CodeDuplicateVoter    = "duplicate_voter"
	CodeInvalidInput      = "invalid_input"
	CodeTransientConflict = "transient_conflict"
	CodeStoreUnavailable  = "store_unavailable"
	CodeUnauthorized      = "unauthorized"
*/
package models
