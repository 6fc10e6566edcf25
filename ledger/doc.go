// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger holds the election's rules: who may vote, what a vote does,
and how tallies are read back.

# Casting a Vote

CastVote is a single transaction. It finds the voter by NIS, rejects a
second vote, bumps the candidate's counter and marks the voter as voted:

	err := l.CastVote(ctx, candidateID, nis)
	switch {
	case errors.Is(err, ledger.ErrVoterNotFound):
	case errors.Is(err, ledger.ErrAlreadyVoted):
	case errors.Is(err, ledger.ErrCandidateNotFound):
	}

Either both records change or neither does. A voter can therefore never be
marked as voted without a vote being counted, and the sum of all candidate
votes always equals the number of voters who have voted (as long as no
voted voter is removed).

# Stores

The ledger talks to a Store, which runs a function inside a read or write
transaction. Writes are conditional on the record version read in the same
transaction; a stale write fails with ErrConflict and the ledger re-runs
the whole transaction with jittered exponential backoff:

	l := ledger.New(store, ledger.Config{MaxAttempts: 8})

When the attempts run out the caller gets ErrTransientConflict and may
retry. Any other store failure becomes ErrStoreUnavailable. Nothing is
committed in either case.

Implementations live in sqlstore (PostgreSQL and SQLite) and boltstore.

# Records

AddVoter enforces NIS uniqueness inside the transaction. Updates through
UpdateVoter and UpdateCandidate never touch has_voted, voted_at or votes.
Removing a voter who already voted leaves candidate tallies unchanged.

# Results

Results reads candidates and voters from one snapshot and ranks them with
Tally. Tied candidates share a rank.

Subscribe returns a channel that receives a signal after every committed
write, used by the results stream.
*/
package ledger
