// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"

	"github.com/danielhkuo/council-vote/models"
)

// Store is the persistence collaborator of the Ledger.
//
// Update runs fn inside a single atomic read-write transaction: if fn returns
// an error, or the commit fails, nothing fn wrote is visible to anyone.
// View runs fn inside a read-only transaction over a consistent snapshot.
type Store interface {
	View(ctx context.Context, fn func(Tx) error) error
	Update(ctx context.Context, fn func(Tx) error) error
	Close() error
}

// Tx is one store transaction.
//
// UpdateCandidate and UpdateVoter are compare-and-update operations: they only
// apply when the stored Version equals the Version of the record passed in,
// and bump it by one. A mismatch, or a record deleted in the meantime,
// returns ErrConflict. Lookups return ErrNotFound. InsertVoter returns
// ErrDuplicate when the NIS is taken.
type Tx interface {
	Candidate(id string) (models.Candidate, error)
	Candidates() ([]models.Candidate, error)
	InsertCandidate(c models.Candidate) error
	UpdateCandidate(c models.Candidate) error
	DeleteCandidate(id string) error
	DeleteAllCandidates() (int, error)

	Voter(id string) (models.Voter, error)
	VoterByNIS(nis string) (models.Voter, error)
	Voters() ([]models.Voter, error)
	InsertVoter(v models.Voter) error
	UpdateVoter(v models.Voter) error
	DeleteVoter(id string) error
	DeleteAllVoters() (int, error)
}
