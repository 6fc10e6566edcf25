// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"errors"
	"fmt"
)

// Errors returned to callers of the Ledger.
var (
	ErrVoterNotFound     = errors.New("voter not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrAlreadyVoted      = errors.New("voter has already voted")
	ErrDuplicateVoter    = errors.New("voter with this nis already exists")
	ErrInvalidInput      = errors.New("invalid input")
	ErrTransientConflict = errors.New("transaction conflict, retries exhausted")
	ErrStoreUnavailable  = errors.New("store unavailable")
)

// Errors a Store reports to the Ledger. They never reach Ledger callers.
var (
	ErrNotFound  = errors.New("record not found")
	ErrConflict  = errors.New("concurrent modification")
	ErrDuplicate = errors.New("unique key already exists")
)

// domainErrors pass through the Ledger unchanged.
var domainErrors = []error{
	ErrVoterNotFound,
	ErrCandidateNotFound,
	ErrAlreadyVoted,
	ErrDuplicateVoter,
	ErrInvalidInput,
	ErrTransientConflict,
	ErrStoreUnavailable,
	context.Canceled,
	context.DeadlineExceeded,
}

// classify maps a store error to the Ledger's error taxonomy.
// Anything that is not a known outcome is a store failure.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range domainErrors {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func invalid(field string) error {
	return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
}
