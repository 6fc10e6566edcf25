// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Config controls how conflicting transactions are retried.
type Config struct {
	MaxAttempts    int
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
}

// DefaultConfig returns the retry settings used when none are configured.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    8,
		RetryBaseDelay: 5 * time.Millisecond,
		RetryMaxDelay:  200 * time.Millisecond,
	}
}

// Ledger owns the candidate and voter collections and the vote transaction.
type Ledger struct {
	store    Store
	cfg      Config
	now      func() time.Time
	notifier *notifier
}

// New returns a Ledger backed by store. Zero fields in cfg take their
// DefaultConfig values.
func New(store Store, cfg Config) *Ledger {
	def := DefaultConfig()
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = def.RetryBaseDelay
	}
	if cfg.RetryMaxDelay <= 0 {
		cfg.RetryMaxDelay = def.RetryMaxDelay
	}
	if cfg.RetryMaxDelay < cfg.RetryBaseDelay {
		cfg.RetryMaxDelay = cfg.RetryBaseDelay
	}
	return &Ledger{
		store:    store,
		cfg:      cfg,
		now:      time.Now,
		notifier: newNotifier(),
	}
}

// CastVote records the vote of the voter identified by nis for candidateID.
//
// The voter's has_voted flag and the candidate's tally change together in one
// transaction or not at all. A voter who already voted gets ErrAlreadyVoted
// and no tally moves.
func (l *Ledger) CastVote(ctx context.Context, candidateID, nis string) error {
	candidateID = strings.TrimSpace(candidateID)
	nis = strings.TrimSpace(nis)
	if candidateID == "" {
		return invalid("candidate_id")
	}
	if nis == "" {
		return invalid("nis")
	}

	err := l.update(ctx, "cast vote", func(tx Tx) error {
		voter, err := tx.VoterByNIS(nis)
		if errors.Is(err, ErrNotFound) {
			return ErrVoterNotFound
		}
		if err != nil {
			return err
		}
		if voter.HasVoted {
			return ErrAlreadyVoted
		}

		candidate, err := tx.Candidate(candidateID)
		if errors.Is(err, ErrNotFound) {
			return ErrCandidateNotFound
		}
		if err != nil {
			return err
		}

		votedAt := l.now().UTC()
		voter.HasVoted = true
		voter.VotedAt = &votedAt
		if err := tx.UpdateVoter(voter); err != nil {
			return err
		}

		candidate.Votes++
		return tx.UpdateCandidate(candidate)
	})
	if err != nil {
		return err
	}

	slog.Info("vote cast", "candidate_id", candidateID)
	return nil
}

// update runs fn in a write transaction, retrying the whole transaction with
// jittered exponential backoff when the store reports ErrConflict.
func (l *Ledger) update(ctx context.Context, op string, fn func(Tx) error) error {
	attempt := 0
	err := backoff.RetryNotify(func() error {
		attempt++
		err := l.store.Update(ctx, fn)
		if err != nil && !errors.Is(err, ErrConflict) {
			return backoff.Permanent(err)
		}
		return err
	}, l.backOff(ctx), func(err error, wait time.Duration) {
		slog.Debug("transaction conflict, retrying", "op", op, "attempt", attempt, "wait", wait)
	})

	switch {
	case err == nil:
		l.notifier.broadcast()
		return nil
	case errors.Is(err, ErrConflict):
		slog.Warn("transaction retries exhausted", "op", op, "attempts", attempt)
		return fmt.Errorf("%s: %w", op, ErrTransientConflict)
	default:
		return classify(err)
	}
}

// backOff is the retry schedule for one update: delays start at
// RetryBaseDelay, double up to RetryMaxDelay, and vary by half either way.
// It allows MaxAttempts calls in total and stops when ctx is done.
func (l *Ledger) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = l.cfg.RetryBaseDelay
	b.MaxInterval = l.cfg.RetryMaxDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0.5
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(l.cfg.MaxAttempts-1)), ctx)
}

func (l *Ledger) view(ctx context.Context, fn func(Tx) error) error {
	return classify(l.store.View(ctx, fn))
}
