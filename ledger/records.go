// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/council-vote/models"
)

// ---------- Voters ----------

// AddVoter registers a voter. The NIS must not belong to any current voter.
func (l *Ledger) AddVoter(ctx context.Context, in models.NewVoter) (models.Voter, error) {
	voter, err := l.newVoter(in)
	if err != nil {
		return models.Voter{}, err
	}

	err = l.update(ctx, "add voter", func(tx Tx) error {
		err := tx.InsertVoter(voter)
		if errors.Is(err, ErrDuplicate) {
			return ErrDuplicateVoter
		}
		return err
	})
	if err != nil {
		return models.Voter{}, err
	}

	slog.Info("voter added", "voter_id", voter.ID, "nis", voter.NIS)
	return voter, nil
}

// newVoter trims and checks in and builds the record to insert.
func (l *Ledger) newVoter(in models.NewVoter) (models.Voter, error) {
	in.NIS = strings.TrimSpace(in.NIS)
	in.Name = strings.TrimSpace(in.Name)
	if in.NIS == "" {
		return models.Voter{}, invalid("nis")
	}
	if in.Name == "" {
		return models.Voter{}, invalid("name")
	}

	return models.Voter{
		ID:        uuid.NewString(),
		NIS:       in.NIS,
		Name:      in.Name,
		Class:     strings.TrimSpace(in.Class),
		AvatarURL: in.AvatarURL,
		Version:   1,
		CreatedAt: l.now().UTC(),
	}, nil
}

// UpdateVoter changes a voter's name, class and avatar. NIS and voting
// status are not editable.
func (l *Ledger) UpdateVoter(ctx context.Context, id string, patch models.VoterPatch) (models.Voter, error) {
	patch.Name = strings.TrimSpace(patch.Name)
	if patch.Name == "" {
		return models.Voter{}, invalid("name")
	}

	var updated models.Voter
	err := l.update(ctx, "update voter", func(tx Tx) error {
		voter, err := tx.Voter(id)
		if errors.Is(err, ErrNotFound) {
			return ErrVoterNotFound
		}
		if err != nil {
			return err
		}

		voter.Name = patch.Name
		voter.Class = strings.TrimSpace(patch.Class)
		voter.AvatarURL = patch.AvatarURL
		if err := tx.UpdateVoter(voter); err != nil {
			return err
		}

		updated = voter
		updated.Version++
		return nil
	})
	if err != nil {
		return models.Voter{}, err
	}
	return updated, nil
}

// RemoveVoter deletes one voter. Candidate tallies are left untouched, even
// when the voter had already voted.
func (l *Ledger) RemoveVoter(ctx context.Context, id string) error {
	err := l.update(ctx, "remove voter", func(tx Tx) error {
		err := tx.DeleteVoter(id)
		if errors.Is(err, ErrNotFound) {
			return ErrVoterNotFound
		}
		return err
	})
	if err != nil {
		return err
	}

	slog.Info("voter removed", "voter_id", id)
	return nil
}

// RemoveAllVoters deletes every voter record and reports how many went.
func (l *Ledger) RemoveAllVoters(ctx context.Context) (int, error) {
	var n int
	err := l.update(ctx, "remove all voters", func(tx Tx) error {
		var err error
		n, err = tx.DeleteAllVoters()
		return err
	})
	if err != nil {
		return 0, err
	}

	slog.Warn("all voters removed", "count", n)
	return n, nil
}

func (l *Ledger) Voters(ctx context.Context) ([]models.Voter, error) {
	var voters []models.Voter
	err := l.view(ctx, func(tx Tx) error {
		var err error
		voters, err = tx.Voters()
		return err
	})
	return voters, err
}

// VoterByNIS looks a voter up by student ID, which is how students log in.
func (l *Ledger) VoterByNIS(ctx context.Context, nis string) (models.Voter, error) {
	var voter models.Voter
	err := l.view(ctx, func(tx Tx) error {
		var err error
		voter, err = tx.VoterByNIS(strings.TrimSpace(nis))
		if errors.Is(err, ErrNotFound) {
			return ErrVoterNotFound
		}
		return err
	})
	return voter, err
}

// ---------- Candidates ----------

func (l *Ledger) AddCandidate(ctx context.Context, in models.NewCandidate) (models.Candidate, error) {
	if err := validateCandidate(in); err != nil {
		return models.Candidate{}, err
	}

	candidate := models.Candidate{ID: uuid.NewString(), Version: 1, CreatedAt: l.now().UTC()}
	applyCandidate(&candidate, in)

	err := l.update(ctx, "add candidate", func(tx Tx) error {
		return tx.InsertCandidate(candidate)
	})
	if err != nil {
		return models.Candidate{}, err
	}

	slog.Info("candidate added", "candidate_id", candidate.ID, "party", candidate.PartyName)
	return candidate, nil
}

// UpdateCandidate overwrites the editable fields of a candidate. The tally is
// read from the stored record inside the transaction and written back as is.
func (l *Ledger) UpdateCandidate(ctx context.Context, id string, patch models.CandidatePatch) (models.Candidate, error) {
	if err := validateCandidate(patch); err != nil {
		return models.Candidate{}, err
	}

	var updated models.Candidate
	err := l.update(ctx, "update candidate", func(tx Tx) error {
		candidate, err := tx.Candidate(id)
		if errors.Is(err, ErrNotFound) {
			return ErrCandidateNotFound
		}
		if err != nil {
			return err
		}

		applyCandidate(&candidate, patch)
		if err := tx.UpdateCandidate(candidate); err != nil {
			return err
		}

		updated = candidate
		updated.Version++
		return nil
	})
	if err != nil {
		return models.Candidate{}, err
	}
	return updated, nil
}

func (l *Ledger) RemoveCandidate(ctx context.Context, id string) error {
	err := l.update(ctx, "remove candidate", func(tx Tx) error {
		err := tx.DeleteCandidate(id)
		if errors.Is(err, ErrNotFound) {
			return ErrCandidateNotFound
		}
		return err
	})
	if err != nil {
		return err
	}

	slog.Info("candidate removed", "candidate_id", id)
	return nil
}

func (l *Ledger) RemoveAllCandidates(ctx context.Context) (int, error) {
	var n int
	err := l.update(ctx, "remove all candidates", func(tx Tx) error {
		var err error
		n, err = tx.DeleteAllCandidates()
		return err
	})
	if err != nil {
		return 0, err
	}

	slog.Warn("all candidates removed", "count", n)
	return n, nil
}

func (l *Ledger) Candidates(ctx context.Context) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := l.view(ctx, func(tx Tx) error {
		var err error
		candidates, err = tx.Candidates()
		return err
	})
	return candidates, err
}

func (l *Ledger) Candidate(ctx context.Context, id string) (models.Candidate, error) {
	var candidate models.Candidate
	err := l.view(ctx, func(tx Tx) error {
		var err error
		candidate, err = tx.Candidate(id)
		if errors.Is(err, ErrNotFound) {
			return ErrCandidateNotFound
		}
		return err
	})
	return candidate, err
}

func validateCandidate(in models.NewCandidate) error {
	if strings.TrimSpace(in.PartyName) == "" {
		return invalid("party_name")
	}
	if strings.TrimSpace(in.PresidentName) == "" {
		return invalid("president_name")
	}
	if strings.TrimSpace(in.VicePresidentName) == "" {
		return invalid("vice_president_name")
	}
	return nil
}

func applyCandidate(c *models.Candidate, in models.NewCandidate) {
	c.PartyName = strings.TrimSpace(in.PartyName)
	c.PresidentName = strings.TrimSpace(in.PresidentName)
	c.PresidentPhotoURL = in.PresidentPhotoURL
	c.PresidentPhotoHint = in.PresidentPhotoHint
	c.VicePresidentName = strings.TrimSpace(in.VicePresidentName)
	c.VicePresidentPhotoURL = in.VicePresidentPhotoURL
	c.VicePresidentPhotoHint = in.VicePresidentPhotoHint
	c.Vision = in.Vision
	c.Mission = in.Mission
}
