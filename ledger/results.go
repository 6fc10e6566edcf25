// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/danielhkuo/council-vote/models"
)

// Results reads candidates and voters from one snapshot and tallies them.
func (l *Ledger) Results(ctx context.Context) (models.Results, error) {
	var candidates []models.Candidate
	var voters []models.Voter
	err := l.view(ctx, func(tx Tx) error {
		var err error
		if candidates, err = tx.Candidates(); err != nil {
			return err
		}
		voters, err = tx.Voters()
		return err
	})
	if err != nil {
		return models.Results{}, err
	}
	return Tally(candidates, voters, l.now().UTC()), nil
}

// Tally ranks candidates by votes (ties share a rank) and computes the
// participation figures shown on the results pages.
func Tally(candidates []models.Candidate, voters []models.Voter, at time.Time) models.Results {
	res := models.Results{
		Candidates:  make([]models.CandidateResult, 0, len(candidates)),
		TotalVoters: len(voters),
		ComputedAt:  at,
	}

	for _, c := range candidates {
		res.TotalVotes += c.Votes
	}
	for _, v := range voters {
		if v.HasVoted {
			res.VotedCount++
		}
	}
	res.NotVoted = res.TotalVoters - res.VotedCount
	if res.TotalVoters > 0 {
		res.Participation = float64(res.VotedCount) / float64(res.TotalVoters) * 100
	}

	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b models.Candidate) int {
		if c := cmp.Compare(b.Votes, a.Votes); c != 0 {
			return c
		}
		return cmp.Compare(a.PartyName, b.PartyName)
	})

	for i, c := range sorted {
		r := models.CandidateResult{Candidate: c, Rank: i + 1}
		if i > 0 && c.Votes == sorted[i-1].Votes {
			r.Rank = res.Candidates[i-1].Rank
		}
		if res.TotalVotes > 0 {
			r.Percent = float64(c.Votes) / float64(res.TotalVotes) * 100
		}
		res.Candidates = append(res.Candidates, r)
	}

	return res
}
