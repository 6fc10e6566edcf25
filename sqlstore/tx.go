// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sqlstore

import (
	"context"
	"database/sql"

	"github.com/danielhkuo/council-vote/ledger"
	"github.com/danielhkuo/council-vote/models"
)

const candidateColumns = `id, party_name, president_name, president_photo_url, president_photo_hint,
	vice_president_name, vice_president_photo_url, vice_president_photo_hint,
	vision, mission, votes, version, created_at`

const voterColumns = `id, nis, name, class, avatar_url, has_voted, voted_at, version, created_at`

type scanner interface {
	Scan(dest ...any) error
}

type tx struct {
	ctx context.Context
	tx  *sql.Tx
}

// ---------- Candidates ----------

func scanCandidate(row scanner) (models.Candidate, error) {
	var c models.Candidate
	err := row.Scan(
		&c.ID, &c.PartyName, &c.PresidentName, &c.PresidentPhotoURL, &c.PresidentPhotoHint,
		&c.VicePresidentName, &c.VicePresidentPhotoURL, &c.VicePresidentPhotoHint,
		&c.Vision, &c.Mission, &c.Votes, &c.Version, &c.CreatedAt,
	)
	return c, err
}

func (t *tx) Candidate(id string) (models.Candidate, error) {
	row := t.tx.QueryRowContext(t.ctx, `SELECT `+candidateColumns+` FROM candidate WHERE id = $1`, id)
	c, err := scanCandidate(row)
	if err != nil {
		return models.Candidate{}, mapError(err)
	}
	return c, nil
}

func (t *tx) Candidates() ([]models.Candidate, error) {
	rows, err := t.tx.QueryContext(t.ctx, `SELECT `+candidateColumns+` FROM candidate ORDER BY created_at, id`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, mapError(err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return candidates, nil
}

func (t *tx) InsertCandidate(c models.Candidate) error {
	_, err := t.tx.ExecContext(t.ctx, `
		INSERT INTO candidate (`+candidateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, c.ID, c.PartyName, c.PresidentName, c.PresidentPhotoURL, c.PresidentPhotoHint,
		c.VicePresidentName, c.VicePresidentPhotoURL, c.VicePresidentPhotoHint,
		c.Vision, c.Mission, c.Votes, c.Version, c.CreatedAt)
	return mapError(err)
}

func (t *tx) UpdateCandidate(c models.Candidate) error {
	res, err := t.tx.ExecContext(t.ctx, `
		UPDATE candidate
		SET party_name = $1, president_name = $2, president_photo_url = $3, president_photo_hint = $4,
		    vice_president_name = $5, vice_president_photo_url = $6, vice_president_photo_hint = $7,
		    vision = $8, mission = $9, votes = $10, version = version + 1
		WHERE id = $11 AND version = $12
	`, c.PartyName, c.PresidentName, c.PresidentPhotoURL, c.PresidentPhotoHint,
		c.VicePresidentName, c.VicePresidentPhotoURL, c.VicePresidentPhotoHint,
		c.Vision, c.Mission, c.Votes, c.ID, c.Version)
	return expectOne(res, err, ledger.ErrConflict)
}

func (t *tx) DeleteCandidate(id string) error {
	res, err := t.tx.ExecContext(t.ctx, `DELETE FROM candidate WHERE id = $1`, id)
	return expectOne(res, err, ledger.ErrNotFound)
}

func (t *tx) DeleteAllCandidates() (int, error) {
	return deleteAll(t, `DELETE FROM candidate`)
}

// ---------- Voters ----------

func scanVoter(row scanner) (models.Voter, error) {
	var v models.Voter
	err := row.Scan(
		&v.ID, &v.NIS, &v.Name, &v.Class, &v.AvatarURL,
		&v.HasVoted, &v.VotedAt, &v.Version, &v.CreatedAt,
	)
	return v, err
}

func (t *tx) Voter(id string) (models.Voter, error) {
	row := t.tx.QueryRowContext(t.ctx, `SELECT `+voterColumns+` FROM voter WHERE id = $1`, id)
	v, err := scanVoter(row)
	if err != nil {
		return models.Voter{}, mapError(err)
	}
	return v, nil
}

func (t *tx) VoterByNIS(nis string) (models.Voter, error) {
	row := t.tx.QueryRowContext(t.ctx, `SELECT `+voterColumns+` FROM voter WHERE nis = $1`, nis)
	v, err := scanVoter(row)
	if err != nil {
		return models.Voter{}, mapError(err)
	}
	return v, nil
}

func (t *tx) Voters() ([]models.Voter, error) {
	rows, err := t.tx.QueryContext(t.ctx, `SELECT `+voterColumns+` FROM voter ORDER BY class, name, nis`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	voters := []models.Voter{}
	for rows.Next() {
		v, err := scanVoter(rows)
		if err != nil {
			return nil, mapError(err)
		}
		voters = append(voters, v)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return voters, nil
}

func (t *tx) InsertVoter(v models.Voter) error {
	_, err := t.tx.ExecContext(t.ctx, `
		INSERT INTO voter (`+voterColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, v.ID, v.NIS, v.Name, v.Class, v.AvatarURL, v.HasVoted, v.VotedAt, v.Version, v.CreatedAt)
	return mapError(err)
}

func (t *tx) UpdateVoter(v models.Voter) error {
	res, err := t.tx.ExecContext(t.ctx, `
		UPDATE voter
		SET name = $1, class = $2, avatar_url = $3, has_voted = $4, voted_at = $5, version = version + 1
		WHERE id = $6 AND version = $7
	`, v.Name, v.Class, v.AvatarURL, v.HasVoted, v.VotedAt, v.ID, v.Version)
	return expectOne(res, err, ledger.ErrConflict)
}

func (t *tx) DeleteVoter(id string) error {
	res, err := t.tx.ExecContext(t.ctx, `DELETE FROM voter WHERE id = $1`, id)
	return expectOne(res, err, ledger.ErrNotFound)
}

func (t *tx) DeleteAllVoters() (int, error) {
	return deleteAll(t, `DELETE FROM voter`)
}

// expectOne returns none when a statement touched no rows.
func expectOne(res sql.Result, err error, none error) error {
	if err != nil {
		return mapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if affected == 0 {
		return none
	}
	return nil
}

func deleteAll(t *tx, query string) (int, error) {
	res, err := t.tx.ExecContext(t.ctx, query)
	if err != nil {
		return 0, mapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, mapError(err)
	}
	return int(affected), nil
}
