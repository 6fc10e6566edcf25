// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package boltstore

import (
	"cmp"
	"encoding/json"
	"slices"

	bolt "go.etcd.io/bbolt"

	"github.com/danielhkuo/council-vote/ledger"
	"github.com/danielhkuo/council-vote/models"
)

// record is the stored form of a model. Version is kept outside the model
// because models never serialize it.
type record[T any] struct {
	Version int64 `json:"version"`
	Data    T     `json:"data"`
}

type tx struct {
	tx *bolt.Tx
}

func (t *tx) bucket(name []byte) (*bolt.Bucket, error) {
	b := t.tx.Bucket(name)
	if b == nil {
		return nil, ErrBucketNotFound
	}
	return b, nil
}

func get[T any](b *bolt.Bucket, key string) (T, int64, error) {
	var rec record[T]
	v := b.Get([]byte(key))
	if v == nil {
		return rec.Data, 0, ledger.ErrNotFound
	}
	if err := json.Unmarshal(v, &rec); err != nil {
		return rec.Data, 0, err
	}
	return rec.Data, rec.Version, nil
}

func put[T any](b *bolt.Bucket, key string, version int64, data T) error {
	v, err := json.Marshal(record[T]{Version: version, Data: data})
	if err != nil {
		return err
	}
	return b.Put([]byte(key), v)
}

func list[T any](b *bolt.Bucket) ([]T, []int64, error) {
	var items []T
	var versions []int64
	err := b.ForEach(func(_, v []byte) error {
		var rec record[T]
		if err := json.Unmarshal(v, &rec); err != nil {
			return err
		}
		items = append(items, rec.Data)
		versions = append(versions, rec.Version)
		return nil
	})
	return items, versions, err
}

// compareAndPut writes data under key only if the stored version matches.
func compareAndPut[T any](b *bolt.Bucket, key string, version int64, data T) error {
	_, stored, err := get[T](b, key)
	if err == ledger.ErrNotFound {
		return ledger.ErrConflict
	}
	if err != nil {
		return err
	}
	if stored != version {
		return ledger.ErrConflict
	}
	return put(b, key, version+1, data)
}

// deleteAll deletes every key in b and returns how many there were.
func deleteAll(b *bolt.Bucket) (int, error) {
	var keys [][]byte
	err := b.ForEach(func(k, _ []byte) error {
		keys = append(keys, slices.Clone(k))
		return nil
	})
	if err != nil {
		return 0, err
	}
	for _, k := range keys {
		if err := b.Delete(k); err != nil {
			return 0, err
		}
	}
	return len(keys), nil
}

// ---------- Candidates ----------

func (t *tx) Candidate(id string) (models.Candidate, error) {
	b, err := t.bucket(candidatesBucket)
	if err != nil {
		return models.Candidate{}, err
	}
	c, version, err := get[models.Candidate](b, id)
	if err != nil {
		return models.Candidate{}, err
	}
	c.Version = version
	return c, nil
}

func (t *tx) Candidates() ([]models.Candidate, error) {
	b, err := t.bucket(candidatesBucket)
	if err != nil {
		return nil, err
	}
	candidates, versions, err := list[models.Candidate](b)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		candidates[i].Version = versions[i]
	}

	slices.SortFunc(candidates, func(a, b models.Candidate) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if candidates == nil {
		candidates = []models.Candidate{}
	}
	return candidates, nil
}

func (t *tx) InsertCandidate(c models.Candidate) error {
	b, err := t.bucket(candidatesBucket)
	if err != nil {
		return err
	}
	if b.Get([]byte(c.ID)) != nil {
		return ledger.ErrDuplicate
	}
	return put(b, c.ID, c.Version, c)
}

func (t *tx) UpdateCandidate(c models.Candidate) error {
	b, err := t.bucket(candidatesBucket)
	if err != nil {
		return err
	}
	return compareAndPut(b, c.ID, c.Version, c)
}

func (t *tx) DeleteCandidate(id string) error {
	b, err := t.bucket(candidatesBucket)
	if err != nil {
		return err
	}
	if b.Get([]byte(id)) == nil {
		return ledger.ErrNotFound
	}
	return b.Delete([]byte(id))
}

func (t *tx) DeleteAllCandidates() (int, error) {
	b, err := t.bucket(candidatesBucket)
	if err != nil {
		return 0, err
	}
	return deleteAll(b)
}

// ---------- Voters ----------

func (t *tx) Voter(id string) (models.Voter, error) {
	b, err := t.bucket(votersBucket)
	if err != nil {
		return models.Voter{}, err
	}
	v, version, err := get[models.Voter](b, id)
	if err != nil {
		return models.Voter{}, err
	}
	v.Version = version
	return v, nil
}

func (t *tx) VoterByNIS(nis string) (models.Voter, error) {
	idx, err := t.bucket(votersByNISBucket)
	if err != nil {
		return models.Voter{}, err
	}
	id := idx.Get([]byte(nis))
	if id == nil {
		return models.Voter{}, ledger.ErrNotFound
	}
	return t.Voter(string(id))
}

func (t *tx) Voters() ([]models.Voter, error) {
	b, err := t.bucket(votersBucket)
	if err != nil {
		return nil, err
	}
	voters, versions, err := list[models.Voter](b)
	if err != nil {
		return nil, err
	}
	for i := range voters {
		voters[i].Version = versions[i]
	}

	slices.SortFunc(voters, func(a, b models.Voter) int {
		return cmp.Or(
			cmp.Compare(a.Class, b.Class),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.NIS, b.NIS),
		)
	})
	if voters == nil {
		voters = []models.Voter{}
	}
	return voters, nil
}

// InsertVoter writes the record and its NIS index entry in the same
// transaction, so two voters can never share a NIS.
func (t *tx) InsertVoter(v models.Voter) error {
	b, err := t.bucket(votersBucket)
	if err != nil {
		return err
	}
	idx, err := t.bucket(votersByNISBucket)
	if err != nil {
		return err
	}

	if idx.Get([]byte(v.NIS)) != nil || b.Get([]byte(v.ID)) != nil {
		return ledger.ErrDuplicate
	}
	if err := idx.Put([]byte(v.NIS), []byte(v.ID)); err != nil {
		return err
	}
	return put(b, v.ID, v.Version, v)
}

func (t *tx) UpdateVoter(v models.Voter) error {
	b, err := t.bucket(votersBucket)
	if err != nil {
		return err
	}
	return compareAndPut(b, v.ID, v.Version, v)
}

func (t *tx) DeleteVoter(id string) error {
	b, err := t.bucket(votersBucket)
	if err != nil {
		return err
	}
	idx, err := t.bucket(votersByNISBucket)
	if err != nil {
		return err
	}

	v, _, err := get[models.Voter](b, id)
	if err != nil {
		return err
	}
	if err := idx.Delete([]byte(v.NIS)); err != nil {
		return err
	}
	return b.Delete([]byte(id))
}

func (t *tx) DeleteAllVoters() (int, error) {
	b, err := t.bucket(votersBucket)
	if err != nil {
		return 0, err
	}
	idx, err := t.bucket(votersByNISBucket)
	if err != nil {
		return 0, err
	}
	if _, err := deleteAll(idx); err != nil {
		return 0, err
	}
	return deleteAll(b)
}
