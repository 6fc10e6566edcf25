package models

import "time"

// Database type constants
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseBolt     = "bolt"
)

// Error codes returned alongside the HTTP status text
const (
	CodeVoterNotFound     = "voter_not_found"
	CodeCandidateNotFound = "candidate_not_found"
	CodeAlreadyVoted      = "already_voted"
	CodeDuplicateVoter    = "duplicate_voter"
	CodeInvalidInput      = "invalid_input"
	CodeTransientConflict = "transient_conflict"
	CodeStoreUnavailable  = "store_unavailable"
	CodeUnauthorized      = "unauthorized"
)

// Domain types

type Candidate struct {
	ID                     string    `json:"id"`
	PartyName              string    `json:"party_name"`
	PresidentName          string    `json:"president_name"`
	PresidentPhotoURL      string    `json:"president_photo_url"`
	PresidentPhotoHint     string    `json:"president_photo_hint"`
	VicePresidentName      string    `json:"vice_president_name"`
	VicePresidentPhotoURL  string    `json:"vice_president_photo_url"`
	VicePresidentPhotoHint string    `json:"vice_president_photo_hint"`
	Vision                 string    `json:"vision"`
	Mission                string    `json:"mission"`
	Votes                  int64     `json:"votes"`
	Version                int64     `json:"-"` // Optimistic concurrency token
	CreatedAt              time.Time `json:"created_at"`
}

type Voter struct {
	ID        string     `json:"id"`
	NIS       string     `json:"nis"`
	Name      string     `json:"name"`
	Class     string     `json:"class"`
	AvatarURL string     `json:"avatar_url"`
	HasVoted  bool       `json:"has_voted"`
	VotedAt   *time.Time `json:"voted_at,omitempty"`
	Version   int64      `json:"-"` // Optimistic concurrency token
	CreatedAt time.Time  `json:"created_at"`
}

// NewCandidate holds the admin-editable candidate fields.
// It has no Votes field: tallies only move through CastVote.
type NewCandidate struct {
	PartyName              string `json:"party_name"`
	PresidentName          string `json:"president_name"`
	PresidentPhotoURL      string `json:"president_photo_url"`
	PresidentPhotoHint     string `json:"president_photo_hint"`
	VicePresidentName      string `json:"vice_president_name"`
	VicePresidentPhotoURL  string `json:"vice_president_photo_url"`
	VicePresidentPhotoHint string `json:"vice_president_photo_hint"`
	Vision                 string `json:"vision"`
	Mission                string `json:"mission"`
}

// CandidatePatch is the update payload; it shares NewCandidate's field set.
type CandidatePatch = NewCandidate

type NewVoter struct {
	NIS       string `json:"nis"`
	Name      string `json:"name"`
	Class     string `json:"class"`
	AvatarURL string `json:"avatar_url"`
}

// VoterPatch excludes nis and has_voted, neither of which an admin may edit.
type VoterPatch struct {
	Name      string `json:"name"`
	Class     string `json:"class"`
	AvatarURL string `json:"avatar_url"`
}

// Results types

type CandidateResult struct {
	Candidate Candidate `json:"candidate"`
	Percent   float64   `json:"percent"` // Share of all cast votes, 0-100
	Rank      int       `json:"rank"`    // 1-indexed
}

type Results struct {
	Candidates    []CandidateResult `json:"candidates"`
	TotalVotes    int64             `json:"total_votes"`
	TotalVoters   int               `json:"total_voters"`
	VotedCount    int               `json:"voted_count"`
	NotVoted      int               `json:"not_voted"`
	Participation float64           `json:"participation"` // 0-100
	ComputedAt    time.Time         `json:"computed_at"`
}

// Request types

type AdminLoginRequest struct {
	AdminID   string `json:"admin_id"`
	AdminCode string `json:"admin_code"`
}

type StudentLoginRequest struct {
	NIS string `json:"nis"`
}

type CastVoteRequest struct {
	CandidateID string `json:"candidate_id"`
}

// Response types

type AdminLoginResponse struct {
	AdminID  string `json:"admin_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	AdminKey string `json:"admin_key"`
}

type StudentLoginResponse struct {
	Voter      Voter  `json:"voter"`
	VoterToken string `json:"voter_token"`
}

type AddVoterResponse struct {
	VoterID string `json:"voter_id"`
}

type AddCandidateResponse struct {
	CandidateID string `json:"candidate_id"`
}

type CastVoteResponse struct {
	CandidateID string `json:"candidate_id"`
	Message     string `json:"message"`
}

type DeleteResponse struct {
	Deleted int `json:"deleted"`
}

// Admin account, loaded from configuration

type Admin struct {
	ID   string `json:"admin_id"`
	Code string `json:"-"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}
