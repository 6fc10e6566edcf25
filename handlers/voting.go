// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/council-vote/auth"
	"github.com/danielhkuo/council-vote/cliparse"
	"github.com/danielhkuo/council-vote/ledger"
	"github.com/danielhkuo/council-vote/middleware"
	"github.com/danielhkuo/council-vote/models"
)

type VotingHandler struct {
	ledger *ledger.Ledger
	cfg    cliparse.Config
}

func NewVotingHandler(l *ledger.Ledger, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{ledger: l, cfg: cfg}
}

// CastVote handles POST /votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	// Get voter identity from headers
	nis := strings.TrimSpace(r.Header.Get("X-Voter-NIS"))
	voterToken := r.Header.Get("X-Voter-Token")
	if nis == "" || voterToken == "" {
		unauthorized(w, "X-Voter-NIS and X-Voter-Token headers required")
		return
	}

	if err := auth.ValidateVoterToken(nis, voterToken, h.cfg.AdminKeySalt); err != nil {
		unauthorized(w, "Invalid voter token")
		return
	}

	// Parse request
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.CandidateID == "" {
		middleware.CodedErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "candidate_id is required")
		return
	}

	if err := h.ledger.CastVote(r.Context(), req.CandidateID, nis); err != nil {
		writeLedgerError(w, err, "cast vote")
		return
	}

	// Get IP hash for tracking
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt)
	slog.Info("vote accepted", "candidate_id", req.CandidateID, "ip_hash", ipHash, "user_agent", r.UserAgent())

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		CandidateID: req.CandidateID,
		Message:     "Vote recorded successfully",
	})
}
