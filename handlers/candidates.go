// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/council-vote/cliparse"
	"github.com/danielhkuo/council-vote/ledger"
	"github.com/danielhkuo/council-vote/middleware"
	"github.com/danielhkuo/council-vote/models"
)

type CandidateHandler struct {
	ledger *ledger.Ledger
	cfg    cliparse.Config
}

func NewCandidateHandler(l *ledger.Ledger, cfg cliparse.Config) *CandidateHandler {
	return &CandidateHandler{ledger: l, cfg: cfg}
}

// ListCandidates handles GET /candidates
func (h *CandidateHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.ledger.Candidates(r.Context())
	if err != nil {
		writeLedgerError(w, err, "list candidates")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// GetCandidate handles GET /candidates/{id}
func (h *CandidateHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	c, err := h.ledger.Candidate(r.Context(), r.PathValue("id"))
	if err != nil {
		writeLedgerError(w, err, "get candidate")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, c)
}

// AddCandidate handles POST /candidates
func (h *CandidateHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	admin, ok := requireAdmin(w, r, h.cfg)
	if !ok {
		return
	}

	var req models.NewCandidate
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	c, err := h.ledger.AddCandidate(r.Context(), req)
	if err != nil {
		writeLedgerError(w, err, "add candidate")
		return
	}

	slog.Info("candidate added", "candidate_id", c.ID, "party", c.PartyName, "admin_id", admin.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddCandidateResponse{CandidateID: c.ID})
}

// UpdateCandidate handles PUT /candidates/{id}
func (h *CandidateHandler) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	admin, ok := requireAdmin(w, r, h.cfg)
	if !ok {
		return
	}

	var req models.CandidatePatch
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	c, err := h.ledger.UpdateCandidate(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeLedgerError(w, err, "update candidate")
		return
	}

	slog.Info("candidate updated", "candidate_id", c.ID, "admin_id", admin.ID)

	middleware.JSONResponse(w, http.StatusOK, c)
}

// RemoveCandidate handles DELETE /candidates/{id}
func (h *CandidateHandler) RemoveCandidate(w http.ResponseWriter, r *http.Request) {
	admin, ok := requireAdmin(w, r, h.cfg)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if err := h.ledger.RemoveCandidate(r.Context(), id); err != nil {
		writeLedgerError(w, err, "remove candidate")
		return
	}

	slog.Info("candidate removed", "candidate_id", id, "admin_id", admin.ID)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{Deleted: 1})
}

// RemoveAllCandidates handles DELETE /candidates
func (h *CandidateHandler) RemoveAllCandidates(w http.ResponseWriter, r *http.Request) {
	admin, ok := requireAdmin(w, r, h.cfg)
	if !ok {
		return
	}

	n, err := h.ledger.RemoveAllCandidates(r.Context())
	if err != nil {
		writeLedgerError(w, err, "remove candidates")
		return
	}

	slog.Warn("all candidates removed", "count", n, "admin_id", admin.ID)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{Deleted: n})
}
