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

type VoterHandler struct {
	ledger *ledger.Ledger
	cfg    cliparse.Config
}

func NewVoterHandler(l *ledger.Ledger, cfg cliparse.Config) *VoterHandler {
	return &VoterHandler{ledger: l, cfg: cfg}
}

// ListVoters handles GET /voters
func (h *VoterHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r, h.cfg); !ok {
		return
	}

	voters, err := h.ledger.Voters(r.Context())
	if err != nil {
		writeLedgerError(w, err, "list voters")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, voters)
}

// AddVoter handles POST /voters
func (h *VoterHandler) AddVoter(w http.ResponseWriter, r *http.Request) {
	admin, ok := requireAdmin(w, r, h.cfg)
	if !ok {
		return
	}

	var req models.NewVoter
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	v, err := h.ledger.AddVoter(r.Context(), req)
	if err != nil {
		writeLedgerError(w, err, "add voter")
		return
	}

	slog.Info("voter added", "voter_id", v.ID, "class", v.Class, "admin_id", admin.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddVoterResponse{VoterID: v.ID})
}

// UpdateVoter handles PUT /voters/{id}
func (h *VoterHandler) UpdateVoter(w http.ResponseWriter, r *http.Request) {
	admin, ok := requireAdmin(w, r, h.cfg)
	if !ok {
		return
	}

	var req models.VoterPatch
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	v, err := h.ledger.UpdateVoter(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeLedgerError(w, err, "update voter")
		return
	}

	slog.Info("voter updated", "voter_id", v.ID, "admin_id", admin.ID)

	middleware.JSONResponse(w, http.StatusOK, v)
}

// RemoveVoter handles DELETE /voters/{id}
func (h *VoterHandler) RemoveVoter(w http.ResponseWriter, r *http.Request) {
	admin, ok := requireAdmin(w, r, h.cfg)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if err := h.ledger.RemoveVoter(r.Context(), id); err != nil {
		writeLedgerError(w, err, "remove voter")
		return
	}

	slog.Info("voter removed", "voter_id", id, "admin_id", admin.ID)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{Deleted: 1})
}

// RemoveAllVoters handles DELETE /voters
func (h *VoterHandler) RemoveAllVoters(w http.ResponseWriter, r *http.Request) {
	admin, ok := requireAdmin(w, r, h.cfg)
	if !ok {
		return
	}

	n, err := h.ledger.RemoveAllVoters(r.Context())
	if err != nil {
		writeLedgerError(w, err, "remove voters")
		return
	}

	slog.Warn("all voters removed", "count", n, "admin_id", admin.ID)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{Deleted: n})
}
