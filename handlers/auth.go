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

type AuthHandler struct {
	ledger *ledger.Ledger
	cfg    cliparse.Config
}

func NewAuthHandler(l *ledger.Ledger, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{ledger: l, cfg: cfg}
}

// AdminLogin handles POST /auth/admin
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.AdminID == "" || req.AdminCode == "" {
		middleware.CodedErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "admin_id and admin_code are required")
		return
	}

	admin, err := auth.FindAdmin(h.cfg.Admins, req.AdminID, req.AdminCode)
	if err != nil {
		slog.Warn("admin login failed", "admin_id", req.AdminID)
		unauthorized(w, "Invalid admin ID or code")
		return
	}

	slog.Info("admin logged in", "admin_id", admin.ID)

	middleware.JSONResponse(w, http.StatusOK, models.AdminLoginResponse{
		AdminID:  admin.ID,
		Name:     admin.Name,
		Role:     admin.Role,
		AdminKey: auth.GenerateAdminKey(admin.ID, h.cfg.AdminKeySalt),
	})
}

// StudentLogin handles POST /auth/student
func (h *AuthHandler) StudentLogin(w http.ResponseWriter, r *http.Request) {
	var req models.StudentLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	nis := strings.TrimSpace(req.NIS)
	if nis == "" {
		middleware.CodedErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "nis is required")
		return
	}

	voter, err := h.ledger.VoterByNIS(r.Context(), nis)
	if err != nil {
		writeLedgerError(w, err, "log in")
		return
	}

	slog.Info("student logged in", "voter_id", voter.ID, "has_voted", voter.HasVoted)

	middleware.JSONResponse(w, http.StatusOK, models.StudentLoginResponse{
		Voter:      voter,
		VoterToken: auth.GenerateVoterToken(voter.NIS, h.cfg.AdminKeySalt),
	})
}

// requireAdmin checks the X-Admin-ID and X-Admin-Key headers against the
// configured accounts. It writes a 401 and returns false when they fail.
func requireAdmin(w http.ResponseWriter, r *http.Request, cfg cliparse.Config) (models.Admin, bool) {
	adminID := r.Header.Get("X-Admin-ID")
	adminKey := r.Header.Get("X-Admin-Key")
	if adminID == "" || adminKey == "" {
		unauthorized(w, "X-Admin-ID and X-Admin-Key headers required")
		return models.Admin{}, false
	}

	if err := auth.ValidateAdminKey(adminID, adminKey, cfg.AdminKeySalt); err != nil {
		unauthorized(w, "Invalid admin key")
		return models.Admin{}, false
	}

	// The key must belong to an account that is still configured
	for _, a := range cfg.Admins {
		if a.ID == adminID {
			return a, true
		}
	}
	unauthorized(w, "Invalid admin key")
	return models.Admin{}, false
}
