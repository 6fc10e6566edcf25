// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/council-vote/ledger"
	"github.com/danielhkuo/council-vote/middleware"
	"github.com/danielhkuo/council-vote/models"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

var ledgerErrors = []errorMapping{
	{ledger.ErrVoterNotFound, http.StatusNotFound, models.CodeVoterNotFound},
	{ledger.ErrCandidateNotFound, http.StatusNotFound, models.CodeCandidateNotFound},
	{ledger.ErrAlreadyVoted, http.StatusConflict, models.CodeAlreadyVoted},
	{ledger.ErrDuplicateVoter, http.StatusConflict, models.CodeDuplicateVoter},
	{ledger.ErrInvalidInput, http.StatusBadRequest, models.CodeInvalidInput},
	{ledger.ErrTransientConflict, http.StatusServiceUnavailable, models.CodeTransientConflict},
}

// writeLedgerError maps a Ledger error onto a coded JSON error response.
// Store failures are logged and reported without their details.
func writeLedgerError(w http.ResponseWriter, err error, action string) {
	for _, m := range ledgerErrors {
		if errors.Is(err, m.err) {
			middleware.CodedErrorResponse(w, m.status, m.code, err.Error())
			return
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		slog.Warn("request abandoned", "action", action, "error", err)
		middleware.CodedErrorResponse(w, http.StatusServiceUnavailable, models.CodeTransientConflict, "Request cancelled")
		return
	}

	slog.Error("store failure", "action", action, "error", err)
	middleware.CodedErrorResponse(w, http.StatusInternalServerError, models.CodeStoreUnavailable, "Failed to "+action)
}

func unauthorized(w http.ResponseWriter, message string) {
	middleware.CodedErrorResponse(w, http.StatusUnauthorized, models.CodeUnauthorized, message)
}
