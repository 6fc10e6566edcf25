// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/council-vote/cliparse"
	"github.com/danielhkuo/council-vote/ledger"
	"github.com/danielhkuo/council-vote/middleware"
)

// DefaultHeartbeat is how often an idle results stream sends a comment line
// to keep proxies from closing it.
const DefaultHeartbeat = 25 * time.Second

type ResultsHandler struct {
	ledger    *ledger.Ledger
	cfg       cliparse.Config
	heartbeat time.Duration
}

func NewResultsHandler(l *ledger.Ledger, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{ledger: l, cfg: cfg, heartbeat: DefaultHeartbeat}
}

// GetResults handles GET /results
// Returns live tallies ranked by votes, with turnout figures.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.ledger.Results(r.Context())
	if err != nil {
		writeLedgerError(w, err, "compute results")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, results)
}

// StreamResults handles GET /results/stream
// Sends the current results as a Server-Sent Event, then a fresh snapshot
// after every committed change until the client disconnects.
func (h *ResultsHandler) StreamResults(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	// Subscribe before the first snapshot so no commit falls in between
	changes, cancel := h.ledger.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	ctx := r.Context()
	if err := h.sendResults(w, r); err != nil {
		slog.Warn("results stream ended", "error", err)
		return
	}
	flusher.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-changes:
			if err := h.sendResults(w, r); err != nil {
				slog.Warn("results stream ended", "error", err)
				return
			}
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		}
		flusher.Flush()
	}
}

func (h *ResultsHandler) sendResults(w http.ResponseWriter, r *http.Request) error {
	results, err := h.ledger.Results(r.Context())
	if err != nil {
		return err
	}
	data, err := json.Marshal(results)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: results\ndata: %s\n\n", data)
	return err
}
