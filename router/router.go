// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/council-vote/cliparse"
	"github.com/danielhkuo/council-vote/handlers"
	"github.com/danielhkuo/council-vote/ledger"
	"github.com/danielhkuo/council-vote/middleware"
)

func NewRouter(l *ledger.Ledger, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(l, cfg)
	candidateHandler := handlers.NewCandidateHandler(l, cfg)
	voterHandler := handlers.NewVoterHandler(l, cfg)
	votingHandler := handlers.NewVotingHandler(l, cfg)
	resultsHandler := handlers.NewResultsHandler(l, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Login
	mux.HandleFunc("POST /auth/admin", middleware.WithLogging(authHandler.AdminLogin))
	mux.HandleFunc("POST /auth/student", middleware.WithLogging(authHandler.StudentLogin))

	// Candidates (reads public, writes admin)
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.ListCandidates))
	mux.HandleFunc("GET /candidates/{id}", middleware.WithLogging(candidateHandler.GetCandidate))
	mux.HandleFunc("POST /candidates", middleware.WithLogging(candidateHandler.AddCandidate))
	mux.HandleFunc("PUT /candidates/{id}", middleware.WithLogging(candidateHandler.UpdateCandidate))
	mux.HandleFunc("DELETE /candidates/{id}", middleware.WithLogging(candidateHandler.RemoveCandidate))
	mux.HandleFunc("DELETE /candidates", middleware.WithLogging(candidateHandler.RemoveAllCandidates))

	// Voters (admin)
	mux.HandleFunc("GET /voters", middleware.WithLogging(voterHandler.ListVoters))
	mux.HandleFunc("POST /voters", middleware.WithLogging(voterHandler.AddVoter))
	mux.HandleFunc("PUT /voters/{id}", middleware.WithLogging(voterHandler.UpdateVoter))
	mux.HandleFunc("DELETE /voters/{id}", middleware.WithLogging(voterHandler.RemoveVoter))
	mux.HandleFunc("DELETE /voters", middleware.WithLogging(voterHandler.RemoveAllVoters))

	// Voting (student)
	mux.HandleFunc("POST /votes", middleware.WithLogging(votingHandler.CastVote))

	// Results (public)
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /results/stream", middleware.WithLogging(resultsHandler.StreamResults))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("council-vote API v1"))
	})

	return mux
}
