// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the council-vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(l, cfg)

# Endpoints

Health:

	GET /health

Login (public):

	POST /auth/admin   - Admin ID and code, returns admin_key
	POST /auth/student - Student NIS, returns voter and voter_token

Candidates (reads public, writes require X-Admin-ID and X-Admin-Key):

	GET    /candidates      - List tickets
	GET    /candidates/{id} - Get one ticket
	POST   /candidates      - Add ticket
	PUT    /candidates/{id} - Edit ticket (tally untouched)
	DELETE /candidates/{id} - Remove ticket
	DELETE /candidates      - Remove every ticket

Voters (admin):

	GET    /voters      - List voters
	POST   /voters      - Register voter
	PUT    /voters/{id} - Edit name, class, avatar
	DELETE /voters/{id} - Remove voter
	DELETE /voters      - Remove every voter

Voting (student, requires X-Voter-NIS and X-Voter-Token):

	POST /votes - Cast the one vote

Results (public):

	GET /results        - Tallies and turnout
	GET /results/stream - Server-Sent Events, one snapshot per change

# Handler Initialization

The router creates handler instances with dependency injection:

	authHandler := handlers.NewAuthHandler(l, cfg)
	votingHandler := handlers.NewVotingHandler(l, cfg)

All handlers share the one Ledger and the configuration.
*/
package router
