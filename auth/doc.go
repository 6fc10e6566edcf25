// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides login lookups and key derivation.

Login is simple: admin accounts come from configuration and
are matched by id and code, and students log in with their NIS alone.
Nothing is stored server-side; keys are derived and re-derived on demand.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(adminID, salt)
	err := auth.ValidateAdminKey(adminID, adminKey, salt)

Admin requests send X-Admin-ID and X-Admin-Key.

# Voter Tokens

Voter tokens are derived the same way from the student's NIS:

	token := auth.GenerateVoterToken(nis, salt)
	err := auth.ValidateVoterToken(nis, token, salt)

Vote requests send X-Voter-NIS and X-Voter-Token. A different purpose
prefix goes into each HMAC, so an admin key is never a valid voter token.

# IP Hashing

For privacy-preserving request logs:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
