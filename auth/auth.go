// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/danielhkuo/council-vote/models"
)

var (
	ErrInvalidAdminKey    = errors.New("invalid admin key")
	ErrInvalidVoterToken  = errors.New("invalid voter token")
	ErrInvalidCredentials = errors.New("invalid admin id or code")
)

// Key purposes, mixed into the HMAC so an admin key can never pass as a
// voter token for the same identifier
const (
	purposeAdmin = "admin:"
	purposeVoter = "voter:"
)

func sign(purpose, subject, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(purpose + subject))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// GenerateAdminKey creates an HMAC-based key for an admin account
// This is deterministic and verifiable
func GenerateAdminKey(adminID, salt string) string {
	return sign(purposeAdmin, adminID, salt)
}

// ValidateAdminKey checks if the provided admin key is valid for the admin
func ValidateAdminKey(adminID, adminKey, salt string) error {
	if adminID == "" || adminKey == "" {
		return ErrInvalidAdminKey
	}
	expected := GenerateAdminKey(adminID, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// GenerateVoterToken creates the token a student presents when voting.
// It is derived from the NIS, so logging in twice yields the same token.
func GenerateVoterToken(nis, salt string) string {
	return sign(purposeVoter, nis, salt)
}

// ValidateVoterToken checks if the provided token was issued for nis
func ValidateVoterToken(nis, token, salt string) error {
	if nis == "" || token == "" {
		return ErrInvalidVoterToken
	}
	expected := GenerateVoterToken(nis, salt)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrInvalidVoterToken
	}
	return nil
}

// FindAdmin looks up an admin account by id and code.
// This is a plaintext comparison against the configured accounts.
func FindAdmin(admins []models.Admin, adminID, adminCode string) (models.Admin, error) {
	for _, a := range admins {
		if a.ID == adminID && hmac.Equal([]byte(a.Code), []byte(adminCode)) {
			return a, nil
		}
	}
	return models.Admin{}, ErrInvalidCredentials
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
