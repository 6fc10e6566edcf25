// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"

	"github.com/danielhkuo/council-vote/models"
)

func TestGenerateAdminKey(t *testing.T) {
	tests := []struct {
		name    string
		adminID string
		salt    string
	}{
		{"standard", "admin", "secret-salt"},
		{"empty admin id", "", "salt"},
		{"empty salt", "kepsek", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateAdminKey(tt.adminID, tt.salt)

			// Should not be empty
			if key == "" {
				t.Error("GenerateAdminKey() returned empty string")
			}

			// Should be deterministic
			key2 := GenerateAdminKey(tt.adminID, tt.salt)
			if key != key2 {
				t.Error("GenerateAdminKey() is not deterministic")
			}

			// Different inputs should produce different keys
			if tt.adminID != "" && tt.salt != "" {
				differentKey := GenerateAdminKey(tt.adminID+"x", tt.salt)
				if key == differentKey {
					t.Error("GenerateAdminKey() produced same key for different admin IDs")
				}
			}

			// Should be URL-safe (no padding)
			if strings.Contains(key, "=") {
				t.Error("GenerateAdminKey() contains padding characters")
			}
		})
	}
}

func TestValidateAdminKey(t *testing.T) {
	adminID := "admin"
	salt := "test-salt"
	validKey := GenerateAdminKey(adminID, salt)

	tests := []struct {
		name     string
		adminID  string
		adminKey string
		salt     string
		wantErr  bool
	}{
		{"valid key", adminID, validKey, salt, false},
		{"wrong key", adminID, "wrong-key", salt, true},
		{"wrong admin id", "kepsek", validKey, salt, true},
		{"wrong salt", adminID, validKey, "different-salt", true},
		{"empty key", adminID, "", salt, true},
		{"empty admin id", "", validKey, salt, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.adminID, tt.adminKey, tt.salt)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAdminKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidAdminKey {
				t.Errorf("ValidateAdminKey() error = %v, want %v", err, ErrInvalidAdminKey)
			}
		})
	}
}

func TestVoterToken(t *testing.T) {
	salt := "test-salt"
	token := GenerateVoterToken("12345", salt)

	if token == "" {
		t.Fatal("GenerateVoterToken() returned empty string")
	}
	if token != GenerateVoterToken("12345", salt) {
		t.Error("GenerateVoterToken() is not deterministic")
	}
	if strings.Contains(token, "=") {
		t.Error("GenerateVoterToken() contains padding characters")
	}

	tests := []struct {
		name    string
		nis     string
		token   string
		wantErr bool
	}{
		{"valid token", "12345", token, false},
		{"other nis", "54321", token, true},
		{"garbage token", "12345", "not-a-token", true},
		{"empty token", "12345", "", true},
		{"empty nis", "", token, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVoterToken(tt.nis, tt.token, salt)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVoterToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidVoterToken {
				t.Errorf("ValidateVoterToken() error = %v, want %v", err, ErrInvalidVoterToken)
			}
		})
	}
}

func TestAdminKeyIsNotVoterToken(t *testing.T) {
	salt := "test-salt"

	// Same subject, different purpose
	adminKey := GenerateAdminKey("12345", salt)
	if err := ValidateVoterToken("12345", adminKey, salt); err == nil {
		t.Error("admin key was accepted as a voter token")
	}

	voterToken := GenerateVoterToken("admin", salt)
	if err := ValidateAdminKey("admin", voterToken, salt); err == nil {
		t.Error("voter token was accepted as an admin key")
	}
}

func TestFindAdmin(t *testing.T) {
	admins := []models.Admin{
		{ID: "admin", Code: "admin123", Name: "Admin Utama", Role: "Administrator"},
		{ID: "kepsek", Code: "supersecret", Name: "Kepala Sekolah", Role: "Kepala Sekolah"},
	}

	tests := []struct {
		name     string
		id, code string
		wantName string
		wantErr  bool
	}{
		{"first admin", "admin", "admin123", "Admin Utama", false},
		{"second admin", "kepsek", "supersecret", "Kepala Sekolah", false},
		{"wrong code", "admin", "supersecret", "", true},
		{"unknown id", "guru", "admin123", "", true},
		{"empty", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := FindAdmin(admins, tt.id, tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FindAdmin() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidCredentials {
				t.Errorf("FindAdmin() error = %v, want %v", err, ErrInvalidCredentials)
			}
			if a.Name != tt.wantName {
				t.Errorf("FindAdmin() name = %q, want %q", a.Name, tt.wantName)
			}
		})
	}
}

func TestHashIP(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		salt string
	}{
		{"IPv4", "192.168.1.1", "ip-salt"},
		{"IPv6", "2001:0db8:85a3::8a2e:0370:7334", "ip-salt"},
		{"localhost", "127.0.0.1", "ip-salt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := HashIP(tt.ip, tt.salt)

			// Should be 16 hex characters (8 bytes * 2)
			if len(hash) != 16 {
				t.Errorf("HashIP() length = %d, want 16", len(hash))
			}

			// Should be valid hex
			for _, c := range hash {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("HashIP() contains invalid hex char: %c", c)
				}
			}

			// Should be deterministic
			if hash != HashIP(tt.ip, tt.salt) {
				t.Error("HashIP() is not deterministic")
			}
		})
	}

	// Different IPs should produce different hashes
	if HashIP("192.168.1.1", "salt") == HashIP("192.168.1.2", "salt") {
		t.Error("HashIP() produced same hash for different IPs")
	}
}

// Benchmark tests
func BenchmarkGenerateAdminKey(b *testing.B) {
	salt := "test-salt"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateAdminKey("admin", salt)
	}
}

func BenchmarkValidateVoterToken(b *testing.B) {
	salt := "test-salt"
	token := GenerateVoterToken("12345", salt)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ValidateVoterToken("12345", token, salt)
	}
}
