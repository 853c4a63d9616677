// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		username string
		want     bool
	}{
		{"simple", "alice", true},
		{"with digits", "user123", true},
		{"with separators", "john.doe_jr-2", true},
		{"minimum length", "abc", true},
		{"maximum length", strings.Repeat("a", 32), true},
		{"too short", "ab", false},
		{"too long", strings.Repeat("a", 33), false},
		{"empty", "", false},
		{"spaces", "john doe", false},
		{"shell metacharacters", "bob;rm", false},
		{"yaml special", "a:b", false},
		{"unicode", "ålice", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.ValidateUsername(tt.username); got != tt.want {
				t.Fatalf("ValidateUsername(%q) = %v, want %v", tt.username, got, tt.want)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple", "alice@example.com", true},
		{"subdomain", "bob@mail.example.co.uk", true},
		{"plus tag", "carol+plex@example.com", true},
		{"empty", "", false},
		{"no at sign", "alice.example.com", false},
		{"no domain", "alice@", false},
		{"no local part", "@example.com", false},
		{"no tld", "alice@example", false},
		{"single letter tld", "alice@example.c", false},
		{"spaces", "alice @example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.ValidateEmail(tt.email); got != tt.want {
				t.Fatalf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}
