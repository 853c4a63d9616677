// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/autheliarr/autheliarr/internal/logging"
)

func TestFileSinkEmit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passwords.log")
	sink := NewFileSink(path, logging.NewNoopLogger())

	if err := sink.Emit("alice", "first-secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sink.Emit("bob", "second-secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), data)
	}
	if !strings.Contains(lines[0], "user=alice password=first-secret") {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "user=bob password=second-secret") {
		t.Fatalf("unexpected second line: %q", lines[1])
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected mode 0600, got %v", info.Mode().Perm())
	}
}

func TestFileSinkEmitUnwritablePath(t *testing.T) {
	sink := NewFileSink(filepath.Join(t.TempDir(), "missing", "passwords.log"), logging.NewNoopLogger())

	if err := sink.Emit("alice", "secret"); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestSinkAvailability(t *testing.T) {
	file := NewFileSink("/tmp/ignored", logging.NewNoopLogger())
	if !file.Available() {
		t.Fatal("expected file sink to be available")
	}

	noop := NewNoopSink(logging.NewNoopLogger())
	if noop.Available() {
		t.Fatal("expected noop sink to be unavailable")
	}
	if err := noop.Emit("alice", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestObfuscate(t *testing.T) {
	tests := []struct {
		secret string
		want   string
	}{
		{"", ""},
		{"abc", "***"},
		{"abcdef", "******"},
		{"abcdefg", "ab***fg"},
		{"correcthorse", "co********se"},
	}

	for _, tt := range tests {
		if got := Obfuscate(tt.secret); got != tt.want {
			t.Fatalf("Obfuscate(%q) = %q, want %q", tt.secret, got, tt.want)
		}
	}
}
