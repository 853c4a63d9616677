// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authelia

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/autheliarr/autheliarr/internal/logging"
	"github.com/autheliarr/autheliarr/internal/monitoring/prometheus"
	"github.com/autheliarr/autheliarr/internal/tracing"
)

func newTestStore(t *testing.T, path string) *FileStore {
	t.Helper()

	logger := logging.NewNoopLogger()
	monitor := prometheus.NewMonitor("autheliarr", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(false, "", "", logger))

	return NewFileStore(path, tracer, monitor, logger)
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "users_database.yml"))

	db, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(db.Users) != 0 {
		t.Fatalf("expected empty database, got %d users", len(db.Users))
	}
}

func TestFileStoreLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users_database.yml")
	if err := os.WriteFile(path, []byte("users: [not: a: mapping"), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	store := newTestStore(t, path)

	db, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(db.Users) != 0 {
		t.Fatalf("expected empty database, got %d users", len(db.Users))
	}
}

func TestFileStoreLoadNullUsers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users_database.yml")
	if err := os.WriteFile(path, []byte("users:\n"), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	store := newTestStore(t, path)

	db, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db.Users == nil {
		t.Fatal("expected users map to be initialized")
	}
}

func TestFileStoreSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authelia", "users_database.yml")
	store := newTestStore(t, path)

	db := NewUserDatabase()
	db.Users["alice"] = User{
		DisplayName: "Alice",
		Password:    "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		Email:       "alice@example.com",
		Groups:      []string{"plex_users"},
	}

	if err := store.Save(context.Background(), db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, ok := loaded.Users["alice"]
	if !ok {
		t.Fatal("expected alice to survive the round trip")
	}
	if u.DisplayName != "Alice" || u.Email != "alice@example.com" || u.Password != db.Users["alice"].Password {
		t.Fatalf("unexpected user after round trip: %+v", u)
	}
	if len(u.Groups) != 1 || u.Groups[0] != "plex_users" {
		t.Fatalf("unexpected groups after round trip: %v", u.Groups)
	}
}

func TestFileStoreSaveFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users_database.yml")
	store := newTestStore(t, path)

	if err := store.Save(context.Background(), NewUserDatabase()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected mode 0600, got %v", info.Mode().Perm())
	}
}

func TestFileStoreSaveUsesAutheliaFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users_database.yml")
	store := newTestStore(t, path)

	db := NewUserDatabase()
	db.Users["alice"] = User{DisplayName: "Alice", Email: "alice@example.com"}

	if err := store.Save(context.Background(), db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), "displayname:") {
		t.Fatalf("expected displayname key in output, got:\n%s", data)
	}
}
