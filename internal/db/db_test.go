// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/autheliarr/autheliarr/internal/logging"
	"github.com/autheliarr/autheliarr/internal/monitoring/prometheus"
	"github.com/autheliarr/autheliarr/internal/tracing"
)

func newTestDBClient(t *testing.T, config Config) *DBClient {
	t.Helper()

	logger := logging.NewNoopLogger()
	monitor := prometheus.NewMonitor("autheliarr", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(false, "", "", logger))

	client, err := NewDBClient(config, tracer, monitor, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return client
}

func TestDBClientPing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.db")

	conn, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		t.Fatalf("failed to open seed database: %v", err)
	}
	if _, err := conn.Exec("CREATE TABLE user (id INTEGER PRIMARY KEY)"); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	conn.Close()

	client := newTestDBClient(t, Config{Path: path, ReadOnly: true})

	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDBClientReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.db")

	conn, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		t.Fatalf("failed to open seed database: %v", err)
	}
	if _, err := conn.Exec("CREATE TABLE user (id INTEGER PRIMARY KEY)"); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	conn.Close()

	client := newTestDBClient(t, Config{Path: path, ReadOnly: true})

	ctx := context.Background()
	if _, err := client.Statement(ctx).Insert("user").Columns("id").Values(1).ExecContext(ctx); err == nil {
		t.Fatal("expected insert on read-only database to fail")
	}
}

func TestDBClientStatement(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.db")

	conn, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		t.Fatalf("failed to open seed database: %v", err)
	}
	if _, err := conn.Exec("CREATE TABLE user (id INTEGER PRIMARY KEY, username TEXT)"); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := conn.Exec("INSERT INTO user (username) VALUES ('alice')"); err != nil {
		t.Fatalf("failed to insert row: %v", err)
	}
	conn.Close()

	client := newTestDBClient(t, Config{Path: path, ReadOnly: true})

	ctx := context.Background()
	row := client.Statement(ctx).Select("username").From("user").Where("id = ?", 1).QueryRowContext(ctx)

	var username string
	if err := row.Scan(&username); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if username != "alice" {
		t.Fatalf("expected alice, got %q", username)
	}
}
