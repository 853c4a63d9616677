// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package authelia reads and writes Authelia's users_database.yml. The
// document is always handled whole, there is no partial patching.
package authelia

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	yaml "github.com/goccy/go-yaml"

	"github.com/autheliarr/autheliarr/internal/logging"
	"github.com/autheliarr/autheliarr/internal/monitoring"
	"github.com/autheliarr/autheliarr/internal/tracing"
)

var _ StoreInterface = (*FileStore)(nil)

type FileStore struct {
	path string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Load reads the users database from disk. A missing or malformed file
// degrades to an empty database with a warning: the next successful pass
// rewrites the whole document, so the store heals itself instead of
// blocking every sync.
func (s *FileStore) Load(ctx context.Context) (*UserDatabase, error) {
	_, span := s.tracer.Start(ctx, "authelia.FileStore.Load")
	defer span.End()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warnf("authelia users file not found at %s, starting empty", s.path)
		} else {
			s.logger.Warnf("failed to read authelia users file: %v, starting empty", err)
		}
		return NewUserDatabase(), nil
	}

	db := new(UserDatabase)
	if err := yaml.Unmarshal(data, db); err != nil {
		s.logger.Warnf("failed to parse authelia users file: %v, starting empty", err)
		return NewUserDatabase(), nil
	}

	if db.Users == nil {
		db.Users = make(map[string]User)
	}

	return db, nil
}

// Save atomically replaces the users database on disk, creating the parent
// directory if needed. Write-then-rename keeps a crashed pass from leaving
// Authelia with a truncated file.
func (s *FileStore) Save(ctx context.Context, db *UserDatabase) error {
	_, span := s.tracer.Start(ctx, "authelia.FileStore.Save")
	defer span.End()

	data, err := yaml.Marshal(db)
	if err != nil {
		return fmt.Errorf("failed to marshal authelia users: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".users_database-*.yml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write authelia users: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace authelia users file: %w", err)
	}

	s.logger.Infof("updated authelia users file with %d users", len(db.Users))

	return nil
}

func NewFileStore(path string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *FileStore {
	s := new(FileStore)

	s.path = path

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
