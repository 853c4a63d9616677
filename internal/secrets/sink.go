// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package secrets implements the secure credential channel: an append-only
// file, separate from operational logs, where newly generated passwords are
// written for one-time retrieval.
package secrets

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/autheliarr/autheliarr/internal/logging"
)

var _ SinkInterface = (*FileSink)(nil)

type FileSink struct {
	path string

	logger logging.LoggerInterface
}

// Emit appends one username/secret pair. The file is opened per emission so
// a rotated or remounted path is picked up without restarting.
func (s *FileSink) Emit(username, secret string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open secure log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s user=%s password=%s\n", time.Now().UTC().Format(time.RFC3339), username, secret); err != nil {
		return fmt.Errorf("failed to write secure log: %w", err)
	}

	s.logger.Infof("password for %s written to secure log at %s", username, s.path)

	return nil
}

func (s *FileSink) Available() bool {
	return true
}

func NewFileSink(path string, logger logging.LoggerInterface) *FileSink {
	s := new(FileSink)

	s.path = path
	s.logger = logger

	return s
}

var _ SinkInterface = (*NoopSink)(nil)

// NoopSink is used when no secure log path is configured. Plaintext secrets
// are then never written anywhere and operators must provision manually.
type NoopSink struct {
	logger logging.LoggerInterface
}

func (s *NoopSink) Emit(username, secret string) error {
	s.logger.Warnf("secure log not configured, password for %s must be provided to the user manually", username)

	return nil
}

func (s *NoopSink) Available() bool {
	return false
}

func NewNoopSink(logger logging.LoggerInterface) *NoopSink {
	s := new(NoopSink)
	s.logger = logger

	return s
}

// Obfuscate masks a secret for operational logs: first and last two
// characters visible, everything else starred. Short secrets are fully
// masked.
func Obfuscate(secret string) string {
	if len(secret) > 6 {
		return secret[:2] + strings.Repeat("*", len(secret)-4) + secret[len(secret)-2:]
	}

	return strings.Repeat("*", len(secret))
}
