// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import "go.uber.org/zap"

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

// SecurityLogger tags security-relevant events so they can be filtered out
// of the operational stream. Plaintext credentials never pass through here,
// see the secrets package for the out-of-band channel.
type SecurityLogger struct {
	logger *zap.SugaredLogger
}

func (s *SecurityLogger) SystemStartup() {
	s.logger.Infow("system startup", "event", "system_startup")
}

func (s *SecurityLogger) SystemShutdown() {
	s.logger.Infow("system shutdown", "event", "system_shutdown")
}

func (s *SecurityLogger) CredentialIssued(username string) {
	s.logger.Infow("credential issued", "event", "credential_issued", "username", username)
}

func NewSecurityLogger(logger *zap.SugaredLogger) *SecurityLogger {
	s := new(SecurityLogger)
	s.logger = logger

	return s
}
