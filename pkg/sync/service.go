// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package sync implements the reconciliation pass: diff the Wizarr user
// list against the Authelia user database, provision credentials for new
// users, and persist and reload only when something changed.
package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/autheliarr/autheliarr/internal/authelia"
	"github.com/autheliarr/autheliarr/internal/logging"
	"github.com/autheliarr/autheliarr/internal/monitoring"
	"github.com/autheliarr/autheliarr/internal/secrets"
	"github.com/autheliarr/autheliarr/internal/tracing"
	"github.com/autheliarr/autheliarr/internal/types"
	"github.com/autheliarr/autheliarr/pkg/hashing"
)

var _ ServiceInterface = (*Service)(nil)

// Config is the immutable per-service configuration, resolved once at
// startup.
type Config struct {
	DefaultGroup string
	DryRun       bool
}

type Service struct {
	config Config

	source    SourceInterface
	target    TargetInterface
	hasher    HasherInterface
	restarter RestarterInterface
	validator ValidatorInterface
	sink      SecretsSinkInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Run executes one reconciliation pass. A missing source degrades to a
// zero-user pass; a hashing or persistence failure aborts the pass and is
// surfaced to the caller, which decides retry-vs-abort based on run mode.
func (s *Service) Run(ctx context.Context) (*types.SyncReport, error) {
	ctx, span := s.tracer.Start(ctx, "sync.Service.Run")
	defer span.End()

	passID := uuid.NewString()
	start := time.Now()
	defer func() {
		if err := s.monitor.ObserveSyncDuration(time.Since(start).Seconds()); err != nil {
			s.logger.Errorf("failed to observe sync duration: %v", err)
		}
	}()

	s.logger.Infof("starting sync pass %s", passID)

	users, err := s.source.ListUsers(ctx)
	if err != nil {
		s.logger.Warnf("wizarr unavailable, pass %s processed no users: %v", passID, err)
		return new(types.SyncReport), nil
	}
	if len(users) == 0 {
		s.logger.Warn("no wizarr users found, nothing to sync")
		return new(types.SyncReport), nil
	}

	db, err := s.target.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load authelia users: %w", err)
	}

	report, err := s.reconcile(ctx, users, db)
	if err != nil {
		return nil, err
	}
	s.reportOutcome(report)

	if !report.HasChanges() {
		s.logger.Info("no changes needed, all users are in sync")
		return report, nil
	}

	if s.config.DryRun {
		s.logger.Infof("dry run: would save %d new and %d updated users and reload authelia", report.Created, report.Updated)
		return report, nil
	}

	if err := s.target.Save(ctx, db); err != nil {
		// Nothing was cached; the next pass recomputes and retries.
		return report, fmt.Errorf("failed to persist authelia users: %w", err)
	}

	if err := s.restarter.Restart(ctx); err != nil {
		// Changes are already saved. A failed reload is not rolled back,
		// the users exist but may not be active until the next restart.
		s.logger.Warnf("users updated but authelia restart failed: %v", err)
	}

	s.logger.Infof("sync pass %s complete: %d created, %d updated, %d skipped in %s",
		passID, report.Created, report.Updated, report.Skipped, time.Since(start).Round(time.Millisecond))

	return report, nil
}

// reconcile walks the source users in order and computes the minimal set of
// create/update operations directly on db. It persists nothing itself.
func (s *Service) reconcile(ctx context.Context, users []types.WizarrUser, db *authelia.UserDatabase) (*types.SyncReport, error) {
	ctx, span := s.tracer.Start(ctx, "sync.Service.reconcile")
	defer span.End()

	report := new(types.SyncReport)
	for _, u := range users {
		if !s.validator.ValidateUsername(u.Username) {
			s.logger.Warnf("skipping user %s: invalid username format", u.Username)
			report.Skipped++
			continue
		}
		if !s.validator.ValidateEmail(u.Email) {
			s.logger.Warnf("skipping user %s: invalid email format (%s)", u.Username, u.Email)
			report.Skipped++
			continue
		}

		if existing, ok := db.Users[u.Username]; ok {
			if existing.Email != u.Email {
				s.logger.Infof("updating email for user %s: %s -> %s", u.Username, existing.Email, u.Email)
				existing.Email = u.Email
				db.Users[u.Username] = existing
				report.Updated++
			} else {
				s.logger.Debugf("user %s already exists with correct email", u.Username)
			}
			continue
		}

		if err := s.createUser(ctx, u, db); err != nil {
			return nil, err
		}
		report.Created++
	}

	return report, nil
}

func (s *Service) createUser(ctx context.Context, u types.WizarrUser, db *authelia.UserDatabase) error {
	secret, err := hashing.GenerateSecret(hashing.DefaultSecretLength)
	if err != nil {
		return fmt.Errorf("failed to generate password for %s: %w", u.Username, err)
	}

	hash, err := s.hasher.Hash(secret)
	if err != nil {
		return fmt.Errorf("failed to hash password for %s: %w", u.Username, err)
	}

	s.logger.Infof("creating new authelia user: %s (%s)", u.Username, u.Email)
	db.Users[u.Username] = authelia.User{
		DisplayName: displayName(u.Username),
		Password:    hash,
		Email:       u.Email,
		Groups:      []string{s.config.DefaultGroup},
	}

	s.emitSecret(u.Username, secret)

	return nil
}

// emitSecret hands the plaintext to the secure channel exactly once and
// logs only the obfuscated form.
func (s *Service) emitSecret(username, secret string) {
	s.logger.Warnf("generated password for %s: %s", username, secrets.Obfuscate(secret))

	if err := s.sink.Emit(username, secret); err != nil {
		s.logger.Errorf("failed to write password for %s to secure log: %v", username, err)
	}

	s.logger.Security().CredentialIssued(username)
}

func (s *Service) reportOutcome(report *types.SyncReport) {
	for outcome, count := range map[string]int{
		"created": report.Created,
		"updated": report.Updated,
		"skipped": report.Skipped,
	} {
		if count == 0 {
			continue
		}
		if err := s.monitor.IncSyncOutcomeMetric(map[string]string{"outcome": outcome}, float64(count)); err != nil {
			s.logger.Errorf("failed to increment sync outcome metric: %v", err)
		}
	}
}

func displayName(username string) string {
	return cases.Title(language.Und).String(username)
}

func NewService(config Config, source SourceInterface, target TargetInterface, hasher HasherInterface, restarter RestarterInterface, validator ValidatorInterface, sink SecretsSinkInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.config = config

	s.source = source
	s.target = target
	s.hasher = hasher
	s.restarter = restarter
	s.validator = validator
	s.sink = sink

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
