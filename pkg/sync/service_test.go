// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sync

import (
	"context"
	"errors"
	"testing"

	trace "go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/autheliarr/autheliarr/internal/authelia"
	"github.com/autheliarr/autheliarr/internal/types"
	"github.com/autheliarr/autheliarr/pkg/hashing"
)

//go:generate mockgen -build_flags=--mod=mod -package sync -destination ./mock_sync.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package sync -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package sync -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package sync -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go

type serviceMocks struct {
	source    *MockSourceInterface
	target    *MockTargetInterface
	hasher    *MockHasherInterface
	restarter *MockRestarterInterface
	validator *MockValidatorInterface
	sink      *MockSecretsSinkInterface
}

func newServiceWithMocks(ctrl *gomock.Controller, config Config) (*Service, *serviceMocks) {
	m := &serviceMocks{
		source:    NewMockSourceInterface(ctrl),
		target:    NewMockTargetInterface(ctrl),
		hasher:    NewMockHasherInterface(ctrl),
		restarter: NewMockRestarterInterface(ctrl),
		validator: NewMockValidatorInterface(ctrl),
		sink:      NewMockSecretsSinkInterface(ctrl),
	}

	logger := NewMockLoggerInterface(ctrl)
	security := NewMockSecurityLoggerInterface(ctrl)
	logger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Security().Return(security).AnyTimes()
	security.EXPECT().CredentialIssued(gomock.Any()).AnyTimes()

	tracer := NewMockTracingInterface(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()

	monitor := NewMockMonitorInterface(ctrl)
	monitor.EXPECT().ObserveSyncDuration(gomock.Any()).Return(nil).AnyTimes()
	monitor.EXPECT().IncSyncOutcomeMetric(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s := NewService(config, m.source, m.target, m.hasher, m.restarter, m.validator, m.sink, tracer, monitor, logger)

	return s, m
}

func dbWithUser(username string, user authelia.User) *authelia.UserDatabase {
	db := authelia.NewUserDatabase()
	db.Users[username] = user
	return db
}

func TestServiceRun(t *testing.T) {
	sourceErr := errors.New("unable to open database file")

	testCases := []struct {
		name           string
		config         Config
		setupMocks     func(m *serviceMocks)
		expectedReport *types.SyncReport
		expectErr      bool
	}{
		{
			name:   "creates missing user",
			config: Config{DefaultGroup: "plex_users"},
			setupMocks: func(m *serviceMocks) {
				m.source.EXPECT().ListUsers(gomock.Any()).Return([]types.WizarrUser{
					{Username: "alice", Email: "alice@example.com"},
				}, nil)
				m.target.EXPECT().Load(gomock.Any()).Return(authelia.NewUserDatabase(), nil)
				m.validator.EXPECT().ValidateUsername("alice").Return(true)
				m.validator.EXPECT().ValidateEmail("alice@example.com").Return(true)
				m.hasher.EXPECT().Hash(gomock.Any()).Return("$argon2id$v=19$m=65536,t=3,p=4$c$h", nil)
				m.sink.EXPECT().Emit("alice", gomock.Any()).Return(nil)
				m.target.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, db *authelia.UserDatabase) error {
						u, ok := db.Users["alice"]
						if !ok {
							t.Fatal("expected alice to be created")
						}
						if u.Email != "alice@example.com" {
							t.Fatalf("expected email alice@example.com, got %q", u.Email)
						}
						if u.DisplayName != "Alice" {
							t.Fatalf("expected display name Alice, got %q", u.DisplayName)
						}
						if len(u.Groups) != 1 || u.Groups[0] != "plex_users" {
							t.Fatalf("expected groups [plex_users], got %v", u.Groups)
						}
						if u.Password != "$argon2id$v=19$m=65536,t=3,p=4$c$h" {
							t.Fatalf("unexpected password hash %q", u.Password)
						}
						return nil
					},
				)
				m.restarter.EXPECT().Restart(gomock.Any()).Return(nil)
			},
			expectedReport: &types.SyncReport{Created: 1},
		},
		{
			name:   "updates changed email and keeps hash",
			config: Config{DefaultGroup: "plex_users"},
			setupMocks: func(m *serviceMocks) {
				m.source.EXPECT().ListUsers(gomock.Any()).Return([]types.WizarrUser{
					{Username: "bob", Email: "new@x.com"},
				}, nil)
				m.target.EXPECT().Load(gomock.Any()).Return(dbWithUser("bob", authelia.User{
					DisplayName: "Bob",
					Password:    "$argon2id$existing",
					Email:       "old@x.com",
					Groups:      []string{"plex_users"},
				}), nil)
				m.validator.EXPECT().ValidateUsername("bob").Return(true)
				m.validator.EXPECT().ValidateEmail("new@x.com").Return(true)
				m.target.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, db *authelia.UserDatabase) error {
						u := db.Users["bob"]
						if u.Email != "new@x.com" {
							t.Fatalf("expected updated email, got %q", u.Email)
						}
						if u.Password != "$argon2id$existing" {
							t.Fatalf("expected password hash untouched, got %q", u.Password)
						}
						return nil
					},
				)
				m.restarter.EXPECT().Restart(gomock.Any()).Return(nil)
			},
			expectedReport: &types.SyncReport{Updated: 1},
		},
		{
			name:   "identical email is a no-op",
			config: Config{DefaultGroup: "plex_users"},
			setupMocks: func(m *serviceMocks) {
				m.source.EXPECT().ListUsers(gomock.Any()).Return([]types.WizarrUser{
					{Username: "bob", Email: "same@x.com"},
				}, nil)
				m.target.EXPECT().Load(gomock.Any()).Return(dbWithUser("bob", authelia.User{
					Email: "same@x.com",
				}), nil)
				m.validator.EXPECT().ValidateUsername("bob").Return(true)
				m.validator.EXPECT().ValidateEmail("same@x.com").Return(true)
			},
			expectedReport: &types.SyncReport{},
		},
		{
			name:   "invalid username is skipped",
			config: Config{DefaultGroup: "plex_users"},
			setupMocks: func(m *serviceMocks) {
				m.source.EXPECT().ListUsers(gomock.Any()).Return([]types.WizarrUser{
					{Username: "a!b", Email: "a@x.com"},
				}, nil)
				m.target.EXPECT().Load(gomock.Any()).Return(authelia.NewUserDatabase(), nil)
				m.validator.EXPECT().ValidateUsername("a!b").Return(false)
			},
			expectedReport: &types.SyncReport{Skipped: 1},
		},
		{
			name:   "invalid email is skipped",
			config: Config{DefaultGroup: "plex_users"},
			setupMocks: func(m *serviceMocks) {
				m.source.EXPECT().ListUsers(gomock.Any()).Return([]types.WizarrUser{
					{Username: "carol", Email: "not-an-email"},
				}, nil)
				m.target.EXPECT().Load(gomock.Any()).Return(authelia.NewUserDatabase(), nil)
				m.validator.EXPECT().ValidateUsername("carol").Return(true)
				m.validator.EXPECT().ValidateEmail("not-an-email").Return(false)
			},
			expectedReport: &types.SyncReport{Skipped: 1},
		},
		{
			name:   "source unavailable degrades to empty pass",
			config: Config{DefaultGroup: "plex_users"},
			setupMocks: func(m *serviceMocks) {
				m.source.EXPECT().ListUsers(gomock.Any()).Return(nil, sourceErr)
			},
			expectedReport: &types.SyncReport{},
		},
		{
			name:   "hashing failure aborts the pass",
			config: Config{DefaultGroup: "plex_users"},
			setupMocks: func(m *serviceMocks) {
				m.source.EXPECT().ListUsers(gomock.Any()).Return([]types.WizarrUser{
					{Username: "alice", Email: "alice@example.com"},
				}, nil)
				m.target.EXPECT().Load(gomock.Any()).Return(authelia.NewUserDatabase(), nil)
				m.validator.EXPECT().ValidateUsername("alice").Return(true)
				m.validator.EXPECT().ValidateEmail("alice@example.com").Return(true)
				m.hasher.EXPECT().Hash(gomock.Any()).Return("", hashing.ErrHashing)
			},
			expectErr: true,
		},
		{
			name:   "dry run writes and restarts nothing",
			config: Config{DefaultGroup: "plex_users", DryRun: true},
			setupMocks: func(m *serviceMocks) {
				m.source.EXPECT().ListUsers(gomock.Any()).Return([]types.WizarrUser{
					{Username: "alice", Email: "alice@example.com"},
				}, nil)
				m.target.EXPECT().Load(gomock.Any()).Return(authelia.NewUserDatabase(), nil)
				m.validator.EXPECT().ValidateUsername("alice").Return(true)
				m.validator.EXPECT().ValidateEmail("alice@example.com").Return(true)
				m.hasher.EXPECT().Hash(gomock.Any()).Return("$argon2id$fake", nil)
				m.sink.EXPECT().Emit("alice", gomock.Any()).Return(nil)
			},
			expectedReport: &types.SyncReport{Created: 1},
		},
		{
			name:   "persistence failure surfaces",
			config: Config{DefaultGroup: "plex_users"},
			setupMocks: func(m *serviceMocks) {
				m.source.EXPECT().ListUsers(gomock.Any()).Return([]types.WizarrUser{
					{Username: "bob", Email: "new@x.com"},
				}, nil)
				m.target.EXPECT().Load(gomock.Any()).Return(dbWithUser("bob", authelia.User{Email: "old@x.com"}), nil)
				m.validator.EXPECT().ValidateUsername("bob").Return(true)
				m.validator.EXPECT().ValidateEmail("new@x.com").Return(true)
				m.target.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("read-only filesystem"))
			},
			expectErr: true,
		},
		{
			name:   "restart failure does not roll back",
			config: Config{DefaultGroup: "plex_users"},
			setupMocks: func(m *serviceMocks) {
				m.source.EXPECT().ListUsers(gomock.Any()).Return([]types.WizarrUser{
					{Username: "bob", Email: "new@x.com"},
				}, nil)
				m.target.EXPECT().Load(gomock.Any()).Return(dbWithUser("bob", authelia.User{Email: "old@x.com"}), nil)
				m.validator.EXPECT().ValidateUsername("bob").Return(true)
				m.validator.EXPECT().ValidateEmail("new@x.com").Return(true)
				m.target.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.restarter.EXPECT().Restart(gomock.Any()).Return(errors.New("docker daemon unreachable"))
			},
			expectedReport: &types.SyncReport{Updated: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newServiceWithMocks(ctrl, tc.config)
			tc.setupMocks(m)

			report, err := s.Run(context.Background())

			if tc.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *report != *tc.expectedReport {
				t.Fatalf("expected report %+v, got %+v", *tc.expectedReport, *report)
			}
		})
	}
}

// Running a second pass against the state produced by the first must be a
// no-op: no duplicates, no rewrites.
func TestServiceRunIdempotence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl, Config{DefaultGroup: "plex_users"})

	users := []types.WizarrUser{{Username: "alice", Email: "alice@example.com"}}
	db := authelia.NewUserDatabase()

	m.source.EXPECT().ListUsers(gomock.Any()).Return(users, nil).Times(2)
	m.target.EXPECT().Load(gomock.Any()).Return(db, nil).Times(2)
	m.validator.EXPECT().ValidateUsername("alice").Return(true).Times(2)
	m.validator.EXPECT().ValidateEmail("alice@example.com").Return(true).Times(2)
	m.hasher.EXPECT().Hash(gomock.Any()).Return("$argon2id$once", nil)
	m.sink.EXPECT().Emit("alice", gomock.Any()).Return(nil)
	m.target.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.restarter.EXPECT().Restart(gomock.Any()).Return(nil)

	first, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error on first pass: %v", err)
	}
	if first.Created != 1 || first.Updated != 0 {
		t.Fatalf("expected first pass to create one user, got %+v", *first)
	}

	second, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error on second pass: %v", err)
	}
	if second.Created != 0 || second.Updated != 0 {
		t.Fatalf("expected second pass to be a no-op, got %+v", *second)
	}
	if db.Users["alice"].Password != "$argon2id$once" {
		t.Fatalf("expected password hash untouched, got %q", db.Users["alice"].Password)
	}
}

// A created record must verify against the plaintext that went out through
// the secure channel. Uses the real argon2id hasher.
func TestServiceRunProvisionsVerifiableCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl, Config{DefaultGroup: "plex_users"})
	hasher := hashing.NewArgon2Hasher()
	s.hasher = hasher

	db := authelia.NewUserDatabase()
	var emitted string

	m.source.EXPECT().ListUsers(gomock.Any()).Return([]types.WizarrUser{
		{Username: "alice", Email: "alice@example.com"},
	}, nil)
	m.target.EXPECT().Load(gomock.Any()).Return(db, nil)
	m.validator.EXPECT().ValidateUsername("alice").Return(true)
	m.validator.EXPECT().ValidateEmail("alice@example.com").Return(true)
	m.sink.EXPECT().Emit("alice", gomock.Any()).DoAndReturn(
		func(_ string, secret string) error {
			emitted = secret
			return nil
		},
	)
	m.target.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.restarter.EXPECT().Restart(gomock.Any()).Return(nil)

	if _, err := s.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if emitted == "" {
		t.Fatal("expected a plaintext secret to be emitted")
	}

	ok, err := hasher.Verify(emitted, db.Users["alice"].Password)
	if err != nil {
		t.Fatalf("unexpected verify error: %v", err)
	}
	if !ok {
		t.Fatal("expected stored hash to verify against the emitted secret")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		username string
		want     string
	}{
		{"alice", "Alice"},
		{"JOHN", "John"},
		{"bob7", "Bob7"},
	}

	for _, tt := range tests {
		if got := displayName(tt.username); got != tt.want {
			t.Fatalf("displayName(%q) = %q, want %q", tt.username, got, tt.want)
		}
	}
}
