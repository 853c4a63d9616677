// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"false"`

	LogLevel string `envconfig:"log_level" default:"info"`

	// Port serves the status and metrics endpoints in interval mode.
	Port int `envconfig:"port" default:"8080"`

	WizarrDBPath      string `envconfig:"wizarr_db_path" default:"/wizarr/database.db"`
	AutheliaUsersPath string `envconfig:"authelia_users_path" default:"/authelia/users_database.yml"`
	DefaultGroup      string `envconfig:"default_group" default:"plex_users"`

	DryRun bool `envconfig:"dry_run" default:"false"`

	// SyncInterval is the number of seconds between passes; 0 runs a
	// single pass and exits.
	SyncInterval int `envconfig:"sync_interval" default:"0"`

	AutheliaContainer string `envconfig:"authelia_container" default:"authelia"`
	RestartAuthelia   bool   `envconfig:"restart_authelia" default:"true"`

	// SecureLogPath receives generated plaintext passwords; when empty
	// they are not written anywhere.
	SecureLogPath string `envconfig:"secure_log_path"`
}
