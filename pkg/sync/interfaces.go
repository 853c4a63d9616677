// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sync

import (
	"context"

	"github.com/autheliarr/autheliarr/internal/authelia"
	"github.com/autheliarr/autheliarr/internal/types"
)

type ServiceInterface interface {
	Run(ctx context.Context) (*types.SyncReport, error)
}

// SourceInterface lists the invited users that should exist in Authelia.
type SourceInterface interface {
	ListUsers(ctx context.Context) ([]types.WizarrUser, error)
}

// TargetInterface reads and writes the Authelia user database as a whole
// document.
type TargetInterface interface {
	Load(ctx context.Context) (*authelia.UserDatabase, error)
	Save(ctx context.Context, db *authelia.UserDatabase) error
}

type HasherInterface interface {
	Hash(password string) (string, error)
}

type RestarterInterface interface {
	Restart(ctx context.Context) error
}

type ValidatorInterface interface {
	ValidateUsername(username string) bool
	ValidateEmail(email string) bool
}

// SecretsSinkInterface receives each newly generated plaintext secret
// exactly once.
type SecretsSinkInterface interface {
	Emit(username, secret string) error
	Available() bool
}
