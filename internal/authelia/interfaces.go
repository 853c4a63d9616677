// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authelia

import "context"

type StoreInterface interface {
	Load(ctx context.Context) (*UserDatabase, error)
	Save(ctx context.Context, db *UserDatabase) error
}
