// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package docker

import "context"

// RestarterInterface triggers a reload of the consuming service. Restart is
// best-effort: a failure is reported but never retried within a pass.
type RestarterInterface interface {
	Restart(ctx context.Context) error
}
