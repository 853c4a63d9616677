// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package docker

import (
	"context"

	"github.com/autheliarr/autheliarr/internal/logging"
)

var _ RestarterInterface = (*NoopRestarter)(nil)

// NoopRestarter stands in when the restart trigger is disabled or the run
// is a dry run.
type NoopRestarter struct {
	logger logging.LoggerInterface
}

func (n *NoopRestarter) Restart(ctx context.Context) error {
	n.logger.Info("authelia restart disabled, skipping")

	return nil
}

func NewNoopRestarter(logger logging.LoggerInterface) *NoopRestarter {
	n := new(NoopRestarter)
	n.logger = logger

	return n
}
