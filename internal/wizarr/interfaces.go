// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package wizarr

import (
	"context"

	"github.com/autheliarr/autheliarr/internal/types"
)

type WizarrInterface interface {
	ListUsers(ctx context.Context) ([]types.WizarrUser, error)
}
