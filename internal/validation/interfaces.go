// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

type ValidatorInterface interface {
	ValidateUsername(username string) bool
	ValidateEmail(email string) bool
}
