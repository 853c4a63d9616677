// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hashing

type HasherInterface interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}
