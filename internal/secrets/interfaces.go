// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package secrets

// SinkInterface is the out-of-band channel for freshly generated plaintext
// secrets. Each secret is emitted exactly once, for one-time administrator
// retrieval; the operational log only ever sees the obfuscated form.
type SinkInterface interface {
	Emit(username, secret string) error
	Available() bool
}
