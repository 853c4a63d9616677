// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// WizarrUser is an invited user as read from the Wizarr database.
// Only accounts with a non-null email are surfaced by the source adapter.
type WizarrUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SyncReport summarizes a single reconciliation pass.
type SyncReport struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// HasChanges reports whether the pass produced anything worth persisting.
func (r *SyncReport) HasChanges() bool {
	return r.Created > 0 || r.Updated > 0
}
