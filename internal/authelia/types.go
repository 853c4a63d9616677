// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authelia

// User is a single record in Authelia's file-based user backend. Field
// names follow the users_database.yml format.
type User struct {
	DisplayName string   `yaml:"displayname"`
	Password    string   `yaml:"password"`
	Email       string   `yaml:"email"`
	Groups      []string `yaml:"groups"`
}

// UserDatabase is the whole users_database.yml document, keyed by username.
type UserDatabase struct {
	Users map[string]User `yaml:"users"`
}

// NewUserDatabase returns an empty database ready for inserts.
func NewUserDatabase() *UserDatabase {
	return &UserDatabase{Users: make(map[string]User)}
}
