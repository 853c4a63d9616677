// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package validation holds the admission rules for identity fields. A user
// failing either rule is skipped for the pass, no partial record is created.
package validation

import (
	"regexp"

	validator "github.com/go-playground/validator/v10"
)

var (
	// Usernames must be safe both as a mapping key and embedded in the
	// Authelia users file: restricted charset, 3 to 32 characters.
	usernameRegexp = regexp.MustCompile(`^[A-Za-z0-9._-]{3,32}$`)

	// local@domain.tld with a top-level label of at least two letters.
	emailRegexp = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

var _ ValidatorInterface = (*Validator)(nil)

type Validator struct {
	validate *validator.Validate
}

func (v *Validator) ValidateUsername(username string) bool {
	return v.validate.Var(username, "required,authelia_username") == nil
}

func (v *Validator) ValidateEmail(email string) bool {
	return v.validate.Var(email, "required,authelia_email") == nil
}

func NewValidator() *Validator {
	v := new(Validator)
	v.validate = validator.New()

	// Registration only fails for empty tags or nil funcs.
	_ = v.validate.RegisterValidation("authelia_username", func(fl validator.FieldLevel) bool {
		return usernameRegexp.MatchString(fl.Field().String())
	})
	_ = v.validate.RegisterValidation("authelia_email", func(fl validator.FieldLevel) bool {
		return emailRegexp.MatchString(fl.Field().String())
	})

	return v
}
