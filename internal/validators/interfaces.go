// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the invariants of settings and notification
// values before they are handed to the components that consume them.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values.
//     Supports optional field-level scoping for targeted validation.
//   - FieldError: the typed failure every validator returns, naming the
//     offending field, the received value and a user-facing reason.
//
// Validation is deterministic and side-effect free; a failure is never
// transient and callers must correct the input instead of retrying.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
