// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides structural validation of sync envelopes.
//
// An envelope that fails validation is never written to the remote store
// and never merged. Validation combines a JSON Schema check of the wire
// shape with Go rules for the relationships a schema cannot express
// (identity uniqueness, parent linkage, derived counts).
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
