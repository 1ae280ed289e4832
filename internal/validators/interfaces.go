// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the
// credential or diary stores. Each failure is reported as one of the
// sentinel errors in errors.go, which the HTTP layer maps to a 400 body.
package validators

import "context"

// Validator checks a request value. When fields are given only those rules
// run; otherwise every rule for the value's type runs. Unsupported value
// types yield ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
