// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks uploads and reviewed contract forms before they
// reach extraction or persistence.
//
// Upload validators sniff the MIME type and enforce size limits. The form
// validator collects every field problem into [FieldErrors] so a client can
// highlight all of them at once.
package validators

import "context"

// Validator checks a value. Optional field names restrict the check to those
// fields; implementations that validate a single value ignore them.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
