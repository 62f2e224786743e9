// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/attrprops

package attrprops

import "errors"

// Sentinel errors for attrprops operations.
var (
	// ErrInvalidPattern indicates malformed or unsupported rule pattern.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidConfig indicates malformed repository format configuration.
	ErrInvalidConfig = errors.New("invalid config")
)
