// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package configini

import "errors"

// Sentinel errors reported by this package. Errors returned from parsing and
// file operations wrap these (or the underlying OS error), so callers should
// test with errors.Is.
var (
	// ErrInvalid indicates an empty or malformed required input, such as an
	// empty key or an empty comment character set.
	ErrInvalid = errors.New("invalid argument")

	// ErrNoSection indicates a lookup of a section that does not exist.
	ErrNoSection = errors.New("no such section")

	// ErrNoKey indicates a lookup of a key that does not exist in an
	// existing section.
	ErrNoKey = errors.New("no such key")

	// ErrInvalidValue indicates a value that exists but cannot be converted
	// to the requested type, or an empty value during parsing.
	ErrInvalidValue = errors.New("invalid value")

	// ErrSyntax indicates a malformed section header or key/value line.
	ErrSyntax = errors.New("invalid syntax")
)
