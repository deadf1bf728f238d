// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errdefs defines the error kinds shared by the classification
// and scale packages.
//
// Errors returned by this module are marked with one of the sentinels
// below, so callers can test for a kind with errors.Is regardless of the
// message or any wrapping added on the way up.
package errdefs

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidArgument reports a caller contract violation, such as
	// fewer than two classes or a non-positive tick count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptySample reports that no values remained after missing
	// values were filtered out.
	ErrEmptySample = errors.New("empty sample")
)

// InvalidArgumentf returns a formatted error marked as ErrInvalidArgument.
func InvalidArgumentf(format string, args ...interface{}) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), ErrInvalidArgument)
}

// EmptySamplef returns a formatted error marked as ErrEmptySample.
func EmptySamplef(format string, args ...interface{}) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), ErrEmptySample)
}

// IsInvalidArgument reports whether any error in err's chain is marked
// with ErrInvalidArgument.
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }

// IsEmptySample reports whether any error in err's chain is marked with
// ErrEmptySample.
func IsEmptySample(err error) bool { return errors.Is(err, ErrEmptySample) }
