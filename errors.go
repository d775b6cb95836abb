// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package edtf

import "errors"

var (
	// ErrInvalid is returned when the input does not match any EDTF
	// production: wrong character classes, wrong digit counts, a slash in
	// the wrong place, a disallowed mask combination or a qualifier that
	// is not the final character.
	ErrInvalid = errors.New("invalid edtf")

	// ErrOutOfRange is returned when the input is lexically well formed
	// but names a point that does not exist on the proleptic Gregorian
	// calendar or clock: month 13, April 31, February 29 in a non-leap
	// year, minute 60, a season code outside 21-24.
	ErrOutOfRange = errors.New("edtf value out of range")
)
