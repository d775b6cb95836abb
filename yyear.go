// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package edtf

import "fmt"

// YYear is a year outside the four digit range, written with a leading
// 'Y' and no zero padding, such as Y170000 or Y-17000.
type YYear struct {
	year int64
}

// NewYYear returns the given letter-prefixed year. Years of magnitude
// 9999 or less must be written as plain dates and are out of range here.
func NewYYear(year int64) (YYear, error) {
	if year >= -9999 && year <= 9999 {
		return YYear{}, fmt.Errorf("%w: year %d is within the four digit range", ErrOutOfRange, year)
	}
	return YYear{year: year}, nil
}

// Year returns the year.
func (y YYear) Year() int64 {
	return y.year
}

// String renders the year in its EDTF form.
func (y YYear) String() string {
	return fmt.Sprintf("Y%d", y.year)
}
