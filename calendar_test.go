// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package edtf_test

import (
	"testing"

	"cloudeng.io/edtf"
)

func TestIsLeapYear(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{2020, true},
		{2021, false},
		{2000, true},
		{1900, false},
		{1600, true},
		{4, true},
		{0, true},
		{-4, true},
		{-100, false},
		{-400, true},
	} {
		if got, want := edtf.IsLeapYear(tc.year), tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	for _, tc := range []struct {
		year, month, days int
	}{
		{2021, 1, 31},
		{2021, 2, 28},
		{2020, 2, 29},
		{2000, 2, 29},
		{1900, 2, 28},
		{2021, 4, 30},
		{2021, 6, 30},
		{2021, 7, 31},
		{2021, 8, 31},
		{2021, 9, 30},
		{2021, 11, 30},
		{2021, 12, 31},
		{2021, 0, 0},
		{2021, 13, 0},
		{2021, 22, 0},
	} {
		if got, want := edtf.DaysInMonth(tc.year, tc.month), tc.days; got != want {
			t.Errorf("%v-%v: got %v, want %v", tc.year, tc.month, got, want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	for _, tc := range []struct {
		year, month, day int
		valid            bool
	}{
		{2021, 5, 6, true},
		{2021, 12, 31, true},
		{2020, 2, 29, true},
		{2021, 2, 29, false},
		{2019, 4, 31, false},
		{2019, 1, 0, false},
		{2019, 0, 1, false},
		{2019, 13, 1, false},
		{-2020, 2, 29, true},
		{-2021, 2, 29, false},
	} {
		if got, want := edtf.IsValidDate(tc.year, tc.month, tc.day), tc.valid; got != want {
			t.Errorf("%v-%v-%v: got %v, want %v", tc.year, tc.month, tc.day, got, want)
		}
	}
}
